package repository

import (
	"testing"

	"quill/internal/models"
	"quill/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_CreateAndGetBySlug(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, repo.Create(ctxb(), &models.Group{
		Title:       "Gophers",
		Slug:        "gophers",
		Description: "all things Go",
	}))

	group, err := repo.GetBySlug(ctxb(), "gophers")
	require.NoError(t, err)
	assert.Equal(t, "Gophers", group.Title)
}

func TestGroupRepository_GetBySlug_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewGroupRepository(db)

	_, err := repo.GetBySlug(ctxb(), "missing")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestGroupRepository_ListOrderedByTitle(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, repo.Create(ctxb(), &models.Group{Title: "Zebras", Slug: "zebras"}))
	require.NoError(t, repo.Create(ctxb(), &models.Group{Title: "Antelopes", Slug: "antelopes"}))

	groups, err := repo.List(ctxb())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Antelopes", groups[0].Title)
	assert.Equal(t, "Zebras", groups[1].Title)
}
