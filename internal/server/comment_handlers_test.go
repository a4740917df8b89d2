package server

import (
	"net/http"
	"net/url"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment_RequiresLogin(t *testing.T) {
	_, app, db := newTestServer(t)
	author := createUser(t, db, "leo")
	post := createPost(t, db, author, "commentable")

	resp := doRequest(t, app, formRequest(postDetailPath(post.ID)+"comment/", url.Values{"text": {"hi"}}))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login/?next="+postDetailPath(post.ID)+"comment/", resp.Header.Get("Location"))
}

func TestAddComment_CreatesAndRedirects(t *testing.T) {
	s, app, db := newTestServer(t)
	author := createUser(t, db, "leo")
	commenter := createUser(t, db, "reader")
	post := createPost(t, db, author, "commentable")

	req := formRequest(postDetailPath(post.ID)+"comment/", url.Values{"text": {"well said"}})
	req.AddCookie(sessionCookie(t, s, commenter))
	resp := doRequest(t, app, req)

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, postDetailPath(post.ID), resp.Header.Get("Location"))

	var comment models.Comment
	require.NoError(t, db.Where("post_id = ?", post.ID).First(&comment).Error)
	assert.Equal(t, "well said", comment.Text)
	assert.Equal(t, commenter.ID, comment.AuthorID)
}

func TestAddComment_EmptyTextIsDroppedSilently(t *testing.T) {
	s, app, db := newTestServer(t)
	author := createUser(t, db, "leo")
	post := createPost(t, db, author, "commentable")

	req := formRequest(postDetailPath(post.ID)+"comment/", url.Values{"text": {""}})
	req.AddCookie(sessionCookie(t, s, author))
	resp := doRequest(t, app, req)

	// Same redirect as a successful comment; the invalid text just vanishes.
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, postDetailPath(post.ID), resp.Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddComment_UnknownPostIs404(t *testing.T) {
	s, app, db := newTestServer(t)
	commenter := createUser(t, db, "reader")

	req := formRequest("/posts/9999/comment/", url.Values{"text": {"hello?"}})
	req.AddCookie(sessionCookie(t, s, commenter))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
