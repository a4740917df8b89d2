package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"leo", "mia_22", "Author_Name", "abc"}
	for _, name := range valid {
		assert.NoError(t, ValidateUsername(name), name)
	}

	invalid := []string{"", "ab", "has space", "dash-name", "ünïcode", "a!b@c"}
	for _, name := range invalid {
		assert.Error(t, ValidateUsername(name), name)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("leo@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@mail.example.org"))

	invalid := []string{"", "plain", "no@tld", "two@@example.com", "spaces in@example.com"}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("sturdy-pass1"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("alllettersonly"))
	assert.Error(t, ValidatePassword("1234567890"))
}

func TestValidateGroupSlug(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateGroupSlug("golang"))
	assert.NoError(t, ValidateGroupSlug("cats-and-dogs"))

	tests := []struct {
		name string
		slug string
	}{
		{"too short", "ab"},
		{"uppercase", "GoLang"},
		{"leading hyphen", "-edge"},
		{"trailing hyphen", "edge-"},
		{"reserved route", "profile"},
		{"reserved route", "auth"},
		{"spaces", "two words"},
	}
	for _, tt := range tests {
		assert.Error(t, ValidateGroupSlug(tt.slug), tt.name)
	}
}
