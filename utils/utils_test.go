package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("logo.png"))
	assert.True(t, AllowedFile("logo.JPG"))
	assert.True(t, AllowedFile("photo.jpeg"))
	assert.True(t, AllowedFile("anim.gif"))
	assert.True(t, AllowedFile("archive.tar.gif"))

	assert.False(t, AllowedFile("notes.txt"))
	assert.False(t, AllowedFile("noextension"))
	assert.False(t, AllowedFile(""))
	assert.False(t, AllowedFile("logo.png.exe"))
}

func TestSecureFilename(t *testing.T) {
	assert.Equal(t, "logo.png", SecureFilename("logo.png"))
	assert.Equal(t, "my_logo.png", SecureFilename("my logo.png"))

	// Path components are stripped, on either separator convention.
	assert.Equal(t, "passwd", SecureFilename("../../etc/passwd"))
	assert.Equal(t, "evil.png", SecureFilename("C:\\Users\\x\\evil.png"))

	// Degenerate names fall back to something safe.
	assert.Equal(t, "file", SecureFilename(".."))
	assert.Equal(t, "file", SecureFilename("..."))
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{CATEGORY_ABOUT_US, CATEGORY_OPPORTUNITY, CATEGORY_PRIVACY_POLICY, CATEGORY_WORKSHOP_INFO} {
		assert.True(t, ValidCategory(category))
	}

	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("About_Us"))
	assert.False(t, ValidCategory("misc"))
}

func TestValidMode(t *testing.T) {
	assert.True(t, ValidMode(MODE_ONLINE))
	assert.True(t, ValidMode(MODE_PHYSICAL))
	assert.False(t, ValidMode("online"))
	assert.False(t, ValidMode("Hybrid"))
}
