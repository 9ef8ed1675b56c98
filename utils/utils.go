package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// We have constants here rather than in the packages you might expect to avoid import loops.
const CATEGORY_ABOUT_US = "about_us"
const CATEGORY_OPPORTUNITY = "opportunity"
const CATEGORY_PRIVACY_POLICY = "privacy_policy"
const CATEGORY_WORKSHOP_INFO = "workshop_info"

const MODE_ONLINE = "Online"
const MODE_PHYSICAL = "Physical"

const FLASH_SUCCESS = "success"
const FLASH_DANGER = "danger"

// ValidCategory checks a post category against the closed set used by the
// public content pages.
func ValidCategory(category string) bool {
	switch category {
	case CATEGORY_ABOUT_US, CATEGORY_OPPORTUNITY, CATEGORY_PRIVACY_POLICY, CATEGORY_WORKSHOP_INFO:
		return true
	}
	return false
}

// ValidMode checks a workshop delivery mode.
func ValidMode(mode string) bool {
	return mode == MODE_ONLINE || mode == MODE_PHYSICAL
}

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedFile checks that a filename has an extension we accept for image
// uploads. The extension is whatever follows the last dot, lower-cased.
func AllowedFile(filename string) bool {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return false
	}

	return allowedExtensions[strings.ToLower(filename[dot+1:])]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename strips any path components and collapses unsafe characters
// so that a client-supplied filename can't traverse out of the upload
// directory.
func SecureFilename(filename string) string {
	// The client may send a full path. We only want the final element; handle
	// both separators since the client OS is unknown.
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)

	filename = unsafeFilenameChars.ReplaceAllString(filename, "_")

	// A name of only dots or underscores is useless, and "." / ".." are
	// dangerous.
	if strings.Trim(filename, "._") == "" {
		return "file"
	}

	return filename
}
