package util

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
)

// SanitizeFilename turns a book title into a safe output file name.
// Invalid characters are removed, inner whitespace normalized, and
// surrounding spaces and dots trimmed. An empty result becomes
// "untitled" so the output path is never blank.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = whitespaceChars.ReplaceAllString(name, " ")
	name = strings.Trim(strings.TrimSpace(name), ".")

	if name == "" {
		return "untitled"
	}
	return name
}
