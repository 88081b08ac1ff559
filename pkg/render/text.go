package render

import (
	"regexp"
	"strings"
)

// sgrRe matches ANSI SGR (color/style) escape sequences.
var sgrRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color and style escape sequences.
func StripANSI(s string) string {
	return sgrRe.ReplaceAllString(s, "")
}

// markdownMessage prepares a message for a markdown table cell.
func markdownMessage(s string) string {
	return StripANSI(strings.ReplaceAll(s, "\n", "<br />"))
}

// plainMessage flattens a message onto one plain-text line.
func plainMessage(s string) string {
	return StripANSI(strings.ReplaceAll(s, "\n", " "))
}
