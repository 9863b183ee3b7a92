// SPDX-License-Identifier: MIT

// Package normalize turns the loosely populated fields of an XMLTV programme into
// one canonical title and one canonical description.
package normalize

import (
	"regexp"
	"strings"

	unorm "golang.org/x/text/unicode/norm"
)

var (
	// (?s): annotations regularly span line breaks in long descriptions.
	bracketSpan = regexp.MustCompile(`(?s)[\(\[\{].*?[\)\]\}]`)
	markerWord  = regexp.MustCompile(`(?i)\b(Live|New|Repeat|Encore|Premiere)\b`)
	space       = regexp.MustCompile(`\s+`)
)

// Sanitize removes bracketed annotations and broadcast-status markers
// (Live, New, Repeat, Encore, Premiere) and collapses whitespace.
func Sanitize(s string) string {
	s = Text(s)
	if s == "" {
		return ""
	}
	s = bracketSpan.ReplaceAllString(s, "")
	s = markerWord.ReplaceAllString(s, "")
	return collapse(s)
}

// StripBrackets removes bracketed annotations only. Status markers are kept
// because they may be part of a proper name ("New York").
func StripBrackets(s string) string {
	s = Text(s)
	if s == "" {
		return ""
	}
	return collapse(bracketSpan.ReplaceAllString(s, ""))
}

// Text returns s in NFC form with surrounding whitespace removed.
func Text(s string) string {
	return strings.TrimSpace(unorm.NFC.String(s))
}

func collapse(s string) string {
	return strings.TrimSpace(space.ReplaceAllString(s, " "))
}
