// SPDX-License-Identifier: MIT

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "plain", in: "The Office", want: "The Office"},
		{name: "live marker and annotation", in: "Live NFL Football: Patriots vs Jets (Replay)", want: "NFL Football: Patriots vs Jets"},
		{name: "all bracket kinds", in: "The Office [HD] {CC} (2005)", want: "The Office"},
		{name: "annotation across lines", in: "A (note\nmore) B", want: "A B"},
		{name: "markers case insensitive", in: "NEW repeat Show encore", want: "Show"},
		{name: "premiere", in: "Series Premiere Night", want: "Series Night"},
		{name: "marker inside word kept", in: "Liver Transplant Newsroom", want: "Liver Transplant Newsroom"},
		{name: "collapse runs", in: "  spaced   out  ", want: "spaced out"},
		{name: "nfc", in: "Café Society", want: "Café Society"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestStripBracketsKeepsMarkers(t *testing.T) {
	assert.Equal(t, "New York Yankees", StripBrackets("New York Yankees (HD)"))
	assert.Equal(t, "Live at Five", StripBrackets("Live at [CC] Five"))
	assert.Equal(t, "", StripBrackets("(only annotation)"))
}
