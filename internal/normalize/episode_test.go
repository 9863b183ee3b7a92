// SPDX-License-Identifier: MIT

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEpisode(t *testing.T) {
	tests := []struct {
		name   string
		tokens []EpisodeToken
		want   EpisodeCode
		found  bool
	}{
		{name: "onscreen padded", tokens: []EpisodeToken{{Value: "S01E09"}}, want: EpisodeCode{1, 9}, found: true},
		{name: "lowercase", tokens: []EpisodeToken{{System: "onscreen", Value: "s2e10"}}, want: EpisodeCode{2, 10}, found: true},
		{name: "x separator", tokens: []EpisodeToken{{Value: "1x09"}}, want: EpisodeCode{1, 9}, found: true},
		{name: "upper X separator", tokens: []EpisodeToken{{Value: "3X04"}}, want: EpisodeCode{3, 4}, found: true},
		{name: "multiplication sign", tokens: []EpisodeToken{{Value: "2×05"}}, want: EpisodeCode{2, 5}, found: true},
		{name: "xmltv_ns zero based", tokens: []EpisodeToken{{System: "xmltv_ns", Value: "0.8."}}, want: EpisodeCode{1, 9}, found: true},
		{name: "xmltv_ns with part", tokens: []EpisodeToken{{System: "xmltv_ns", Value: "1.8.0/1"}}, want: EpisodeCode{2, 9}, found: true},
		{name: "xmltv_ns with totals", tokens: []EpisodeToken{{System: "xmltv_ns", Value: "0/3 . 4/10 . "}}, want: EpisodeCode{1, 5}, found: true},
		{name: "dotted without hint", tokens: []EpisodeToken{{Value: "4.11"}}, want: EpisodeCode{5, 12}, found: true},
		{name: "hyphenated without hint", tokens: []EpisodeToken{{Value: "2-6"}}, want: EpisodeCode{3, 7}, found: true},
		{name: "letters with gap", tokens: []EpisodeToken{{Value: "S2 - E5"}}, want: EpisodeCode{2, 5}, found: true},
		{name: "separator beats dotted", tokens: []EpisodeToken{{System: "xmltv_ns", Value: "S03E04"}}, want: EpisodeCode{3, 4}, found: true},
		{name: "episode only", tokens: []EpisodeToken{{System: "xmltv_ns", Value: ".8."}}},
		{name: "program id", tokens: []EpisodeToken{{System: "dd_progid", Value: "EP01234567.0045"}}},
		{name: "zero season", tokens: []EpisodeToken{{Value: "S00E00"}}},
		{name: "blank", tokens: []EpisodeToken{{Value: "   "}}},
		{name: "none", tokens: nil},
		{
			name: "first matching token wins",
			tokens: []EpisodeToken{
				{System: "dd_progid", Value: "EP01234567.0045"},
				{System: "xmltv_ns", Value: "0.8."},
				{System: "onscreen", Value: "S05E05"},
			},
			want:  EpisodeCode{1, 9},
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEpisode(tt.tokens)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpisodeCodeString(t *testing.T) {
	assert.Equal(t, "S1E9", EpisodeCode{Season: 1, Episode: 9}.String())
	assert.Equal(t, "S12E104", EpisodeCode{Season: 12, Episode: 104}.String())
}

func TestEpisodeRuleOrder(t *testing.T) {
	names := make([]string, 0, len(episodeRules))
	for _, r := range episodeRules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"separator", "dotted", "letters"}, names)
}
