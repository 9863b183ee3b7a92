// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SystemXMLTVNS is the episode-num system attribute of the dotted, zero-based
// "season.episode.part" convention.
const SystemXMLTVNS = "xmltv_ns"

// EpisodeToken is one raw episode-num value and its optional system hint.
type EpisodeToken struct {
	System string
	Value  string
}

// EpisodeCode is a season/episode pair, both starting at 1.
type EpisodeCode struct {
	Season  int
	Episode int
}

// String renders the code as S<season>E<episode> without padding.
func (c EpisodeCode) String() string {
	return fmt.Sprintf("S%dE%d", c.Season, c.Episode)
}

// episodeRule reports whether a single token matches one encoding.
type episodeRule struct {
	Name  string
	Match func(EpisodeToken) (EpisodeCode, bool)
}

var (
	separatorEpisode = regexp.MustCompile(`[sS]?(\d+)[eExX×](\d+)`)
	letterEpisode    = regexp.MustCompile(`[sS](\d+)\D*[eE](\d+)`)
	dottedSplit      = regexp.MustCompile(`[.\-]`)
	dottedPair       = regexp.MustCompile(`\d+\s*(?:/\s*\d+)?\s*[.\-]\s*\d+`)
)

// episodeRules are tried in order against each token; the first hit wins.
var episodeRules = []episodeRule{
	{Name: "separator", Match: matchSeparator},
	{Name: "dotted", Match: matchDotted},
	{Name: "letters", Match: matchLetters},
}

// ParseEpisode returns the episode code of the first token that any rule accepts.
// Later tokens are not consulted once a match is found.
func ParseEpisode(tokens []EpisodeToken) (EpisodeCode, bool) {
	for _, tok := range tokens {
		tok.Value = strings.TrimSpace(tok.Value)
		if tok.Value == "" {
			continue
		}
		if code, ok := matchToken(tok); ok {
			return code, true
		}
	}
	return EpisodeCode{}, false
}

func matchToken(tok EpisodeToken) (EpisodeCode, bool) {
	for _, rule := range episodeRules {
		if code, ok := rule.Match(tok); ok {
			return code, true
		}
	}
	return EpisodeCode{}, false
}

func matchSeparator(tok EpisodeToken) (EpisodeCode, bool) {
	m := separatorEpisode.FindStringSubmatch(tok.Value)
	if m == nil {
		return EpisodeCode{}, false
	}
	return codeFromDigits(m[1], m[2], 0)
}

// matchDotted handles "0.8.", "1.8.0/1" and "0/3 . 4/10 ." where the numbering is
// zero-based and a "/total" suffix may follow each group.
func matchDotted(tok EpisodeToken) (EpisodeCode, bool) {
	if !strings.EqualFold(tok.System, SystemXMLTVNS) && !dottedPair.MatchString(tok.Value) {
		return EpisodeCode{}, false
	}

	parts := make([]string, 0, 3)
	for _, p := range dottedSplit.Split(tok.Value, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return EpisodeCode{}, false
	}
	return codeFromDigits(beforeTotal(parts[0]), beforeTotal(parts[1]), 1)
}

func matchLetters(tok EpisodeToken) (EpisodeCode, bool) {
	m := letterEpisode.FindStringSubmatch(tok.Value)
	if m == nil {
		return EpisodeCode{}, false
	}
	return codeFromDigits(m[1], m[2], 0)
}

func beforeTotal(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func codeFromDigits(season, episode string, offset int) (EpisodeCode, bool) {
	if !isDigits(season) || !isDigits(episode) {
		return EpisodeCode{}, false
	}
	s, err := strconv.Atoi(season)
	if err != nil {
		return EpisodeCode{}, false
	}
	e, err := strconv.Atoi(episode)
	if err != nil {
		return EpisodeCode{}, false
	}
	code := EpisodeCode{Season: s + offset, Episode: e + offset}
	if code.Season < 1 || code.Episode < 1 {
		return EpisodeCode{}, false
	}
	return code, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
