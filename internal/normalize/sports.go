// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultSportsKeywords are the league and sport names that mark a programme as a
// sporting event.
var DefaultSportsKeywords = []string{
	"NFL", "MLB", "NBA", "NHL", "NCAA", "Soccer", "Football", "Baseball",
	"Basketball", "Hockey", "MLS", "WNBA", "NASCAR", "UFC", "Boxing", "Golf",
	"Tennis", "Rugby", "Cricket",
}

// Connectors of a rendered matchup.
const (
	ConnectorVersus = "vs"
	ConnectorAt     = "at"
)

// Matchup names the two parties of a sporting event. A matchup with an empty
// Connector is the degraded form and renders as PartyA alone.
type Matchup struct {
	PartyA    string
	PartyB    string
	Connector string
}

// String renders "<A> <connector> <B>".
func (m Matchup) String() string {
	if m.Connector == "" {
		return m.PartyA
	}
	return strings.TrimSpace(m.PartyA + " " + m.Connector + " " + m.PartyB)
}

// IsZero reports whether nothing could be extracted.
func (m Matchup) IsZero() bool {
	return m.String() == ""
}

var (
	connectorPattern = regexp.MustCompile(`(?i)(.+?)\s+(vs\.?|v\.?|at)\s+(.+)`)
	capitalizedRun   = regexp.MustCompile(`[A-Z][\w&.'\-]*(?:\s+[A-Z][\w&.'\-]*)*`)
)

// labelPrefix matches "NFL Football: Patriots". The label ends in a letter and the
// colon is followed by whitespace, so "7:30 Celtics" is left alone.
var labelPrefix = regexp.MustCompile(`^(.*?\pL):\s+(.+)$`)

// defaultDetector backs the package-level ExtractMatchup.
var defaultDetector = mustDetector(DefaultSportsKeywords)

func mustDetector(keywords []string) *SportsDetector {
	d, err := NewSportsDetector(keywords)
	if err != nil {
		panic(err)
	}
	return d
}

// SportsDetector classifies programmes as sporting events by keyword. It is
// immutable after construction and safe for concurrent use.
type SportsDetector struct {
	keywords *regexp.Regexp
}

// NewSportsDetector compiles a detector for the given keywords, matched
// case-insensitively anywhere in the text.
func NewSportsDetector(keywords []string) (*SportsDetector, error) {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) == 0 {
		return nil, errors.New("sports detector: no keywords")
	}
	re, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, err
	}
	return &SportsDetector{keywords: re}, nil
}

// Detect checks title, subtitle and description in that order and stops at the
// first field that contains a keyword.
func (d *SportsDetector) Detect(title, subtitle, desc string) bool {
	for _, field := range []string{title, subtitle, desc} {
		if field != "" && d.keywords.MatchString(field) {
			return true
		}
	}
	return false
}

// matchupStep tries to derive a matchup from the raw fields.
type matchupStep func(d *SportsDetector, title, subtitle, desc string) (Matchup, bool)

var matchupSteps = []matchupStep{
	connectorMatchup,
	capitalizedMatchup,
	titleMatchup,
}

// ExtractMatchup derives the two-party label of a sporting event using the default
// keywords to recognise league labels.
func ExtractMatchup(title, subtitle, desc string) Matchup {
	return defaultDetector.ExtractMatchup(title, subtitle, desc)
}

// ExtractMatchup derives the two-party label of a sporting event. Subtitle,
// description and title are searched for an explicit "A vs B" / "A at B"; failing
// that the first two capitalized runs of the title are paired; failing that the
// sanitized title stands in alone. A league label such as "NFL Football:" is
// dropped from the left party when it contains one of d's keywords.
func (d *SportsDetector) ExtractMatchup(title, subtitle, desc string) Matchup {
	for _, step := range matchupSteps {
		if m, ok := step(d, title, subtitle, desc); ok {
			return m
		}
	}
	return Matchup{}
}

func connectorMatchup(d *SportsDetector, title, subtitle, desc string) (Matchup, bool) {
	for _, field := range []string{subtitle, desc, title} {
		if m, ok := d.matchConnector(field); ok {
			return m, true
		}
	}
	return Matchup{}, false
}

func (d *SportsDetector) matchConnector(field string) (Matchup, bool) {
	field = StripBrackets(field)
	if field == "" {
		return Matchup{}, false
	}
	m := connectorPattern.FindStringSubmatch(field)
	if m == nil {
		return Matchup{}, false
	}
	left := d.dropLabel(m[1])
	right := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[3]), "."))
	if left == "" || right == "" {
		return Matchup{}, false
	}
	connector := ConnectorVersus
	if strings.HasPrefix(strings.ToLower(m[2]), "at") {
		connector = ConnectorAt
	}
	return Matchup{PartyA: left, PartyB: right, Connector: connector}, true
}

func (d *SportsDetector) dropLabel(s string) string {
	s = strings.TrimSpace(s)
	if m := labelPrefix.FindStringSubmatch(s); m != nil && d.keywords.MatchString(m[1]) {
		return strings.TrimSpace(m[2])
	}
	return s
}

func capitalizedMatchup(_ *SportsDetector, title, _, _ string) (Matchup, bool) {
	runs := capitalizedRun.FindAllString(Sanitize(title), 2)
	if len(runs) < 2 {
		return Matchup{}, false
	}
	return Matchup{
		PartyA:    strings.TrimSpace(runs[0]),
		PartyB:    strings.TrimSpace(runs[1]),
		Connector: ConnectorVersus,
	}, true
}

func titleMatchup(_ *SportsDetector, title, _, _ string) (Matchup, bool) {
	t := Sanitize(title)
	if t == "" {
		return Matchup{}, false
	}
	return Matchup{PartyA: t}, true
}
