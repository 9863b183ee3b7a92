// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord marks a programme that cannot be normalised because a required
// part is structurally absent. Callers skip the record and continue.
var ErrMalformedRecord = errors.New("malformed programme record")

// Category is the content class a programme was composed under.
type Category string

const (
	CategorySports   Category = "sports"
	CategoryEpisodic Category = "episodic"
	CategoryOther    Category = "other"
)

// Input carries the raw fields of one programme. A nil Title means the source had
// no title element at all, which is different from an empty one.
type Input struct {
	Channel     string
	Start       string
	Title       *string
	Subtitle    string
	Description string
	Episodes    []EpisodeToken
	Date        string
}

// Output is the canonical form of a programme.
type Output struct {
	Channel     string
	Title       string
	Description string
	Category    Category
	Episode     *EpisodeCode
	Date        *Date
}

// Composer builds canonical titles and descriptions. It holds no per-record state.
type Composer struct {
	sports *SportsDetector
}

// NewComposer returns a Composer using the given sports detector.
func NewComposer(sports *SportsDetector) *Composer {
	return &Composer{sports: sports}
}

// Compose normalises one programme. Sporting events take precedence over episode
// codes.
func (c *Composer) Compose(in Input) (Output, error) {
	if strings.TrimSpace(in.Channel) == "" {
		return Output{}, fmt.Errorf("%w: missing channel reference", ErrMalformedRecord)
	}
	if in.Title == nil {
		return Output{}, fmt.Errorf("%w: missing title", ErrMalformedRecord)
	}

	rawTitle := Text(*in.Title)
	subtitle := Text(in.Subtitle)
	desc := Text(in.Description)

	out := Output{Channel: in.Channel}
	if d, ok := ResolveDate(in.Date, in.Start); ok {
		out.Date = &d
	}

	var head string
	if c.sportsMatchup(rawTitle, subtitle, desc, &out) {
		head = out.Title
	} else {
		out.Title = Sanitize(rawTitle)
		head = out.Title
		if code, ok := ParseEpisode(in.Episodes); ok {
			out.Category = CategoryEpisodic
			out.Episode = &code
			head = join(head, " - ", code.String())
		} else {
			out.Category = CategoryOther
		}
	}

	out.Description = head
	if out.Description != "" && !strings.HasSuffix(out.Description, ".") {
		out.Description += "."
	}
	out.Description = join(out.Description, " ", desc)
	if out.Date != nil {
		out.Description = join(out.Description, " ", "("+out.Date.String()+")")
	}
	return out, nil
}

func (c *Composer) sportsMatchup(title, subtitle, desc string, out *Output) bool {
	if c.sports == nil || !c.sports.Detect(title, subtitle, desc) {
		return false
	}
	m := c.sports.ExtractMatchup(title, subtitle, desc)
	if m.IsZero() {
		return false
	}
	out.Title = m.String()
	out.Category = CategorySports
	return true
}

// join concatenates with sep, trimming after the step and dropping sep when either
// side is empty.
func join(a, sep, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return strings.TrimSpace(a + sep + b)
}
