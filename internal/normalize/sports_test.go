// SPDX-License-Identifier: MIT

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportsDetector(t *testing.T) {
	d, err := NewSportsDetector(DefaultSportsKeywords)
	require.NoError(t, err)

	tests := []struct {
		name                  string
		title, subtitle, desc string
		want                  bool
	}{
		{name: "league in title", title: "MLB Baseball", want: true},
		{name: "sport in subtitle", title: "Sunday Night", subtitle: "College Football", want: true},
		{name: "league in description", title: "Finals", desc: "Game 7 of the nba finals.", want: true},
		{name: "no keywords", title: "The Office", subtitle: "Diversity Day", desc: "Michael holds a seminar.", want: false},
		{name: "empty", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.title, tt.subtitle, tt.desc))
		})
	}
}

func TestSportsDetectorCustomKeywords(t *testing.T) {
	d, err := NewSportsDetector([]string{" Curling ", "F1"})
	require.NoError(t, err)
	assert.True(t, d.Detect("World Curling Championship", "", ""))
	assert.False(t, d.Detect("NFL Football", "", ""))

	_, err = NewSportsDetector([]string{"", "  "})
	assert.Error(t, err)
}

func TestExtractMatchup(t *testing.T) {
	tests := []struct {
		name                  string
		title, subtitle, desc string
		want                  Matchup
		rendered              string
	}{
		{
			name:     "at in subtitle",
			title:    "MLB Baseball",
			subtitle: "Boston Red Sox at New York Yankees",
			want:     Matchup{PartyA: "Boston Red Sox", PartyB: "New York Yankees", Connector: ConnectorAt},
			rendered: "Boston Red Sox at New York Yankees",
		},
		{
			name:     "labelled title with annotation",
			title:    "Live NFL Football: Patriots vs Jets (Replay)",
			want:     Matchup{PartyA: "Patriots", PartyB: "Jets", Connector: ConnectorVersus},
			rendered: "Patriots vs Jets",
		},
		{
			name:     "vs with period",
			title:    "NBA Basketball",
			subtitle: "Lakers vs. Celtics",
			want:     Matchup{PartyA: "Lakers", PartyB: "Celtics", Connector: ConnectorVersus},
			rendered: "Lakers vs Celtics",
		},
		{
			name:     "v in description",
			title:    "Premier League Soccer",
			desc:     "Arsenal v Chelsea",
			want:     Matchup{PartyA: "Arsenal", PartyB: "Chelsea", Connector: ConnectorVersus},
			rendered: "Arsenal vs Chelsea",
		},
		{
			name:     "subtitle beats description",
			title:    "MLB Baseball",
			subtitle: "Red Sox AT Yankees",
			desc:     "Mets vs Braves",
			want:     Matchup{PartyA: "Red Sox", PartyB: "Yankees", Connector: ConnectorAt},
			rendered: "Red Sox at Yankees",
		},
		{
			name:     "time of day is not a label",
			title:    "NBA Basketball",
			subtitle: "7:30 Celtics vs. Lakers",
			want:     Matchup{PartyA: "7:30 Celtics", PartyB: "Lakers", Connector: ConnectorVersus},
			rendered: "7:30 Celtics vs Lakers",
		},
		{
			name:     "label without keyword kept",
			title:    "NCAA Basketball",
			subtitle: "Final Four: Duke vs UNC",
			want:     Matchup{PartyA: "Final Four: Duke", PartyB: "UNC", Connector: ConnectorVersus},
			rendered: "Final Four: Duke vs UNC",
		},
		{
			name:     "trailing period dropped from second party",
			title:    "NHL Hockey",
			subtitle: "Bruins at Rangers.",
			want:     Matchup{PartyA: "Bruins", PartyB: "Rangers", Connector: ConnectorAt},
			rendered: "Bruins at Rangers",
		},
		{
			name:     "capitalized runs",
			title:    "Bruins and Rangers",
			want:     Matchup{PartyA: "Bruins", PartyB: "Rangers", Connector: ConnectorVersus},
			rendered: "Bruins vs Rangers",
		},
		{
			name:     "degrades to title",
			title:    "Boxing (Live)",
			want:     Matchup{PartyA: "Boxing"},
			rendered: "Boxing",
		},
		{
			name: "nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMatchup(tt.title, tt.subtitle, tt.desc)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rendered, got.String())
		})
	}
}

func TestExtractMatchupCustomLabel(t *testing.T) {
	d, err := NewSportsDetector([]string{"Curling"})
	require.NoError(t, err)

	m := d.ExtractMatchup("World Curling", "Curling Night: Canada vs Sweden", "")
	assert.Equal(t, "Canada vs Sweden", m.String())

	m = d.ExtractMatchup("World Curling", "NFL Football: Canada vs Sweden", "")
	assert.Equal(t, "NFL Football: Canada vs Sweden", m.String())
}

func TestMatchupIsZero(t *testing.T) {
	assert.True(t, Matchup{}.IsZero())
	assert.False(t, Matchup{PartyA: "Golf"}.IsZero())
}
