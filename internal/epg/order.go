// SPDX-License-Identifier: MIT

package epg

import (
	"cmp"
	"regexp"
	"slices"
	"time"
)

var (
	startFull    = regexp.MustCompile(`^\d{14}`)
	startCompact = regexp.MustCompile(`^\d{8}`)
)

// startKey orders programmes within a channel. Parsed timestamps sort before
// unparsed ones; unparsed ones compare by raw text.
type startKey struct {
	parsed bool
	at     time.Time
	raw    string
}

func parseStartKey(raw string) startKey {
	if m := startFull.FindString(raw); m != "" {
		if t, err := time.Parse("20060102150405", m); err == nil {
			return startKey{parsed: true, at: t, raw: raw}
		}
	}
	if m := startCompact.FindString(raw); m != "" {
		if t, err := time.Parse("20060102", m); err == nil {
			return startKey{parsed: true, at: t, raw: raw}
		}
	}
	return startKey{raw: raw}
}

func (k startKey) compare(o startKey) int {
	switch {
	case k.parsed && o.parsed:
		return k.at.Compare(o.at)
	case k.parsed:
		return -1
	case o.parsed:
		return 1
	}
	return cmp.Compare(k.raw, o.raw)
}

// SortChannels orders channels by their allow-list position. Channels not on the
// list keep their relative order after all listed ones.
func SortChannels(channels []Channel, table *ChannelTable) {
	slices.SortStableFunc(channels, func(a, b Channel) int {
		return cmp.Compare(table.Rank(a.ID), table.Rank(b.ID))
	})
}

// SortProgrammes orders programmes by channel position, then start time. The sort
// is stable, so sorting a sorted slice leaves it unchanged.
func SortProgrammes(progs []Programme, table *ChannelTable) {
	type keyed struct {
		rank  int
		start startKey
		p     Programme
	}
	ks := make([]keyed, len(progs))
	for i, p := range progs {
		ks[i] = keyed{rank: table.Rank(p.Channel), start: parseStartKey(p.Start), p: p}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return a.start.compare(b.start)
	})
	for i := range ks {
		progs[i] = ks[i].p
	}
}

// Order sorts the channels and programmes of tv in place.
func Order(tv *TV, table *ChannelTable) {
	SortChannels(tv.Channels, table)
	SortProgrammes(tv.Programmes, table)
}
