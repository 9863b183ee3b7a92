// SPDX-License-Identifier: MIT

package epg

import (
	"fmt"
	"strings"
)

// ChannelEntry is one allow-list row: a channel id and the display name to publish.
// An empty Name leaves the source display names untouched.
type ChannelEntry struct {
	ID   string
	Name string
}

// ChannelTable is the immutable allow-list. Its order is the channel sort order.
type ChannelTable struct {
	ids   []string
	pos   map[string]int
	names map[string]string
}

// NewChannelTable builds a table from entries in preference order.
func NewChannelTable(entries []ChannelEntry) (*ChannelTable, error) {
	t := &ChannelTable{
		ids:   make([]string, 0, len(entries)),
		pos:   make(map[string]int, len(entries)),
		names: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("channel table: entry %d has an empty id", len(t.ids)+1)
		}
		if _, dup := t.pos[id]; dup {
			return nil, fmt.Errorf("channel table: duplicate id %q", id)
		}
		t.pos[id] = len(t.ids)
		t.ids = append(t.ids, id)
		if name := strings.TrimSpace(e.Name); name != "" {
			t.names[id] = name
		}
	}
	return t, nil
}

// Len returns the number of allowed channels.
func (t *ChannelTable) Len() int { return len(t.ids) }

// Allowed reports whether id is on the allow-list.
func (t *ChannelTable) Allowed(id string) bool {
	_, ok := t.pos[id]
	return ok
}

// Rank returns the sort position of id. Unknown ids share the rank after the last
// known channel.
func (t *ChannelTable) Rank(id string) int {
	if p, ok := t.pos[id]; ok {
		return p
	}
	return len(t.ids)
}

// DisplayName returns the mapped display name for id.
func (t *ChannelTable) DisplayName(id string) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// ApplyDisplayName returns a copy of ch whose display names all carry the mapped
// value. A channel without display names gets exactly one.
func (t *ChannelTable) ApplyDisplayName(ch Channel) Channel {
	name, ok := t.names[ch.ID]
	if !ok {
		return ch
	}
	if len(ch.DisplayNames) == 0 {
		ch.DisplayNames = []Text{{Value: name}}
		return ch
	}
	names := make([]Text, len(ch.DisplayNames))
	for i, dn := range ch.DisplayNames {
		names[i] = Text{Lang: dn.Lang, Value: name}
	}
	ch.DisplayNames = names
	return ch
}
