// SPDX-License-Identifier: MIT

package epg

import (
	"encoding/xml"
)

// TV is the root of an XMLTV document. Root attributes (generator-info-name,
// source-info-url, ...) are carried through untouched.
type TV struct {
	XMLName    xml.Name    `xml:"tv"`
	Attrs      []xml.Attr  `xml:",any,attr"`
	Channels   []Channel   `xml:"channel"`
	Programmes []Programme `xml:"programme"`
}

// Channel is a <channel> element. Icons and URLs pass through unchanged.
type Channel struct {
	ID           string `xml:"id,attr"`
	DisplayNames []Text `xml:"display-name"`
	Icons        []Icon `xml:"icon,omitempty"`
	URLs         []Text `xml:"url,omitempty"`
}

// Icon is a channel <icon> element.
type Icon struct {
	Src    string `xml:"src,attr"`
	Width  string `xml:"width,attr,omitempty"`
	Height string `xml:"height,attr,omitempty"`
}

// Programme holds the fields the normaliser reads. Children not listed here are
// dropped on decode.
type Programme struct {
	Start       string       `xml:"start,attr"`
	Stop        string       `xml:"stop,attr,omitempty"`
	Channel     string       `xml:"channel,attr"`
	Titles      []Text       `xml:"title"`
	SubTitles   []Text       `xml:"sub-title,omitempty"`
	Descs       []Text       `xml:"desc"`
	Date        *string      `xml:"date,omitempty"`
	EpisodeNums []EpisodeNum `xml:"episode-num,omitempty"`
}

// Text is a character-data element with an optional lang attribute, such as
// <title> or <display-name>.
type Text struct {
	// Lang contains the language code (optional).
	Lang string `xml:"lang,attr,omitempty"`
	// Value is the character data of the element.
	Value string `xml:",chardata"`
}

// EpisodeNum is an <episode-num> element; System names its encoding
// (xmltv_ns, onscreen, ...).
type EpisodeNum struct {
	System string `xml:"system,attr,omitempty"`
	Value  string `xml:",chardata"`
}

// FirstTitle returns the first title element, or nil when the programme has none.
func (p Programme) FirstTitle() *string {
	if len(p.Titles) == 0 {
		return nil
	}
	v := p.Titles[0].Value
	return &v
}

// FirstSubTitle returns the first sub-title value or "".
func (p Programme) FirstSubTitle() string { return first(p.SubTitles) }

// FirstDesc returns the first desc value or "".
func (p Programme) FirstDesc() string { return first(p.Descs) }

func first(ts []Text) string {
	if len(ts) == 0 {
		return ""
	}
	return ts[0].Value
}

// NewProgramme builds the minimal output record for a normalised programme:
// schedule attributes, one title and one description.
func NewProgramme(src Programme, title, desc string) Programme {
	return Programme{
		Start:   src.Start,
		Stop:    src.Stop,
		Channel: src.Channel,
		Titles:  []Text{{Value: title}},
		Descs:   []Text{{Value: desc}},
	}
}
