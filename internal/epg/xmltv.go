// SPDX-License-Identifier: MIT

// Package epg reads, orders and writes XMLTV guide documents.
package epg

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBytes bounds the decompressed size of a source document.
const DefaultMaxBytes int64 = 1 << 30

// ErrDocumentTooLarge is returned when a source exceeds the configured limit.
var ErrDocumentTooLarge = errors.New("xmltv document exceeds size limit")

// ErrNotXMLTV is returned when the root element is not <tv>.
var ErrNotXMLTV = errors.New("document root is not <tv>")

// ReadXMLTV decodes a guide from r. Gzip-compressed input is detected by its magic
// bytes and decompressed transparently. Children of the root other than channel
// and programme are skipped.
func ReadXMLTV(r io.Reader, maxBytes int64) (*TV, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	br := bufio.NewReader(r)
	var src io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() { _ = zr.Close() }()
		src = zr
	}

	dec := xml.NewDecoder(&limitReader{r: src, n: maxBytes})
	dec.Strict = true
	// No custom entities: only the predefined XML ones are expanded.
	dec.Entity = make(map[string]string)
	dec.CharsetReader = charset.NewReaderLabel

	tv, err := decodeTV(dec)
	if err != nil {
		return nil, fmt.Errorf("decode xmltv: %w", err)
	}
	return tv, nil
}

func decodeTV(dec *xml.Decoder) (*TV, error) {
	var tv *TV
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if tv == nil {
			if se.Name.Local != "tv" {
				return nil, fmt.Errorf("%w: <%s>", ErrNotXMLTV, se.Name.Local)
			}
			tv = &TV{XMLName: se.Name, Attrs: se.Attr}
			continue
		}

		switch se.Name.Local {
		case "channel":
			var ch Channel
			if err := dec.DecodeElement(&ch, &se); err != nil {
				return nil, fmt.Errorf("channel %d: %w", len(tv.Channels)+1, err)
			}
			tv.Channels = append(tv.Channels, ch)
		case "programme":
			var p Programme
			if err := dec.DecodeElement(&p, &se); err != nil {
				return nil, fmt.Errorf("programme %d: %w", len(tv.Programmes)+1, err)
			}
			tv.Programmes = append(tv.Programmes, p)
		default:
			if err := dec.Skip(); err != nil {
				return nil, err
			}
		}
	}

	if tv == nil {
		return nil, fmt.Errorf("%w: empty document", ErrNotXMLTV)
	}
	return tv, nil
}

// WriteXMLTV encodes tv as an indented UTF-8 document.
func WriteXMLTV(w io.Writer, tv *TV) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	out := *tv
	out.XMLName = xml.Name{Local: "tv"}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode xmltv: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// limitReader is io.LimitReader with an explicit error instead of a silent EOF, so a
// truncated document is not mistaken for a syntax error.
type limitReader struct {
	r io.Reader
	n int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		// Allow a clean EOF exactly at the limit.
		var one [1]byte
		if n, _ := l.r.Read(one[:]); n == 0 {
			return 0, io.EOF
		}
		return 0, ErrDocumentTooLarge
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	return n, err
}
