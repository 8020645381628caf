package feed

import (
	"bytes"
	"encoding/xml"
	"time"
)

// Metadata is the feed-level envelope shared by both output formats.
// RSSURL and AtomURL are both advertised regardless of which format is
// being emitted.
type Metadata struct {
	Title       string
	Description string
	Link        string
	Language    string
	ImageURL    string
	FaviconURL  string
	Copyright   string
	Updated     time.Time
	Generator   string
	AuthorName  string
	AuthorEmail string
	RSSURL      string
	AtomURL     string
}

// Entry is one rendered feed item, format-agnostic.
type Entry struct {
	Title       string
	ID          string
	Link        string
	Description string
	Content     string
	Date        time.Time
	Categories  []string
}

// Document accumulates ordered entries under one metadata envelope and
// serializes them to RSS 2.0 or Atom 1.0. It is owned by a single
// serialization pass and discarded after producing XML text.
type Document struct {
	Metadata
	Entries []Entry
}

func NewDocument(meta Metadata) *Document {
	return &Document{Metadata: meta}
}

func (d *Document) AddEntry(entry Entry) {
	d.Entries = append(d.Entries, entry)
}

func writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
