package feed

import (
	"bytes"
	"fmt"
	"html"
	"time"
)

// Atom1 serializes the document as an Atom 1.0 feed.
func (d *Document) Atom1() string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n")

	writeElement(&buf, "id", d.Link, 2)
	writeElement(&buf, "title", d.Title, 2)
	writeElement(&buf, "subtitle", d.Description, 2)
	writeElement(&buf, "updated", d.Updated.Format(time.RFC3339), 2)
	writeElement(&buf, "generator", d.Generator, 2)
	writeElement(&buf, "rights", d.Copyright, 2)
	writeElement(&buf, "icon", d.FaviconURL, 2)
	writeElement(&buf, "logo", d.ImageURL, 2)

	buf.WriteString(fmt.Sprintf("  <link rel=\"alternate\" href=\"%s\"/>\n",
		html.EscapeString(d.Link)))
	buf.WriteString(fmt.Sprintf("  <link rel=\"self\" href=\"%s\" type=\"application/atom+xml\"/>\n",
		html.EscapeString(d.AtomURL)))
	buf.WriteString(fmt.Sprintf("  <link rel=\"alternate\" href=\"%s\" type=\"application/rss+xml\"/>\n",
		html.EscapeString(d.RSSURL)))

	buf.WriteString("  <author>\n")
	writeElement(&buf, "name", d.AuthorName, 4)
	writeElement(&buf, "email", d.AuthorEmail, 4)
	buf.WriteString("  </author>\n")

	for _, entry := range d.Entries {
		d.writeAtomEntry(&buf, entry)
	}

	buf.WriteString("</feed>")

	return buf.String()
}

func (d *Document) writeAtomEntry(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("  <entry>\n")

	writeElement(buf, "id", entry.ID, 4)
	writeElement(buf, "title", entry.Title, 4)
	writeElement(buf, "updated", entry.Date.Format(time.RFC3339), 4)

	if entry.Link != "" {
		buf.WriteString(fmt.Sprintf("    <link rel=\"alternate\" href=\"%s\"/>\n",
			html.EscapeString(entry.Link)))
	}

	if entry.Description != "" {
		buf.WriteString("    <summary type=\"html\">")
		buf.WriteString(html.EscapeString(entry.Description))
		buf.WriteString("</summary>\n")
	}

	if entry.Content != "" {
		buf.WriteString("    <content type=\"html\">")
		buf.WriteString(html.EscapeString(entry.Content))
		buf.WriteString("</content>\n")
	}

	for _, category := range entry.Categories {
		buf.WriteString(fmt.Sprintf("    <category term=\"%s\"/>\n",
			html.EscapeString(category)))
	}

	buf.WriteString("  </entry>\n")
}
