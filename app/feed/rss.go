package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"
)

// RSS2 serializes the document as an RSS 2.0 channel.
func (d *Document) RSS2() string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	writeElement(&buf, "title", d.Title, 4)
	writeElement(&buf, "link", d.Link, 4)
	writeElement(&buf, "description", d.Description, 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(d.RSSURL)))
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"alternate\" type=\"application/atom+xml\" />\n",
		html.EscapeString(d.AtomURL)))

	writeElement(&buf, "lastBuildDate", d.Updated.Format(time.RFC1123Z), 4)
	writeElement(&buf, "generator", d.Generator, 4)
	writeElement(&buf, "language", d.Language, 4)
	writeElement(&buf, "copyright", d.Copyright, 4)

	if d.ImageURL != "" {
		buf.WriteString("    <image>\n")
		writeElement(&buf, "url", d.ImageURL, 6)
		writeElement(&buf, "title", d.Title, 6)
		writeElement(&buf, "link", d.Link, 6)
		buf.WriteString("    </image>\n")
	}

	for _, entry := range d.Entries {
		d.writeRSSItem(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (d *Document) writeRSSItem(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	if entry.ID != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", isURL(entry.ID)))
		xml.EscapeText(buf, []byte(entry.ID))
		buf.WriteString("</guid>\n")
	}

	writeElement(buf, "title", entry.Title, 6)
	writeElement(buf, "link", entry.Link, 6)
	writeElement(buf, "description", entry.Description, 6)

	if entry.Content != "" && entry.Content != entry.Description {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(entry.Content)
		buf.WriteString("]]></content:encoded>\n")
	}

	writeElement(buf, "pubDate", entry.Date.Format(time.RFC1123Z), 6)
	writeElement(buf, "author", d.rssAuthor(), 6)

	for _, category := range entry.Categories {
		writeElement(buf, "category", category, 6)
	}

	buf.WriteString("    </item>\n")
}

// rssAuthor renders the feed author in the RSS "email (name)" form.
func (d *Document) rssAuthor() string {
	if d.AuthorEmail != "" && d.AuthorName != "" {
		return fmt.Sprintf("%s (%s)", d.AuthorEmail, d.AuthorName)
	}
	if d.AuthorEmail != "" {
		return d.AuthorEmail
	}
	return d.AuthorName
}
