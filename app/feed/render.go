package feed

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Length cap for news titles in the unified feed. Longer content is cut
// and marked with a trailing ellipsis.
const newsTitleLimit = 100

// Renderer turns domain records into format-agnostic feed entries.
// Rendering is dispatched on the closed publication/news variant; the
// unified flag selects the mixed-feed presentation (type-tag prefixes,
// type label paragraph, the "publication"/"news" categories).
type Renderer struct {
	siteURL string
}

func NewRenderer(siteURL string) *Renderer {
	return &Renderer{siteURL: strings.TrimRight(siteURL, "/")}
}

func (r *Renderer) UnifiedEntry(item UnifiedItem, newsIndex int) Entry {
	if item.Kind == KindPublication {
		return r.PublicationEntry(*item.Publication, true)
	}
	return r.NewsEntry(*item.News, newsIndex, true)
}

func (r *Renderer) PublicationEntry(pub Publication, unified bool) Entry {
	title := pub.Title
	if unified {
		title = "[Publication] " + pub.Title
	}

	var desc strings.Builder
	if unified {
		desc.WriteString("<p><strong>Type:</strong> Publication</p>")
	}

	// Unified mode joins the split author names; the per-type feed
	// carries the author field as written in the source.
	authors := pub.AuthorRaw
	if unified {
		names := lo.Map(pub.Authors, func(a Author, _ int) string { return a.Name })
		authors = strings.Join(names, ", ")
	}
	if authors == "" {
		authors = "Unknown"
	}
	desc.WriteString(fmt.Sprintf("<p><strong>Authors:</strong> %s</p>", authors))

	if pub.Abstract != "" {
		desc.WriteString(fmt.Sprintf("<p>%s</p>", pub.Abstract))
	}

	// Journal takes precedence; conference is only shown without one.
	if pub.Journal != "" {
		desc.WriteString(fmt.Sprintf("<p><strong>Journal:</strong> %s</p>", pub.Journal))
	} else if pub.Conference != "" {
		desc.WriteString(fmt.Sprintf("<p><strong>Conference:</strong> %s</p>", pub.Conference))
	}

	if pub.DOI != "" {
		desc.WriteString(fmt.Sprintf(`<p><strong>DOI:</strong> <a href="https://doi.org/%s">%s</a></p>`, pub.DOI, pub.DOI))
	}

	categories := pub.Keywords
	if unified {
		categories = append([]string{"publication"}, pub.Keywords...)
	}

	html := desc.String()
	return Entry{
		Title:       title,
		ID:          pub.ID,
		Link:        fmt.Sprintf("%s/publications/#%s", r.siteURL, pub.ID),
		Description: html,
		Content:     html,
		Date:        pub.EffectiveDate(),
		Categories:  categories,
	}
}

func (r *Renderer) NewsEntry(item NewsItem, index int, unified bool) Entry {
	entry := Entry{
		// One uniform absolute id scheme across all feeds so readers
		// deduplicate entries consistently.
		ID:   fmt.Sprintf("%s/news/#news-%d", r.siteURL, index),
		Link: r.newsLink(item),
		Date: item.EffectiveDate(),
	}

	if unified {
		entry.Title = "[News] " + truncateContent(item.Content)
		html := fmt.Sprintf("<p><strong>Type:</strong> News</p><p>%s</p>", item.Content)
		entry.Description = html
		entry.Content = html
		entry.Categories = []string{"news"}
	} else {
		entry.Title = item.Content
		entry.Description = item.Content
		entry.Content = item.Content
	}

	return entry
}

func (r *Renderer) newsLink(item NewsItem) string {
	if item.URL != "" {
		return item.URL
	}
	return r.siteURL + "/news/"
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= newsTitleLimit {
		return content
	}
	return string(runes[:newsTitleLimit]) + "..."
}
