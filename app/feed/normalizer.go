package feed

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/prismlab/prism/app/bibtex"
)

// Normalizer maps parsed bibliography entries into Publications,
// applying defaults for absent fields. Normalization never fails: a
// missing title, year or month falls back to a documented default.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Run(entries []bibtex.Entry) []Publication {
	return lo.Map(entries, func(entry bibtex.Entry, _ int) Publication {
		return n.normalizeEntry(entry)
	})
}

func (n *Normalizer) normalizeEntry(entry bibtex.Entry) Publication {
	pub := Publication{
		ID:         entry.Key,
		Title:      entry.Fields["title"],
		AuthorRaw:  entry.Fields["author"],
		Journal:    entry.Fields["journal"],
		Conference: entry.Fields["booktitle"],
		DOI:        entry.Fields["doi"],
		Abstract:   entry.Fields["abstract"],
		Selected:   entry.Fields["selected"] == "true",
	}

	if pub.Title == "" {
		pub.Title = "Untitled"
	}

	year, err := strconv.Atoi(strings.TrimSpace(entry.Fields["year"]))
	if err != nil {
		year = time.Now().Year()
		if entry.Fields["year"] != "" {
			slog.Debug("Non-numeric year, using current year", "key", entry.Key, "year", entry.Fields["year"])
		}
	}
	pub.Year = year

	pub.Month = strings.ToLower(strings.TrimSpace(entry.Fields["month"]))
	if pub.Month == "" {
		pub.Month = "jan"
	}

	pub.Authors = n.splitAuthors(pub.AuthorRaw)
	pub.Keywords = n.splitKeywords(entry.Fields["keywords"])

	return pub
}

// splitAuthors splits the raw author field on the BibTeX " and "
// separator. An absent field surfaces as a single "Unknown" author for
// display; the unsplit string stays on AuthorRaw.
func (n *Normalizer) splitAuthors(raw string) []Author {
	if strings.TrimSpace(raw) == "" {
		return []Author{{Name: "Unknown"}}
	}

	names := strings.Split(raw, " and ")
	return lo.FilterMap(names, func(name string, _ int) (Author, bool) {
		name = strings.TrimSpace(name)
		return Author{Name: name}, name != ""
	})
}

// splitKeywords splits on commas; absent keywords yield an empty set.
func (n *Normalizer) splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}
