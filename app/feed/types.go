package feed

import (
	"strings"
	"time"
)

// Domain types produced by normalization and consumed by the serializers.

type Author struct {
	Name string
}

type Publication struct {
	ID         string
	Title      string
	Authors    []Author
	AuthorRaw  string // unsplit author field as written in the source
	Year       int
	Month      string // three-letter lowercase abbreviation
	Journal    string
	Conference string
	DOI        string
	Abstract   string
	Keywords   []string
	Selected   bool
}

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// EffectiveDate is the publication's sole ordering key: the first day of
// its month in its year. Unknown month abbreviations map to January; the
// source format carries no day-of-month precision.
func (p Publication) EffectiveDate() time.Time {
	month, ok := monthIndex[strings.ToLower(p.Month)]
	if !ok {
		month = time.January
	}
	return time.Date(p.Year, month, 1, 0, 0, 0, 0, time.UTC)
}

type NewsItem struct {
	Date    string `toml:"date" yaml:"date"`
	Content string `toml:"content" yaml:"content"`
	URL     string `toml:"url" yaml:"url"`
}

// EffectiveDate parses the item's date. An unparseable date yields the
// zero time, which sorts as oldest, so bad items never abort a run.
func (n NewsItem) EffectiveDate() time.Time {
	if t, err := time.Parse("2006-01-02", n.Date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, n.Date); err == nil {
		return t
	}
	return time.Time{}
}

type ItemKind string

const (
	KindPublication ItemKind = "publication"
	KindNews        ItemKind = "news"
)

// UnifiedItem is the merge-stage variant: exactly one of Publication or
// News is set, selected by Kind.
type UnifiedItem struct {
	Kind        ItemKind
	Date        time.Time
	Publication *Publication
	News        *NewsItem
}
