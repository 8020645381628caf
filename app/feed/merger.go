package feed

import (
	"sort"
)

// Every public feed carries at most this many entries, always the most
// recent by effective date. Truncation happens after sorting.
const maxFeedItems = 20

// Merger combines publications and news into one chronologically
// descending timeline and applies the same sort-then-cap rule to the
// per-type feeds. Sorting is stable so exact date ties keep their append
// order (publications before news) and output is reproducible.
type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

func (m *Merger) Run(pubs []Publication, news []NewsItem) []UnifiedItem {
	items := make([]UnifiedItem, 0, len(pubs)+len(news))

	for i := range pubs {
		items = append(items, UnifiedItem{
			Kind:        KindPublication,
			Date:        pubs[i].EffectiveDate(),
			Publication: &pubs[i],
		})
	}
	for i := range news {
		items = append(items, UnifiedItem{
			Kind: KindNews,
			Date: news[i].EffectiveDate(),
			News: &news[i],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	return truncate(items)
}

func (m *Merger) TopPublications(pubs []Publication) []Publication {
	sorted := make([]Publication, len(pubs))
	copy(sorted, pubs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate().After(sorted[j].EffectiveDate())
	})
	return truncate(sorted)
}

func (m *Merger) TopNews(news []NewsItem) []NewsItem {
	sorted := make([]NewsItem, len(news))
	copy(sorted, news)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate().After(sorted[j].EffectiveDate())
	})
	return truncate(sorted)
}

func truncate[T any](items []T) []T {
	if len(items) > maxFeedItems {
		return items[:maxFeedItems]
	}
	return items
}
