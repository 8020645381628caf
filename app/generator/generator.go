package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prismlab/prism/app/bibtex"
	"github.com/prismlab/prism/app/cfg"
	"github.com/prismlab/prism/app/content"
	"github.com/prismlab/prism/app/feed"
)

// Generator runs the full pipeline for one language: load content, parse
// and normalize the bibliography, merge in the news stream, and write the
// six syndication documents. Runs for different languages are fully
// independent.
type Generator struct {
	loader     *content.Loader
	parser     *bibtex.Parser
	normalizer *feed.Normalizer
	merger     *feed.Merger
}

func NewGenerator(loader *content.Loader) *Generator {
	return &Generator{
		loader:     loader,
		parser:     bibtex.NewParser(),
		normalizer: feed.NewNormalizer(),
		merger:     feed.NewMerger(),
	}
}

func (g *Generator) Run(lang string) error {
	siteConfig, err := g.loader.LoadSiteConfig(lang)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}

	pubs := g.normalizer.Run(g.parser.Run(g.loader.LoadBibliography(lang)))
	slog.Info("Parsed bibliography", "language", lang, "publications", len(pubs))

	news, err := g.loader.LoadNews(lang)
	if err != nil {
		slog.Warn("News not readable, proceeding without news items", "language", lang, "error", err)
		news = nil
	}
	slog.Info("Loaded news", "language", lang, "items", len(news))

	outDir := g.outDir(lang)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	now := time.Now()
	renderer := feed.NewRenderer(cfg.Get().SiteURL)

	if err := g.writePair(outDir, "publications", g.publicationsDocument(siteConfig, renderer, pubs, lang, now)); err != nil {
		return err
	}
	if err := g.writePair(outDir, "news", g.newsDocument(siteConfig, renderer, news, lang, now)); err != nil {
		return err
	}
	if err := g.writePair(outDir, "feed", g.unifiedDocument(siteConfig, renderer, pubs, news, lang, now)); err != nil {
		return err
	}

	return nil
}

// writePair writes the RSS 2.0 and Atom 1.0 renditions of one document
// as <base>.xml and <base>-atom.xml.
func (g *Generator) writePair(outDir, base string, doc *feed.Document) error {
	files := map[string]string{
		base + ".xml":      doc.RSS2(),
		base + "-atom.xml": doc.Atom1(),
	}

	for name, xml := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(xml), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		slog.Info("Generated feed", "file", path, "entries", len(doc.Entries))
	}

	return nil
}

func (g *Generator) publicationsDocument(sc *content.SiteConfig, renderer *feed.Renderer,
	pubs []feed.Publication, lang string, now time.Time) *feed.Document {

	doc := feed.NewDocument(g.metadata(sc, lang, now,
		sc.Site.Title+" - Publications",
		"Latest publications from "+sc.Author.Name,
		"publications.xml", "publications-atom.xml"))

	for _, pub := range g.merger.TopPublications(pubs) {
		doc.AddEntry(renderer.PublicationEntry(pub, false))
	}

	return doc
}

func (g *Generator) newsDocument(sc *content.SiteConfig, renderer *feed.Renderer,
	news []feed.NewsItem, lang string, now time.Time) *feed.Document {

	doc := feed.NewDocument(g.metadata(sc, lang, now,
		sc.Site.Title+" - News & Updates",
		"Latest news and updates from "+sc.Author.Name,
		"news.xml", "news-atom.xml"))

	for i, item := range g.merger.TopNews(news) {
		doc.AddEntry(renderer.NewsEntry(item, i, false))
	}

	return doc
}

func (g *Generator) unifiedDocument(sc *content.SiteConfig, renderer *feed.Renderer,
	pubs []feed.Publication, news []feed.NewsItem, lang string, now time.Time) *feed.Document {

	doc := feed.NewDocument(g.metadata(sc, lang, now,
		sc.Site.Title,
		"Latest updates from "+sc.Author.Name,
		"feed.xml", "feed-atom.xml"))

	// News indices follow the date-sorted news order, matching the ids
	// the per-type news feed assigns.
	newsIndex := 0
	for _, item := range g.merger.Run(pubs, news) {
		doc.AddEntry(renderer.UnifiedEntry(item, newsIndex))
		if item.Kind == feed.KindNews {
			newsIndex++
		}
	}

	return doc
}

func (g *Generator) metadata(sc *content.SiteConfig, lang string, now time.Time,
	title, description, rssFile, atomFile string) feed.Metadata {

	c := cfg.Get()

	meta := feed.Metadata{
		Title:       title,
		Description: description,
		Link:        c.SiteURL + "/",
		Language:    lang,
		Copyright:   fmt.Sprintf("All rights reserved %d, %s", now.Year(), sc.Author.Name),
		Updated:     now,
		Generator:   "prism/" + c.Version,
		AuthorName:  sc.Author.Name,
		AuthorEmail: sc.Social.Email,
		RSSURL:      g.feedURL(lang, rssFile),
		AtomURL:     g.feedURL(lang, atomFile),
	}

	if sc.Author.Avatar != "" {
		meta.ImageURL = c.SiteURL + sc.Author.Avatar
	}
	if sc.Site.Favicon != "" {
		meta.FaviconURL = c.SiteURL + sc.Site.Favicon
	}

	return meta
}

func (g *Generator) outDir(lang string) string {
	c := cfg.Get()
	if lang == c.PrimaryLanguage() {
		return c.OutDir
	}
	return filepath.Join(c.OutDir, lang)
}

func (g *Generator) feedURL(lang, file string) string {
	c := cfg.Get()
	if lang == c.PrimaryLanguage() {
		return fmt.Sprintf("%s/rss/%s", c.SiteURL, file)
	}
	return fmt.Sprintf("%s/rss/%s/%s", c.SiteURL, lang, file)
}
