package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/prismlab/prism/app/cfg"
	"github.com/prismlab/prism/app/content"
)

const testBibliography = `@article{smith2023,
  title = {A Study of Things},
  author = {Smith, Jane},
  year = {2023},
  month = {mar},
  journal = {Journal of Things},
  doi = {10.1/x}
}

@misc{defaulted,
  title = {Defaulted Entry}
}
`

const testNews = `
[[items]]
date = "2024-01-01"
content = "Happy new year"
`

const testSiteConfig = `
[site]
title = "Example Site"
favicon = "/favicon.ico"

[author]
name = "Jane Smith"
avatar = "/avatar.png"

[social]
email = "jane@example.com"
`

func setupTestConfig(t *testing.T, contentDir, outDir string) {
	t.Helper()

	oldArgs := os.Args
	os.Args = []string{"test"}
	t.Cleanup(func() { os.Args = oldArgs })

	t.Setenv("CONTENT_DIR", contentDir)
	t.Setenv("OUT_DIR", outDir)
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("LANGUAGES", "en,zh")

	if _, err := cfg.Load(); err != nil {
		t.Fatalf("Failed to load test configuration: %v", err)
	}
}

func writeContent(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
}

func TestRunWritesSixFeeds(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)
	writeContent(t, contentDir, "publications.bib", testBibliography)
	writeContent(t, contentDir, "news.toml", testNews)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{
		"publications.xml", "publications-atom.xml",
		"news.xml", "news-atom.xml",
		"feed.xml", "feed-atom.xml",
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestRunPublicationsRoundTrip(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)
	writeContent(t, contentDir, "publications.bib", testBibliography)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "publications.xml"))
	if err != nil {
		t.Fatalf("Failed to read generated feed: %v", err)
	}

	parsed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatalf("Generated feed should parse cleanly: %v", err)
	}

	// One feed item per @...{ block in the fixture
	wantItems := strings.Count(testBibliography, "@")
	if len(parsed.Items) != wantItems {
		t.Errorf("Expected %d items, got %d", wantItems, len(parsed.Items))
	}

	if parsed.Title != "Example Site - Publications" {
		t.Errorf("Unexpected feed title: %s", parsed.Title)
	}

	var found bool
	for _, item := range parsed.Items {
		if strings.Contains(item.Description, "https://doi.org/10.1/x") {
			found = true
		}
	}
	if !found {
		t.Error("Expected a DOI link in the publications feed")
	}
}

func TestRunUnifiedFeedMixesKinds(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)
	writeContent(t, contentDir, "publications.bib", testBibliography)
	writeContent(t, contentDir, "news.toml", testNews)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "feed.xml"))
	if err != nil {
		t.Fatalf("Failed to read unified feed: %v", err)
	}
	unified := string(data)

	if !strings.Contains(unified, "[Publication] A Study of Things") {
		t.Error("Unified feed should tag publication titles")
	}
	if !strings.Contains(unified, "[News] Happy new year") {
		t.Error("Unified feed should tag news titles")
	}
	if !strings.Contains(unified, "https://example.com/news/#news-0") {
		t.Error("Unified feed should use the absolute news id scheme")
	}

	parsed, err := gofeed.NewParser().ParseString(unified)
	if err != nil {
		t.Fatalf("Unified feed should parse cleanly: %v", err)
	}
	if len(parsed.Items) != 3 {
		t.Errorf("Expected 3 unified items, got %d", len(parsed.Items))
	}
}

func TestRunWithoutNewsStillGeneratesFeeds(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)
	writeContent(t, contentDir, "publications.bib", testBibliography)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err != nil {
		t.Fatalf("Missing news must not fail generation: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "news.xml"))
	if err != nil {
		t.Fatalf("News feed should still be written: %v", err)
	}
	if _, err := gofeed.NewParser().ParseString(string(data)); err != nil {
		t.Errorf("Empty news feed should still be valid: %v", err)
	}
}

func TestRunMissingBibliographyYieldsEmptyFeeds(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err != nil {
		t.Fatalf("Missing bibliography must not fail generation: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "publications.xml"))
	if err != nil {
		t.Fatalf("Publications feed should still be written: %v", err)
	}
	parsed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatalf("Empty publications feed should still be valid: %v", err)
	}
	if len(parsed.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(parsed.Items))
	}
}

func TestRunMissingSiteConfigFails(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("en"); err == nil {
		t.Error("Missing site config must abort the run")
	}
}

func TestRunSecondaryLanguageUsesSubdirectory(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "rss")
	setupTestConfig(t, contentDir, outDir)

	writeContent(t, contentDir, "config.toml", testSiteConfig)
	writeContent(t, contentDir, "publications.bib", testBibliography)
	writeContent(t, contentDir, "news.zh.toml", `
[[items]]
date = "2024-03-01"
content = "中文新闻"
`)

	gen := NewGenerator(content.NewLoader(contentDir))
	if err := gen.Run("zh"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "zh", "news.xml"))
	if err != nil {
		t.Fatalf("Secondary language feeds should go to a subdirectory: %v", err)
	}
	if !strings.Contains(string(data), "中文新闻") {
		t.Error("Expected localized news content in the zh feed")
	}
	if !strings.Contains(string(data), "<language>zh</language>") {
		t.Error("Expected zh language tag in the feed")
	}
}
