package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/prismlab/prism/app/feed"
)

// Loader resolves and decodes content files from a single directory.
// A language-specific variant ("news.zh.toml") is preferred when present,
// otherwise the language-neutral file ("news.toml") is used.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ResolvePath returns the on-disk path for a logical content file name,
// applying the language fallback policy. The returned path may not exist.
func (l *Loader) ResolvePath(name, lang string) string {
	if lang == "" || lang == "en" {
		return filepath.Join(l.dir, name)
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	localized := filepath.Join(l.dir, fmt.Sprintf("%s.%s%s", base, lang, ext))

	if _, err := os.Stat(localized); err == nil {
		return localized
	}

	return filepath.Join(l.dir, name)
}

// LoadText returns the raw text of a content file.
func (l *Loader) LoadText(name, lang string) (string, error) {
	path := l.ResolvePath(name, lang)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// LoadStructured decodes a TOML or YAML content file into out, chosen by
// file extension.
func (l *Loader) LoadStructured(name, lang string, out any) error {
	path := l.ResolvePath(name, lang)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse TOML %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported content format: %s", path)
	}

	return nil
}

// LoadSiteConfig loads the site configuration. This is a required input:
// the caller should abort the generation run on error.
func (l *Loader) LoadSiteConfig(lang string) (*SiteConfig, error) {
	var lastErr error
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if _, err := os.Stat(l.ResolvePath(name, lang)); err != nil {
			lastErr = err
			continue
		}

		var config SiteConfig
		if err := l.LoadStructured(name, lang, &config); err != nil {
			return nil, err
		}
		if err := l.validate(&config); err != nil {
			return nil, fmt.Errorf("invalid site config %s: %w", name, err)
		}
		return &config, nil
	}

	return nil, fmt.Errorf("no site config found in %s: %w", l.dir, lastErr)
}

func (l *Loader) validate(config *SiteConfig) error {
	if config.Site.Title == "" {
		return fmt.Errorf("site title is required")
	}
	if config.Author.Name == "" {
		return fmt.Errorf("author name is required")
	}
	return nil
}

type newsFile struct {
	Items []feed.NewsItem `toml:"items" yaml:"items"`
}

// LoadNews loads the news items for a language. An absent file is not an
// error: news is optional content and yields an empty slice. A present but
// malformed file is surfaced so the caller can log it and proceed empty.
func (l *Loader) LoadNews(lang string) ([]feed.NewsItem, error) {
	for _, name := range []string{"news.toml", "news.yaml", "news.yml"} {
		if _, err := os.Stat(l.ResolvePath(name, lang)); err != nil {
			continue
		}

		var file newsFile
		if err := l.LoadStructured(name, lang, &file); err != nil {
			return nil, err
		}
		return file.Items, nil
	}

	slog.Debug("No news file found", "dir", l.dir, "language", lang)
	return nil, nil
}

// LoadBibliography returns the raw BibTeX source for a language. A missing
// or unreadable file is tolerated as an empty bibliography; all
// publication-bearing feeds then degenerate to empty but valid documents.
func (l *Loader) LoadBibliography(lang string) string {
	src, err := l.LoadText("publications.bib", lang)
	if err != nil {
		slog.Warn("Bibliography not readable, proceeding with empty bibliography", "error", err)
		return ""
	}
	return src
}
