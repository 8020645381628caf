package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/language"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Content configuration
	ContentDir string `long:"content-dir" env:"CONTENT_DIR" default:"./content" description:"Directory containing site content (config, bibliography, news)"`
	OutDir     string `long:"out-dir" env:"OUT_DIR" default:"./out/rss" description:"Directory feed XML files are written to"`
	SiteURL    string `long:"site-url" env:"SITE_URL" default:"https://prismlab.github.io" description:"Canonical site base URL used for all absolute links"`
	Languages  string `long:"languages" env:"LANGUAGES" default:"en,zh" description:"Comma-separated language tags; the first one is primary"`

	// Preview server configuration
	Serve bool   `long:"serve" env:"SERVE" description:"Serve the output directory over HTTP after generation"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	languages, err := parseLanguages(raw.Languages)
	if err != nil {
		return nil, err
	}

	cfg := &Cfg{
		ContentDir: raw.ContentDir,
		OutDir:     raw.OutDir,
		SiteURL:    strings.TrimRight(raw.SiteURL, "/"),
		Languages:  languages,
		Serve:      raw.Serve,
		Port:       raw.Port,
		Timezone:   raw.Timezone,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func parseLanguages(raw string) ([]string, error) {
	var languages []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, err := language.Parse(tag); err != nil {
			return nil, fmt.Errorf("invalid language tag %q: %w", tag, err)
		}
		languages = append(languages, tag)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("at least one language tag is required")
	}
	return languages, nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
