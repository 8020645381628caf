package cfg

type Cfg struct {
	// Content configuration
	ContentDir string
	OutDir     string
	SiteURL    string
	Languages  []string

	// Preview server configuration
	Serve bool
	Port  string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// PrimaryLanguage is the first configured language; its feeds are written
// directly into OutDir, other languages get a subdirectory.
func (c *Cfg) PrimaryLanguage() string {
	return c.Languages[0]
}
