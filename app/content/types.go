package content

// SiteConfig is the typed subset of the site configuration the feed
// pipeline consumes. Navigation and section data is carried through
// unchanged for the rendering layer.
type SiteConfig struct {
	Site   SiteInfo   `toml:"site" yaml:"site"`
	Author AuthorInfo `toml:"author" yaml:"author"`
	Social SocialInfo `toml:"social" yaml:"social"`

	Navigation []NavigationItem `toml:"navigation" yaml:"navigation"`
	Sections   []Section        `toml:"sections" yaml:"sections"`
}

type SiteInfo struct {
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Favicon     string `toml:"favicon" yaml:"favicon"`
}

type AuthorInfo struct {
	Name        string `toml:"name" yaml:"name"`
	Title       string `toml:"title" yaml:"title"`
	Institution string `toml:"institution" yaml:"institution"`
	Avatar      string `toml:"avatar" yaml:"avatar"`
}

type SocialInfo struct {
	Email         string `toml:"email" yaml:"email"`
	Location      string `toml:"location" yaml:"location"`
	GoogleScholar string `toml:"google_scholar" yaml:"google_scholar"`
	ORCID         string `toml:"orcid" yaml:"orcid"`
	GitHub        string `toml:"github" yaml:"github"`
}

// NavigationItem and Section are opaque to the pipeline.

type NavigationItem struct {
	Title  string `toml:"title" yaml:"title"`
	Type   string `toml:"type" yaml:"type"`
	Target string `toml:"target" yaml:"target"`
	Href   string `toml:"href" yaml:"href"`
}

type Section struct {
	ID     string `toml:"id" yaml:"id"`
	Type   string `toml:"type" yaml:"type"`
	Source string `toml:"source" yaml:"source"`
	Title  string `toml:"title" yaml:"title"`
	Filter string `toml:"filter" yaml:"filter"`
	Limit  int    `toml:"limit" yaml:"limit"`
}
