// Package site holds the read-only configuration table of a blog: site
// identity, locale, logo, and the ordered list of social links.
//
// A Config is built once from literal Values and never changes afterwards,
// so it can be shared by any number of goroutines without locking.
package site

import (
	"fmt"
	"strings"
	"time"
)

// SiteConfig is the identity of the site and the knobs read by post listings.
type SiteConfig struct {
	Website             string        // Canonical base URL
	Author              string        // Author name for meta tags and JSON-LD
	Desc                string        // Site description
	Title               string        // Site title
	OGImage             string        // Default social preview image, relative to Website
	LightAndDarkMode    bool          // Render the theme toggle
	PostPerPage         int           // Pagination size
	ScheduledPostMargin time.Duration // Future-dated posts within this margin count as published
}

// LocaleConfig controls the html lang attribute and locale-aware formatting.
// Empty values fall back to the host locale.
type LocaleConfig struct {
	Lang    string   // html lang code
	LangTag []string // BCP 47 language tags
}

// LogoConfig describes the header logo.
type LogoConfig struct {
	Enable bool
	SVG    bool
	Width  int
	Height int
}

// SocialEntry is one social link as rendered in the header and footer.
type SocialEntry struct {
	Name      Platform
	Href      string
	LinkTitle string
	Active    bool
}

// SocialLink is the authoring form of a SocialEntry. The link title is
// derived from the site title when the Config is built.
type SocialLink struct {
	Platform Platform
	Href     string
	Active   bool
}

// Values is the literal input a Config is built from.
type Values struct {
	Site    SiteConfig
	Locale  LocaleConfig
	Logo    LogoConfig
	Socials []SocialLink
}

// Config is the immutable configuration table.
type Config struct {
	site    SiteConfig
	locale  LocaleConfig
	logo    LogoConfig
	socials []SocialEntry
}

// New validates v and builds a Config from it.
func New(v Values) (*Config, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	c := &Config{
		site: v.Site,
		locale: LocaleConfig{
			Lang:    v.Locale.Lang,
			LangTag: append([]string(nil), v.Locale.LangTag...),
		},
		logo:    v.Logo,
		socials: make([]SocialEntry, 0, len(v.Socials)),
	}
	for _, s := range v.Socials {
		c.socials = append(c.socials, SocialEntry{
			Name:      s.Platform,
			Href:      s.Href,
			LinkTitle: LinkTitle(v.Site.Title, s.Platform),
			Active:    s.Active,
		})
	}
	return c, nil
}

// MustNew is like New but panics on invalid values. It is meant for
// package-level literal tables.
func MustNew(v Values) *Config {
	c, err := New(v)
	if err != nil {
		panic(err)
	}
	return c
}

// LinkTitle returns the accessible title for a social link of the given
// platform on a site titled title.
func LinkTitle(title string, p Platform) string {
	if p == Mail {
		return "Send an email to " + title
	}
	return fmt.Sprintf("%s on %s", title, p)
}

// Site returns the site identity.
func (c *Config) Site() SiteConfig {
	return c.site
}

// Locale returns the locale settings.
func (c *Config) Locale() LocaleConfig {
	return LocaleConfig{
		Lang:    c.locale.Lang,
		LangTag: append([]string(nil), c.locale.LangTag...),
	}
}

// Logo returns the logo settings.
func (c *Config) Logo() LogoConfig {
	return c.logo
}

// Socials returns every social entry in declaration order, inactive ones
// included. The returned slice is a copy.
func (c *Config) Socials() []SocialEntry {
	return append([]SocialEntry(nil), c.socials...)
}

// ActiveSocials returns the entries with Active set, in declaration order.
func (c *Config) ActiveSocials() []SocialEntry {
	var out []SocialEntry
	for _, s := range c.socials {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Social looks up the entry for platform p.
func (c *Config) Social(p Platform) (SocialEntry, bool) {
	for _, s := range c.socials {
		if s.Name == p {
			return s, true
		}
	}
	return SocialEntry{}, false
}

// AssetPath returns the path of the logo file under the static directory.
func (l LogoConfig) AssetPath() string {
	if l.SVG {
		return "assets/logo.svg"
	}
	return "assets/logo.png"
}

// IsMailto reports whether the entry links to an email address.
func (s SocialEntry) IsMailto() bool {
	return strings.HasPrefix(strings.ToLower(s.Href), "mailto:")
}
