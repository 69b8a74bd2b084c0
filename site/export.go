package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SocialPolicy selects which social entries a Document carries.
type SocialPolicy int

const (
	// AllSocials keeps inactive entries. Used for authoring dumps.
	AllSocials SocialPolicy = iota
	// ActiveSocials drops inactive entries. Used for anything published.
	ActiveSocials
)

// Format is an output encoding for a Document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("site: unsupported format %q", s)
}

// Document is the machine-readable form of a Config. Keys match the names
// site generators expect; the post margin is in milliseconds.
type Document struct {
	Site    SiteDocument     `json:"site" toml:"site" yaml:"site"`
	Locale  LocaleDocument   `json:"locale" toml:"locale" yaml:"locale"`
	Logo    LogoDocument     `json:"logo" toml:"logo" yaml:"logo"`
	Socials []SocialDocument `json:"socials" toml:"socials" yaml:"socials"`
}

type SiteDocument struct {
	Website             string `json:"website" toml:"website" yaml:"website"`
	Author              string `json:"author" toml:"author" yaml:"author"`
	Desc                string `json:"desc" toml:"desc" yaml:"desc"`
	Title               string `json:"title" toml:"title" yaml:"title"`
	OGImage             string `json:"ogImage" toml:"ogImage" yaml:"ogImage"`
	LightAndDarkMode    bool   `json:"lightAndDarkMode" toml:"lightAndDarkMode" yaml:"lightAndDarkMode"`
	PostPerPage         int    `json:"postPerPage" toml:"postPerPage" yaml:"postPerPage"`
	ScheduledPostMargin int64  `json:"scheduledPostMargin" toml:"scheduledPostMargin" yaml:"scheduledPostMargin"`
}

type LocaleDocument struct {
	Lang    string   `json:"lang" toml:"lang" yaml:"lang"`
	LangTag []string `json:"langTag" toml:"langTag" yaml:"langTag"`
}

type LogoDocument struct {
	Enable bool `json:"enable" toml:"enable" yaml:"enable"`
	SVG    bool `json:"svg" toml:"svg" yaml:"svg"`
	Width  int  `json:"width" toml:"width" yaml:"width"`
	Height int  `json:"height" toml:"height" yaml:"height"`
}

type SocialDocument struct {
	Name      string `json:"name" toml:"name" yaml:"name"`
	Href      string `json:"href" toml:"href" yaml:"href"`
	LinkTitle string `json:"linkTitle" toml:"linkTitle" yaml:"linkTitle"`
	Active    bool   `json:"active" toml:"active" yaml:"active"`
}

// NewDocument converts c into a Document, keeping socials per policy.
func NewDocument(c *Config, policy SocialPolicy) Document {
	s := c.Site()
	l := c.Locale()
	logo := c.Logo()
	doc := Document{
		Site: SiteDocument{
			Website:             s.Website,
			Author:              s.Author,
			Desc:                s.Desc,
			Title:               s.Title,
			OGImage:             s.OGImage,
			LightAndDarkMode:    s.LightAndDarkMode,
			PostPerPage:         s.PostPerPage,
			ScheduledPostMargin: s.ScheduledPostMargin.Milliseconds(),
		},
		Locale: LocaleDocument{Lang: l.Lang, LangTag: l.LangTag},
		Logo: LogoDocument{
			Enable: logo.Enable,
			SVG:    logo.SVG,
			Width:  logo.Width,
			Height: logo.Height,
		},
		Socials: []SocialDocument{},
	}
	if doc.Locale.LangTag == nil {
		doc.Locale.LangTag = []string{}
	}
	socials := c.Socials()
	if policy == ActiveSocials {
		socials = c.ActiveSocials()
	}
	for _, e := range socials {
		doc.Socials = append(doc.Socials, SocialDocument{
			Name:      e.Name.String(),
			Href:      e.Href,
			LinkTitle: e.LinkTitle,
			Active:    e.Active,
		})
	}
	return doc
}

// Encode writes d to w in the given format.
func (d Document) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(d)
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("site: unsupported format %q", format)
}
