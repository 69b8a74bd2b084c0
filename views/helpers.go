package views

import (
	"encoding/json"

	"github.com/eringen/pubsite/site"
)

// resolveMeta fills the empty fields of meta from the site identity.
func resolveMeta(s site.SiteConfig, meta PageMeta) PageMeta {
	if meta.Title == "" {
		meta.Title = s.Title
	}
	if meta.Description == "" {
		meta.Description = s.Desc
	}
	if meta.URL == "" {
		meta.URL = s.URL()
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.OGImage == "" {
		meta.OGImage = s.OGImageURL()
	}
	return meta
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for cfg. Only
// active social links are listed under sameAs.
func WebsiteJsonLD(cfg *site.Config) string {
	s := cfg.Site()
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        s.Title,
		"url":         s.URL(),
		"description": s.Desc,
		"image":       s.OGImageURL(),
		"inLanguage":  cfg.Locale().ResolveLang(site.HostDefault()),
	}
	if s.Author != "" {
		author := map[string]interface{}{
			"@type": "Person",
			"name":  s.Author,
		}
		var sameAs []string
		for _, e := range cfg.ActiveSocials() {
			if !e.IsMailto() {
				sameAs = append(sameAs, e.Href)
			}
		}
		if len(sameAs) > 0 {
			author["sameAs"] = sameAs
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
