package views

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
// Empty fields fall back to the site-wide values.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string // absolute URL of the preview image
	ImageWidth  int    // og:image:width, omitted when zero
	ImageHeight int    // og:image:height, omitted when zero
}
