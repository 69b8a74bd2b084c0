// Package views renders the parts of a page that read the site
// configuration: head metadata, header logo, social links and the footer.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/pubsite/site"
)

// component wraps a buffered render function as a templ.Component.
func component(fn func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fn(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func attr(s string) string {
	return html.EscapeString(s)
}

func metaName(buf *bytes.Buffer, name, content string) {
	fmt.Fprintf(buf, `<meta name="%s" content="%s">`, name, attr(content))
}

func metaProperty(buf *bytes.Buffer, property, content string) {
	fmt.Fprintf(buf, `<meta property="%s" content="%s">`, property, attr(content))
}

// Head renders the document <head> with SEO, OpenGraph and JSON-LD tags.
func Head(cfg *site.Config, meta PageMeta) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		s := cfg.Site()
		m := resolveMeta(s, meta)
		buf.WriteString(`<head><meta charset="UTF-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		fmt.Fprintf(buf, `<link rel="canonical" href="%s">`, attr(m.URL))
		fmt.Fprintf(buf, `<title>%s</title>`, html.EscapeString(m.Title))
		metaName(buf, "title", m.Title)
		metaName(buf, "description", m.Description)
		metaName(buf, "author", s.Author)

		metaProperty(buf, "og:type", m.OGType)
		metaProperty(buf, "og:title", m.Title)
		metaProperty(buf, "og:description", m.Description)
		metaProperty(buf, "og:url", m.URL)
		metaProperty(buf, "og:image", m.OGImage)
		if m.ImageWidth > 0 && m.ImageHeight > 0 {
			metaProperty(buf, "og:image:width", strconv.Itoa(m.ImageWidth))
			metaProperty(buf, "og:image:height", strconv.Itoa(m.ImageHeight))
		}

		metaName(buf, "twitter:card", "summary_large_image")
		metaName(buf, "twitter:url", m.URL)
		metaName(buf, "twitter:title", m.Title)
		metaName(buf, "twitter:description", m.Description)
		metaName(buf, "twitter:image", m.OGImage)

		fmt.Fprintf(buf, `<script type="application/ld+json">%s</script>`, WebsiteJsonLD(cfg))
		if s.LightAndDarkMode {
			buf.WriteString(`<script src="/assets/toggle-theme.js" async></script>`)
		} else {
			metaName(buf, "color-scheme", "light")
		}
		buf.WriteString(`</head>`)
		return nil
	})
}

// Header renders the site logo, or the site title when the logo is disabled.
func Header(cfg *site.Config) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		s := cfg.Site()
		logo := cfg.Logo()
		buf.WriteString(`<header><a href="/" class="logo">`)
		if logo.Enable {
			fmt.Fprintf(buf, `<img src="/%s" alt="%s" width="%d" height="%d">`,
				logo.AssetPath(), attr(s.Title), logo.Width, logo.Height)
		} else {
			buf.WriteString(html.EscapeString(s.Title))
		}
		buf.WriteString(`</a>`)
		if s.LightAndDarkMode {
			buf.WriteString(`<button id="theme-btn" title="Toggles light &amp; dark" aria-label="auto" aria-live="polite"></button>`)
		}
		buf.WriteString(`</header>`)
		return nil
	})
}

// Socials renders the active social links in declaration order.
func Socials(cfg *site.Config) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<div class="social-icons">`)
		for _, e := range cfg.ActiveSocials() {
			target := ` target="_blank" rel="noopener noreferrer"`
			if e.IsMailto() {
				target = ""
			}
			fmt.Fprintf(buf, `<a href="%s"%s class="link-button social-%s" title="%s" aria-label="%s"><span class="sr-only">%s</span></a>`,
				attr(e.Href), target, e.Name.Slug(), attr(e.LinkTitle), attr(e.LinkTitle), html.EscapeString(e.LinkTitle))
		}
		buf.WriteString(`</div>`)
		return nil
	})
}

// Footer renders the social links and the copyright line.
func Footer(cfg *site.Config, year int) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<footer>`)
		if err := Socials(cfg).Render(ctx, buf); err != nil {
			return err
		}
		fmt.Fprintf(buf, `<div class="copyright">Copyright &#169; %d <span>|</span> All rights reserved.</div>`, year)
		buf.WriteString(`</footer>`)
		return nil
	})
}

// Page renders a full document around body.
func Page(cfg *site.Config, meta PageMeta, year int, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		lang := cfg.Locale().ResolveLang(site.HostDefault())
		fmt.Fprintf(buf, `<!DOCTYPE html><html lang="%s">`, attr(lang))
		if err := Head(cfg, meta).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`<body>`)
		if err := Header(cfg).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`<main id="main-content">`)
		if body != nil {
			if err := body.Render(ctx, buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</main>`)
		if err := Footer(cfg, year).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`</body></html>`)
		return nil
	})
}

// Hero renders the home page introduction with the site description and
// social links.
func Hero(cfg *site.Config) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		s := cfg.Site()
		fmt.Fprintf(buf, `<section id="hero"><h1>%s</h1><p>%s</p>`,
			html.EscapeString(s.Title), html.EscapeString(s.Desc))
		if len(cfg.ActiveSocials()) > 0 {
			buf.WriteString(`<div class="social-wrapper"><div class="social-links">Social Links:</div>`)
			if err := Socials(cfg).Render(ctx, buf); err != nil {
				return err
			}
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</section>`)
		return nil
	})
}

// NotFound renders the 404 page.
func NotFound(cfg *site.Config, year int) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<div class="not-found"><h1>404</h1><p>Page Not Found</p><a href="/">Go back home</a></div>`)
		return nil
	})
	return Page(cfg, PageMeta{Title: "404 Not Found | " + cfg.Site().Title}, year, body)
}
