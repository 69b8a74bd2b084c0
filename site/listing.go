package site

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// IsPublished reports whether a post dated pubDate should be listed at now.
// Posts dated up to ScheduledPostMargin in the future already count.
func (s SiteConfig) IsPublished(pubDate, now time.Time) bool {
	return !now.Add(s.ScheduledPostMargin).Before(pubDate)
}

// PageCount returns the number of listing pages for total posts. An empty
// listing still has one page.
func (s SiteConfig) PageCount(total int) int {
	if total <= 0 || s.PostPerPage <= 0 {
		return 1
	}
	return (total + s.PostPerPage - 1) / s.PostPerPage
}

// PageBounds returns the slice bounds of the 1-based page for a listing of
// total posts. ok is false when the page is out of range.
func (s SiteConfig) PageBounds(page, total int) (start, end int, ok bool) {
	if page < 1 || page > s.PageCount(total) {
		return 0, 0, false
	}
	start = (page - 1) * s.PostPerPage
	end = min(start+s.PostPerPage, max(total, 0))
	return start, end, true
}

// URL joins path segments onto Website, ensuring a trailing slash when
// segments are given.
func (s SiteConfig) URL(pathSegments ...string) string {
	u, err := url.Parse(s.Website)
	if err != nil {
		return s.Website
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OGImageURL resolves OGImage against Website.
func (s SiteConfig) OGImageURL() string {
	base, err := url.Parse(s.Website)
	if err != nil {
		return s.OGImage
	}
	ref, err := url.Parse(s.OGImage)
	if err != nil {
		return s.OGImage
	}
	return base.ResolveReference(ref).String()
}
