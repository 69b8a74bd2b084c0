package pubsite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubsite/site"
	"github.com/eringen/pubsite/views"
)

func (a *App) year() int {
	return a.now().Year()
}

func (a *App) pageMeta() views.PageMeta {
	return views.PageMeta{
		ImageWidth:  a.ogImage.Width,
		ImageHeight: a.ogImage.Height,
	}
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Page(a.Site, a.pageMeta(), a.year(), views.Hero(a.Site)))
}

// handleConfig serves the public configuration document. Inactive socials
// are left out.
func (a *App) handleConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, site.NewDocument(a.Site, site.ActiveSocials))
}

func (a *App) handleSocials(c echo.Context) error {
	return c.JSON(http.StatusOK, site.NewDocument(a.Site, site.ActiveSocials).Socials)
}

// handleRobots generates robots.txt pointing at the sitemap index.
func (a *App) handleRobots(c echo.Context) error {
	base := strings.TrimSuffix(a.Site.Site().URL(), "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap-index.xml\n", base)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site, a.year()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
