package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/internal/templating/render"
)

const (
	pagesDir     = "html/pages"
	fragmentsDir = "html/fragments"
)

// requestLanguage picks the UI language from the Accept-Language header.
// English is the fallback.
func requestLanguage(c echo.Context) string {
	header := c.Request().Header.Get("Accept-Language")
	if strings.HasPrefix(header, "fr") {
		return "fr"
	}
	return "en"
}

// renderPage renders a page template together with the shared fragments and
// the localized strings for the request language.
func renderPage(c echo.Context, a *server.App, statusCode int, filename string, data map[string]interface{}) error {
	loc, err := render.GetLocalization(requestLanguage(c), a.Locs)
	if err != nil {
		return err
	}
	data["Loc"] = loc

	renderer, err := render.GetHTMLRenderer(pagesDir, filename, a.TemplateFS, fragmentsDir)
	if err != nil {
		return err
	}

	renderedHTML, err := renderer.Render(data)
	if err != nil {
		return err
	}

	return c.HTML(statusCode, renderedHTML)
}
