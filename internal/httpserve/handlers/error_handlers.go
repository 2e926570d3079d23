package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// RenderNotFoundPage renders the 404 error page
func RenderNotFoundPage(c echo.Context, a *server.App) error {
	return renderPage(c, a, http.StatusNotFound, "404.gohtml", map[string]interface{}{
		"Title": "Page Not Found",
	})
}

// RenderInternalErrorPage renders the 500 error page
func RenderInternalErrorPage(c echo.Context, a *server.App) error {
	return renderPage(c, a, http.StatusInternalServerError, "500.gohtml", map[string]interface{}{
		"Title": "Server Error",
	})
}

// CustomHTTPErrorHandler maps echo errors onto the styled error pages.
// Non-HTML consumers (the webhook endpoint) still get the plain status.
func CustomHTTPErrorHandler(a *server.App) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		if httpErr, ok := err.(*echo.HTTPError); ok {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}

		if c.Path() == "/webhooks/stripe" {
			if nerr := c.NoContent(code); nerr != nil {
				logger.Error("Failed to send error status", "error", nerr)
			}
			return
		}

		var renderErr error
		switch {
		case code == http.StatusNotFound:
			renderErr = RenderNotFoundPage(c, a)
		case code >= http.StatusInternalServerError:
			logger.Error("Request failed", "path", c.Path(), "code", code, "error", err)
			renderErr = RenderInternalErrorPage(c, a)
		default:
			renderErr = c.String(code, message)
		}
		if renderErr != nil {
			logger.Error("Failed to render error page", "error", renderErr)
		}
	}
}
