package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/pkg/sanitize"
)

func sendError(c echo.Context, err error) error {
	rawErrHTML := `<div>Error: ` + err.Error() + `</div>`
	sanitizedHTML, err := sanitize.SanitizeHTML(rawErrHTML)
	if err != nil {
		return c.String(http.StatusInternalServerError, "An error occurred during sanitization")
	}
	return c.HTML(http.StatusInternalServerError, sanitizedHTML)
}
