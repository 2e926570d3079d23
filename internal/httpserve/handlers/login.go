package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// RenderLoginPage renders the login.gohtml template
func RenderLoginPage(c echo.Context, a *server.App) error {
	var errorMsg string
	if c.QueryParam("error") == "invalid_credentials" {
		errorMsg = "Invalid username or password"
	}

	return renderPage(c, a, http.StatusOK, "login.gohtml", map[string]interface{}{
		"Title": "Login",
		"Error": errorMsg,
	})
}

// HandleLoginSubmission checks the submitted credentials against the
// configured admin account and opens a session on success.
func HandleLoginSubmission(c echo.Context, a *server.App) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Config.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Config.Admin.Password)) == 1
	if !userOK || !passOK {
		logger.Warn("Rejected login attempt", "username", username)
		return c.Redirect(http.StatusSeeOther, "/login?error=invalid_credentials")
	}

	sess, err := session.Get("session", c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not get session")
	}
	sess.Values["authenticated"] = true
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	logger.Info("Admin logged in", "username", username)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// HandleLogout invalidates the session and sends the user back to the login page.
func HandleLogout(c echo.Context, a *server.App) error {
	sess, err := session.Get("session", c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not get session")
	}
	sess.Values["authenticated"] = false
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}
