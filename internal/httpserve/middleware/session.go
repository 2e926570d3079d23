package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// InitSessionMiddleware initializes the session middleware with secure options
func InitSessionMiddleware(a *server.App) echo.MiddlewareFunc {
	secret := a.Config.Session.Secret
	if secret == "" {
		logger.Fatal("session.secret is not set (config file or ORTOBAHN_SESSION_SECRET)")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   a.Config.Server.HTTPS,
		MaxAge:   86400,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Middleware(store)
}
