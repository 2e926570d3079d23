package httpserve

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/httpserve/handlers"
	"github.com/ortobahn/ortobahn/internal/httpserve/middleware"
	"github.com/ortobahn/ortobahn/internal/server"
)

// RegisterRoutes binds the middleware stack and every route onto the Echo
// instance. The Stripe webhook stays outside the session-guarded group
// because Stripe authenticates with its signature header instead.
func RegisterRoutes(e *echo.Echo, a *server.App) *echo.Echo {
	e.Use(middleware.SecureRoutes(a))
	e.Use(middleware.InitSessionMiddleware(a))
	e.HTTPErrorHandler = handlers.CustomHTTPErrorHandler(a)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	e.GET("/login", wrap(a, handlers.RenderLoginPage))
	e.POST("/login", wrap(a, handlers.HandleLoginSubmission))
	e.GET("/logout", wrap(a, handlers.HandleLogout))

	e.POST("/webhooks/stripe", wrap(a, handlers.HandleStripeWebhook))

	e.GET("/style.css", handlers.StaticRoute(a))

	admin := e.Group("", middleware.RequireLogin)
	admin.GET("/dashboard", wrap(a, handlers.RenderDashboard))

	admin.GET("/clients", wrap(a, handlers.RenderClientList))
	admin.POST("/clients", wrap(a, handlers.HandleClientCreate))
	admin.GET("/clients/:id", wrap(a, handlers.RenderClientDetail))
	admin.POST("/clients/:id", wrap(a, handlers.HandleClientUpdate))
	admin.POST("/clients/:id/delete", wrap(a, handlers.HandleClientDelete))

	admin.POST("/clients/:id/strategies", wrap(a, handlers.HandleStrategyCreate))
	admin.POST("/strategies/:id/delete", wrap(a, handlers.HandleStrategyDelete))

	admin.POST("/clients/:id/posts", wrap(a, handlers.HandlePostCreate))
	admin.POST("/posts/:id/publish", wrap(a, handlers.HandlePostPublish))
	admin.POST("/posts/:id/delete", wrap(a, handlers.HandlePostDelete))

	return e
}

// wrap adapts the (echo.Context, *server.App) handler signature to echo's.
func wrap(a *server.App, h func(echo.Context, *server.App) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h(c, a)
	}
}
