// Package bppapi exposes the Beckn-facing endpoints (search/select/webhook)
// and the plain REST catalog surface around them.
package bppapi

import (
	"net/http"

	"github.com/kenpath/agribpp/internal/app"
	"github.com/kenpath/agribpp/internal/beckn"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/relay"
	"github.com/kenpath/agribpp/internal/webserver"
	"github.com/labstack/echo/v4"
)

// Context keys for the collaborators handlers pull out of a request.
const (
	appContextKey     = "agribpp_app"
	catalogContextKey = "agribpp_catalog"
	relayContextKey   = "agribpp_relay"
	builderContextKey = "agribpp_builder"
)

// InitRouter wires the collaborators into the request context and registers
// all routes.
func InitRouter(appc app.AppContext, cat catalog.Service, sender relay.Sender, builder *beckn.Builder) {
	webserver.Use(injectCollaborators(appc, cat, sender, builder))
	registerSearchRoutes()
	registerSelectRoutes()
	registerCatalogRoutes()
	registerOrderRoutes()
}

func injectCollaborators(appc app.AppContext, cat catalog.Service, sender relay.Sender, builder *beckn.Builder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, appc)
			c.Set(catalogContextKey, cat)
			c.Set(relayContextKey, sender)
			c.Set(builderContextKey, builder)
			return next(c)
		}
	}
}

func GetApp(c echo.Context) app.AppContext {
	appc, _ := c.Get(appContextKey).(app.AppContext)
	return appc
}

func GetCatalog(c echo.Context) catalog.Service {
	cat, _ := c.Get(catalogContextKey).(catalog.Service)
	return cat
}

func GetRelay(c echo.Context) relay.Sender {
	sender, _ := c.Get(relayContextKey).(relay.Sender)
	return sender
}

func GetBuilder(c echo.Context) *beckn.Builder {
	builder, _ := c.Get(builderContextKey).(*beckn.Builder)
	if builder == nil {
		builder = beckn.NewBuilder()
	}
	return builder
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// nack rejects a Beckn envelope with a structured error body.
func nack(c echo.Context, status int, code, message string) error {
	return c.JSON(status, beckn.NewNackResponse(code, message))
}
