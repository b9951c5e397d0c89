// Package webserver hosts the echo HTTP server and the route registry the
// API packages register into.
package webserver

import (
	"fmt"
	"net/http"

	"github.com/kenpath/agribpp/internal/app"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

var server *WebServer

type WebServer struct {
	root *echo.Echo
	appc app.AppContext
}

// Init creates the global web server instance.
func Init(appc app.AppContext) {
	server = NewWebServer(appc)
}

func NewWebServer(appc app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		zap.L().Error("http error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		_ = c.JSON(code, map[string]interface{}{"error": err.Error()})
	}

	return &WebServer{root: e, appc: appc}
}

// Listen starts the server on the configured address.
func Listen() error {
	return server.Start()
}

func (s *WebServer) Start() error {
	webcfg := s.appc.Config().Web
	addr := fmt.Sprintf("%s:%d", webcfg.Host, webcfg.Port)
	zap.S().Infof("Beckn AgriStack API listening on %s", addr)
	return s.root.Start(addr)
}

// Use attaches middleware to the root router.
func Use(m ...echo.MiddlewareFunc) {
	server.root.Use(m...)
}

func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET(path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST(path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.PUT(path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.DELETE(path, h, m...)
}
