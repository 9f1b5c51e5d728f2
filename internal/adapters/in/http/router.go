package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"driverapp/api"
	"driverapp/internal/devbackend/auth"
)

// NewEcho builds the HTTP application: contract routes behind request
// validation, the OpenAPI document on /openapi.json and a Swagger UI reading it.
func NewEcho(si ServerInterface, tokens auth.TokenVerifier, level log.Lvl) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(level)
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/openapi.json", func(c echo.Context) error {
		body, jsonErr := api.JSON()
		if jsonErr != nil {
			return jsonErr
		}
		return c.JSONBlob(http.StatusOK, body)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	RegisterHandlers(e, si, auth.BearerAuth(tokens))
	return e, nil
}
