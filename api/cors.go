package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type CORSConfig struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
}

func DefaultCORSConfig(origin string) CORSConfig {
	return CORSConfig{
		AllowOrigin: origin,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType,
		},
	}
}

// CORS sets the JSON content type and the cross-origin headers on every
// response and answers preflight requests for any path with an empty 200.
func CORS(config CORSConfig) echo.MiddlewareFunc {
	allowMethods := strings.Join(config.AllowMethods, ", ")
	allowHeaders := strings.Join(config.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			header.Set(echo.HeaderAccessControlAllowOrigin, config.AllowOrigin)
			header.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			header.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
