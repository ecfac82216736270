package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance and registers the API handlers.
func NewRouter(handler ServerInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	RegisterHandlers(e, handler)

	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}
