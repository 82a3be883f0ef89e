package portfolio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// envelope is the JSON response shape of the dashboard API, mirroring the
// (data, error) tuple the resource services return.
type envelope struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// jsonData writes a successful API response.
func jsonData(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Data: data})
}

// jsonError writes a failed API response with the kind tag and an HTTP
// status derived from it.
func jsonError(c echo.Context, err *Error) error {
	code := http.StatusBadGateway
	switch err.Kind {
	case KindNotFound:
		code = http.StatusNotFound
	case KindValidation:
		code = http.StatusBadRequest
	case KindPermission:
		code = http.StatusForbidden
	}
	return c.JSON(code, envelope{Error: err.Message, Kind: err.Kind.String()})
}
