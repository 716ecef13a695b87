package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/middleware"
)

// ValidateJSON parses request JSON via schema s, stores the validated value in
// the request context on success, or returns 400 with the issues payload when
// validation fails.
func ValidateJSON[T any](s veffect.Schema[T]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := veffect.ParseJSONReader(c.Request().Context(), s, c.Request().Body)
			if err != nil {
				if ve, ok := veffect.AsValidationError(err); ok {
					return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(ve))
				}
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			ctx := middleware.ContextWithValue(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValue fetches the validated value stored by ValidateJSON.
func GetValue[T any](c echo.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request().Context())
}
