package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/middleware"
)

// ValidateJSON parses the request body as JSON with schema s, stores the
// validated value in the request context, and on failure aborts with a 400
// carrying the issues payload.
func ValidateJSON[T any](s veffect.Schema[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := veffect.ParseJSONReader(c.Request.Context(), s, c.Request.Body)
		if err != nil {
			if ve, ok := veffect.AsValidationError(err); ok {
				c.JSON(http.StatusBadRequest, middleware.ErrorPayload(ve))
				c.Abort()
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), v))
		c.Next()
	}
}

// GetValue fetches the validated value stored by ValidateJSON.
func GetValue[T any](c *gin.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request.Context())
}
