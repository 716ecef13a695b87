package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	ginmw "github.com/chrismichaelps/veffect-sub000/middleware/gin"
	s "github.com/chrismichaelps/veffect-sub000/schema"
)

func userRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	schema := s.Object().
		Field("name", s.Of[string](s.String().Min(2))).
		Field("age", s.Of[float64](s.Number().Int().Min(0))).
		MustBuild()

	r := gin.New()
	r.POST("/users", ginmw.ValidateJSON[map[string]any](schema), func(c *gin.Context) {
		v, ok := ginmw.GetValue[map[string]any](c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "value not stored"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": v["name"]})
	})
	return r
}

func TestValidateJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"alice","age":30}`))
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alice"`)
}

func TestValidateJSON_ValidationFailure(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"a","age":-1}`))
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"issues"`)
	assert.Contains(t, body, `"/name"`)
	assert.Contains(t, body, `"/age"`)
}

func TestValidateJSON_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":`))
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
