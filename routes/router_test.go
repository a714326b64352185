package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/DhavalSuthar-24/crease/config"
	_ "github.com/DhavalSuthar-24/crease/docs"
	"github.com/DhavalSuthar-24/crease/internal/testutil"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, _ := SetupRoutes(testutil.NewDB(t), &config.Config{})
	return r
}

// swaggerPath turns "/api/fixtures/:id/state" into "/fixtures/{id}/state".
func swaggerPath(ginPath string) string {
	p := strings.TrimPrefix(ginPath, "/api")
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "{" + part[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}

func TestSwaggerDocMatchesRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	registered := make(map[string]bool)
	for _, route := range newEngine(t).Routes() {
		if !strings.HasPrefix(route.Path, "/api/") {
			continue
		}
		key := strings.ToLower(route.Method) + " " + swaggerPath(route.Path)
		registered[key] = true

		ops, ok := doc.Paths[swaggerPath(route.Path)]
		if assert.True(t, ok, "route %s has no swagger path", key) {
			_, ok = ops[strings.ToLower(route.Method)]
			assert.True(t, ok, "route %s has no swagger operation", key)
		}
	}

	for path, ops := range doc.Paths {
		for method := range ops {
			assert.True(t, registered[method+" "+path], "swagger documents %s %s but no route serves it", method, path)
		}
	}
	assert.Len(t, registered, 20)
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
