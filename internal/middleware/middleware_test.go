package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/pkg/token"
)

func scorerRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.POST("/balls", ScorerMiddleware(secret, ""), func(c *gin.Context) {
		id, err := GetScorerIDFromContext(c)
		if err != nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, gin.H{"scorer_id": id})
	})
	return r
}

func post(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/balls", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScorerMiddleware_Disabled(t *testing.T) {
	w := post(scorerRouter(""), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestScorerMiddleware(t *testing.T) {
	const secret = "s3cret"
	r := scorerRouter(secret)

	assert.Equal(t, http.StatusUnauthorized, post(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, "Bearer not-a-jwt").Code)

	viewer, err := token.GenerateJWT(3, "viewer", secret, "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, post(r, "Bearer "+viewer).Code)

	scorer, err := token.GenerateJWT(3, token.RoleScorer, secret, "", time.Minute)
	require.NoError(t, err)
	w := post(r, "Bearer "+scorer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"scorer_id":3}`, w.Body.String())
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	r := scorerRouter("")
	req := httptest.NewRequest(http.MethodPost, "/balls", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAdminMiddleware(t *testing.T) {
	const secret = "s3cret"
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/balls", AdminMiddleware(secret, "issuer-x"), func(c *gin.Context) {
		role, _ := c.Get(AuthRoleKey)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})

	assert.Equal(t, http.StatusUnauthorized, post(r, "").Code)

	scorer, err := token.GenerateJWT(4, token.RoleScorer, secret, "issuer-x", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, post(r, "Bearer "+scorer).Code)

	wrongIssuer, err := token.GenerateJWT(4, token.RoleAdmin, secret, "someone-else", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, post(r, "Bearer "+wrongIssuer).Code)

	admin, err := token.GenerateJWT(4, token.RoleAdmin, secret, "issuer-x", time.Minute)
	require.NoError(t, err)
	w := post(r, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestAdminMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/balls", AdminMiddleware("", ""), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Equal(t, http.StatusNoContent, post(r, "").Code)
}
