package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "propertyhub/internal/pkg/jwt"
)

func setupRouter(j *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("user_id"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	w := doRequest(setupRouter(j), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Missing Authorization header"}`, w.Body.String())
}

func TestJWTAuthWrongScheme(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	w := doRequest(setupRouter(j), "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	w := doRequest(setupRouter(j), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestJWTAuthExpiredToken(t *testing.T) {
	j := jwtsvc.New("secret", -time.Minute)
	token, err := j.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	w := doRequest(setupRouter(jwtsvc.New("secret", time.Hour)), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidTokenSetsContext(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	token, err := j.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	w := doRequest(setupRouter(j), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u-1","role":"admin"}`, w.Body.String())
}
