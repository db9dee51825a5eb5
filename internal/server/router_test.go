package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharesurplus-backend/internal/token"
)

// Repositories stay nil here: these tests only cover routes that reject
// before any store access.
func newBareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Deps{
		Tokens:      token.NewService("secret"),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigins: []string{"https://sharesurplus.example"},
		Production:  true,
	})
}

func TestHealthRoute(t *testing.T) {
	r := newBareRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shareSurplus Server is Running", w.Body.String())
}

func TestCORSPreflightAllowsConfiguredOrigin(t *testing.T) {
	r := newBareRouter()

	req := httptest.NewRequest(http.MethodOptions, "/foods", nil)
	req.Header.Set("Origin", "https://sharesurplus.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://sharesurplus.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newBareRouter()

	req := httptest.NewRequest(http.MethodOptions, "/foods", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGatedRoutesRejectWithoutSession(t *testing.T) {
	r := newBareRouter()

	for _, path := range []string{"/myfoods?email=a@x.com", "/rqFoods?email=a@x.com"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestProductionCookiePolicy(t *testing.T) {
	r := newBareRouter()

	req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req) // no body: 400, no cookie set
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure, "production cookies are secure")
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
	assert.True(t, cookies[0].HttpOnly)
}
