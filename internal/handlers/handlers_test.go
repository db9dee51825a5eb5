package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sharesurplus-backend/internal/middleware"
	"sharesurplus-backend/internal/server"
	"sharesurplus-backend/internal/token"
)

const testSecret = "test-signing-secret"

type testEnv struct {
	router   *gin.Engine
	listings *fakeListingRepo
	requests *fakeRequestRepo
	users    *fakeUserRepo
	tokens   *token.Service
}

// newTestEnv wires the real router against in-memory fakes so each test
// exercises routing, middleware, and handlers together.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		listings: &fakeListingRepo{},
		requests: &fakeRequestRepo{},
		users:    &fakeUserRepo{},
		tokens:   token.NewService(testSecret),
	}
	env.router = server.NewRouter(server.Deps{
		Listings:    env.listings,
		Requests:    env.requests,
		Users:       env.users,
		Tokens:      env.tokens,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigins: []string{"http://localhost:5173"},
		Production:  false,
	})
	return env
}

// do performs a request with an optional JSON body and session cookie.
func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// sessionCookie mints a valid session cookie for email.
func (e *testEnv) sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	tok, err := e.tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: middleware.CookieName, Value: tok}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
