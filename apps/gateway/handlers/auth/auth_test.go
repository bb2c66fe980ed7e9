package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	internalauth "vershash/internal/auth"
	"vershash/pkg/config"
	"vershash/pkg/logger"
	"vershash/pkg/reply"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")

	lg := logger.New("error")
	reply.New(reply.Params{Logger: lg})

	cfg := config.NewConfig()
	svc := internalauth.New(internalauth.Params{Config: cfg, Logger: lg})
	h := New(Params{Logger: lg, AuthService: svc})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r := newTestRouter(t)

	w := postLogin(r, `{"username":"admin","password":"admin"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Payload struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Payload.Token == "" {
		t.Fatal("expected a token in the body")
	}
	if resp.Payload.User.Username != "admin" {
		t.Fatalf("expected user echo, got %q", resp.Payload.User.Username)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "auth-token=") {
		t.Fatalf("expected auth-token cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("cookie must be httpOnly, got %q", cookie)
	}
	if !strings.Contains(cookie, "SameSite=Lax") {
		t.Fatalf("cookie must be SameSite=Lax, got %q", cookie)
	}
}

// Wrong username and wrong password must be indistinguishable.
func TestLoginFailuresAreIdentical(t *testing.T) {
	r := newTestRouter(t)

	badUser := postLogin(r, `{"username":"ghost","password":"admin"}`)
	badPass := postLogin(r, `{"username":"admin","password":"nope"}`)

	if badUser.Code != http.StatusUnauthorized || badPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", badUser.Code, badPass.Code)
	}
	if badUser.Body.String() != badPass.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", badUser.Body.String(), badPass.Body.String())
	}
}

func TestLoginMissingFieldNamesIt(t *testing.T) {
	r := newTestRouter(t)

	w := postLogin(r, `{"username":"admin"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "password") {
		t.Fatalf("400 body must name the missing field: %s", w.Body.String())
	}
}
