package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpauth "pressdesk/internal/handler/http/auth"
	authservice "pressdesk/internal/service/auth"
)

func newService() *authservice.Service {
	return authservice.NewService("test-secret", time.Hour, "editor", "s3cret-pass")
}

func postLogin(t *testing.T, svc *authservice.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	httpauth.LoginHandler{Svc: svc}.ServeHTTP(rec, req)
	return rec
}

func TestLogin_success(t *testing.T) {
	svc := newService()
	rec := postLogin(t, svc, `{"username":"editor","password":"s3cret-pass"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Token == "" {
		t.Fatalf("body = %q err=%v", rec.Body.String(), err)
	}

	// The issued token must verify against the same service.
	sub, err := svc.VerifyToken(body.Token)
	if err != nil || sub != "editor" {
		t.Fatalf("VerifyToken = (%q, %v)", sub, err)
	}
}

func TestLogin_badCredentials(t *testing.T) {
	rec := postLogin(t, newService(), `{"username":"editor","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogin_malformedBody(t *testing.T) {
	rec := postLogin(t, newService(), `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
