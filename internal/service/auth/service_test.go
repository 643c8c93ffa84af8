package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pressdesk/internal/service/auth"
)

func newService(ttl time.Duration) *auth.Service {
	return auth.NewService("test-secret", ttl, "editor", "s3cret-pass")
}

func TestAuthenticate(t *testing.T) {
	svc := newService(time.Hour)

	tests := []struct {
		name    string
		creds   auth.Credentials
		wantErr bool
	}{
		{"valid", auth.Credentials{Username: "editor", Password: "s3cret-pass"}, false},
		{"wrong password", auth.Credentials{Username: "editor", Password: "nope"}, true},
		{"wrong user", auth.Credentials{Username: "intruder", Password: "s3cret-pass"}, true},
		{"empty", auth.Credentials{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authenticate(context.Background(), tt.creds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate err=%v, wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Fatalf("err=%v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newService(time.Hour)

	token, err := svc.IssueToken("editor")
	if err != nil {
		t.Fatalf("IssueToken err=%v", err)
	}

	sub, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken err=%v", err)
	}
	if sub != "editor" {
		t.Fatalf("subject = %q, want editor", sub)
	}
}

func TestVerifyToken_wrongSecret(t *testing.T) {
	token, err := newService(time.Hour).IssueToken("editor")
	if err != nil {
		t.Fatalf("IssueToken err=%v", err)
	}

	other := auth.NewService("different-secret", time.Hour, "editor", "s3cret-pass")
	if _, err := other.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
}

func TestVerifyToken_expired(t *testing.T) {
	svc := newService(-time.Minute)

	token, err := svc.IssueToken("editor")
	if err != nil {
		t.Fatalf("IssueToken err=%v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
}

func TestVerifyToken_garbage(t *testing.T) {
	svc := newService(time.Hour)
	if _, err := svc.VerifyToken("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
}
