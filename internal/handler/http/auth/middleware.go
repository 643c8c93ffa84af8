package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pressdesk/internal/handler/http/respond"
	authservice "pressdesk/internal/service/auth"
)

type ctxKey string

const ctxUser ctxKey = "user"

// publicPrefixes lists the endpoints reachable without a token: liveness,
// metrics scraping, and the login endpoint itself.
var publicPrefixes = []string{
	"/healthz",
	"/readyz",
	"/livez",
	"/metrics",
	"/auth/",
}

// IsPublicEndpoint reports whether path is reachable without authentication.
func IsPublicEndpoint(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Authz requires a valid bearer token for every method on protected
// endpoints, GET included.
func Authz(svc *authservice.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			user, err := bearerSubject(r.Header.Get("Authorization"), svc)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated subject, or "" for requests that
// arrived through a public endpoint.
func UserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(ctxUser).(string); ok {
		return user
	}
	return ""
}

func bearerSubject(authz string, svc *authservice.Service) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	return svc.VerifyToken(strings.TrimPrefix(authz, prefix))
}
