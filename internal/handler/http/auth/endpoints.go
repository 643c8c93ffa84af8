// Package auth provides the login endpoint and the JWT authorization
// middleware guarding the rest of the API.
package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pressdesk/internal/handler/http/requestid"
	"pressdesk/internal/handler/http/respond"
	authservice "pressdesk/internal/service/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// LoginHandler authenticates a username/password pair and issues a JWT.
type LoginHandler struct{ Svc *authservice.Service }

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RecordAuthRequest("failure")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	creds := authservice.Credentials{Username: req.Username, Password: req.Password}
	if err := h.Svc.Authenticate(r.Context(), creds); err != nil {
		logger.Warn("authentication failed",
			slog.String("reason", "invalid_credentials"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("failure")
		respond.SafeError(w, http.StatusUnauthorized, err)
		return
	}

	token, err := h.Svc.IssueToken(req.Username)
	if err != nil {
		logger.Error("token generation failed", slog.Any("error", err))
		RecordAuthRequest("failure")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("authentication successful",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	RecordAuthRequest("success")
	respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Register mounts the auth endpoints on the mux.
func Register(mux *http.ServeMux, svc *authservice.Service) {
	mux.Handle("POST /auth/login", LoginHandler{Svc: svc})
}
