package article

import (
	"encoding/json"
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	articleUC "pressdesk/internal/usecase/article"
)

// UpdateHandler applies a partial update: content, author, and magazine may
// each be changed independently. The title is write-once and not updatable.
type UpdateHandler struct{ Svc *articleUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Content    *string `json:"content"`
		AuthorID   *int64  `json:"author_id"`
		MagazineID *int64  `json:"magazine_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Update(r.Context(), id, articleUC.UpdateInput{
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		MagazineID: req.MagazineID,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}

// ContentHandler replaces the article body only.
type ContentHandler struct{ Svc *articleUC.Service }

func (h ContentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.UpdateContent(r.Context(), id, req.Content)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
