package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressdesk/internal/handler/http/respond"
	"pressdesk/internal/observability/metrics"
	articleUC "pressdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc *articleUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		AuthorID   int64  `json:"author_id"`
		MagazineID int64  `json:"magazine_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.AuthorID == 0 || req.MagazineID == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("author_id and magazine_id are required"))
		return
	}

	article, err := h.Svc.Create(r.Context(), articleUC.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		MagazineID: req.MagazineID,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	metrics.RecordArticleCreated()
	respond.JSON(w, http.StatusCreated, toDTO(article))
}
