package author

import (
	"encoding/json"
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	"pressdesk/internal/observability/metrics"
	authorUC "pressdesk/internal/usecase/author"
)

// ArticlesHandler lists every article written by the author.
type ArticlesHandler struct{ Svc *authorUC.Service }

func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ArticlesBy(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]articleDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

// AddArticleHandler creates a new article under the author in the given
// magazine. The article starts with an empty body.
type AddArticleHandler struct{ Svc *authorUC.Service }

func (h AddArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		MagazineID int64  `json:"magazine_id"`
		Title      string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.AddArticle(r.Context(), id, req.MagazineID, req.Title)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	metrics.RecordArticleCreated()
	respond.JSON(w, http.StatusCreated, toArticleDTO(article))
}
