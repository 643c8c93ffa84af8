package article

import (
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	articleUC "pressdesk/internal/usecase/article"
)

type GetHandler struct{ Svc *articleUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}

type ListHandler struct{ Svc *articleUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

// CountHandler reports the total number of articles in the catalog.
type CountHandler struct{ Svc *articleUC.Service }

func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.Count(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]int64{"count": count})
}
