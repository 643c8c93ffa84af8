package magazine

import (
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	magazineUC "pressdesk/internal/usecase/magazine"
)

// ArticlesHandler lists every article published in the magazine.
type ArticlesHandler struct{ Svc *magazineUC.Service }

func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ArticlesIn(r.Context(), id)
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

// TitlesHandler lists the titles of every article in the magazine.
type TitlesHandler struct{ Svc *magazineUC.Service }

func (h TitlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	titles, err := h.Svc.ArticleTitles(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if titles == nil {
		titles = []string{}
	}

	respond.JSON(w, http.StatusOK, titles)
}

// ContributorsHandler lists the distinct authors who have published in the
// magazine.
type ContributorsHandler struct{ Svc *magazineUC.Service }

func (h ContributorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	authors, err := h.Svc.Contributors(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]authorDTO, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

// ContributingAuthorsHandler lists the authors with more than two articles in
// the magazine.
type ContributingAuthorsHandler struct{ Svc *magazineUC.Service }

func (h ContributingAuthorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	authors, err := h.Svc.ContributingAuthors(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]authorDTO, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
