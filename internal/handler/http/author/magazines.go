package author

import (
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	authorUC "pressdesk/internal/usecase/author"
)

// MagazinesHandler lists the distinct magazines the author has published in.
type MagazinesHandler struct{ Svc *authorUC.Service }

func (h MagazinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	magazines, err := h.Svc.MagazinesFor(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]magazineDTO, 0, len(magazines))
	for _, m := range magazines {
		out = append(out, toMagazineDTO(m))
	}
	respond.JSON(w, http.StatusOK, out)
}

// TopicAreasHandler lists the distinct categories the author has written in.
type TopicAreasHandler struct{ Svc *authorUC.Service }

func (h TopicAreasHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	areas, err := h.Svc.TopicAreas(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if areas == nil {
		areas = []string{}
	}

	respond.JSON(w, http.StatusOK, areas)
}
