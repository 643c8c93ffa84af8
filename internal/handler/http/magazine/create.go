package magazine

import (
	"encoding/json"
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	magazineUC "pressdesk/internal/usecase/magazine"
)

type CreateHandler struct{ Svc *magazineUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	magazine, err := h.Svc.Create(r.Context(), magazineUC.CreateInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(magazine))
}

// UpdateHandler renames and/or recategorizes a magazine. Absent fields are
// left untouched.
type UpdateHandler struct{ Svc *magazineUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	magazine, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	if req.Name != nil {
		if magazine, err = h.Svc.Rename(r.Context(), id, *req.Name); err != nil {
			respond.SafeError(w, statusFor(err), err)
			return
		}
	}
	if req.Category != nil {
		if magazine, err = h.Svc.Recategorize(r.Context(), id, *req.Category); err != nil {
			respond.SafeError(w, statusFor(err), err)
			return
		}
	}

	respond.JSON(w, http.StatusOK, toDTO(magazine))
}

type DeleteHandler struct{ Svc *magazineUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
