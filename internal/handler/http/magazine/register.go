package magazine

import (
	"net/http"

	magazineUC "pressdesk/internal/usecase/magazine"
)

// Register mounts all magazine endpoints on the mux. The literal
// top-publisher segment takes precedence over the {id} pattern.
func Register(mux *http.ServeMux, svc *magazineUC.Service) {
	mux.Handle("GET /magazines", ListHandler{svc})
	mux.Handle("POST /magazines", CreateHandler{svc})
	mux.Handle("GET /magazines/top-publisher", TopPublisherHandler{svc})
	mux.Handle("GET /magazines/{id}", GetHandler{svc})
	mux.Handle("PUT /magazines/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /magazines/{id}", DeleteHandler{svc})

	mux.Handle("GET /magazines/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /magazines/{id}/article-titles", TitlesHandler{svc})
	mux.Handle("GET /magazines/{id}/contributors", ContributorsHandler{svc})
	mux.Handle("GET /magazines/{id}/contributing-authors", ContributingAuthorsHandler{svc})
}
