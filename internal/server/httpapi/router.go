// Package httpapi serves the store over HTTP+JSON: one collection resource
// per kind plus POST /login. Failures carry a JSON body {"detail": "..."}.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/dmitrijs2005/artlog/internal/server/store"
	"github.com/gorilla/mux"
)

// NewRouter wires every route of the service.
func NewRouter(s *store.Store, logger logging.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))

	r.HandleFunc("/login", login(logger)).Methods(http.MethodPost)

	mount(r, models.KindArtists, s.Artists, logger)
	mount(r, models.KindArtworks, s.Artworks, logger)
	mount(r, models.KindExhibitions, s.Exhibitions, logger)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

func mount[E models.Entity, R any](r *mux.Router, kind string, c *store.Collection[E, R], logger logging.Logger) {
	h := &resource[E, R]{c: c, logger: logger.With("kind", kind)}

	r.HandleFunc("/"+kind+"/", h.list).Methods(http.MethodGet)
	r.HandleFunc("/"+kind+"/", h.create).Methods(http.MethodPost)
	r.HandleFunc("/"+kind+"/{id:[0-9]+}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/"+kind+"/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}
