package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/dmitrijs2005/artlog/internal/server/store"
	"github.com/gorilla/mux"
)

type resource[E models.Entity, R any] struct {
	c      *store.Collection[E, R]
	logger logging.Logger
}

func (h *resource[E, R]) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.c.List())
}

func (h *resource[E, R]) create(w http.ResponseWriter, r *http.Request) {
	var req R
	if !decode(w, r, &req) {
		return
	}

	e, err := h.c.Create(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "created", "id", e.EntityID())
	writeJSON(w, http.StatusCreated, e)
}

func (h *resource[E, R]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req R
	if !decode(w, r, &req) {
		return
	}

	e, err := h.c.Update(id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "updated", "id", id)
	writeJSON(w, http.StatusOK, e)
}

func (h *resource[E, R]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.c.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *resource[E, R]) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), err.Error())
	}
	writeDetail(w, status, err.Error())
}

func login(logger logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decode(w, r, &req) {
			return
		}
		if err := models.Validate(req); err != nil {
			writeDetail(w, statusOf(err), err.Error())
			return
		}
		logger.Info(r.Context(), "login", "username", req.Username)
		writeJSON(w, http.StatusOK, models.Identity{Username: req.Username, ProfilePicture: req.ProfilePicture})
	}
}

func statusOf(err error) int {
	var (
		verr     *models.ValidationError
		conflict *store.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
