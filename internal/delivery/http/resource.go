package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

// ResourceService is the CRUD surface of one table.
type ResourceService interface {
	Resource() entity.Resource
	List(ctx context.Context) ([]entity.Row, error)
	Get(ctx context.Context, id int64) (entity.Row, error)
	Create(ctx context.Context, values map[string]any) (int64, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// resourceHandler serves the uniform route set for one resource.
type resourceHandler struct {
	svc ResourceService
	res entity.Resource
}

func mountResource(r chi.Router, svc ResourceService) {
	h := &resourceHandler{svc: svc, res: svc.Resource()}

	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

func (h *resourceHandler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		writeStoreError(w, r, "Failed to fetch "+h.res.Plural, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *resourceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}

	row, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}
	if err != nil {
		writeStoreError(w, r, "Failed to fetch "+h.res.Plural+" by ID", err, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *resourceHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := decodeFields(w, r, h.res.CreateColumns)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.svc.Create(r.Context(), values)
	if err != nil {
		writeStoreError(w, r, "Failed to create "+h.res.Plural, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": h.res.CreatedMessage(),
	})
}

func (h *resourceHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}

	values, err := decodeFields(w, r, h.res.UpdateColumns)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err = h.svc.Update(r.Context(), id, values)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}
	if err != nil {
		writeStoreError(w, r, "Failed to update "+h.res.Plural, err, "id", id)
		return
	}
	writeMessage(w, http.StatusOK, h.res.UpdatedMessage())
}

func (h *resourceHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}

	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.res.NotFoundMessage())
		return
	}
	if err != nil {
		writeStoreError(w, r, "Failed to delete "+h.res.Plural, err, "id", id)
		return
	}
	writeMessage(w, http.StatusOK, h.res.DeletedMessage())
}
