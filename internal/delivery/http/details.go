package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/mo"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

const msgCustomerWithAddressesNotFound = "Customer with addresses not found"

func (h *Handler) handleCustomerFullDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgCustomerWithAddressesNotFound)
		return
	}

	row, err := h.details.CustomerFullDetails(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgCustomerWithAddressesNotFound)
		return
	}
	if err != nil {
		writeStoreError(w, r, "Failed to fetch customer with addresses", err, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *Handler) handleProductsFullDetails(w http.ResponseWriter, r *http.Request) {
	rows, err := h.details.ProductsFullDetails(r.Context())
	if err != nil {
		writeStoreError(w, r, "Failed to fetch products with full details", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleInventoryFullDetails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.InventoryFilter{
		ProductName: mo.EmptyableToOption(q.Get("product_name")),
		Page:        parsePage(q),
	}

	rows, err := h.details.InventoryFullDetails(r.Context(), filter)
	if err != nil {
		writeStoreError(w, r, "Failed to fetch inventory with full details", err,
			"page", filter.Page.Number, "limit", filter.Page.Size)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// listByParent serves the relationship listings. They never answer 404:
// an unknown or malformed parent id yields an empty list.
func (h *Handler) listByParent(what string, list func(ctx context.Context, id int64) ([]entity.Row, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, []entity.Row{})
			return
		}

		rows, err := list(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, "Failed to fetch "+what, err, "id", id)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
