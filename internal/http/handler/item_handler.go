package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	domain "github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/domain/model"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/repository"
)

type ItemHandler struct {
	repo repository.ItemRepository
}

func NewItemHandler(repo repository.ItemRepository) *ItemHandler {
	return &ItemHandler{repo: repo}
}

type ItemRequest struct {
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]ItemResponse, 0, len(items))

	for _, item := range items {
		resp = append(resp, ItemResponse{
			ID:   item.ID,
			Name: item.Name,
			Qty:  item.Qty,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	// A body that fails to parse leaves the name empty and falls through
	// to the same validation error as a missing field.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	id, err := h.repo.Insert(r.Context(), req.Name, req.Qty)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	// Validation outranks lookup: a body without a name is a 400 even
	// when the id would not match a row.
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	id, ok := itemID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	affected, err := h.repo.Update(r.Context(), id, req.Name, req.Qty)
	if err != nil {
		writeError(w, err)
		return
	}

	if affected == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	affected, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if affected == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// itemID parses the trailing path segment. A non-numeric id can match no
// row, so the caller reports it the same way as a missing one.
func itemID(r *http.Request) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/items/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
