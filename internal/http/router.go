package http

import (
	"net/http"

	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/http/handler"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/web"
)

func NewRouter(itemHandler *handler.ItemHandler) http.Handler {
	mux := http.NewServeMux()

	// /api/items (create, list)
	mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			itemHandler.Create(w, r)
		case http.MethodGet:
			itemHandler.List(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// /api/items/{id} (update, delete)
	mux.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			itemHandler.Update(w, r)
		case http.MethodDelete:
			itemHandler.Delete(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// / (embedded single-page client)
	mux.HandleFunc("/", web.Index)

	return mux
}
