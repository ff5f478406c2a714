// internal/app/features/schedules/routes.go
package schedules

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/schedules.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Post("/{id}/status", h.HandleSetStatus)

	return r
}
