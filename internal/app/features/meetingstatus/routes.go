// internal/app/features/meetingstatus/routes.go
package meetingstatus

import (
	"github.com/alumbridge/alumbridge/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/meeting-status.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/mentor/mentees", h.ServeMenteesByMentor)
	r.Get("/mentee/by-email", h.ServeMenteeByEmail)

	r.Post("/update", h.HandleSubmit)
	r.Post("/minutes", h.HandleUpdateMinutes)

	r.Get("/all", h.ServeListAll)
	r.Get("/by-meeting", h.ServeListByMeeting)

	// Only roster members may record a verdict.
	r.Post("/approval", authz.RequireApprover(h.Approvers, h.Log, h.HandleApproval))

	return r
}
