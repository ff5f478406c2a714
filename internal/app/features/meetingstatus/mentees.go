// internal/app/features/meetingstatus/mentees.go
package meetingstatus

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/normalize"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"github.com/alumbridge/alumbridge/internal/domain/models"
)

// ServeMenteesByMentor handles GET /api/meeting-status/mentor/mentees.
//
// Query: email (required), phaseId (optional; omitted means any phase).
// Responds {"assignedMentees":[{id,name,email}, …]}; the list is empty when
// the mentor has no assignment record.
func (h *Handler) ServeMenteesByMentor(w http.ResponseWriter, r *http.Request) {
	email := normalize.QueryParam(r.URL.Query().Get("email"))
	if inputval.TrimmedEmpty(email) {
		httpjson.Message(w, http.StatusBadRequest, "Mentor email required")
		return
	}

	phaseID := 0
	if raw := normalize.QueryParam(r.URL.Query().Get("phaseId")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpjson.Message(w, http.StatusBadRequest, "Invalid phaseId")
			return
		}
		phaseID = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mentor, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Mentor not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading mentor by email", err, "Server error")
		return
	}

	menteeIDs, err := h.Assignments.MenteesForMentor(ctx, mentor.ID, phaseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading mentor assignment", err, "Server error")
		return
	}

	users, err := h.Users.GetManyByIDs(ctx, menteeIDs)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading assigned mentees", err, "Server error")
		return
	}

	// Preserve assignment order; ids whose user vanished are dropped.
	mentees := make([]models.UserSnapshot, 0, len(menteeIDs))
	for _, id := range menteeIDs {
		if u, ok := users[id]; ok {
			mentees = append(mentees, *userstore.Snapshot(u))
		}
	}

	httpjson.Write(w, http.StatusOK, menteesResponse{AssignedMentees: mentees})
}
