// internal/app/features/schedules/list.go
package schedules

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	schedulestore "github.com/alumbridge/alumbridge/internal/app/store/schedules"
	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/normalize"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type scheduleListResponse struct {
	Schedules []models.MeetingSchedule `json:"schedules"`
}

// ServeList handles GET /api/schedules.
//
// Query: mentorEmail (required), phaseId (optional; omitted lists across
// phases). Newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	email := normalize.QueryParam(r.URL.Query().Get("mentorEmail"))
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
		h.ErrLog.LogServerError(w, r, "database error loading mentor for schedule list", err, "Server error")
		return
	}

	schedules, err := h.Schedules.ListByMentor(ctx, mentor.ID, phaseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing schedules", err, "Server error")
		return
	}
	if schedules == nil {
		schedules = []models.MeetingSchedule{}
	}

	httpjson.Write(w, http.StatusOK, scheduleListResponse{Schedules: schedules})
}

type setScheduleStatusRequest struct {
	Status string `json:"status" validate:"required" label:"status"`
}

// HandleSetStatus handles POST /api/schedules/{id}/status.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req setScheduleStatusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.IsValidScheduleStatus(req.Status) {
		httpjson.Message(w, http.StatusBadRequest, "Invalid schedule status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Schedules.SetStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, schedulestore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Schedule not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error updating schedule status", err, "Server error")
		return
	}

	httpjson.Message(w, http.StatusOK, "Schedule status updated")
}
