// internal/app/features/schedules/create.go
package schedules

import (
	"context"
	"errors"
	"net/http"
	"time"

	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/htmlsanitize"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createScheduleRequest is the schedule creation payload. Meeting dates are
// RFC 3339 timestamps; each gets a generated occurrence id on insert.
type createScheduleRequest struct {
	MentorEmail     string   `json:"mentorEmail" validate:"required,email" label:"mentorEmail"`
	MenteeIDs       []string `json:"menteeIds" validate:"required,min=1" label:"menteeIds"`
	MeetingDates    []string `json:"meetingDates" validate:"required,min=1" label:"meetingDates"`
	MeetingTime     string   `json:"meetingTime" validate:"required" label:"meetingTime"`
	DurationMinutes int      `json:"durationMinutes" validate:"required,min=1" label:"durationMinutes"`
	Platform        string   `json:"platform" validate:"required" label:"platform"`
	MeetingLink     string   `json:"meetingLink"`
	Agenda          string   `json:"agenda"`
	PreferredDay    string   `json:"preferredDay"`
	PhaseID         int      `json:"phaseId" validate:"required,min=1" label:"phaseId"`
}

var weekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// HandleCreate handles POST /api/schedules.
//
// Resolves the mentor by email, verifies every mentee id, and inserts the
// series. Unlike status submission, a bad mentee id here fails the whole
// request: a schedule with phantom participants is never useful.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PreferredDay != "" && !weekdays[req.PreferredDay] {
		httpjson.Message(w, http.StatusBadRequest, "preferredDay must be a weekday name")
		return
	}

	menteeIDs := make([]primitive.ObjectID, 0, len(req.MenteeIDs))
	for _, raw := range req.MenteeIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "Invalid mentee id: "+raw)
			return
		}
		menteeIDs = append(menteeIDs, id)
	}

	occurrences := make([]models.MeetingOccurrence, 0, len(req.MeetingDates))
	for _, raw := range req.MeetingDates {
		d, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "Invalid meeting date: "+raw)
			return
		}
		occurrences = append(occurrences, models.MeetingOccurrence{Date: d.UTC()})
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mentor, err := h.Users.GetByEmail(ctx, req.MentorEmail)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Mentor not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading mentor for schedule", err, "Server error")
		return
	}

	users, err := h.Users.GetManyByIDs(ctx, menteeIDs)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error resolving schedule mentees", err, "Server error")
		return
	}
	for _, id := range menteeIDs {
		if _, ok := users[id]; !ok {
			h.Log.Warn("schedule references unknown mentee", zap.String("mentee_id", id.Hex()))
			httpjson.Message(w, http.StatusNotFound, "Mentee not found: "+id.Hex())
			return
		}
	}

	sched := models.MeetingSchedule{
		MentorUserID:    mentor.ID,
		MenteeUserIDs:   menteeIDs,
		Occurrences:     occurrences,
		MeetingTime:     req.MeetingTime,
		DurationMinutes: req.DurationMinutes,
		Platform:        htmlsanitize.Plain(req.Platform),
		MeetingLink:     htmlsanitize.Plain(req.MeetingLink),
		Agenda:          htmlsanitize.Sanitize(req.Agenda),
		PreferredDay:    req.PreferredDay,
		PhaseID:         req.PhaseID,
	}

	saved, err := h.Schedules.Create(ctx, sched)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating schedule", err, "Server error")
		return
	}

	httpjson.Write(w, http.StatusCreated, saved)
}
