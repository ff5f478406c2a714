// internal/app/features/meetingstatus/submit.go
package meetingstatus

import (
	"context"
	"errors"
	"net/http"

	statusstore "github.com/alumbridge/alumbridge/internal/app/store/meetingstatus"
	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/htmlsanitize"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/alumbridge/alumbridge/internal/domain/statusflow"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleSubmit handles POST /api/meeting-status/update.
//
// One submission covers one or many mentees on the same meeting occurrence
// and phase. Mentee ids that are malformed or do not resolve to a user are
// logged and skipped; the request fails only when no mentee survives. Each
// surviving mentee gets an upsert on (meeting_id, mentee_user_id, phase_id)
// that fully replaces the record's content and returns its approval to
// Pending.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PhaseID == 0 {
		httpjson.Message(w, http.StatusBadRequest, "phaseId is required")
		return
	}
	if req.PhaseID < 0 {
		httpjson.Message(w, http.StatusBadRequest, "Invalid phaseId")
		return
	}

	menteeIDs := req.menteeIDList()
	if inputval.TrimmedEmpty(req.MentorEmail) || len(menteeIDs) == 0 ||
		inputval.TrimmedEmpty(req.MeetingID) || inputval.TrimmedEmpty(req.Status) {
		httpjson.Message(w, http.StatusBadRequest, "Required fields missing")
		return
	}

	write := statusflow.Write{
		Status:          req.Status,
		MeetingMinutes:  htmlsanitize.Plain(req.MeetingMinutes),
		PostponedReason: htmlsanitize.Plain(req.reason()),
	}
	if err := write.Validate(); err != nil {
		httpjson.Message(w, http.StatusBadRequest, statusWriteMessage(err))
		return
	}

	meetingID, err := primitive.ObjectIDFromHex(req.MeetingID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid meetingId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	mentor, err := h.Users.GetByEmail(ctx, req.MentorEmail)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Mentor not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading mentor for status update", err, "Server error")
		return
	}

	written := make([]models.MeetingStatus, 0, len(menteeIDs))
	for _, raw := range menteeIDs {
		menteeID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.Log.Warn("skipping malformed mentee id in status update",
				zap.String("mentee_id", raw))
			continue
		}

		if _, err := h.Users.GetByID(ctx, menteeID); err != nil {
			if errors.Is(err, userstore.ErrNotFound) {
				h.Log.Warn("skipping unknown mentee in status update",
					zap.String("mentee_id", raw))
				continue
			}
			h.ErrLog.LogServerError(w, r, "database error resolving mentee for status update", err, "Server error")
			return
		}

		key := statusstore.NaturalKey{
			MeetingID:    meetingID,
			MenteeUserID: menteeID,
			PhaseID:      req.PhaseID,
		}
		saved, err := h.Statuses.Upsert(ctx, key, mentor.ID, write)
		if err != nil {
			// Earlier upserts in this batch stay committed; there is no
			// cross-mentee transaction.
			h.ErrLog.LogServerError(w, r, "database error upserting meeting status", err, "Server error")
			return
		}
		written = append(written, saved)
	}

	if len(written) == 0 {
		httpjson.Message(w, http.StatusBadRequest, "No valid mentee IDs processed")
		return
	}

	httpjson.Write(w, http.StatusCreated, updateStatusResponse{
		Message:  "Meeting status updated successfully",
		Count:    len(written),
		PhaseID:  req.PhaseID,
		Statuses: written,
	})
}

// statusWriteMessage maps statusflow validation errors onto the messages the
// clients expect.
func statusWriteMessage(err error) string {
	switch {
	case errors.Is(err, statusflow.ErrMinutesRequired):
		return "Meeting minutes required for completed status"
	case errors.Is(err, statusflow.ErrReasonRequired):
		return "Postponed reason required for postponed status"
	case errors.Is(err, statusflow.ErrUnknownStatus):
		return "Invalid status value"
	default:
		return "Invalid request"
	}
}
