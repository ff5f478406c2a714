// internal/app/features/meetingstatus/list.go
package meetingstatus

import (
	"context"
	"net/http"

	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/normalize"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeListAll handles GET /api/meeting-status/all.
//
// Returns every status record, most recent first, each carrying mentor and
// mentee snapshots.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	statuses, err := h.Statuses.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing meeting statuses", err, "Server error")
		return
	}

	httpjson.Write(w, http.StatusOK, statusListResponse{Statuses: statuses})
}

// ServeListByMeeting handles GET /api/meeting-status/by-meeting.
//
// Query: meetingId and menteeId, both required.
func (h *Handler) ServeListByMeeting(w http.ResponseWriter, r *http.Request) {
	rawMeeting := normalize.QueryParam(r.URL.Query().Get("meetingId"))
	rawMentee := normalize.QueryParam(r.URL.Query().Get("menteeId"))
	if rawMeeting == "" || rawMentee == "" {
		httpjson.Message(w, http.StatusBadRequest, "Required params missing")
		return
	}

	meetingID, err := primitive.ObjectIDFromHex(rawMeeting)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid meetingId")
		return
	}
	menteeID, err := primitive.ObjectIDFromHex(rawMentee)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid menteeId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	statuses, err := h.Statuses.ListByMeetingAndMentee(ctx, meetingID, menteeID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing statuses by meeting", err, "Server error")
		return
	}

	httpjson.Write(w, http.StatusOK, statusListResponse{Statuses: statuses})
}
