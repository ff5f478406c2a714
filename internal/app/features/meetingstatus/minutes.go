// internal/app/features/meetingstatus/minutes.go
package meetingstatus

import (
	"context"
	"errors"
	"net/http"

	statusstore "github.com/alumbridge/alumbridge/internal/app/store/meetingstatus"
	"github.com/alumbridge/alumbridge/internal/app/system/htmlsanitize"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
)

// HandleUpdateMinutes handles POST /api/meeting-status/minutes.
//
// Replaces the minutes text on an existing record and returns its approval to
// Pending. The reset happens even when the new text equals the old: a prior
// verdict never survives a content write.
func (h *Handler) HandleUpdateMinutes(w http.ResponseWriter, r *http.Request) {
	var req updateMinutesRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := statusIDFromHex(req.StatusID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid statusId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Statuses.UpdateMinutes(ctx, id, htmlsanitize.Plain(req.Minutes))
	if err != nil {
		if errors.Is(err, statusstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Status not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error updating meeting minutes", err, "Server error")
		return
	}

	httpjson.Message(w, http.StatusOK, "Minutes updated and approval reset to pending")
}
