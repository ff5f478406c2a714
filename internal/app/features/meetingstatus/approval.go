// internal/app/features/meetingstatus/approval.go
package meetingstatus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	statusstore "github.com/alumbridge/alumbridge/internal/app/store/meetingstatus"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
	"github.com/alumbridge/alumbridge/internal/domain/statusflow"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleApproval handles POST /api/meeting-status/approval.
//
// Records a coordinator verdict on one status record. Only Approved and
// Rejected are accepted; records return to Pending exclusively through
// content writes. The route is gated by the approver roster.
func (h *Handler) HandleApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.StatusID == "" || statusflow.ValidateApprovalAction(req.Action) != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request")
		return
	}

	id, err := statusIDFromHex(req.StatusID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Statuses.SetApproval(ctx, id, req.Action); err != nil {
		if errors.Is(err, statusstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Status not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error setting status approval", err, "Server error")
		return
	}

	httpjson.Message(w, http.StatusOK,
		fmt.Sprintf("Status %s successfully", strings.ToLower(req.Action)))
}

// statusIDFromHex parses a status id from its hex form.
func statusIDFromHex(raw string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(strings.TrimSpace(raw))
}
