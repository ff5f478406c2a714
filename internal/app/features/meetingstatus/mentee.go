// internal/app/features/meetingstatus/mentee.go
package meetingstatus

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/inputval"
	"github.com/alumbridge/alumbridge/internal/app/system/normalize"
	"github.com/alumbridge/alumbridge/internal/app/system/timeouts"
)

// ServeMenteeByEmail handles GET /api/meeting-status/mentee/by-email.
//
// Query: email (required). Responds with the mentee's {id,name,email}.
func (h *Handler) ServeMenteeByEmail(w http.ResponseWriter, r *http.Request) {
	email := normalize.QueryParam(r.URL.Query().Get("email"))
	if inputval.TrimmedEmpty(email) {
		httpjson.Message(w, http.StatusBadRequest, "Mentee email required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	mentee, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Mentee not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading mentee by email", err, "Server error")
		return
	}

	httpjson.Write(w, http.StatusOK, userstore.Snapshot(*mentee))
}
