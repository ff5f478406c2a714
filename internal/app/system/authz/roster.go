// internal/app/system/authz/roster.go

// Package authz gates approval writes behind a configuration-supplied roster
// of coordinator emails. The requester identifies themselves with the
// X-Approver-Email header; the value is compared in plaintext against the
// roster, which is the trust model the surrounding platform uses. An empty
// roster disables the gate.
package authz

import (
	"net/http"
	"strings"

	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"github.com/alumbridge/alumbridge/internal/app/system/normalize"
	"go.uber.org/zap"
)

// ApproverHeader names the header carrying the requester's email.
const ApproverHeader = "X-Approver-Email"

// Roster is the set of emails allowed to approve or reject meeting statuses.
type Roster struct {
	emails map[string]struct{}
}

// NewRoster builds a Roster from a comma-separated email list. Entries are
// normalized; empty entries are dropped.
func NewRoster(csv string) *Roster {
	r := &Roster{emails: make(map[string]struct{})}
	for _, e := range strings.Split(csv, ",") {
		if n := normalize.Email(e); n != "" {
			r.emails[n] = struct{}{}
		}
	}
	return r
}

// Empty reports whether no approver emails are configured.
func (r *Roster) Empty() bool {
	return len(r.emails) == 0
}

// Allows reports whether the given email is on the roster.
func (r *Roster) Allows(email string) bool {
	_, ok := r.emails[normalize.Email(email)]
	return ok
}

// RequireApprover wraps a handler so only roster members reach it. With an
// empty roster the wrapped handler is served directly.
func RequireApprover(roster *Roster, logger *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if roster == nil || roster.Empty() {
			next(w, r)
			return
		}
		email := r.Header.Get(ApproverHeader)
		if !roster.Allows(email) {
			logger.Warn("approval request from unlisted email",
				zap.String("email", normalize.Email(email)))
			httpjson.Message(w, http.StatusForbidden, "Not authorized to review statuses")
			return
		}
		next(w, r)
	}
}
