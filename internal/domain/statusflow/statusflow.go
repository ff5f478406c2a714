// internal/domain/statusflow/statusflow.go

// Package statusflow holds the pure rules for meeting-status writes and
// approval transitions. Stores and handlers apply these rules; nothing in
// this package touches the database.
package statusflow

import (
	"errors"
	"strings"

	"github.com/alumbridge/alumbridge/internal/domain/models"
)

var (
	// ErrUnknownStatus is returned for a status outside the five-value enum.
	ErrUnknownStatus = errors.New("unknown meeting status")

	// ErrMinutesRequired is returned when a Completed write carries no minutes.
	ErrMinutesRequired = errors.New("meeting minutes required for completed status")

	// ErrReasonRequired is returned when a Postponed write carries no reason.
	ErrReasonRequired = errors.New("postponed reason required for postponed status")

	// ErrBadApprovalAction is returned for approval actions other than
	// Approved or Rejected. Pending is deliberately not an action: records
	// return to Pending only through content writes.
	ErrBadApprovalAction = errors.New(`approval action must be "Approved" or "Rejected"`)
)

// Write is one validated status submission for a single mentee.
type Write struct {
	Status          string
	MeetingMinutes  string
	PostponedReason string // first non-empty of the two accepted reason fields
}

// Validate checks the status value and its status-dependent payload rules.
func (w Write) Validate() error {
	if !models.IsValidStatus(w.Status) {
		return ErrUnknownStatus
	}
	switch w.Status {
	case models.StatusCompleted:
		if strings.TrimSpace(w.MeetingMinutes) == "" {
			return ErrMinutesRequired
		}
	case models.StatusPostponed:
		if strings.TrimSpace(w.Reason()) == "" {
			return ErrReasonRequired
		}
	}
	return nil
}

// Reason returns the postponement reason for this write. The submit payload
// accepts the reason under two field names; callers put the first non-empty
// one here.
func (w Write) Reason() string {
	return w.PostponedReason
}

// Apply replaces the content of a MeetingStatus with the write. It is a full
// replace, not a patch: minutes and reason are cleared first and repopulated
// only as the status dictates, and the approval always returns to Pending.
// Identity fields (ID, meeting, mentor, mentee, phase, timestamps) are left
// for the store to manage.
func Apply(current models.MeetingStatus, w Write) models.MeetingStatus {
	next := current
	next.Status = w.Status
	next.StatusApproval = models.ApprovalPending
	next.MeetingMinutes = ""
	next.PostponedReason = ""

	switch w.Status {
	case models.StatusCompleted:
		next.MeetingMinutes = w.MeetingMinutes
	case models.StatusPostponed:
		// The reason is stored in meeting_minutes (the field every reader
		// consumes) and mirrored into postponed_reason.
		next.MeetingMinutes = w.Reason()
		next.PostponedReason = w.Reason()
	}
	return next
}

// ValidateApprovalAction checks a coordinator verdict. Only Approved and
// Rejected are accepted; every other value, including Pending, is rejected.
func ValidateApprovalAction(action string) error {
	if action != models.ApprovalApproved && action != models.ApprovalRejected {
		return ErrBadApprovalAction
	}
	return nil
}
