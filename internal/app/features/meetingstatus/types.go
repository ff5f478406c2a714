// internal/app/features/meetingstatus/types.go
package meetingstatus

import "github.com/alumbridge/alumbridge/internal/domain/models"

// updateStatusRequest is the submit payload. The postponement reason is
// accepted under both field names the clients use; the first non-empty wins.
type updateStatusRequest struct {
	MentorEmail string   `json:"mentorEmail"`
	MenteeID    string   `json:"menteeId"`
	MenteeIDs   []string `json:"menteeIds"`
	MeetingID   string   `json:"meetingId"`
	Status      string   `json:"status"`

	MeetingMinutes       string `json:"meetingMinutes"`
	PostponedReasonModel string `json:"postponed_reason"`
	PostponedReasonForm  string `json:"postponedReason"`

	PhaseID int `json:"phaseId"`
}

// menteeIDList returns the candidate mentee ids: the list form when present,
// otherwise the single-id form.
func (req updateStatusRequest) menteeIDList() []string {
	if len(req.MenteeIDs) > 0 {
		return req.MenteeIDs
	}
	if req.MenteeID != "" {
		return []string{req.MenteeID}
	}
	return nil
}

// reason returns the first non-empty postponement reason field.
func (req updateStatusRequest) reason() string {
	if req.PostponedReasonModel != "" {
		return req.PostponedReasonModel
	}
	return req.PostponedReasonForm
}

type updateStatusResponse struct {
	Message  string                 `json:"message"`
	Count    int                    `json:"count"`
	PhaseID  int                    `json:"phaseId"`
	Statuses []models.MeetingStatus `json:"statuses"`
}

type updateMinutesRequest struct {
	StatusID string `json:"statusId" validate:"required" label:"statusId"`
	Minutes  string `json:"minutes"`
}

type approvalRequest struct {
	StatusID string `json:"statusId"`
	Action   string `json:"action"`
}

type menteesResponse struct {
	AssignedMentees []models.UserSnapshot `json:"assignedMentees"`
}

type statusListResponse struct {
	Statuses []models.EnrichedMeetingStatus `json:"statuses"`
}
