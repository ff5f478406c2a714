// internal/domain/models/meetingstatus.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting status values reported by a mentor for one mentee on one
// meeting occurrence.
const (
	StatusScheduled  = "Scheduled"
	StatusCompleted  = "Completed"
	StatusPostponed  = "Postponed"
	StatusCancelled  = "Cancelled"
	StatusInProgress = "In Progress"
)

// Approval states a coordinator can place on a reported status.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// IsValidStatus reports whether s is one of the five meeting status values.
func IsValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusPostponed, StatusCancelled, StatusInProgress:
		return true
	}
	return false
}

// IsValidApproval reports whether a is a known approval state.
func IsValidApproval(a string) bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// MeetingStatus is one mentee's reported outcome for one meeting occurrence
// within one phase. At most one record exists per
// (meeting_id, mentee_user_id, phase_id); writes upsert on that key.
//
// MeetingMinutes carries the completion notes when Status is Completed and the
// postponement reason when Status is Postponed; it is empty for every other
// status. PostponedReason additionally carries the reason for Postponed
// records so the field is readable on its own.
type MeetingStatus struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingID    primitive.ObjectID `bson:"meeting_id" json:"meeting_id"`
	MentorUserID primitive.ObjectID `bson:"mentor_user_id" json:"mentor_user_id"`
	MenteeUserID primitive.ObjectID `bson:"mentee_user_id" json:"mentee_user_id"`

	PhaseID int    `bson:"phase_id" json:"phaseId"`
	Status  string `bson:"status" json:"status"`

	MeetingMinutes  string `bson:"meeting_minutes" json:"meeting_minutes"`
	PostponedReason string `bson:"postponed_reason" json:"postponed_reason"`

	StatusApproval string `bson:"status_approval" json:"statusApproval"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserSnapshot is the denormalized mentor/mentee view attached to
// MeetingStatus records on reads.
type UserSnapshot struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// EnrichedMeetingStatus is a MeetingStatus with resolved mentor and mentee
// snapshots. Snapshots are nil when the referenced user no longer exists.
type EnrichedMeetingStatus struct {
	MeetingStatus `bson:",inline"`

	MentorUser *UserSnapshot `bson:"-" json:"mentor_user"`
	MenteeUser *UserSnapshot `bson:"-" json:"mentee_user"`
}
