// internal/domain/models/meetingschedule.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule lifecycle values.
const (
	ScheduleScheduled   = "scheduled"
	ScheduleCompleted   = "completed"
	ScheduleCancelled   = "cancelled"
	ScheduleRescheduled = "rescheduled"
)

// IsValidScheduleStatus reports whether s is a known schedule lifecycle value.
func IsValidScheduleStatus(s string) bool {
	switch s {
	case ScheduleScheduled, ScheduleCompleted, ScheduleCancelled, ScheduleRescheduled:
		return true
	}
	return false
}

// MeetingOccurrence is one dated instance within a schedule's series. Each
// occurrence carries its own generated ID so statuses can reference a single
// dated meeting rather than the whole series.
type MeetingOccurrence struct {
	Date      time.Time          `bson:"date" json:"date"`
	MeetingID primitive.ObjectID `bson:"meeting_id" json:"meeting_id"`
}

// MeetingSchedule is a recurring meeting series between one mentor and
// one-or-more mentees within a phase.
type MeetingSchedule struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	MentorUserID  primitive.ObjectID   `bson:"mentor_user_id" json:"mentor_user_id"`
	MenteeUserIDs []primitive.ObjectID `bson:"mentee_user_ids" json:"mentee_user_ids"`

	Occurrences     []MeetingOccurrence `bson:"meeting_dates" json:"meeting_dates"`
	MeetingTime     string              `bson:"meeting_time" json:"meeting_time"`
	DurationMinutes int                 `bson:"duration_minutes" json:"duration_minutes"`
	Platform        string              `bson:"platform" json:"platform"`
	MeetingLink     string              `bson:"meeting_link,omitempty" json:"meeting_link,omitempty"`
	Agenda          string              `bson:"agenda,omitempty" json:"agenda,omitempty"`
	PreferredDay    string              `bson:"preferred_day,omitempty" json:"preferred_day,omitempty"`

	PhaseID int    `bson:"phase_id" json:"phaseId"`
	Status  string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
