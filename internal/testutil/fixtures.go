package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alumbridge/alumbridge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a directory user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateMentor inserts a mentor user.
func (f *Fixtures) CreateMentor(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "mentor")
}

// CreateMentee inserts a mentee user.
func (f *Fixtures) CreateMentee(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "mentee")
}

// CreateAssignment links a mentor to mentees for a phase.
func (f *Fixtures) CreateAssignment(ctx context.Context, mentorID primitive.ObjectID, menteeIDs []primitive.ObjectID, phaseID int) models.MentorMenteeAssignment {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.MentorMenteeAssignment{
		ID:            primitive.NewObjectID(),
		MentorUserID:  mentorID,
		MenteeUserIDs: menteeIDs,
		PhaseID:       phaseID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("mentor_mentee_assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateSchedule inserts a meeting schedule with one dated occurrence and
// returns it. The occurrence's meeting ID is what status writes reference.
func (f *Fixtures) CreateSchedule(ctx context.Context, mentorID primitive.ObjectID, menteeIDs []primitive.ObjectID, phaseID int) models.MeetingSchedule {
	f.t.Helper()

	sched := models.MeetingSchedule{
		ID:            primitive.NewObjectID(),
		MentorUserID:  mentorID,
		MenteeUserIDs: menteeIDs,
		Occurrences: []models.MeetingOccurrence{
			{Date: time.Now().UTC().AddDate(0, 0, 7), MeetingID: primitive.NewObjectID()},
		},
		MeetingTime:     "17:00",
		DurationMinutes: 45,
		Platform:        "Zoom",
		PhaseID:         phaseID,
		Status:          models.ScheduleScheduled,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := f.db.Collection("meeting_schedules").InsertOne(ctx, sched); err != nil {
		f.t.Fatalf("failed to create test schedule: %v", err)
	}
	return sched
}

// CreateMeetingStatus inserts a status record directly, bypassing the store.
func (f *Fixtures) CreateMeetingStatus(ctx context.Context, meetingID, mentorID, menteeID primitive.ObjectID, phaseID int, status, minutes, approval string) models.MeetingStatus {
	f.t.Helper()

	now := time.Now().UTC()
	st := models.MeetingStatus{
		ID:             primitive.NewObjectID(),
		MeetingID:      meetingID,
		MentorUserID:   mentorID,
		MenteeUserID:   menteeID,
		PhaseID:        phaseID,
		Status:         status,
		MeetingMinutes: minutes,
		StatusApproval: approval,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("meeting_statuses").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test meeting status: %v", err)
	}
	return st
}
