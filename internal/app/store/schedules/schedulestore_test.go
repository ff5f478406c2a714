package schedulestore_test

import (
	"testing"
	"time"

	schedulestore "github.com/alumbridge/alumbridge/internal/app/store/schedules"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/alumbridge/alumbridge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newSchedule(mentorID primitive.ObjectID, menteeIDs []primitive.ObjectID, phase int, dates ...time.Time) models.MeetingSchedule {
	occ := make([]models.MeetingOccurrence, 0, len(dates))
	for _, d := range dates {
		occ = append(occ, models.MeetingOccurrence{Date: d})
	}
	return models.MeetingSchedule{
		MentorUserID:    mentorID,
		MenteeUserIDs:   menteeIDs,
		Occurrences:     occ,
		MeetingTime:     "17:00",
		DurationMinutes: 45,
		Platform:        "Zoom",
		PhaseID:         phase,
	}
}

func TestStore_Create_GeneratesOccurrenceIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schedulestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentorID := primitive.NewObjectID()
	menteeID := primitive.NewObjectID()
	now := time.Now().UTC()

	sched, err := store.Create(ctx, newSchedule(mentorID, []primitive.ObjectID{menteeID}, 1, now, now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if sched.Status != models.ScheduleScheduled {
		t.Errorf("Status: got %q, want default scheduled", sched.Status)
	}
	if len(sched.Occurrences) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(sched.Occurrences))
	}
	if sched.Occurrences[0].MeetingID.IsZero() || sched.Occurrences[1].MeetingID.IsZero() {
		t.Error("each occurrence should get a generated meeting ID")
	}
	if sched.Occurrences[0].MeetingID == sched.Occurrences[1].MeetingID {
		t.Error("occurrence meeting IDs should be distinct")
	}
}

func TestStore_Create_RequiresMenteesAndDates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schedulestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentorID := primitive.NewObjectID()

	_, err := store.Create(ctx, newSchedule(mentorID, nil, 1, time.Now()))
	if err == nil {
		t.Error("expected error for schedule without mentees")
	}

	_, err = store.Create(ctx, newSchedule(mentorID, []primitive.ObjectID{primitive.NewObjectID()}, 1))
	if err == nil {
		t.Error("expected error for schedule without dates")
	}
}

func TestStore_ListByMentor_PhaseFilterAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schedulestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentorID := primitive.NewObjectID()
	menteeID := primitive.NewObjectID()

	if _, err := store.Create(ctx, newSchedule(mentorID, []primitive.ObjectID{menteeID}, 1, time.Now())); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newSchedule(mentorID, []primitive.ObjectID{menteeID}, 2, time.Now())); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	phase1, err := store.ListByMentor(ctx, mentorID, 1)
	if err != nil {
		t.Fatalf("ListByMentor failed: %v", err)
	}
	if len(phase1) != 1 || phase1[0].PhaseID != 1 {
		t.Errorf("phase filter failed: %+v", phase1)
	}

	all, err := store.ListByMentor(ctx, mentorID, 0)
	if err != nil {
		t.Fatalf("ListByMentor (all) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 schedules, got %d", len(all))
	}
}

func TestStore_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schedulestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sched, err := store.Create(ctx, newSchedule(primitive.NewObjectID(), []primitive.ObjectID{primitive.NewObjectID()}, 1, time.Now()))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetStatus(ctx, sched.ID, models.ScheduleCancelled); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	got, err := store.GetByID(ctx, sched.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.ScheduleCancelled {
		t.Errorf("Status: got %q, want cancelled", got.Status)
	}

	if err := store.SetStatus(ctx, sched.ID, "paused"); err == nil {
		t.Error("expected error for unknown status")
	}

	if err := store.SetStatus(ctx, primitive.NewObjectID(), models.ScheduleCompleted); err != schedulestore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
