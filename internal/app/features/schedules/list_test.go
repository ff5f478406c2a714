package schedules_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alumbridge/alumbridge/internal/app/features/schedules"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/alumbridge/alumbridge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestServeList_FiltersByMentorAndPhase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentor := fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	other := fx.CreateMentor(ctx, "Mentor Two", "mentor2@example.com")
	mentee := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")

	fx.CreateSchedule(ctx, mentor.ID, []primitive.ObjectID{mentee.ID}, 1)
	fx.CreateSchedule(ctx, mentor.ID, []primitive.ObjectID{mentee.ID}, 2)
	fx.CreateSchedule(ctx, other.ID, []primitive.ObjectID{mentee.ID}, 1)

	var resp struct {
		Schedules []models.MeetingSchedule `json:"schedules"`
	}

	req := httptest.NewRequest("GET", "/api/schedules?mentorEmail=mentor1@example.com", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Schedules) != 2 {
		t.Errorf("all phases: got %d schedules, want 2", len(resp.Schedules))
	}

	req = httptest.NewRequest("GET", "/api/schedules?mentorEmail=mentor1@example.com&phaseId=2", nil)
	rec = httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Schedules) != 1 || resp.Schedules[0].PhaseID != 2 {
		t.Errorf("phase 2: got %+v, want one phase-2 schedule", resp.Schedules)
	}
}

func TestServeList_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)

	req := httptest.NewRequest("GET", "/api/schedules", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	req = httptest.NewRequest("GET", "/api/schedules?mentorEmail=nobody@example.com", nil)
	rec = httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown mentor: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentor := fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	mentee := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")
	sched := fx.CreateSchedule(ctx, mentor.ID, []primitive.ObjectID{mentee.ID}, 1)

	router := schedules.Routes(h)

	req := testutil.NewJSONRequest(t, "POST", "/"+sched.ID.Hex()+"/status",
		map[string]any{"status": models.ScheduleCancelled})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var saved models.MeetingSchedule
	if err := db.Collection("meeting_schedules").FindOne(ctx, bson.M{"_id": sched.ID}).Decode(&saved); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if saved.Status != models.ScheduleCancelled {
		t.Errorf("status: got %q, want %q", saved.Status, models.ScheduleCancelled)
	}

	// Unknown lifecycle value.
	req = testutil.NewJSONRequest(t, "POST", "/"+sched.ID.Hex()+"/status",
		map[string]any{"status": "paused"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad status value: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Unknown schedule.
	req = testutil.NewJSONRequest(t, "POST", "/"+primitive.NewObjectID().Hex()+"/status",
		map[string]any{"status": models.ScheduleCompleted})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown schedule: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
