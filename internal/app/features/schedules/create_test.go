package schedules_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	uierrors "github.com/alumbridge/alumbridge/internal/app/features/errors"
	"github.com/alumbridge/alumbridge/internal/app/features/schedules"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/alumbridge/alumbridge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(db *mongo.Database) *schedules.Handler {
	logger := zap.NewNop()
	return schedules.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
}

func TestHandleCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentor := fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	m1 := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")
	m2 := fx.CreateMentee(ctx, "Mentee Two", "mentee2@example.com")

	d1 := time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339)
	d2 := time.Now().UTC().AddDate(0, 0, 14).Format(time.RFC3339)

	req := testutil.NewJSONRequest(t, "POST", "/api/schedules", map[string]any{
		"mentorEmail":     "mentor1@example.com",
		"menteeIds":       []string{m1.ID.Hex(), m2.ID.Hex()},
		"meetingDates":    []string{d1, d2},
		"meetingTime":     "17:30",
		"durationMinutes": 45,
		"platform":        "Zoom",
		"agenda":          "<p>Career check-in</p><script>alert(1)</script>",
		"preferredDay":    "Wednesday",
		"phaseId":         2,
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var saved models.MeetingSchedule
	testutil.DecodeJSON(t, rec, &saved)

	if saved.MentorUserID != mentor.ID {
		t.Errorf("mentor_user_id: got %s, want %s", saved.MentorUserID.Hex(), mentor.ID.Hex())
	}
	if len(saved.Occurrences) != 2 {
		t.Fatalf("occurrences: got %d, want 2", len(saved.Occurrences))
	}
	for i, occ := range saved.Occurrences {
		if occ.MeetingID.IsZero() {
			t.Errorf("occurrence %d: meeting id not generated", i)
		}
	}
	if saved.Occurrences[0].MeetingID == saved.Occurrences[1].MeetingID {
		t.Error("occurrence meeting ids should be distinct")
	}
	if saved.Status != models.ScheduleScheduled {
		t.Errorf("status: got %q, want %q", saved.Status, models.ScheduleScheduled)
	}
	if saved.Agenda == "" || saved.Agenda != "<p>Career check-in</p>" {
		t.Errorf("agenda not sanitized as expected: %q", saved.Agenda)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	mentee := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")
	date := time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339)

	base := func() map[string]any {
		return map[string]any{
			"mentorEmail":     "mentor1@example.com",
			"menteeIds":       []string{mentee.ID.Hex()},
			"meetingDates":    []string{date},
			"meetingTime":     "17:30",
			"durationMinutes": 45,
			"platform":        "Zoom",
			"phaseId":         1,
		}
	}

	cases := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"missing mentor email", func(b map[string]any) { delete(b, "mentorEmail") }, http.StatusBadRequest},
		{"bad email", func(b map[string]any) { b["mentorEmail"] = "not-an-email" }, http.StatusBadRequest},
		{"no mentees", func(b map[string]any) { b["menteeIds"] = []string{} }, http.StatusBadRequest},
		{"no dates", func(b map[string]any) { b["meetingDates"] = []string{} }, http.StatusBadRequest},
		{"bad date", func(b map[string]any) { b["meetingDates"] = []string{"next tuesday"} }, http.StatusBadRequest},
		{"missing phaseId", func(b map[string]any) { delete(b, "phaseId") }, http.StatusBadRequest},
		{"bad preferred day", func(b map[string]any) { b["preferredDay"] = "Funday" }, http.StatusBadRequest},
		{"unknown mentor", func(b map[string]any) { b["mentorEmail"] = "nobody@example.com" }, http.StatusNotFound},
		{"unknown mentee", func(b map[string]any) { b["menteeIds"] = []string{primitive.NewObjectID().Hex()} }, http.StatusNotFound},
		{"malformed mentee id", func(b map[string]any) { b["menteeIds"] = []string{"zzz"} }, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := base()
			tc.mutate(body)
			req := testutil.NewJSONRequest(t, "POST", "/api/schedules", body)
			rec := httptest.NewRecorder()
			h.HandleCreate(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}
