package meetingstatus_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alumbridge/alumbridge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type menteeListResponse struct {
	AssignedMentees []struct {
		ID    primitive.ObjectID `json:"id"`
		Name  string             `json:"name"`
		Email string             `json:"email"`
	} `json:"assignedMentees"`
}

func TestServeMenteesByMentor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentor := fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	m1 := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")
	m2 := fx.CreateMentee(ctx, "Mentee Two", "mentee2@example.com")
	fx.CreateAssignment(ctx, mentor.ID, []primitive.ObjectID{m1.ID, m2.ID}, 1)

	req := httptest.NewRequest("GET", "/api/meeting-status/mentor/mentees?email=Mentor1@Example.com", nil)
	rec := httptest.NewRecorder()
	h.ServeMenteesByMentor(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp menteeListResponse
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.AssignedMentees) != 2 {
		t.Fatalf("assignedMentees: got %d, want 2", len(resp.AssignedMentees))
	}
	if resp.AssignedMentees[0].ID != m1.ID || resp.AssignedMentees[1].ID != m2.ID {
		t.Errorf("assignment order not preserved: %+v", resp.AssignedMentees)
	}
	if resp.AssignedMentees[0].Email != "mentee1@example.com" {
		t.Errorf("email: got %q", resp.AssignedMentees[0].Email)
	}
}

func TestServeMenteesByMentor_PhaseScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentor := fx.CreateMentor(ctx, "Mentor One", "mentor1@example.com")
	m1 := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")
	m2 := fx.CreateMentee(ctx, "Mentee Two", "mentee2@example.com")
	fx.CreateAssignment(ctx, mentor.ID, []primitive.ObjectID{m1.ID}, 1)
	fx.CreateAssignment(ctx, mentor.ID, []primitive.ObjectID{m2.ID}, 2)

	req := httptest.NewRequest("GET", "/api/meeting-status/mentor/mentees?email=mentor1@example.com&phaseId=2", nil)
	rec := httptest.NewRecorder()
	h.ServeMenteesByMentor(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp menteeListResponse
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.AssignedMentees) != 1 || resp.AssignedMentees[0].ID != m2.ID {
		t.Errorf("phase 2 lookup: got %+v, want only mentee two", resp.AssignedMentees)
	}
}

func TestServeMenteesByMentor_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A mentor with no assignment record gets an empty list, not an error.
	fx.CreateMentor(ctx, "Mentor Two", "mentor2@example.com")

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"missing email", "/api/meeting-status/mentor/mentees", http.StatusBadRequest},
		{"bad phaseId", "/api/meeting-status/mentor/mentees?email=mentor2@example.com&phaseId=abc", http.StatusBadRequest},
		{"unknown mentor", "/api/meeting-status/mentor/mentees?email=nobody@example.com", http.StatusNotFound},
		{"no assignments", "/api/meeting-status/mentor/mentees?email=mentor2@example.com", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			rec := httptest.NewRecorder()
			h.ServeMenteesByMentor(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestServeMenteeByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mentee := fx.CreateMentee(ctx, "Mentee One", "mentee1@example.com")

	req := httptest.NewRequest("GET", "/api/meeting-status/mentee/by-email?email=MENTEE1@example.com", nil)
	rec := httptest.NewRecorder()
	h.ServeMenteeByEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		ID    primitive.ObjectID `json:"id"`
		Name  string             `json:"name"`
		Email string             `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID != mentee.ID {
		t.Errorf("id: got %s, want %s", resp.ID.Hex(), mentee.ID.Hex())
	}
	if resp.Name != "Mentee One" || resp.Email != "mentee1@example.com" {
		t.Errorf("snapshot: got %+v", resp)
	}
}

func TestServeMenteeByEmail_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)

	req := httptest.NewRequest("GET", "/api/meeting-status/mentee/by-email", nil)
	rec := httptest.NewRecorder()
	h.ServeMenteeByEmail(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	req = httptest.NewRequest("GET", "/api/meeting-status/mentee/by-email?email=nobody@example.com", nil)
	rec = httptest.NewRecorder()
	h.ServeMenteeByEmail(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown mentee: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
