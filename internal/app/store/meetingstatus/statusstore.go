// internal/app/store/meetingstatus/statusstore.go
package statusstore

import (
	"context"
	"errors"
	"time"

	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/domain/models"
	"github.com/alumbridge/alumbridge/internal/domain/statusflow"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c     *mongo.Collection
	users *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("meeting_statuses"),
		users: db.Collection("users"),
	}
}

// ErrNotFound is returned when a status ID does not resolve.
var ErrNotFound = errors.New("meeting status not found")

// NaturalKey identifies one MeetingStatus: one mentee on one meeting
// occurrence in one phase.
type NaturalKey struct {
	MeetingID    primitive.ObjectID
	MenteeUserID primitive.ObjectID
	PhaseID      int
}

// Upsert writes a status record for the natural key, replacing all content
// fields. The unique index on the key makes concurrent submissions for the
// same key converge on one document. Returns the post-write record.
func (s *Store) Upsert(ctx context.Context, key NaturalKey, mentorID primitive.ObjectID, w statusflow.Write) (models.MeetingStatus, error) {
	next := statusflow.Apply(models.MeetingStatus{}, w)
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"mentor_user_id":   mentorID,
			"status":           next.Status,
			"status_approval":  next.StatusApproval,
			"phase_id":         key.PhaseID,
			"meeting_minutes":  next.MeetingMinutes,
			"postponed_reason": next.PostponedReason,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.MeetingStatus
	err := s.c.FindOneAndUpdate(ctx, bson.M{
		"meeting_id":     key.MeetingID,
		"mentee_user_id": key.MenteeUserID,
		"phase_id":       key.PhaseID,
	}, update, opts).Decode(&saved)
	if err != nil {
		return models.MeetingStatus{}, err
	}
	return saved, nil
}

// GetByID loads one status record.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MeetingStatus, error) {
	var st models.MeetingStatus
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

// UpdateMinutes replaces the minutes text and returns the approval to
// Pending. The reset is unconditional: any content change invalidates a
// prior verdict, even when the new text equals the old.
func (s *Store) UpdateMinutes(ctx context.Context, id primitive.ObjectID, minutes string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"meeting_minutes": minutes,
			"status_approval": models.ApprovalPending,
			"updated_at":      time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetApproval records a coordinator verdict. It touches no other field; the
// underlying meeting status value is left alone. Callers validate the action
// with statusflow.ValidateApprovalAction first.
func (s *Store) SetApproval(ctx context.Context, id primitive.ObjectID, action string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status_approval": action,
			"updated_at":      time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns every status record, most recent first, with mentor and
// mentee snapshots resolved.
func (s *Store) ListAll(ctx context.Context) ([]models.EnrichedMeetingStatus, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var statuses []models.MeetingStatus
	if err := cur.All(ctx, &statuses); err != nil {
		return nil, err
	}
	return s.enrich(ctx, statuses)
}

// ListByMeetingAndMentee returns the status records for one mentee on one
// meeting occurrence, enriched the same way as ListAll.
func (s *Store) ListByMeetingAndMentee(ctx context.Context, meetingID, menteeID primitive.ObjectID) ([]models.EnrichedMeetingStatus, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"meeting_id":     meetingID,
		"mentee_user_id": menteeID,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var statuses []models.MeetingStatus
	if err := cur.All(ctx, &statuses); err != nil {
		return nil, err
	}
	return s.enrich(ctx, statuses)
}

// enrich attaches mentor/mentee snapshots with a single $in users query for
// the whole batch. A record whose user has vanished keeps a nil snapshot.
func (s *Store) enrich(ctx context.Context, statuses []models.MeetingStatus) ([]models.EnrichedMeetingStatus, error) {
	enriched := make([]models.EnrichedMeetingStatus, 0, len(statuses))
	if len(statuses) == 0 {
		return enriched, nil
	}

	idSet := make(map[primitive.ObjectID]struct{}, len(statuses)*2)
	for _, st := range statuses {
		idSet[st.MentorUserID] = struct{}{}
		idSet[st.MenteeUserID] = struct{}{}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	cur, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[primitive.ObjectID]models.User, len(ids))
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		byID[u.ID] = u
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	for _, st := range statuses {
		e := models.EnrichedMeetingStatus{MeetingStatus: st}
		if u, ok := byID[st.MentorUserID]; ok {
			e.MentorUser = userstore.Snapshot(u)
		}
		if u, ok := byID[st.MenteeUserID]; ok {
			e.MenteeUser = userstore.Snapshot(u)
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}
