// internal/app/store/assignments/assignmentstore.go
package assignmentstore

import (
	"context"

	"github.com/alumbridge/alumbridge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentor_mentee_assignments")}
}

// MenteesForMentor returns the mentee IDs assigned to a mentor in a phase.
// A missing assignment record is an empty set, not an error.
//
// phaseID 0 means "any phase": mentee sets from every phase the mentor has an
// assignment in are merged. The phase-scoped form is the correct one for
// status submission; the unscoped form matches the legacy mentee-list lookup.
func (s *Store) MenteesForMentor(ctx context.Context, mentorID primitive.ObjectID, phaseID int) ([]primitive.ObjectID, error) {
	filter := bson.M{"mentor_user_id": mentorID}
	if phaseID > 0 {
		filter["phase_id"] = phaseID
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	seen := make(map[primitive.ObjectID]struct{})
	var mentees []primitive.ObjectID
	for cur.Next(ctx) {
		var a models.MentorMenteeAssignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		for _, id := range a.MenteeUserIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			mentees = append(mentees, id)
		}
	}
	return mentees, cur.Err()
}

// IsAssigned reports whether the mentee is assigned to the mentor in the
// given phase (any phase when phaseID is 0).
func (s *Store) IsAssigned(ctx context.Context, mentorID, menteeID primitive.ObjectID, phaseID int) (bool, error) {
	filter := bson.M{"mentor_user_id": mentorID, "mentee_user_ids": menteeID}
	if phaseID > 0 {
		filter["phase_id"] = phaseID
	}
	err := s.c.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
