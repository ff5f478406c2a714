// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorMenteeAssignment maps one mentor to the mentees assigned to them for
// one phase. Mutated by the admin assignment workflow; read-only here.
type MentorMenteeAssignment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	MentorUserID  primitive.ObjectID   `bson:"mentor_user_id" json:"mentor_user_id"`
	MenteeUserIDs []primitive.ObjectID `bson:"mentee_user_ids" json:"mentee_user_ids"`
	PhaseID       int                  `bson:"phase_id" json:"phaseId"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
