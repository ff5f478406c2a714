// internal/app/store/schedules/schedulestore.go
package schedulestore

import (
	"context"
	"errors"
	"time"

	"github.com/alumbridge/alumbridge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("meeting_schedules")}
}

var (
	// ErrNotFound is returned when a schedule ID does not resolve.
	ErrNotFound = errors.New("meeting schedule not found")

	errNoMentees = errors.New("schedule requires at least one mentee")
	errNoDates   = errors.New("schedule requires at least one meeting date")
	errBadStatus = errors.New("unknown schedule status")
)

// Create inserts a schedule, stamping each dated occurrence with its own
// generated meeting ID. The status engine references occurrences by that ID.
func (s *Store) Create(ctx context.Context, sched models.MeetingSchedule) (models.MeetingSchedule, error) {
	if len(sched.MenteeUserIDs) == 0 {
		return models.MeetingSchedule{}, errNoMentees
	}
	if len(sched.Occurrences) == 0 {
		return models.MeetingSchedule{}, errNoDates
	}
	if sched.Status == "" {
		sched.Status = models.ScheduleScheduled
	}
	if !models.IsValidScheduleStatus(sched.Status) {
		return models.MeetingSchedule{}, errBadStatus
	}

	sched.ID = primitive.NewObjectID()
	for i := range sched.Occurrences {
		sched.Occurrences[i].MeetingID = primitive.NewObjectID()
	}
	sched.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, sched); err != nil {
		return models.MeetingSchedule{}, err
	}
	return sched, nil
}

// GetByID loads one schedule.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MeetingSchedule, error) {
	var sched models.MeetingSchedule
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sched); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sched, nil
}

// ListByMentor returns a mentor's schedules, newest first. phaseID 0 lists
// across phases.
func (s *Store) ListByMentor(ctx context.Context, mentorID primitive.ObjectID, phaseID int) ([]models.MeetingSchedule, error) {
	filter := bson.M{"mentor_user_id": mentorID}
	if phaseID > 0 {
		filter["phase_id"] = phaseID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var schedules []models.MeetingSchedule
	if err := cur.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// SetStatus moves a schedule through its lifecycle
// (scheduled/completed/cancelled/rescheduled).
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidScheduleStatus(status) {
		return errBadStatus
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
