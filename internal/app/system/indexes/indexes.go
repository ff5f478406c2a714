// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureAssignments(ctx, db); err != nil {
		problems = append(problems, "mentor_mentee_assignments: "+err.Error())
	}
	if err := ensureMeetingSchedules(ctx, db); err != nil {
		problems = append(problems, "meeting_schedules: "+err.Error())
	}
	if err := ensureMeetingStatuses(ctx, db); err != nil {
		problems = append(problems, "meeting_statuses: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()

		// Load existing indexes so re-runs reuse what is already there.
		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}

			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}

		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email is the lookup key for mentor and mentee resolution.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_users_role"),
		},
	})
}

func ensureAssignments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("mentor_mentee_assignments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One assignment record per mentor per phase.
		{
			Keys:    bson.D{{Key: "mentor_user_id", Value: 1}, {Key: "phase_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_assign_mentor_phase"),
		},
	})
}

func ensureMeetingSchedules(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("meeting_schedules")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phase_id", Value: 1}, {Key: "mentor_user_id", Value: 1}},
			Options: options.Index().SetName("idx_sched_phase_mentor"),
		},
		{
			Keys:    bson.D{{Key: "phase_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_sched_phase_status"),
		},
		{
			Keys:    bson.D{{Key: "phase_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_sched_phase_created"),
		},
	})
}

func ensureMeetingStatuses(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("meeting_statuses")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// The natural key. The unique index is what makes concurrent
		// submissions for the same (meeting, mentee, phase) converge on a
		// single document.
		{
			Keys: bson.D{
				{Key: "meeting_id", Value: 1},
				{Key: "mentee_user_id", Value: 1},
				{Key: "phase_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_status_meeting_mentee_phase"),
		},
		{
			Keys:    bson.D{{Key: "meeting_id", Value: 1}, {Key: "phase_id", Value: 1}},
			Options: options.Index().SetName("idx_status_meeting_phase"),
		},
		{
			Keys:    bson.D{{Key: "phase_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status_phase_status"),
		},
		{
			Keys:    bson.D{{Key: "mentor_user_id", Value: 1}, {Key: "phase_id", Value: 1}},
			Options: options.Index().SetName("idx_status_mentor_phase"),
		},
		{
			Keys:    bson.D{{Key: "mentee_user_id", Value: 1}, {Key: "phase_id", Value: 1}},
			Options: options.Index().SetName("idx_status_mentee_phase"),
		},
		{
			Keys:    bson.D{{Key: "phase_id", Value: 1}, {Key: "status_approval", Value: 1}},
			Options: options.Index().SetName("idx_status_phase_approval"),
		},
		// listAll returns most recent first.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_status_created"),
		},
	})
}
