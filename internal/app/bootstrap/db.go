// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/alumbridge/alumbridge/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the collection indexes the stores rely on. The
// unique index on (meeting_id, mentee_user_id, phase_id) is what makes
// concurrent status submissions for the same key converge on one document,
// so startup fails rather than running without it.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("index reconciliation failed", zap.Error(err))
		return err
	}
	logger.Info("indexes ensured")
	return nil
}
