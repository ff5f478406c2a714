// internal/app/features/schedules/handler.go
package schedules

import (
	uierrors "github.com/alumbridge/alumbridge/internal/app/features/errors"
	schedulestore "github.com/alumbridge/alumbridge/internal/app/store/schedules"
	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for meeting schedules.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Users     *userstore.Store
	Schedules *schedulestore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		ErrLog:    errLog,
		Users:     userstore.New(db),
		Schedules: schedulestore.New(db),
	}
}
