// internal/app/features/meetingstatus/handler.go
package meetingstatus

import (
	uierrors "github.com/alumbridge/alumbridge/internal/app/features/errors"
	assignmentstore "github.com/alumbridge/alumbridge/internal/app/store/assignments"
	statusstore "github.com/alumbridge/alumbridge/internal/app/store/meetingstatus"
	userstore "github.com/alumbridge/alumbridge/internal/app/store/users"
	"github.com/alumbridge/alumbridge/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for meeting statuses.
// It holds the DB handle, stores, and logger provided by WAFFLE DBDeps / Startup.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
	Approvers *authz.Roster

	Users       *userstore.Store
	Assignments *assignmentstore.Store
	Statuses    *statusstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, approvers *authz.Roster, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Approvers:   approvers,
		Users:       userstore.New(db),
		Assignments: assignmentstore.New(db),
		Statuses:    statusstore.New(db),
	}
}
