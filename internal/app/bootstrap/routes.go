// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/alumbridge/alumbridge/internal/app/features/errors"
	healthfeature "github.com/alumbridge/alumbridge/internal/app/features/health"
	meetingstatusfeature "github.com/alumbridge/alumbridge/internal/app/features/meetingstatus"
	schedulesfeature "github.com/alumbridge/alumbridge/internal/app/features/schedules"
	"github.com/alumbridge/alumbridge/internal/app/system/authz"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Error logger for handlers; raw error detail is echoed to callers
	// only outside production.
	errLog := errorsfeature.NewErrorLogger(logger)
	errLog.IncludeDetail = coreCfg.Env == "dev"

	roster := authz.NewRoster(appCfg.ApproverEmails)
	if roster.Empty() {
		logger.Warn("approver roster is empty; approval gate disabled")
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	statusHandler := meetingstatusfeature.NewHandler(deps.MongoDatabase, errLog, roster, logger)
	r.Mount("/api/meeting-status", meetingstatusfeature.Routes(statusHandler))

	schedulesHandler := schedulesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/api/schedules", schedulesfeature.Routes(schedulesHandler))

	return r, nil
}
