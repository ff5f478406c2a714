// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/alumbridge/alumbridge/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and writes the matching JSON
// error response. Handlers hold one so that logging and the client
// response never drift apart.
type ErrorLogger struct {
	log *zap.Logger

	// IncludeDetail controls whether the underlying error string is
	// echoed in the response body. Enabled in dev, off in prod.
	IncludeDetail bool
}

// NewErrorLogger constructs an ErrorLogger around the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs an unexpected failure with request context and
// responds 500 with the public message.
//
//	{ "message": "Internal server error while updating meeting status", "error": "…" }
//
// The "error" detail is only present when IncludeDetail is set.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, publicMsg string) {
	l.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	if l.IncludeDetail && err != nil {
		httpjson.MessageWithDetail(w, http.StatusInternalServerError, publicMsg, err.Error())
		return
	}
	httpjson.Message(w, http.StatusInternalServerError, publicMsg)
}
