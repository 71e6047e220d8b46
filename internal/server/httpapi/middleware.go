package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/gorilla/mux"
)

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLogger logs one line per request; the level follows the status.
func requestLogger(logger logging.Logger) mux.MiddlewareFunc {
	logger = logger.With("module", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			args := []any{"method", r.Method, "path", r.URL.Path, "status", rw.status, "duration", time.Since(start)}
			switch {
			case rw.status >= 500:
				logger.Error(r.Context(), "request", args...)
			case rw.status >= 400:
				logger.Warn(r.Context(), "request", args...)
			default:
				logger.Debug(r.Context(), "request", args...)
			}
		})
	}
}
