package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware writes one access-log line per request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			fields := []Field{
				String("method", r.Method),
				String("path", r.URL.Path),
				Int("status", ww.Status()),
				Int("bytes", ww.BytesWritten()),
				Duration("duration", time.Since(start)),
			}
			switch {
			case ww.Status() >= http.StatusInternalServerError:
				Error(r.Context(), "http request", fields...)
			case ww.Status() >= http.StatusBadRequest:
				Warn(r.Context(), "http request", fields...)
			default:
				Info(r.Context(), "http request", fields...)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
