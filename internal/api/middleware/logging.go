package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestLogger логирует каждый HTTP запрос: метод, путь и длительность обработки
func RequestLogger(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			log.Info("%s %s - %d (%s)", r.Method, r.URL.Path, recorder.status, time.Since(start))
		})
	}
}
