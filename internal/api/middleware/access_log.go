package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет одну строку на запрос: метод, шаблон маршрута, статус, длительность
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("%s %s -> %d (%s) request_id=%s",
				r.Method, routeTemplate(r), rec.status, time.Since(start).Round(time.Microsecond),
				RequestIDFromContext(r.Context()))
		})
	}
}
