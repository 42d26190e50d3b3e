package riegumapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/riegum-client/internal/app"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/utils"
)

type usernameCtxKey struct{}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.countHits, s.withRequestID, s.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register/", s.register)
		r.Post("/api/auth/token/", s.login)
		r.Post("/api/auth/token/refresh/", s.refresh)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(s.auth)

		r.Post("/api/auth/logout/", s.logout)

		r.Get("/api/plantas/", s.listPlants)
		r.Post("/api/plantas/", s.createPlant)
		r.Get("/api/plantas/{id}/", s.getPlant)
		r.Put("/api/plantas/{id}/", s.updatePlant)
		r.Delete("/api/plantas/{id}/", s.deletePlant)
		r.Post("/api/plantas/{id}/regar/", s.waterPlant)
		r.Get("/api/plantas/{id}/recalcular/", s.recalculatePlant)
		r.Get("/api/plantas/{id}/historial/", s.plantHistory)

		r.Get("/api/google-calendar-status/", s.calendarStatus)
	})

	return router
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.RequestIDHeader)

		l := s.logger.Component("riegumapi")
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	if sr.status == 0 {
		sr.status = status
	}
	sr.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Send()
	})
}

// auth admits requests carrying a valid access_token cookie.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(accessCookie)
		if err != nil {
			utils.WriteDetail(w, app.MsgCredentialsNotProvided, http.StatusUnauthorized)
			return
		}

		username, ok := s.verify(cookie.Value, utils.AccessTokenType)
		if !ok {
			_, _ = utils.WriteJSON(w, map[string]string{
				"detail": app.MsgTokenNotValid,
				"code":   "token_not_valid",
			}, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameCtxKey{}, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func usernameFrom(r *http.Request) string {
	username, _ := r.Context().Value(usernameCtxKey{}).(string)
	return username
}
