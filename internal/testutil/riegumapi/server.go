// Package riegumapi is an in-memory stand-in for the Riegum REST API used by
// package tests. It issues the same HttpOnly access_token and refresh_token
// cookies as the real server and lets tests revoke them, force failures and
// count requests per endpoint.
package riegumapi

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/utils"
	"github.com/MKhiriev/riegum-client/models"
)

const (
	Issuer  = "riegum-test"
	signKey = "riegum-test-sign-key"

	AccessTTL  = time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

type account struct {
	id       int64
	username string
	email    string
	password string
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	users          map[string]*account
	plants         map[int64]*models.Plant
	owners         map[int64]string
	waterings      map[int64][]models.Watering
	tokens         map[string]string // jti -> token type
	revoked        map[string]struct{}
	hits           map[string]int
	refreshStatus  int
	calendarLinked bool
	nextID         int64

	logger *logger.Logger
}

// New starts a fake API that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:     make(map[string]*account),
		plants:    make(map[int64]*models.Plant),
		owners:    make(map[int64]string),
		waterings: make(map[int64][]models.Watering),
		tokens:    make(map[string]string),
		revoked:   make(map[string]struct{}),
		hits:      make(map[string]int),
		logger:    logger.Nop(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// AddUser registers an account and returns its id.
func (s *Server) AddUser(username, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addUserLocked(username, username+"@example.com", password)
}

func (s *Server) addUserLocked(username, email, password string) int64 {
	s.nextID++
	s.users[username] = &account{id: s.nextID, username: username, email: email, password: password}
	return s.nextID
}

// AddPlant stores a plant owned by username and returns it with its id and
// computed fields filled in.
func (s *Server) AddPlant(username string, in models.PlantInput) models.Plant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addPlantLocked(username, in)
}

func (s *Server) addPlantLocked(username string, in models.PlantInput) models.Plant {
	s.nextID++
	if in.Cultivation == "" {
		in.Cultivation = models.CultivationIndoor
	}
	p := &models.Plant{ID: s.nextID, UserID: s.users[username].id, PlantInput: in}
	p.WateringStatus = computeStatus(in, nil)
	s.plants[p.ID] = p
	s.owners[p.ID] = username
	return *p
}

// RevokeAccessTokens makes every access token issued so far invalid, as if
// it had expired.
func (s *Server) RevokeAccessTokens() {
	s.revokeTokens(utils.AccessTokenType)
}

// RevokeRefreshTokens makes every refresh token issued so far invalid.
func (s *Server) RevokeRefreshTokens() {
	s.revokeTokens(utils.RefreshTokenType)
}

func (s *Server) revokeTokens(tokenType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jti, typ := range s.tokens {
		if typ == tokenType {
			s.revoked[jti] = struct{}{}
		}
	}
}

// FailRefreshWith makes the refresh endpoint answer status until reset
// with 0.
func (s *Server) FailRefreshWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshStatus = status
}

// SetCalendarLinked sets the Google Calendar link status.
func (s *Server) SetCalendarLinked(linked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendarLinked = linked
}

// Hits returns how many requests reached method and path.
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

// TotalHits returns the number of requests served.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// ResetHits zeroes the request counters.
func (s *Server) ResetHits() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.hits)
}

func (s *Server) countHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) mint(username, tokenType string, ttl time.Duration) (string, error) {
	token, err := utils.GenerateJWTToken(Issuer, username, tokenType, ttl, signKey)
	if err != nil {
		return "", err
	}

	claims, err := utils.ValidateAndParseJWTToken(token, signKey, Issuer, tokenType)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[claims.ID] = tokenType
	s.mu.Unlock()

	return token, nil
}

// verify returns the subject of a valid, unrevoked token.
func (s *Server) verify(token, tokenType string) (string, bool) {
	claims, err := utils.ValidateAndParseJWTToken(token, signKey, Issuer, tokenType)
	if err != nil {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, revoked := s.revoked[claims.ID]; revoked {
		return "", false
	}
	if _, known := s.users[claims.Subject]; !known {
		return "", false
	}
	return claims.Subject, true
}

func computeStatus(in models.PlantInput, temperature *float64) models.WateringStatus {
	frequency := 3
	if in.Flowering {
		frequency = 2
	}
	if temperature != nil && *temperature > 30 {
		frequency--
	}

	next := in.LastWatered.AddDate(0, 0, frequency)
	today := models.NewDate(time.Now())
	daysLeft := int(next.Sub(today.Time).Hours() / 24)

	status := models.WateringStatus{
		RecommendedWaterML: int(in.PotLiters * 150),
		FrequencyDays:      frequency,
		NextWateringDate:   models.Date{Time: next},
		DaysLeft:           daysLeft,
	}
	switch {
	case daysLeft > 1:
		status.State, status.StateText = models.WateringNotNeeded, "No necesita agua"
	case daysLeft == 1:
		status.State, status.StateText = models.WateringSoon, "Pronto a regar"
	case daysLeft == 0:
		status.State, status.StateText = models.WateringToday, "Necesita riego hoy"
	default:
		status.State, status.StateText = models.WateringOverdue, "Riego urgente"
	}
	return status
}
