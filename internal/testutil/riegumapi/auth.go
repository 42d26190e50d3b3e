package riegumapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/riegum-client/internal/app"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/utils"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	fieldErrors := map[string][]string{}
	if in.Username == "" {
		fieldErrors["username"] = []string{app.MsgFieldRequired}
	}
	if in.Password == "" {
		fieldErrors["password"] = []string{app.MsgFieldRequired}
	}

	s.mu.Lock()
	if _, taken := s.users[in.Username]; taken && in.Username != "" {
		fieldErrors["username"] = []string{app.MsgUsernameTaken}
	}
	if len(fieldErrors) > 0 {
		s.mu.Unlock()
		_, _ = utils.WriteJSON(w, fieldErrors, http.StatusBadRequest)
		return
	}
	id := s.addUserLocked(in.Username, in.Email, in.Password)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"id": id, "username": in.Username}, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc, ok := s.users[in.Username]
	s.mu.Unlock()
	if !ok || acc.password != in.Password {
		utils.WriteDetail(w, app.MsgNoActiveAccount, http.StatusUnauthorized)
		return
	}

	access, err := s.mint(acc.username, utils.AccessTokenType, AccessTTL)
	if err != nil {
		log.Err(err).Msg("minting access token failed")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	refresh, err := s.mint(acc.username, utils.RefreshTokenType, RefreshTTL)
	if err != nil {
		log.Err(err).Msg("minting refresh token failed")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setTokenCookie(w, accessCookie, access, AccessTTL)
	setTokenCookie(w, refreshCookie, refresh, RefreshTTL)
	_, _ = utils.WriteJSON(w, map[string]string{"detail": app.MsgLoginSucceeded, "username": acc.username}, http.StatusOK)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	s.mu.Lock()
	forced := s.refreshStatus
	s.mu.Unlock()
	if forced != 0 {
		utils.WriteDetail(w, http.StatusText(forced), forced)
		return
	}

	cookie, err := r.Cookie(refreshCookie)
	if err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{
			"detail": app.MsgRefreshTokenNotFound,
			"code":   "token_not_valid",
		}, http.StatusUnauthorized)
		return
	}

	username, ok := s.verify(cookie.Value, utils.RefreshTokenType)
	if !ok {
		_, _ = utils.WriteJSON(w, map[string]string{
			"detail": app.MsgRefreshTokenInvalid,
			"code":   "token_not_valid",
		}, http.StatusUnauthorized)
		return
	}

	access, err := s.mint(username, utils.AccessTokenType, AccessTTL)
	if err != nil {
		log.Err(err).Msg("minting access token failed")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setTokenCookie(w, accessCookie, access, AccessTTL)
	utils.WriteDetail(w, app.MsgRefreshSucceeded, http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookie); err == nil {
		if claims, err := utils.ValidateAndParseJWTToken(cookie.Value, signKey, Issuer, utils.RefreshTokenType); err == nil {
			s.mu.Lock()
			s.revoked[claims.ID] = struct{}{}
			s.mu.Unlock()
		}
	}

	for _, name := range []string{accessCookie, refreshCookie} {
		http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1, Expires: time.Unix(0, 0)})
	}
	utils.WriteDetail(w, app.MsgLogoutSucceeded, http.StatusOK)
}

func setTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
