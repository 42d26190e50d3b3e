// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the client side of the Riegum session contract.
//
// A [Client] owns the credential cookies issued by the API and attaches them
// to every request it dispatches. When a request comes back with 401 the
// client refreshes the credentials once and retries the request once. If the
// refresh fails the session is cleared and, unless the user is looking at a
// public page, the [Navigator] is sent to the login page.
//
// Credential values never leave the package: callers pass a [Request] and get
// back a [Response] with Set-Cookie headers removed.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/utils"
	"golang.org/x/sync/singleflight"
)

// API endpoints and cookie names of the session contract.
const (
	LoginEndpoint   = "/api/auth/token/"
	RefreshEndpoint = "/api/auth/token/refresh/"
	LogoutEndpoint  = "/api/auth/logout/"

	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"
)

// Client is the Session Client. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *utils.HTTPClient
	jar     *persistentJar
	store   SessionStore
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
	now     func() time.Time

	// refreshHTTP has no jar: refresh cookies are stored with setCookiesAt
	// so that a logout during the refresh wins.
	refreshHTTP *utils.HTTPClient
	refreshes   singleflight.Group

	mu      sync.RWMutex
	nav     Navigator
	state   State
	session Session
}

// NewClient builds a Client for the API at adapterCfg.Address.
//
// Cookies persisted in cookies are loaded into the client's jar; a blob that
// cannot be read (for example one sealed with a different storage key) is
// discarded and the client starts anonymous. nav may be nil and set later
// with SetNavigator.
func NewClient(ctx context.Context, adapterCfg config.ClientAdapter, cookies CookieStore, store SessionStore, nav Navigator, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	jar := newPersistentJar(cookies, log)
	if err = jar.load(ctx); err != nil {
		log.Warn().Err(err).Msg("discarding persisted cookies")
		if err = cookies.Clear(ctx); err != nil {
			log.Err(err).Msg("failed to clear persisted cookies")
		}
	}

	httpClient := utils.NewAPIClient(baseURL.String(), adapterCfg.RequestTimeout, jar)
	httpClient.SetLogger(log)
	refreshHTTP := utils.NewAPIClient(baseURL.String(), adapterCfg.RequestTimeout, nil)
	refreshHTTP.SetLogger(log)

	if nav == nil {
		nav = nopNavigator{}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		jar:     jar,
		store:   store,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
		now:     time.Now,
		nav:     nav,

		refreshHTTP: refreshHTTP,
	}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("address must include host and scheme")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// SetNavigator replaces the navigator used for redirects.
func (c *Client) SetNavigator(nav Navigator) {
	if nav == nil {
		nav = nopNavigator{}
	}

	c.mu.Lock()
	c.nav = nav
	c.mu.Unlock()
}

// ResolveURL returns the absolute URL of an API path, for links opened
// outside the client.
func (c *Client) ResolveURL(path string) string {
	return c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
}

// State returns the current authentication state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Session returns the current session description. It is the zero value
// while the client is anonymous.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// DisplayName returns the persisted display name.
func (c *Client) DisplayName(ctx context.Context) (string, error) {
	return c.store.DisplayName(ctx)
}

// Do dispatches req with the stored credentials.
//
// A 401 response triggers exactly one refresh and exactly one retry; the
// retried response is returned whatever its status. If the refresh is
// rejected the session is cleared, the navigator is redirected to the login
// page unless it shows a public page, and ErrSessionExpired is returned.
// Transport failures are returned as ErrNetworkFailure and never trigger a
// refresh.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if _, ok := utils.GetRequestIDFromContext(ctx); !ok {
		ctx = utils.WithRequestID(ctx, c.ids.Generate())
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatch(ctx, req, body)
	if err != nil || req.Public || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	if err = c.recover(ctx); err != nil {
		return nil, err
	}

	return c.dispatch(ctx, req, body)
}

// Login exchanges identifier and secret for credential cookies and records
// the display name.
//
// A rejected login returns *InvalidCredentialsError carrying the server
// message; a 5xx returns *ServerError.
func (c *Client) Login(ctx context.Context, identifier, secret string) (Session, error) {
	body, err := encodeBody(map[string]string{"username": identifier, "password": secret})
	if err != nil {
		return Session{}, err
	}

	resp, err := c.dispatch(ctx, Request{Method: http.MethodPost, Path: LoginEndpoint}, body)
	if err != nil {
		return Session{}, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return Session{}, CheckStatus(resp)
	}
	if !resp.OK() {
		msg := messageFromJSON(resp.Body)
		if msg == "" {
			msg = defaultInvalidCredentialsMessage
		}
		return Session{}, &InvalidCredentialsError{Message: msg}
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err = resp.DecodeJSON(&payload); err != nil {
		c.logger.Warn().Err(err).Msg("login response without a username")
	}

	name := payload.Username
	if name == "" {
		name = identifier
	}

	if err = c.store.SetDisplayName(ctx, name); err != nil {
		return Session{}, fmt.Errorf("store display name: %w", err)
	}

	sess := Session{
		DisplayName:     name,
		AuthenticatedAt: c.now(),
		ExpiresAt:       c.accessExpiry(),
	}

	c.mu.Lock()
	c.state = Authenticated
	c.session = sess
	c.mu.Unlock()

	c.logger.Info().Str("user", name).Msg("logged in")
	return sess, nil
}

// Refresh asks the server for a new access credential using the refresh
// cookie. On failure the state is left as it was and the error wraps
// ErrSessionExpired or ErrNetworkFailure.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresh(ctx, c.jar.generation())
}

// refresh runs the refresh call for the session of jar generation gen. If
// the session was cleared while the call was in flight the new cookies are
// dropped and errSessionCleared is returned.
func (c *Client) refresh(ctx context.Context, gen uint64) error {
	endpoint := c.endpointURL(RefreshEndpoint)
	req := Request{Method: http.MethodPost, Path: RefreshEndpoint}

	resp, err := c.send(ctx, c.refreshHTTP, req, nil, c.jar.Cookies(endpoint))
	if err != nil {
		return err
	}

	if !resp.OK() {
		return fmt.Errorf("%w: %s", ErrSessionExpired, ServerMessage(resp.StatusCode, resp.Body))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.jar.setCookiesAt(gen, endpoint, resp.cookies) {
		return errSessionCleared
	}
	c.state = Authenticated
	c.session.ExpiresAt = c.accessExpiry()

	return nil
}

// Logout notifies the server, clears the local session and navigates to the
// landing page. Failing to reach the server is logged and otherwise
// ignored, so Logout can be called any number of times.
func (c *Client) Logout(ctx context.Context) {
	c.notifyLogout(ctx)

	c.clearLocal(ctx)
	c.navigator().Navigate(HomePath)
}

// notifyLogout asks the server to revoke the refresh credential. The server
// only accepts the call with a valid access credential, so an expired one is
// refreshed once first. A failed refresh here does not expire the session
// or redirect: Logout clears it anyway.
func (c *Client) notifyLogout(ctx context.Context) {
	req := Request{Method: http.MethodPost, Path: LogoutEndpoint}

	resp, err := c.dispatch(ctx, req, nil)
	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		if _, ok := c.jar.value(c.endpointURL(RefreshEndpoint), RefreshCookieName); ok {
			if err = c.refresh(ctx, c.jar.generation()); err == nil {
				resp, err = c.dispatch(ctx, req, nil)
			}
		}
	}

	switch {
	case err != nil:
		c.logger.Warn().Err(err).Msg("logout notification failed")
	case !resp.OK():
		c.logger.Warn().Int("status", resp.StatusCode).Msg("logout rejected by server")
	}
}

// Restore resumes a session persisted by an earlier run without contacting
// the server. It returns ErrNoSession when there is no display name or no
// credential cookie to resume.
func (c *Client) Restore(ctx context.Context) (Session, error) {
	name, err := c.store.DisplayName(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("read display name: %w", err)
	}

	_, hasAccess := c.jar.value(c.baseURL, AccessCookieName)
	_, hasRefresh := c.jar.value(c.baseURL, RefreshCookieName)
	if name == "" || (!hasAccess && !hasRefresh) {
		return Session{}, ErrNoSession
	}

	sess := Session{DisplayName: name, ExpiresAt: c.accessExpiry()}

	c.mu.Lock()
	c.state = Authenticated
	c.session = sess
	c.mu.Unlock()

	return sess, nil
}

// recover runs the refresh for a request that got 401. Concurrent callers
// share one in-flight refresh. The shared refresh is detached from the
// cancellation of whichever caller started it.
func (c *Client) recover(ctx context.Context) error {
	ch := c.refreshes.DoChan("refresh", func() (any, error) {
		return nil, c.refreshOrExpire(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) refreshOrExpire(ctx context.Context) error {
	c.mu.Lock()
	gen := c.jar.generation()
	prev := c.state
	c.state = Refreshing
	c.mu.Unlock()

	err := c.refresh(ctx, gen)
	switch {
	case err == nil:
		c.logger.Debug().Msg("session refreshed")
		return nil
	case c.jar.generation() != gen:
		// logged out while the refresh was in flight
		c.logger.Debug().Err(err).Msg("session cleared during refresh")
		return errSessionCleared
	case errors.Is(err, ErrNetworkFailure):
		c.restoreState(gen, prev)
		return err
	default:
		c.logger.Info().Err(err).Msg("session could not be refreshed")
		c.expire(ctx)
		return err
	}
}

// expire clears the session and redirects to the login page unless the
// current location is public.
func (c *Client) expire(ctx context.Context) {
	c.clearLocal(ctx)

	nav := c.navigator()
	if location := nav.Location(); !IsPublicPath(location) {
		c.logger.Debug().Str("from", location).Msg("redirecting to login")
		nav.Navigate(LoginPath)
	}
}

// clearLocal forgets the credentials and the display name. The jar
// generation changes under c.mu together with the state, which is what
// refresh checks before it stores new cookies.
func (c *Client) clearLocal(ctx context.Context) {
	c.mu.Lock()
	err := c.jar.clear(ctx)
	c.state = Anonymous
	c.session = Session{}
	c.mu.Unlock()

	if err != nil {
		c.logger.Err(err).Msg("failed to clear credentials")
	}
	if err = c.store.Clear(ctx); err != nil {
		c.logger.Err(err).Msg("failed to clear display name")
	}
}

// restoreState puts back the state seen before a refresh, unless the
// session was cleared in the meantime.
func (c *Client) restoreState(gen uint64, prev State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.jar.generation() == gen {
		c.state = prev
	}
}

func (c *Client) setState(s State) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state
	c.state = s
	return prev
}

func (c *Client) navigator() Navigator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nav
}

func (c *Client) accessExpiry() time.Time {
	token, ok := c.jar.value(c.baseURL, AccessCookieName)
	if !ok {
		return time.Time{}
	}

	exp, err := utils.ParseExpiryFromJWT(token)
	if err != nil {
		return time.Time{}
	}
	return exp
}

func (c *Client) endpointURL(path string) *url.URL {
	u, err := url.Parse(c.ResolveURL(path))
	if err != nil {
		return c.baseURL
	}
	return u
}

func (c *Client) dispatch(ctx context.Context, req Request, body *encodedBody) (*Response, error) {
	return c.send(ctx, c.http, req, body, nil)
}

// send executes req on hc. cookies, when given, are attached in addition to
// whatever the client's jar supplies.
func (c *Client) send(ctx context.Context, hc *utils.HTTPClient, req Request, body *encodedBody, cookies []*http.Cookie) (*Response, error) {
	r := hc.R().SetContext(ctx)
	if len(cookies) > 0 {
		r.SetCookies(cookies)
	}

	for name, values := range req.Header {
		for _, v := range values {
			r.Header.Add(name, v)
		}
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if body != nil {
		r.SetBody(body.data)
		if body.contentType != "" && r.Header.Get("Content-Type") == "" {
			r.SetHeader("Content-Type", body.contentType)
		}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	start := time.Now()
	resp, err := r.Execute(method, req.Path)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", req.Path).Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrNetworkFailure, method, req.Path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Str("request_id", r.Header.Get(utils.RequestIDHeader)).
		Dur("elapsed", time.Since(start)).
		Msg("request dispatched")

	header := resp.Header().Clone()
	header.Del("Set-Cookie")

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       resp.Body(),
		cookies:    resp.Cookies(),
	}, nil
}
