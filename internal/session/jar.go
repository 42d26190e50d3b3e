package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"golang.org/x/net/publicsuffix"
)

// storedCookie is the persisted form of a cookie together with the URL that
// set it, so that it can be replayed into a fresh jar.
type storedCookie struct {
	URL      string        `json:"url"`
	Name     string        `json:"name"`
	Value    string        `json:"value"`
	Domain   string        `json:"domain,omitempty"`
	Path     string        `json:"path,omitempty"`
	Expires  time.Time     `json:"expires"`
	Secure   bool          `json:"secure,omitempty"`
	HTTPOnly bool          `json:"http_only,omitempty"`
	SameSite http.SameSite `json:"same_site,omitempty"`
}

// persistentJar is an http.CookieJar that writes every persistent cookie it
// accepts through to a CookieStore. Session cookies (no Max-Age and no
// Expires) live only in memory, as they would in a browser.
//
// gen counts clears. A response that was requested before a clear must not
// bring credentials back, see setCookiesAt.
type persistentJar struct {
	mu      sync.Mutex
	gen     uint64
	jar     *cookiejar.Jar
	entries map[string]storedCookie
	store   CookieStore
	logger  *logger.Logger
	now     func() time.Time
}

func newCookieJar() *cookiejar.Jar {
	// cookiejar.New never returns an error.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

func newPersistentJar(store CookieStore, log *logger.Logger) *persistentJar {
	return &persistentJar{
		jar:     newCookieJar(),
		entries: make(map[string]storedCookie),
		store:   store,
		logger:  log,
		now:     time.Now,
	}
}

// load replays the persisted cookies into the jar. Expired entries are
// dropped.
func (j *persistentJar) load(ctx context.Context) error {
	blob, err := j.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}
	if len(blob) == 0 {
		return nil
	}

	var stored []storedCookie
	if err = json.Unmarshal(blob, &stored); err != nil {
		return fmt.Errorf("decode cookies: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	for _, sc := range stored {
		if !sc.Expires.After(now) {
			continue
		}
		u, err := url.Parse(sc.URL)
		if err != nil {
			continue
		}
		j.jar.SetCookies(u, []*http.Cookie{sc.cookie()})
		j.entries[cookieKey(u, sc.Domain, sc.Path, sc.Name)] = sc
	}

	return nil
}

func (j *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	jar := j.jar
	j.mu.Unlock()

	return jar.Cookies(u)
}

func (j *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.setCookiesLocked(u, cookies)
}

// setCookiesAt stores cookies only if the jar has not been cleared since
// generation gen was read. It reports whether the cookies were stored.
func (j *persistentJar) setCookiesAt(gen uint64, u *url.URL, cookies []*http.Cookie) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.gen != gen {
		return false
	}
	j.setCookiesLocked(u, cookies)
	return true
}

func (j *persistentJar) generation() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.gen
}

func (j *persistentJar) setCookiesLocked(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)

	now := j.now()
	changed := false
	for _, c := range cookies {
		path := c.Path
		if path == "" || !strings.HasPrefix(path, "/") {
			path = defaultCookiePath(u.Path)
		}
		key := cookieKey(u, c.Domain, path, c.Name)

		var expires time.Time
		switch {
		case c.MaxAge < 0:
			expires = now
		case c.MaxAge > 0:
			expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		case !c.Expires.IsZero():
			expires = c.Expires
		default:
			// session cookie
			if _, ok := j.entries[key]; ok {
				delete(j.entries, key)
				changed = true
			}
			continue
		}

		if !expires.After(now) {
			if _, ok := j.entries[key]; ok {
				delete(j.entries, key)
				changed = true
			}
			continue
		}

		j.entries[key] = storedCookie{
			URL:      (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String(),
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     path,
			Expires:  expires.UTC(),
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
			SameSite: c.SameSite,
		}
		changed = true
	}

	if changed {
		j.persistLocked(context.Background())
	}
}

// clear forgets every cookie, in memory and in the store.
func (j *persistentJar) clear(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.gen++
	j.jar = newCookieJar()
	clear(j.entries)

	if err := j.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	return nil
}

// value returns the value of the named cookie sent to u.
func (j *persistentJar) value(u *url.URL, name string) (string, bool) {
	for _, c := range j.Cookies(u) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func (j *persistentJar) persistLocked(ctx context.Context) {
	stored := make([]storedCookie, 0, len(j.entries))
	for _, sc := range j.entries {
		stored = append(stored, sc)
	}
	sort.Slice(stored, func(a, b int) bool {
		return stored[a].URL+stored[a].Path+stored[a].Name < stored[b].URL+stored[b].Path+stored[b].Name
	})

	blob, err := json.Marshal(stored)
	if err != nil {
		j.logger.Err(err).Msg("failed to encode cookies")
		return
	}

	if err = j.store.Save(ctx, blob); err != nil {
		j.logger.Err(err).Msg("failed to persist cookies")
	}
}

func (sc storedCookie) cookie() *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    sc.Value,
		Domain:   sc.Domain,
		Path:     sc.Path,
		Expires:  sc.Expires,
		Secure:   sc.Secure,
		HttpOnly: sc.HTTPOnly,
		SameSite: sc.SameSite,
	}
}

func cookieKey(u *url.URL, domain, path, name string) string {
	return strings.Join([]string{u.Hostname(), strings.ToLower(strings.TrimPrefix(domain, ".")), path, name}, ";")
}

// defaultCookiePath follows RFC 6265 section 5.1.4.
func defaultCookiePath(urlPath string) string {
	if urlPath == "" || urlPath[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(urlPath, "/")
	if i == 0 {
		return "/"
	}
	return urlPath[:i]
}
