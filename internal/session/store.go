package session

import (
	"context"
	"sync"
)

// SessionStore persists the one non-sensitive value the client keeps about a
// session: the display name shown to the user.
type SessionStore interface {
	// DisplayName returns the stored name, or "" when none is stored.
	DisplayName(ctx context.Context) (string, error)
	SetDisplayName(ctx context.Context, name string) error
	// Clear removes the stored name. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// CookieStore persists the serialized credential cookie jar between runs.
// Implementations are expected to protect the blob at rest.
type CookieStore interface {
	// Load returns the last saved blob, or nil when nothing was saved.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process SessionStore.
type MemoryStore struct {
	mu   sync.RWMutex
	name string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) DisplayName(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name, nil
}

func (m *MemoryStore) SetDisplayName(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = ""
	return nil
}

// MemoryCookieStore is an in-process CookieStore. Cookies kept in it do not
// survive a restart.
type MemoryCookieStore struct {
	mu   sync.RWMutex
	blob []byte
}

func NewMemoryCookieStore() *MemoryCookieStore {
	return &MemoryCookieStore{}
}

func (m *MemoryCookieStore) Load(context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.blob == nil {
		return nil, nil
	}
	return append([]byte(nil), m.blob...), nil
}

func (m *MemoryCookieStore) Save(_ context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
	return nil
}

func (m *MemoryCookieStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = nil
	return nil
}
