package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// newTestSealer keeps Argon2id cheap so the tests stay fast.
func newTestSealer(t *testing.T, storageKey string) *cookieSealer {
	t.Helper()

	s, err := NewCookieSealer(storageKey)
	if err != nil {
		t.Fatalf("NewCookieSealer error: %v", err)
	}
	cs := s.(*cookieSealer)
	cs.argonMemory = 8 * 1024
	cs.argonThreads = 1
	return cs
}

func TestNewCookieSealer_EmptyKey(t *testing.T) {
	if _, err := NewCookieSealer(""); !errors.Is(err, ErrEmptyStorageKey) {
		t.Fatalf("err = %v, want ErrEmptyStorageKey", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "storage-key")
	plaintext := []byte(`[{"name":"refresh_token","value":"r"}]`)

	sealed, err := s.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(sealed, []byte("refresh_token")) {
		t.Fatalf("sealed blob leaks plaintext")
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("Open = %q, want %q", opened, plaintext)
	}
}

func TestSeal_ReusesSaltWithFreshNonce(t *testing.T) {
	s := newTestSealer(t, "storage-key")

	a, err := s.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := s.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if !bytes.Equal(a[:saltSize], b[:saltSize]) {
		t.Fatalf("expected the cached salt to be reused")
	}
	if bytes.Equal(a, b) {
		t.Fatalf("expected different ciphertexts for repeated seals")
	}
}

func TestOpen_AcrossInstances(t *testing.T) {
	first := newTestSealer(t, "storage-key")
	second := newTestSealer(t, "storage-key")

	sealed, err := first.Seal([]byte("cookies"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	opened, err := second.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(opened) != "cookies" {
		t.Fatalf("Open = %q, want %q", opened, "cookies")
	}

	// the second instance adopted the salt of the blob it opened
	resealed, err := second.Seal([]byte("cookies"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if !bytes.Equal(sealed[:saltSize], resealed[:saltSize]) {
		t.Fatalf("expected the adopted salt to be reused")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	sealed, err := newTestSealer(t, "right").Seal([]byte("cookies"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = newTestSealer(t, "wrong").Open(sealed)
	if !errors.Is(err, ErrUnsealFailed) {
		t.Fatalf("err = %v, want ErrUnsealFailed", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	s := newTestSealer(t, "storage-key")
	sealed, err := s.Seal([]byte("cookies"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	sealed[len(sealed)-1] ^= 0xFF
	if _, err = s.Open(sealed); !errors.Is(err, ErrUnsealFailed) {
		t.Fatalf("err = %v, want ErrUnsealFailed", err)
	}
}

func TestOpen_TooShort(t *testing.T) {
	s := newTestSealer(t, "storage-key")

	for _, blob := range [][]byte{nil, make([]byte, saltSize-1), make([]byte, saltSize+4)} {
		if _, err := s.Open(blob); !errors.Is(err, ErrSealedBlobTooShort) {
			t.Fatalf("len %d: err = %v, want ErrSealedBlobTooShort", len(blob), err)
		}
	}
}
