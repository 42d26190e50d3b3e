// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// cookieSealer is the private implementation of [CookieSealer].
type cookieSealer struct {
	storageKey []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// last derived key and its salt
	mu   sync.Mutex
	salt []byte
	key  []byte
}

// NewCookieSealer constructs a [CookieSealer] for storageKey with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCookieSealer(storageKey string) (CookieSealer, error) {
	if storageKey == "" {
		return nil, ErrEmptyStorageKey
	}

	return &cookieSealer{
		storageKey:   []byte(storageKey),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// Seal implements [CookieSealer].
func (s *cookieSealer) Seal(plaintext []byte) ([]byte, error) {
	salt, key, err := s.currentKey()
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	sealed = append(sealed, salt...)
	sealed = append(sealed, nonce...)
	return gcm.Seal(sealed, nonce, plaintext, nil), nil
}

// Open implements [CookieSealer].
func (s *cookieSealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize {
		return nil, ErrSealedBlobTooShort
	}
	salt, rest := sealed[:saltSize], sealed[saltSize:]

	gcm, err := newGCM(s.keyFor(salt))
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, ErrSealedBlobTooShort
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}
	return plaintext, nil
}

// currentKey returns the cached salt and key, deriving them on first use.
func (s *cookieSealer) currentKey() ([]byte, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.salt, s.key, nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	s.salt, s.key = salt, s.derive(salt)
	return s.salt, s.key, nil
}

// keyFor returns the key for salt. A salt seen for the first time replaces
// the cached one, so a blob written by an earlier run is re-sealed under the
// same salt.
func (s *cookieSealer) keyFor(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil && bytes.Equal(s.salt, salt) {
		return s.key
	}

	s.salt, s.key = bytes.Clone(salt), s.derive(salt)
	return s.key
}

func (s *cookieSealer) derive(salt []byte) []byte {
	return argon2.IDKey(s.storageKey, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
