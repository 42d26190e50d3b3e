package crypto

import "errors"

var (
	ErrEmptyStorageKey    = errors.New("storage key is empty")
	ErrSealedBlobTooShort = errors.New("sealed blob too short")
	ErrUnsealFailed       = errors.New("unseal failed")
)
