package crypto

// CookieSealer protects the serialized credential cookies while they are at
// rest in the local database. The key is derived from the storage key in the
// client configuration and never leaves memory.
//
// A sealed blob has the layout salt || nonce || ciphertext, so a blob can be
// opened by any sealer built from the same storage key.
type CookieSealer interface {
	// Seal encrypts plaintext with AES-256-GCM under the derived key.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It returns ErrSealedBlobTooShort for truncated
	// input and ErrUnsealFailed when the blob was sealed under another
	// storage key or has been tampered with.
	Open(sealed []byte) ([]byte, error)
}
