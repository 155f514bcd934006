package crypto

import "errors"

var (
	// ErrAuthentication is returned when AEAD decryption fails: wrong key,
	// tampered ciphertext or IV, or a malformed envelope.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrMalformedPlaintext is returned when an envelope decrypts but the
	// plaintext is not valid JSON for the requested target.
	ErrMalformedPlaintext = errors.New("decrypted payload is malformed")

	// ErrInvalidKey is returned for keys of the wrong size or keys that
	// have been destroyed.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrInvalidRecoveryKey is returned when a recovery key is not 64 hex
	// characters.
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")
)
