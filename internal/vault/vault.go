// Package vault seals seller credential material at rest.
package vault

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrInvalidKey is returned when the master key is not 32 hex-encoded bytes.
var ErrInvalidKey = errors.New("vault: master key must be 64 hex characters")

// ErrOpen is returned when sealed data fails authentication.
var ErrOpen = errors.New("vault: cannot open sealed credential")

// Sealer encrypts credentials with XChaCha20-Poly1305. The listing ID is
// bound as additional data so a sealed blob cannot be moved to another
// listing.
type Sealer struct {
	key []byte
}

// New parses a hex-encoded 32-byte master key.
func New(hexKey string) (*Sealer, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKey
	}
	return &Sealer{key: key}, nil
}

// GenerateKey returns a random hex-encoded master key.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Seal encrypts plaintext for listingID. The nonce is prepended.
func (s *Sealer) Seal(listingID string, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, []byte(listingID)), nil
}

// Open decrypts a blob produced by Seal for the same listingID.
func (s *Sealer) Open(listingID string, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrOpen
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(listingID))
	if err != nil {
		return nil, ErrOpen
	}
	return plaintext, nil
}
