package query

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrInvalidCursor is returned when a continuation cursor cannot be opened.
var ErrInvalidCursor = errors.New("invalid cursor")

const sealKeySize = 32

type sealedCursor struct {
	Nonce   []byte `json:"nonce"`
	Payload []byte `json:"payload"`
}

// Sealer encrypts backend cursors before they leave the service so that a
// cursor is opaque and only usable by the caller it was issued to.
type Sealer struct {
	secret []byte
}

// NewSealer creates a Sealer keyed by secret.
func NewSealer(secret string) *Sealer {
	return &Sealer{secret: []byte(secret)}
}

// Seal encrypts cursor for owner. header names what the cursor pages through.
// An empty cursor stays empty.
func (s *Sealer) Seal(owner, header, cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}

	aead, err := s.aead(owner)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate cursor nonce: %w", err)
	}

	sealed := sealedCursor{
		Nonce:   nonce,
		Payload: aead.Seal(nil, nonce, []byte(cursor), associatedData(header)),
	}
	raw, err := json.Marshal(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Open reverses Seal. It fails with ErrInvalidCursor for tampered tokens and
// for tokens sealed for another owner or header.
func (s *Sealer) Open(owner, header, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var sealed sealedCursor
	if err := json.Unmarshal(raw, &sealed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	aead, err := s.aead(owner)
	if err != nil {
		return "", err
	}
	if len(sealed.Nonce) != aead.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce size", ErrInvalidCursor)
	}

	plain, err := aead.Open(nil, sealed.Nonce, sealed.Payload, associatedData(header))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	return string(plain), nil
}

func (s *Sealer) aead(owner string) (cipher.AEAD, error) {
	key := make([]byte, sealKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, s.secret, nil, []byte(owner)), key); err != nil {
		return nil, fmt.Errorf("failed to derive cursor key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cursor cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

func associatedData(header string) []byte {
	return []byte(header + ":next_token")
}
