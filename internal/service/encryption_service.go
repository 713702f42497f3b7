package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix versions the at-rest format of sealed security tokens.
const sealedPrefix = "v1."

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	keyLen        = 32
)

var errMalformedSealed = errors.New("malformed sealed value")

// AESEncryptionService seals security tokens with AES-256-GCM. Each sealed
// value is bound to the credentials token it belongs to, so a value copied
// onto another credentials row fails to open.
type AESEncryptionService struct {
	aead cipher.AEAD
}

// NewAESEncryptionService takes a 64 character hex key.
func NewAESEncryptionService(hexKey string) (*AESEncryptionService, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode aes key: %w", err)
	}
	return newSealer(key)
}

// NewAESEncryptionServiceFromPassphrase derives the key with Argon2id.
// The same passphrase and salt always yield the same key.
func NewAESEncryptionServiceFromPassphrase(passphrase, salt string) (*AESEncryptionService, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase must not be empty")
	}
	if len(salt) < 8 {
		return nil, fmt.Errorf("salt must be at least 8 bytes, got %d", len(salt))
	}
	return newSealer(argon2.IDKey([]byte(passphrase), []byte(salt), argon2Time, argon2Memory, argon2Threads, keyLen))
}

func newSealer(key []byte) (*AESEncryptionService, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("aes key must be %d bytes, got %d", keyLen, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &AESEncryptionService{aead: aead}, nil
}

// Seal encrypts plaintext for the given owner. The result is
// "v1." + base64url(nonce || ciphertext).
func (s *AESEncryptionService) Seal(plaintext, owner string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(owner))
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. It fails when owner differs from the one used to seal.
func (s *AESEncryptionService) Open(sealed, owner string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", errMalformedSealed
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errMalformedSealed, err)
	}
	n := s.aead.NonceSize()
	if len(raw) < n+s.aead.Overhead() {
		return "", errMalformedSealed
	}
	plain, err := s.aead.Open(nil, raw[:n], raw[n:], []byte(owner))
	if err != nil {
		return "", fmt.Errorf("open sealed value: %w", err)
	}
	return string(plain), nil
}
