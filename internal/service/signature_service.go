package service

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"
)

// SHA1SignatureService implements ports.SignatureService with the SHA-1
// scheme the rewards backend verifies.
type SHA1SignatureService struct{}

// NewSHA1SignatureService creates a new SHA-1 signature service.
func NewSHA1SignatureService() *SHA1SignatureService {
	return &SHA1SignatureService{}
}

// SignParams signs params sorted by key.
// Format: sha1_hex("k1=v1&k2=v2&" + secret)
func (s *SHA1SignatureService) SignParams(params map[string]string, secret string) string {
	return s.SignString(CanonicalParams(params), secret)
}

// VerifyParams checks signature against SignParams(params, secret).
func (s *SHA1SignatureService) VerifyParams(params map[string]string, secret string, signature string) bool {
	return equalSignatures(s.SignParams(params, secret), signature)
}

// SignString returns lowercase hex sha1(text + secret).
func (s *SHA1SignatureService) SignString(text string, secret string) string {
	sum := sha1.Sum([]byte(text + secret))
	return hex.EncodeToString(sum[:])
}

// VerifyString checks signature against SignString(text, secret).
// Uses constant-time comparison to prevent timing attacks.
func (s *SHA1SignatureService) VerifyString(text string, secret string, signature string) bool {
	return equalSignatures(s.SignString(text, secret), signature)
}

// CanonicalParams concatenates "k=v&" pairs in key order.
func CanonicalParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	return b.String()
}

func equalSignatures(expected, got string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(got))) == 1
}
