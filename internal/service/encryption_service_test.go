package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestSealer(t *testing.T) *AESEncryptionService {
	t.Helper()
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	return svc
}

func TestAESEncryptionService_RejectsBadKeys(t *testing.T) {
	_, err := NewAESEncryptionService("shortkey")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("abcd")
	assert.ErrorContains(t, err, "32 bytes")
}

func TestAESEncryptionService_SealOpen(t *testing.T) {
	svc := newTestSealer(t)

	sealed, err := svc.Seal("security-token-1", "creds-a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, "v1."))
	assert.NotContains(t, sealed, "security-token-1")

	plain, err := svc.Open(sealed, "creds-a")
	require.NoError(t, err)
	assert.Equal(t, "security-token-1", plain)
}

func TestAESEncryptionService_ValueIsBoundToOwner(t *testing.T) {
	svc := newTestSealer(t)

	sealed, err := svc.Seal("security-token-1", "creds-a")
	require.NoError(t, err)

	_, err = svc.Open(sealed, "creds-b")
	assert.Error(t, err)
}

func TestAESEncryptionService_FreshNoncePerSeal(t *testing.T) {
	svc := newTestSealer(t)

	s1, err := svc.Seal("same", "owner")
	require.NoError(t, err)
	s2, err := svc.Seal("same", "owner")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestAESEncryptionService_OpenRejectsGarbage(t *testing.T) {
	svc := newTestSealer(t)
	sealed, err := svc.Seal("secret", "owner")
	require.NoError(t, err)

	cases := map[string]string{
		"no prefix":  strings.TrimPrefix(sealed, "v1."),
		"bad base64": "v1.!!!",
		"too short":  "v1.AAAA",
		"tampered":   sealed[:len(sealed)-2] + "AA",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Open(input, "owner")
			assert.Error(t, err)
		})
	}
}

func TestAESEncryptionService_WrongKey(t *testing.T) {
	svc1 := newTestSealer(t)
	svc2, err := NewAESEncryptionService("abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789")
	require.NoError(t, err)

	sealed, err := svc1.Seal("security-token-2", "owner")
	require.NoError(t, err)
	_, err = svc2.Open(sealed, "owner")
	assert.Error(t, err)
}

func TestAESEncryptionService_FromPassphrase(t *testing.T) {
	svc1, err := NewAESEncryptionServiceFromPassphrase("correct horse", "rewards-mediation-gateway")
	require.NoError(t, err)
	svc2, err := NewAESEncryptionServiceFromPassphrase("correct horse", "rewards-mediation-gateway")
	require.NoError(t, err)

	sealed, err := svc1.Seal("token", "owner")
	require.NoError(t, err)
	plain, err := svc2.Open(sealed, "owner")
	require.NoError(t, err, "same passphrase and salt derive the same key")
	assert.Equal(t, "token", plain)

	other, err := NewAESEncryptionServiceFromPassphrase("other", "rewards-mediation-gateway")
	require.NoError(t, err)
	_, err = other.Open(sealed, "owner")
	assert.Error(t, err)

	_, err = NewAESEncryptionServiceFromPassphrase("", "long-enough-salt")
	assert.Error(t, err)
	_, err = NewAESEncryptionServiceFromPassphrase("pass", "short")
	assert.Error(t, err)
}
