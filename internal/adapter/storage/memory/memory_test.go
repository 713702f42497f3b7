package memory

import (
	"context"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsRepo_SaveDropsPlaintextToken(t *testing.T) {
	repo := NewCredentialsRepo()
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	creds, err := domain.NewCredentials("1246", "user-42", "secret", domain.DeviceInfo{Language: "en"}, created)
	require.NoError(t, err)
	creds.SecurityTokenEnc = "enc"
	require.NoError(t, repo.Save(ctx, &creds))

	got, err := repo.GetByToken(ctx, creds.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.SecurityToken)
	assert.Equal(t, "enc", got.SecurityTokenEnc)
	assert.Equal(t, "secret", creds.SecurityToken, "caller's value must not change")

	again, _ := domain.NewCredentials("1246", "user-42", "secret", domain.DeviceInfo{Language: "de"}, created.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, &again))
	got, _ = repo.GetByToken(ctx, creds.Token)
	assert.Equal(t, "de", got.Device.Language)
	assert.Equal(t, created, got.CreatedAt)
}

func TestCredentialsRepo_UnknownToken(t *testing.T) {
	repo := NewCredentialsRepo()

	got, err := repo.GetByToken(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.UpdateSecurityToken(context.Background(), "missing", "enc"))
}

func TestPreferenceStore_GetPut(t *testing.T) {
	s := NewPreferenceStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, domain.PublisherStateFile, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, domain.PublisherStateFile, map[string]string{"k": "v1", "other": "x"}))
	require.NoError(t, s.Put(ctx, domain.PublisherStateFile, map[string]string{"k": "v2"}))

	v, ok, _ := s.Get(ctx, domain.PublisherStateFile, "k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	v, _, _ = s.Get(ctx, domain.PublisherStateFile, "other")
	assert.Equal(t, "x", v)

	_, ok, _ = s.Get(ctx, domain.AdvertiserStateFile, "k")
	assert.False(t, ok, "files are separate namespaces")
}

func TestCallbackLogRepo_ListNewestFirst(t *testing.T) {
	repo := NewCallbackLogRepo()
	ctx := context.Background()

	for _, action := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &domain.CallbackLog{ID: uuid.New(), CredentialsToken: "tok", ActionID: action}))
	}
	require.NoError(t, repo.Create(ctx, &domain.CallbackLog{ID: uuid.New(), CredentialsToken: "other"}))

	logs, err := repo.ListByCredentials(ctx, "tok", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "C", logs[0].ActionID)
	assert.Equal(t, "B", logs[1].ActionID)
}

func TestCurrencyCache_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCurrencyCacheWithClock(func() time.Time { return now })
	ctx := context.Background()

	entry := &domain.CachedCurrencyResponse{
		Timestamp:           now,
		LatestTransactionID: "tx-1",
		Delta:               &domain.CurrencyDelta{DeltaOfCoins: decimal.NewFromInt(3)},
	}
	require.NoError(t, cache.Set(ctx, "tok:gold", entry, 15*time.Second))

	got, err := cache.Get(ctx, "tok:gold")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tx-1", got.LatestTransactionID)

	now = now.Add(15 * time.Second)
	got, err = cache.Get(ctx, "tok:gold")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCurrencyCache_SetSweepsExpiredEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCurrencyCacheWithClock(func() time.Time { return now })
	ctx := context.Background()

	for _, key := range []string{"a:gold", "b:gold", "c:gems"} {
		require.NoError(t, cache.Set(ctx, key, &domain.CachedCurrencyResponse{Timestamp: now}, 15*time.Second))
	}
	require.Equal(t, 3, cache.Len())

	now = now.Add(time.Minute)
	require.NoError(t, cache.Set(ctx, "d:gold", &domain.CachedCurrencyResponse{Timestamp: now}, 15*time.Second))
	assert.Equal(t, 1, cache.Len())

	got, err := cache.Get(ctx, "d:gold")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestNonceStore_CheckAndSet(t *testing.T) {
	s := NewNonceStore()
	ctx := context.Background()

	ok, err := s.CheckAndSet(ctx, "tok", "n1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.CheckAndSet(ctx, "tok", "n1", time.Minute)
	assert.False(t, ok, "replayed nonce must be rejected")

	ok, _ = s.CheckAndSet(ctx, "other", "n1", time.Minute)
	assert.True(t, ok, "nonces are scoped")
}

func TestNonceStore_Expiry(t *testing.T) {
	s := NewNonceStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := s.CheckAndSet(ctx, "tok", "n1", time.Second)
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	ok, _ = s.CheckAndSet(ctx, "tok", "n1", time.Second)
	assert.True(t, ok)
}
