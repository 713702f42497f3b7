package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnlockService(t *testing.T, creds domain.Credentials, backend *fakeBackend) *UnlockServiceImpl {
	t.Helper()
	sig := NewSHA1SignatureService()
	svc := NewUnlockService(staticSessions{creds.Token: creds}, backend, NewURLBuilder(sig, "6.5.2", nil), sig, newTestLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestUnlockService_FetchItems(t *testing.T) {
	creds := testCredentials(t, "s3cr3t")
	backend := &fakeBackend{handler: func(endpoint ports.Endpoint, rawURL string) (*ports.RawResponse, error) {
		return signedJSON(`[{"id":"LEVEL_2","name":"Level 2","unlocked":true,"timestamp":1709294000},{"id":"SWORD","name":"Sword","unlocked":false,"timestamp":0}]`, "s3cr3t"), nil
	}}
	svc := newTestUnlockService(t, creds, backend)

	items, err := svc.FetchItems(context.Background(), creds.Token, map[string]string{"pub0": "x"})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, domain.UnlockItem{ID: "LEVEL_2", Name: "Level 2", Unlocked: true, Timestamp: 1709294000}, items[0])
	assert.False(t, items[1].Unlocked)

	calls := backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ports.EndpointUnlockItems, calls[0].Endpoint)
	u, _ := url.Parse(calls[0].URL)
	assert.Equal(t, "x", u.Query().Get("pub0"))
	assert.Equal(t, "1709294400", u.Query().Get(ParamTimestamp))
}

func TestUnlockService_Errors(t *testing.T) {
	tests := []struct {
		name string
		resp *ports.RawResponse
		want apperror.Kind
	}{
		{"unsigned", &ports.RawResponse{StatusCode: http.StatusOK, Body: []byte(`[]`)}, apperror.KindInvalidResponseSignature},
		{"object instead of list", signedJSON(`{"id":"X"}`, "s3cr3t"), apperror.KindInvalidResponse},
		{"item without id", signedJSON(`[{"name":"x"}]`, "s3cr3t"), apperror.KindInvalidResponse},
		{"server error", &ports.RawResponse{StatusCode: http.StatusUnauthorized, Body: []byte(`{"code":"ERROR_INVALID_SIGNATURE","message":"nope"}`)}, apperror.KindServerReturnedError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := testCredentials(t, "s3cr3t")
			svc := newTestUnlockService(t, creds, &fakeBackend{handler: func(ports.Endpoint, string) (*ports.RawResponse, error) {
				return tt.resp, nil
			}})
			_, err := svc.FetchItems(context.Background(), creds.Token, nil)
			assert.Equal(t, tt.want, apperror.KindOf(err))
		})
	}
}

func TestUnlockService_EmptyList(t *testing.T) {
	creds := testCredentials(t, "s3cr3t")
	svc := newTestUnlockService(t, creds, &fakeBackend{handler: func(ports.Endpoint, string) (*ports.RawResponse, error) {
		return signedJSON(`[]`, "s3cr3t"), nil
	}})

	items, err := svc.FetchItems(context.Background(), creds.Token, nil)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
