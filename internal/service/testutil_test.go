package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeBackend implements ports.BackendClient for testing.
type fakeBackend struct {
	mu      sync.Mutex
	calls   []fakeCall
	handler func(endpoint ports.Endpoint, rawURL string) (*ports.RawResponse, error)
}

type fakeCall struct {
	Endpoint ports.Endpoint
	URL      string
}

func (f *fakeBackend) URL(endpoint ports.Endpoint) string {
	return "https://backend.test/" + string(endpoint)
}

func (f *fakeBackend) Get(ctx context.Context, endpoint ports.Endpoint, rawURL string) (*ports.RawResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Endpoint: endpoint, URL: rawURL})
	h := f.handler
	f.mu.Unlock()
	if h == nil {
		return &ports.RawResponse{StatusCode: http.StatusOK}, nil
	}
	return h(endpoint, rawURL)
}

func (f *fakeBackend) Calls() []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]fakeCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// signedJSON returns a 200 reply signed for securityToken.
func signedJSON(body string, securityToken string) *ports.RawResponse {
	return &ports.RawResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
		Signature:  NewSHA1SignatureService().SignString(body, securityToken),
	}
}

// staticSessions resolves a fixed set of credentials.
type staticSessions map[string]domain.Credentials

func (s staticSessions) Start(ctx context.Context, req ports.StartRequest) (*ports.StartResponse, error) {
	return nil, errors.New("not supported")
}

func (s staticSessions) Resolve(ctx context.Context, credentialsToken string) (*domain.Credentials, error) {
	c, ok := s[credentialsToken]
	if !ok {
		return nil, apperror.ErrNotFound("credentials")
	}
	return &c, nil
}

func (s staticSessions) RotateSecurityToken(ctx context.Context, credentialsToken string, newToken string) error {
	return errors.New("not supported")
}

func testCredentials(t *testing.T, securityToken string) domain.Credentials {
	t.Helper()
	creds, err := domain.NewCredentials("1246", "user-42", securityToken, domain.DeviceInfo{
		UDID:         "udid-1",
		AndroidID:    "android-2",
		Language:     "en",
		ScreenWidth:  "1080",
		ScreenHeight: "1920",
	}, fixedNow)
	require.NoError(t, err)
	return creds
}
