package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/adapter/storage/memory"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/internal/core/ports/mocks"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type advertiserFixture struct {
	svc       *AdvertiserServiceImpl
	backend   *fakeBackend
	prefs     *memory.PreferenceStore
	callbacks *memory.CallbackLogRepo
	creds     domain.Credentials
}

func newAdvertiserFixture(t *testing.T, status int) *advertiserFixture {
	t.Helper()
	creds := testCredentials(t, "s3cr3t")
	f := &advertiserFixture{
		backend: &fakeBackend{handler: func(ports.Endpoint, string) (*ports.RawResponse, error) {
			return &ports.RawResponse{StatusCode: status}, nil
		}},
		prefs:     memory.NewPreferenceStore(),
		callbacks: memory.NewCallbackLogRepo(),
		creds:     creds,
	}
	f.svc = NewAdvertiserService(staticSessions{creds.Token: creds}, f.backend, NewURLBuilder(NewSHA1SignatureService(), "6.5.2", nil), f.prefs, f.callbacks, newTestLogger())
	f.svc.now = func() time.Time { return fixedNow }
	t.Cleanup(f.svc.Close)
	return f
}

func (f *advertiserFixture) query(t *testing.T, i int) url.Values {
	t.Helper()
	calls := f.backend.Calls()
	require.Greater(t, len(calls), i)
	u, err := url.Parse(calls[i].URL)
	require.NoError(t, err)
	return u.Query()
}

func TestAdvertiserService_ReportInstall(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)
	ctx := context.Background()

	entry, err := f.svc.ReportInstall(ctx, ports.InstallRequest{CredentialsToken: f.creds.Token, SubID: "sub-1", InstallReferrer: "utm_source=ads"})
	require.NoError(t, err)
	assert.True(t, entry.Delivered())
	assert.False(t, entry.AnswerReceived)
	assert.Equal(t, domain.CallbackKindInstall, entry.Kind)

	q := f.query(t, 0)
	assert.Equal(t, "0", q.Get("answer_received"))
	assert.Equal(t, "sub-1", q.Get("subid"))
	assert.Equal(t, "utm_source=ads", q.Get("install_referrer"))
	assert.NotEmpty(t, q.Get(ParamSignature))
	assert.Equal(t, ports.EndpointInstall, f.backend.Calls()[0].Endpoint)

	// The second install reuses the remembered sub id and reports the earlier success.
	_, err = f.svc.ReportInstall(ctx, ports.InstallRequest{CredentialsToken: f.creds.Token})
	require.NoError(t, err)
	q = f.query(t, 1)
	assert.Equal(t, "1", q.Get("answer_received"))
	assert.Equal(t, "sub-1", q.Get("subid"))

	logs, err := f.callbacks.ListByCredentials(ctx, f.creds.Token, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestAdvertiserService_FailedCallbackKeepsFlagUnset(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusInternalServerError)
	ctx := context.Background()

	entry, err := f.svc.ReportInstall(ctx, ports.InstallRequest{CredentialsToken: f.creds.Token})
	require.NoError(t, err)
	assert.False(t, entry.Delivered())
	require.NotNil(t, entry.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, *entry.HTTPStatus)

	_, ok, err := f.prefs.Get(ctx, domain.AdvertiserStateFile, domain.InstallCallbackKey("1246"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.ReportInstall(ctx, ports.InstallRequest{CredentialsToken: f.creds.Token})
	require.NoError(t, err)
	assert.Equal(t, "0", f.query(t, 1).Get("answer_received"))
}

func TestAdvertiserService_TransportFailure(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)
	f.backend.handler = func(ports.Endpoint, string) (*ports.RawResponse, error) {
		return nil, errors.New("dial tcp: refused")
	}

	entry, err := f.svc.ReportAction(context.Background(), ports.ActionRequest{CredentialsToken: f.creds.Token, ActionID: "LEVEL_1"})
	require.NoError(t, err)
	assert.False(t, entry.Delivered())
	require.NotNil(t, entry.LastError)
	assert.Contains(t, *entry.LastError, "refused")
}

func TestAdvertiserService_ReportAction(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)
	ctx := context.Background()

	entry, err := f.svc.ReportAction(ctx, ports.ActionRequest{CredentialsToken: f.creds.Token, ActionID: "LEVEL_1"})
	require.NoError(t, err)
	assert.Equal(t, "LEVEL_1", entry.ActionID)

	q := f.query(t, 0)
	assert.Equal(t, "LEVEL_1", q.Get("action_id"))
	assert.Equal(t, "0", q.Get("answer_received"))
	assert.Equal(t, ports.EndpointAction, f.backend.Calls()[0].Endpoint)

	// Flags are tracked per action.
	_, err = f.svc.ReportAction(ctx, ports.ActionRequest{CredentialsToken: f.creds.Token, ActionID: "LEVEL_2"})
	require.NoError(t, err)
	assert.Equal(t, "0", f.query(t, 1).Get("answer_received"))

	_, err = f.svc.ReportAction(ctx, ports.ActionRequest{CredentialsToken: f.creds.Token, ActionID: "LEVEL_1"})
	require.NoError(t, err)
	assert.Equal(t, "1", f.query(t, 2).Get("answer_received"))
}

func TestAdvertiserService_ReportAction_InvalidID(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)

	for _, id := range []string{"", "level_1", "LEVEL 1"} {
		_, err := f.svc.ReportAction(context.Background(), ports.ActionRequest{CredentialsToken: f.creds.Token, ActionID: id})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VAL_002", appErr.Code)
	}
	assert.Empty(t, f.backend.Calls())
}

func TestAdvertiserService_ReportInstallWithDelay(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)

	err := f.svc.ReportInstallWithDelay(context.Background(), ports.InstallRequest{CredentialsToken: f.creds.Token}, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, f.backend.Calls())

	assert.Eventually(t, func() bool { return len(f.backend.Calls()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestAdvertiserService_CloseAbandonsDelayedCallbacks(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)

	require.NoError(t, f.svc.ReportInstallWithDelay(context.Background(), ports.InstallRequest{CredentialsToken: f.creds.Token}, time.Hour))
	f.svc.Close()
	assert.Empty(t, f.backend.Calls())
}

func TestAdvertiserService_ReportInstallWithDelay_UnknownCredentials(t *testing.T) {
	f := newAdvertiserFixture(t, http.StatusOK)

	err := f.svc.ReportInstallWithDelay(context.Background(), ports.InstallRequest{CredentialsToken: "nope"}, time.Second)
	assert.Error(t, err)
}

func TestAdvertiserService_CallbackLogFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	callbacks := mocks.NewMockCallbackLogRepository(ctrl)
	callbacks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	creds := testCredentials(t, "")
	svc := NewAdvertiserService(staticSessions{creds.Token: creds}, &fakeBackend{}, NewURLBuilder(NewSHA1SignatureService(), "6.5.2", nil), memory.NewPreferenceStore(), callbacks, newTestLogger())
	defer svc.Close()

	entry, err := svc.ReportInstall(context.Background(), ports.InstallRequest{CredentialsToken: creds.Token})
	require.NoError(t, err)
	assert.True(t, entry.Delivered())
}
