package service

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/adapter/storage/memory"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type currencyFixture struct {
	svc     *CurrencyServiceImpl
	backend *fakeBackend
	prefs   *memory.PreferenceStore
	creds   domain.Credentials
	now     time.Time
}

func newCurrencyFixture(t *testing.T, handler func(q url.Values) *ports.RawResponse) *currencyFixture {
	t.Helper()
	f := &currencyFixture{
		prefs: memory.NewPreferenceStore(),
		creds: testCredentials(t, "s3cr3t"),
		now:   fixedNow,
	}
	f.backend = &fakeBackend{handler: func(endpoint ports.Endpoint, rawURL string) (*ports.RawResponse, error) {
		u, err := url.Parse(rawURL)
		require.NoError(t, err)
		return handler(u.Query()), nil
	}}
	clock := func() time.Time { return f.now }
	sig := NewSHA1SignatureService()
	f.svc = NewCurrencyService(
		staticSessions{f.creds.Token: f.creds},
		f.backend,
		NewURLBuilder(sig, "6.5.2", nil),
		sig,
		memory.NewCurrencyCacheWithClock(clock),
		f.prefs,
		CurrencySettings{CacheWindow: 15 * time.Second, ShowNotification: true, DefaultName: "coins"},
		newTestLogger(),
	)
	f.svc.now = clock
	return f
}

func (f *currencyFixture) request() ports.DeltaRequest {
	return ports.DeltaRequest{CredentialsToken: f.creds.Token}
}

func lastQuery(t *testing.T, b *fakeBackend) url.Values {
	t.Helper()
	calls := b.Calls()
	require.NotEmpty(t, calls)
	u, err := url.Parse(calls[len(calls)-1].URL)
	require.NoError(t, err)
	return u.Query()
}

func vcsReply(body string) func(q url.Values) *ports.RawResponse {
	return func(q url.Values) *ports.RawResponse { return signedJSON(body, "s3cr3t") }
}

func TestCurrencyService_CachesWithinWindow(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":12.5,"latest_transaction_id":"tx-2","currency_id":"gold","currency_name":"Gold","is_default":true}`))
	ctx := context.Background()

	first, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "12.5", first.Delta.DeltaOfCoins.String())
	assert.Equal(t, "tx-2", first.Delta.LatestTransactionID)

	f.now = f.now.Add(14 * time.Second)
	second, err := f.svc.FetchDelta(ctx, ports.DeltaRequest{CredentialsToken: f.creds.Token, CurrencyID: "gold"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.True(t, second.Delta.DeltaOfCoins.IsZero(), "cached replies carry no coins")
	assert.Equal(t, "tx-2", second.Delta.LatestTransactionID)
	assert.Len(t, f.backend.Calls(), 1)

	f.now = f.now.Add(2 * time.Second)
	third, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Len(t, f.backend.Calls(), 2, "expired window triggers a new request")
}

func TestCurrencyService_TransactionIDChain(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":1,"latest_transaction_id":"tx-7","currency_id":"gold","is_default":false}`))
	ctx := context.Background()
	req := ports.DeltaRequest{CredentialsToken: f.creds.Token, CurrencyID: "gold"}

	_, err := f.svc.FetchDelta(ctx, req)
	require.NoError(t, err)
	q := lastQuery(t, f.backend)
	assert.Equal(t, domain.NoTransaction, q.Get("ltid"))
	assert.Equal(t, "gold", q.Get("currency_id"))
	assert.Equal(t, "1709294400", q.Get("timestamp"))
	assert.NotEmpty(t, q.Get("signature"))

	stored, ok, _ := f.prefs.Get(ctx, domain.PublisherStateFile, domain.LatestTransactionIDKey("1246", "user-42", "gold"))
	require.True(t, ok)
	assert.Equal(t, "tx-7", stored)

	f.now = f.now.Add(time.Minute)
	_, err = f.svc.FetchDelta(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "tx-7", lastQuery(t, f.backend).Get("ltid"))

	f.now = f.now.Add(time.Minute)
	req.TransactionID = "tx-caller"
	_, err = f.svc.FetchDelta(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "tx-caller", lastQuery(t, f.backend).Get("ltid"))
}

func TestCurrencyService_PersistsDefaultCurrency(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":0,"latest_transaction_id":"tx-1","currency_id":"gold","is_default":true}`))
	ctx := context.Background()

	_, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)

	def, ok, _ := f.prefs.Get(ctx, domain.PublisherStateFile, domain.DefaultCurrencyIDKey("1246"))
	require.True(t, ok)
	assert.Equal(t, "gold", def)
	assert.False(t, lastQuery(t, f.backend).Has("currency_id"))
}

func TestCurrencyService_DefaultCurrencyChangeRequestsAgain(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":3,"latest_transaction_id":"tx-9","currency_id":"silver","is_default":true}`))
	ctx := context.Background()
	require.NoError(t, f.prefs.Put(ctx, domain.PublisherStateFile, map[string]string{
		domain.DefaultCurrencyIDKey("1246"):                        "gold",
		domain.LatestTransactionIDKey("1246", "user-42", "gold"):   "tx-gold",
		domain.LatestTransactionIDKey("1246", "user-42", "silver"): "tx-silver",
	}))

	result, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)
	assert.Equal(t, "silver", result.Delta.CurrencyID)

	calls := f.backend.Calls()
	require.Len(t, calls, 2)
	u1, _ := url.Parse(calls[0].URL)
	u2, _ := url.Parse(calls[1].URL)
	assert.Equal(t, "tx-gold", u1.Query().Get("ltid"))
	assert.Equal(t, "tx-silver", u2.Query().Get("ltid"))

	def, _, _ := f.prefs.Get(ctx, domain.PublisherStateFile, domain.DefaultCurrencyIDKey("1246"))
	assert.Equal(t, "silver", def)

	again, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Len(t, f.backend.Calls(), 2)
}

func TestCurrencyService_CachesErrors(t *testing.T) {
	f := newCurrencyFixture(t, func(q url.Values) *ports.RawResponse {
		return &ports.RawResponse{StatusCode: http.StatusBadRequest, Body: []byte(`{"code":"ERROR_INVALID_UID","message":"bad uid"}`)}
	})
	ctx := context.Background()

	_, err := f.svc.FetchDelta(ctx, f.request())
	assert.Equal(t, apperror.KindServerReturnedError, apperror.KindOf(err))

	_, err = f.svc.FetchDelta(ctx, f.request())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindServerReturnedError, appErr.Kind)
	assert.Equal(t, "ERROR_INVALID_UID", appErr.ServerCode)
	assert.Len(t, f.backend.Calls(), 1)
}

func TestCurrencyService_ResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		resp *ports.RawResponse
		want apperror.Kind
	}{
		{"bad signature", &ports.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{"delta_of_coins":1,"latest_transaction_id":"x"}`), Signature: "nope"}, apperror.KindInvalidResponseSignature},
		{"missing field", signedJSON(`{"delta_of_coins":1}`, "s3cr3t"), apperror.KindInvalidResponse},
		{"not json", signedJSON(`<html>`, "s3cr3t"), apperror.KindInvalidResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCurrencyFixture(t, func(q url.Values) *ports.RawResponse { return tt.resp })
			_, err := f.svc.FetchDelta(context.Background(), f.request())
			assert.Equal(t, tt.want, apperror.KindOf(err))
		})
	}
}

func TestCurrencyService_RequiresSecurityToken(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{}`))
	unsigned := testCredentials(t, "")
	f.svc.sessions = staticSessions{unsigned.Token: unsigned}

	_, err := f.svc.FetchDelta(context.Background(), ports.DeltaRequest{CredentialsToken: unsigned.Token})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_005", appErr.Code)
	assert.Empty(t, f.backend.Calls())
}

func TestCurrencyService_NotificationAndName(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":5,"latest_transaction_id":"tx-1","currency_id":"gold","currency_name":"Gold"}`))
	ctx := context.Background()

	result, err := f.svc.FetchDelta(ctx, f.request())
	require.NoError(t, err)
	assert.Equal(t, "Gold", result.CurrencyName)
	assert.Equal(t, "Congratulations! You've earned 5 Gold!", result.Notification)

	req := f.request()
	req.CurrencyName = "Gems"
	cached, err := f.svc.FetchDelta(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Gems", cached.CurrencyName)
	assert.Empty(t, cached.Notification, "nothing earned on a cached reply")
}

func TestCurrencyService_DefaultCurrencyName(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":5,"latest_transaction_id":"tx-1"}`))
	f.svc.settings.ShowNotification = false

	result, err := f.svc.FetchDelta(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, "coins", result.CurrencyName)
	assert.Empty(t, result.Notification)
}

func TestCurrencyService_ConcurrentCallsShareOneRequest(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	f := newCurrencyFixture(t, func(q url.Values) *ports.RawResponse {
		atomic.AddInt32(&hits, 1)
		<-release
		return signedJSON(`{"delta_of_coins":2,"latest_transaction_id":"tx-1","currency_id":"gold"}`, "s3cr3t")
	})

	var wg sync.WaitGroup
	results := make([]*ports.DeltaResult, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := f.svc.FetchDelta(context.Background(), f.request())
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "tx-1", r.Delta.LatestTransactionID)
	}
}

type recordingListener struct {
	deltas chan *ports.DeltaResult
	errs   chan error
}

func (l *recordingListener) OnDeltaReceived(result *ports.DeltaResult) { l.deltas <- result }
func (l *recordingListener) OnError(err error)                         { l.errs <- err }

func TestCurrencyService_FetchDeltaAsync(t *testing.T) {
	f := newCurrencyFixture(t, vcsReply(`{"delta_of_coins":2,"latest_transaction_id":"tx-1"}`))
	l := &recordingListener{deltas: make(chan *ports.DeltaResult, 1), errs: make(chan error, 1)}

	f.svc.FetchDeltaAsync(context.Background(), f.request(), l)
	f.svc.Wait()

	select {
	case r := <-l.deltas:
		assert.Equal(t, "tx-1", r.Delta.LatestTransactionID)
	default:
		t.Fatal("listener was not called")
	}
	assert.Empty(t, l.errs)
}

func TestCurrencyService_FetchDeltaAsync_DropsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newCurrencyFixture(t, func(q url.Values) *ports.RawResponse {
		cancel()
		return signedJSON(`{"delta_of_coins":2,"latest_transaction_id":"tx-1"}`, "s3cr3t")
	})
	l := &recordingListener{deltas: make(chan *ports.DeltaResult, 1), errs: make(chan error, 1)}

	f.svc.FetchDeltaAsync(ctx, f.request(), l)
	f.svc.Wait()

	assert.Empty(t, l.deltas)
	assert.Empty(t, l.errs)
	assert.Len(t, f.backend.Calls(), 1)
}
