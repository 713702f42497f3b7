package app

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"rewards-mediation-gateway/config"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/internal/mediation"
	"rewards-mediation-gateway/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend plays the rewards backend. Signed replies carry
// sha1(body + security token).
type fakeBackend struct {
	server *httptest.Server

	mu     sync.Mutex
	secret string
	hits   map[string]int
	last   map[string]url.Values
}

func newFakeBackend(t *testing.T, secret string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{secret: secret, hits: map[string]int{}, last: map[string]url.Values{}}

	bodies := map[string]string{
		"/vcs":          `{"delta_of_coins":5,"latest_transaction_id":"tx-1","currency_id":"gold","currency_name":"Gold","is_default":false}`,
		"/unlock":       `[{"id":"LEVEL_1","name":"Level 1","unlocked":true,"timestamp":1700000000}]`,
		"/installs":     `{}`,
		"/actions":      `{}`,
		"/interstitial": `{"ads":[{"provider_type":"MarketPlace","ad_id":"ad-1","html":"<p>hi</p>","orientation":"portrait"}]}`,
		"/tracker":      `{}`,
	}

	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		b.mu.Lock()
		b.hits[r.URL.Path]++
		b.last[r.URL.Path] = r.URL.Query()
		secret := b.secret
		b.mu.Unlock()

		sum := sha1.Sum([]byte(body + secret))
		w.Header().Set(ports.ResponseSignatureHeader, hex.EncodeToString(sum[:]))
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) urls() map[string]string {
	return map[string]string{
		string(ports.EndpointCurrency):        b.server.URL + "/vcs",
		string(ports.EndpointUnlockItems):     b.server.URL + "/unlock",
		string(ports.EndpointInstall):         b.server.URL + "/installs",
		string(ports.EndpointAction):          b.server.URL + "/actions",
		string(ports.EndpointInterstitial):    b.server.URL + "/interstitial",
		string(ports.EndpointTracker):         b.server.URL + "/tracker",
		string(ports.EndpointOfferwall):       b.server.URL + "/ofw",
		string(ports.EndpointOfferwallUnlock): b.server.URL + "/ofw/unlock",
	}
}

func (b *fakeBackend) setSecret(secret string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.secret = secret
}

func (b *fakeBackend) hitCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

func (b *fakeBackend) lastQuery(path string) url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last[path]
}

// videoBinding always has a fully watched video ready.
type videoBinding struct{}

func (videoBinding) Init(ctx context.Context, settings map[string]string) error { return nil }
func (videoBinding) AdReady(ctx context.Context, format domain.AdFormat) (bool, error) {
	return true, nil
}
func (videoBinding) Display(ctx context.Context, format domain.AdFormat) error { return nil }
func (videoBinding) Play(ctx context.Context) (domain.Playback, error) {
	return domain.Playback{Watched: 30 * time.Second, Total: 30 * time.Second, Completed: true}, nil
}

type testApp struct {
	app     *App
	server  *httptest.Server
	backend *fakeBackend
	redis   *miniredis.Miniredis
}

func testConfig(b *fakeBackend) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{MaxBodyBytes: 1 << 20},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		JWT:     config.JWTConfig{Secret: "test-jwt-secret-key-32bytes!!", Expiry: time.Hour, Issuer: "test"},
		Crypto:  config.CryptoConfig{AESKey: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"},
		Backend: config.BackendConfig{Timeout: 5 * time.Second, URLs: b.urls()},
		Currency: config.CurrencyConfig{
			CacheWindow:      15 * time.Second,
			ShowNotification: true,
			DefaultName:      "coins",
		},
		SDK: config.SDKConfig{Version: "6.5.2"},
		Mediation: config.MediationConfig{Adapters: map[string]map[string]interface{}{
			"MarketPlace": {},
			"Vungle":      {"app_id": "vungle-app"},
			"AdColony":    {"app_id": "adc-app"}, // missing zone_ids, stays stopped
		}},
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	b := newFakeBackend(t, "secret")
	a, err := New(context.Background(), testConfig(b), zerolog.Nop(), Options{
		Redis:    rdb,
		Bindings: map[string]mediation.Binding{"vungle": videoBinding{}},
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)

	server := httptest.NewServer(a.Router)
	t.Cleanup(server.Close)

	return &testApp{app: a, server: server, backend: b, redis: mr}
}

func (ta *testApp) do(t *testing.T, method, path, bearer string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ta.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func data(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "missing data: %v", resp)
	return d
}

func (ta *testApp) startSession(t *testing.T) (credentialsToken, sessionToken string) {
	t.Helper()
	status, resp := ta.do(t, http.MethodPost, "/api/v1/sessions", "", map[string]interface{}{
		"app_id":         "1246",
		"user_id":        "user-42",
		"security_token": "secret",
		"device":         map[string]interface{}{"language": "en", "os_version": "4.4"},
	})
	require.Equal(t, http.StatusCreated, status, "%v", resp)
	d := data(t, resp)
	return d["credentials_token"].(string), d["session_token"].(string)
}

func TestApp_HealthAndMetrics(t *testing.T) {
	ta := newTestApp(t)

	status, resp := ta.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Contains(t, deps, "redis")

	res, err := http.Get(ta.server.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestApp_SessionAndCurrency(t *testing.T) {
	ta := newTestApp(t)
	credsToken, jwt := ta.startSession(t)
	assert.Equal(t, "6abcd0a7-676b-3d69-b800-1e8527f31b61", credsToken)

	status, resp := ta.do(t, http.MethodGet, "/api/v1/currency/delta?currency_id=gold&custom_pub0=promo", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	d := data(t, resp)
	assert.Equal(t, "5", d["delta_of_coins"])
	assert.Equal(t, "tx-1", d["latest_transaction_id"])
	assert.Equal(t, "Gold", d["currency_name"])
	assert.Equal(t, false, d["cached"])
	assert.Equal(t, "Congratulations! You've earned 5 Gold!", d["notification"])

	q := ta.backend.lastQuery("/vcs")
	assert.Equal(t, "1246", q.Get("appid"))
	assert.Equal(t, "user-42", q.Get("uid"))
	assert.Equal(t, "NO_TRANSACTION", q.Get("ltid"))
	assert.Equal(t, "promo", q.Get("pub0"))
	assert.NotEmpty(t, q.Get("signature"))

	// Served from the redis cache inside the window
	status, resp = ta.do(t, http.MethodGet, "/api/v1/currency/delta?currency_id=gold", jwt, nil)
	require.Equal(t, http.StatusOK, status)
	d = data(t, resp)
	assert.Equal(t, true, d["cached"])
	assert.Equal(t, "0", d["delta_of_coins"])
	assert.Equal(t, 1, ta.backend.hitCount("/vcs"))
}

func TestApp_CurrencyRejectsBadSignature(t *testing.T) {
	ta := newTestApp(t)
	_, jwt := ta.startSession(t)
	ta.backend.setSecret("someone-else")

	status, resp := ta.do(t, http.MethodGet, "/api/v1/currency/delta?currency_id=gold", jwt, nil)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "REQ_003", resp["error_code"])
}

func TestApp_RequiresSessionToken(t *testing.T) {
	ta := newTestApp(t)

	status, resp := ta.do(t, http.MethodGet, "/api/v1/unlock/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", resp["error_code"])

	status, _ = ta.do(t, http.MethodGet, "/api/v1/unlock/items", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestApp_UnlockAndOfferwall(t *testing.T) {
	ta := newTestApp(t)
	_, jwt := ta.startSession(t)

	status, resp := ta.do(t, http.MethodGet, "/api/v1/unlock/items", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	items := data(t, resp)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "LEVEL_1", items[0].(map[string]interface{})["id"])

	status, resp = ta.do(t, http.MethodGet, "/api/v1/offerwall/url?unlock_item_id=LEVEL_2&unlock_item_name=Bonus", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	u, err := url.Parse(data(t, resp)["url"].(string))
	require.NoError(t, err)
	assert.Equal(t, "/ofw/unlock", u.Path)
	assert.Equal(t, "LEVEL_2", u.Query().Get("unlock_item"))
	assert.Empty(t, u.Query().Get("signature"))

	status, resp = ta.do(t, http.MethodGet, "/api/v1/offerwall/url?unlock_item_id=level-2", jwt, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_002", resp["error_code"])
}

func TestApp_AdvertiserCallbacks(t *testing.T) {
	ta := newTestApp(t)
	_, jwt := ta.startSession(t)

	status, resp := ta.do(t, http.MethodPost, "/api/v1/advertiser/install", jwt, map[string]interface{}{"sub_id": "sub-1"})
	require.Equal(t, http.StatusOK, status, "%v", resp)
	assert.Equal(t, "DELIVERED", data(t, resp)["status"])
	q := ta.backend.lastQuery("/installs")
	assert.Equal(t, "0", q.Get("answer_received"))
	assert.Equal(t, "sub-1", q.Get("subid"))

	// Sub id is remembered and the answer flag is now set
	status, _ = ta.do(t, http.MethodPost, "/api/v1/advertiser/install", jwt, nil)
	require.Equal(t, http.StatusOK, status)
	q = ta.backend.lastQuery("/installs")
	assert.Equal(t, "1", q.Get("answer_received"))
	assert.Equal(t, "sub-1", q.Get("subid"))

	status, resp = ta.do(t, http.MethodPost, "/api/v1/advertiser/actions", jwt, map[string]interface{}{"action_id": "LEVEL_1"})
	require.Equal(t, http.StatusOK, status, "%v", resp)
	assert.Equal(t, "LEVEL_1", ta.backend.lastQuery("/actions").Get("action_id"))

	status, resp = ta.do(t, http.MethodPost, "/api/v1/advertiser/actions", jwt, map[string]interface{}{"action_id": "level one"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_002", resp["error_code"])
}

func TestApp_InterstitialLifecycle(t *testing.T) {
	ta := newTestApp(t)
	_, jwt := ta.startSession(t)

	status, resp := ta.do(t, http.MethodPost, "/api/v1/interstitial/show", jwt, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ADS_001", resp["error_code"])

	status, resp = ta.do(t, http.MethodPost, "/api/v1/interstitial/request", jwt, map[string]interface{}{"skin": "dark"})
	require.Equal(t, http.StatusOK, status, "%v", resp)
	offer := data(t, resp)
	assert.Equal(t, true, offer["available"])
	assert.NotEmpty(t, offer["request_id"])

	status, resp = ta.do(t, http.MethodPost, "/api/v1/interstitial/show", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	creative := data(t, resp)
	assert.Equal(t, "<p>hi</p>", creative["html"])
	assert.Equal(t, "MarketPlace", creative["provider_type"])

	status, _ = ta.do(t, http.MethodPost, "/api/v1/interstitial/events", jwt, map[string]interface{}{"event": "close"})
	assert.Equal(t, http.StatusAccepted, status)

	status, _ = ta.do(t, http.MethodPost, "/api/v1/interstitial/events", jwt, map[string]interface{}{"event": "click"})
	assert.Equal(t, http.StatusConflict, status)

	// request, fill, impression and close beacons
	ta.app.Close()
	assert.Equal(t, 4, ta.backend.hitCount("/tracker"))
}

func TestApp_Mediation(t *testing.T) {
	ta := newTestApp(t)
	_, jwt := ta.startSession(t)

	status, resp := ta.do(t, http.MethodGet, "/api/v1/mediation/adapters", jwt, nil)
	require.Equal(t, http.StatusOK, status)
	adapters := data(t, resp)["adapters"].([]interface{})
	started := map[string]bool{}
	for _, raw := range adapters {
		info := raw.(map[string]interface{})
		started[info["name"].(string)] = info["started"].(bool)
	}
	assert.True(t, started["Vungle"])
	assert.True(t, started["MarketPlace"])
	assert.False(t, started["AdColony"])

	status, resp = ta.do(t, http.MethodPost, "/api/v1/mediation/vungle/validate", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	assert.Equal(t, "success", data(t, resp)["result"])

	status, resp = ta.do(t, http.MethodPost, "/api/v1/mediation/vungle/play", jwt, nil)
	require.Equal(t, http.StatusOK, status, "%v", resp)
	assert.Equal(t, "finished", data(t, resp)["event"])

	status, resp = ta.do(t, http.MethodPost, "/api/v1/mediation/adcolony/play", jwt, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ADS_002", resp["error_code"])
}

func TestApp_RotateSecurityToken(t *testing.T) {
	ta := newTestApp(t)
	credsToken, jwt := ta.startSession(t)
	sig := service.NewSHA1SignatureService()

	rotate := func(nonce, secret string) (int, map[string]interface{}) {
		body := `{"security_token":"rotated"}`
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		signature := sig.SignParams(map[string]string{
			"token": credsToken, "timestamp": ts, "nonce": nonce, "body": body,
		}, secret)

		q := url.Values{"token": {credsToken}, "timestamp": {ts}, "nonce": {nonce}, "signature": {signature}}
		req, err := http.NewRequest(http.MethodPost, ta.server.URL+"/api/v1/credentials/rotate?"+q.Encode(), bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		var decoded map[string]interface{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
		return res.StatusCode, decoded
	}

	status, resp := rotate("n-1", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "SEC_002", resp["error_code"])

	// A badly signed request does not use up its nonce
	status, resp = rotate("n-1", "secret")
	require.Equal(t, http.StatusOK, status, "%v", resp)

	status, resp = rotate("n-1", "rotated")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SEC_004", resp["error_code"])

	// Signed backend replies are now verified with the new token
	ta.backend.setSecret("rotated")
	status, resp = ta.do(t, http.MethodGet, "/api/v1/unlock/items", jwt, nil)
	assert.Equal(t, http.StatusOK, status, "%v", resp)
}

func TestNew_RequiresSecrets(t *testing.T) {
	b := newFakeBackend(t, "")

	cfg := testConfig(b)
	cfg.JWT.Secret = ""
	_, err := New(context.Background(), cfg, zerolog.Nop(), Options{})
	assert.Error(t, err)

	cfg = testConfig(b)
	cfg.Crypto = config.CryptoConfig{}
	_, err = New(context.Background(), cfg, zerolog.Nop(), Options{})
	assert.Error(t, err)

	cfg = testConfig(b)
	cfg.Crypto = config.CryptoConfig{Passphrase: "correct horse", Salt: "gateway-salt"}
	a, err := New(context.Background(), cfg, zerolog.Nop(), Options{})
	require.NoError(t, err)
	a.Close()
}
