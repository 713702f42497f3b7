package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	paramLatestTransactionID = "ltid"
	paramCurrencyID          = "currency_id"
)

// CurrencySettings configures the currency connector.
type CurrencySettings struct {
	CacheWindow      time.Duration
	ShowNotification bool
	DefaultName      string
}

// vcsResponse is the success body of the currency endpoint.
type vcsResponse struct {
	DeltaOfCoins        *decimal.Decimal `json:"delta_of_coins"`
	LatestTransactionID *string          `json:"latest_transaction_id"`
	CurrencyID          string           `json:"currency_id"`
	CurrencyName        string           `json:"currency_name"`
	IsDefault           bool             `json:"is_default"`
}

// CurrencyServiceImpl implements ports.CurrencyService.
// At most one backend request is in flight per cache key, and replies are
// served from cache for CacheWindow.
type CurrencyServiceImpl struct {
	sessions ports.SessionService
	backend  ports.BackendClient
	urls     *URLBuilder
	sigSvc   ports.SignatureService
	cache    ports.CurrencyCache
	prefs    ports.PreferenceStore
	settings CurrencySettings
	log      zerolog.Logger
	now      func() time.Time

	group singleflight.Group
	wg    sync.WaitGroup
}

// NewCurrencyService creates a new CurrencyServiceImpl.
func NewCurrencyService(
	sessions ports.SessionService,
	backend ports.BackendClient,
	urls *URLBuilder,
	sigSvc ports.SignatureService,
	cache ports.CurrencyCache,
	prefs ports.PreferenceStore,
	settings CurrencySettings,
	log zerolog.Logger,
) *CurrencyServiceImpl {
	return &CurrencyServiceImpl{
		sessions: sessions,
		backend:  backend,
		urls:     urls,
		sigSvc:   sigSvc,
		cache:    cache,
		prefs:    prefs,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// FetchDelta returns the coins earned since the last known transaction.
func (s *CurrencyServiceImpl) FetchDelta(ctx context.Context, req ports.DeltaRequest) (*ports.DeltaResult, error) {
	creds, err := s.sessions.Resolve(ctx, req.CredentialsToken)
	if err != nil {
		return nil, err
	}
	if !creds.HasSecurityToken() {
		return nil, apperror.ErrMissingSecurityToken()
	}

	currencyID := req.CurrencyID
	storedDefault := ""
	if currencyID == "" {
		storedDefault, err = s.pref(ctx, domain.DefaultCurrencyIDKey(creds.AppID))
		if err != nil {
			return nil, apperror.ErrStorage(err)
		}
		currencyID = storedDefault
	}

	key := domain.BuildCurrencyCacheKey(creds.Token, currencyID)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.fetch(context.WithoutCancel(ctx), *creds, req, key, currencyID, storedDefault)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug().Str("key", key).Msg("joined in-flight currency request")
	}

	result := *v.(*ports.DeltaResult)
	result.CurrencyName = s.currencyName(req.CurrencyName, result.Delta.CurrencyName)
	if s.settings.ShowNotification && result.Delta.HasEarned() {
		result.Notification = fmt.Sprintf("Congratulations! You've earned %s %s!", result.Delta.DeltaOfCoins.String(), result.CurrencyName)
	}
	return &result, nil
}

// FetchDeltaAsync runs FetchDelta in the background and reports to listener.
// Results arriving after ctx is done are dropped.
func (s *CurrencyServiceImpl) FetchDeltaAsync(ctx context.Context, req ports.DeltaRequest, listener ports.CurrencyListener) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		result, err := s.FetchDelta(context.WithoutCancel(ctx), req)
		if ctx.Err() != nil {
			s.log.Debug().Str("credentials_token", req.CredentialsToken).Msg("listener gone, dropping currency result")
			return
		}
		if err != nil {
			listener.OnError(err)
			return
		}
		listener.OnDeltaReceived(result)
	}()
}

// Wait blocks until asynchronous requests have completed.
func (s *CurrencyServiceImpl) Wait() {
	s.wg.Wait()
}

func (s *CurrencyServiceImpl) fetch(ctx context.Context, creds domain.Credentials, req ports.DeltaRequest, key, currencyID, storedDefault string) (*ports.DeltaResult, error) {
	now := s.now()

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CurrencyCache("error")
		s.log.Warn().Err(err).Str("key", key).Msg("currency cache lookup failed, requesting backend")
	}
	if entry.Fresh(now, s.settings.CacheWindow) && (entry.Error != nil || entry.Delta != nil) {
		metrics.CurrencyCache("hit")
		if entry.Error != nil {
			return nil, fromCachedError(entry.Error)
		}
		return &ports.DeltaResult{Delta: entry.Delta.Replayed(), Cached: true}, nil
	}
	metrics.CurrencyCache("miss")

	ltid := req.TransactionID
	if ltid == "" {
		if ltid, err = s.pref(ctx, domain.LatestTransactionIDKey(creds.AppID, creds.UserID, currencyID)); err != nil {
			return nil, apperror.ErrStorage(err)
		}
	}
	if ltid == "" {
		ltid = domain.NoTransaction
	}

	delta, err := s.request(ctx, creds, req.CustomParams, ltid, req.CurrencyID)
	if err != nil {
		s.cacheError(ctx, key, ltid, err)
		return nil, err
	}

	if req.CurrencyID == "" && storedDefault != "" && !strings.EqualFold(storedDefault, delta.CurrencyID) {
		// The app's default currency changed on the backend.
		if err := s.prefs.Put(ctx, domain.PublisherStateFile, map[string]string{
			domain.DefaultCurrencyIDKey(creds.AppID): delta.CurrencyID,
		}); err != nil {
			return nil, apperror.ErrStorage(err)
		}
		key = domain.BuildCurrencyCacheKey(creds.Token, delta.CurrencyID)

		ltid, err = s.pref(ctx, domain.LatestTransactionIDKey(creds.AppID, creds.UserID, delta.CurrencyID))
		if err != nil {
			return nil, apperror.ErrStorage(err)
		}
		if ltid == "" {
			ltid = domain.NoTransaction
		}
		s.log.Info().Str("app_id", creds.AppID).Str("currency_id", delta.CurrencyID).Msg("default currency changed, requesting again")

		delta, err = s.request(ctx, creds, req.CustomParams, ltid, "")
		if err != nil {
			s.cacheError(ctx, key, ltid, err)
			return nil, err
		}
	}

	if delta.CurrencyID == "" {
		delta.CurrencyID = currencyID
	}
	values := map[string]string{
		domain.LatestTransactionIDKey(creds.AppID, creds.UserID, delta.CurrencyID): delta.LatestTransactionID,
	}
	if delta.IsDefault {
		values[domain.DefaultCurrencyIDKey(creds.AppID)] = delta.CurrencyID
	}
	if err := s.prefs.Put(ctx, domain.PublisherStateFile, values); err != nil {
		return nil, apperror.ErrStorage(err)
	}

	replay := delta.Replayed()
	entry = &domain.CachedCurrencyResponse{
		Timestamp:           now,
		LatestTransactionID: delta.LatestTransactionID,
		Delta:               &replay,
	}
	keys := []string{key}
	// Later calls naming the server's currency must hit the same entry.
	if byCurrency := domain.BuildCurrencyCacheKey(creds.Token, delta.CurrencyID); byCurrency != key {
		keys = append(keys, byCurrency)
	}
	for _, k := range keys {
		if err := s.cache.Set(ctx, k, entry, s.settings.CacheWindow); err != nil {
			s.log.Warn().Err(err).Str("key", k).Msg("failed to cache currency response")
		}
	}

	return &ports.DeltaResult{Delta: *delta}, nil
}

func (s *CurrencyServiceImpl) request(ctx context.Context, creds domain.Credentials, custom map[string]string, ltid, currencyID string) (*domain.CurrencyDelta, error) {
	params := map[string]string{
		paramLatestTransactionID: ltid,
		ParamTimestamp:           strconv.FormatInt(s.now().Unix(), 10),
	}
	if currencyID != "" {
		params[paramCurrencyID] = currencyID
	}

	rawURL, err := s.urls.Build(s.backend.URL(ports.EndpointCurrency), domain.NewSession(creds, custom), URLOptions{Params: params})
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Get(ctx, ports.EndpointCurrency, rawURL)
	if err := classifyResponse(s.sigSvc, resp, err, creds.SecurityToken); err != nil {
		return nil, err
	}

	var body vcsResponse
	if err := decodeBody(resp.Body, &body); err != nil {
		return nil, err
	}
	if body.DeltaOfCoins == nil || body.LatestTransactionID == nil {
		return nil, apperror.ErrInvalidResponse(errors.New("missing delta_of_coins or latest_transaction_id"))
	}

	return &domain.CurrencyDelta{
		DeltaOfCoins:        *body.DeltaOfCoins,
		LatestTransactionID: *body.LatestTransactionID,
		CurrencyID:          body.CurrencyID,
		CurrencyName:        body.CurrencyName,
		IsDefault:           body.IsDefault,
	}, nil
}

func (s *CurrencyServiceImpl) cacheError(ctx context.Context, key, ltid string, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return
	}
	entry := &domain.CachedCurrencyResponse{
		Timestamp:           s.now(),
		LatestTransactionID: ltid,
		Error: &domain.CachedError{
			Code:          appErr.Code,
			Message:       appErr.Message,
			HTTPStatus:    appErr.HTTPStatus,
			Kind:          string(appErr.Kind),
			ServerCode:    appErr.ServerCode,
			ServerMessage: appErr.ServerMessage,
		},
	}
	if err := s.cache.Set(ctx, key, entry, s.settings.CacheWindow); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache currency error")
	}
}

func (s *CurrencyServiceImpl) currencyName(override, server string) string {
	switch {
	case override != "":
		return override
	case server != "":
		return server
	default:
		return s.settings.DefaultName
	}
}

func (s *CurrencyServiceImpl) pref(ctx context.Context, key string) (string, error) {
	v, _, err := s.prefs.Get(ctx, domain.PublisherStateFile, key)
	return v, err
}

func fromCachedError(c *domain.CachedError) *apperror.AppError {
	e := apperror.New(c.Code, c.Message, c.HTTPStatus)
	e.Kind = apperror.Kind(c.Kind)
	e.ServerCode = c.ServerCode
	e.ServerMessage = c.ServerMessage
	return e
}
