// Package app wires configuration, storage, services and the HTTP router
// into a runnable gateway.
package app

import (
	"context"
	"errors"
	"fmt"

	"rewards-mediation-gateway/config"
	"rewards-mediation-gateway/internal/adapter/backend"
	httpHandler "rewards-mediation-gateway/internal/adapter/http/handler"
	"rewards-mediation-gateway/internal/adapter/storage/memory"
	pgStorage "rewards-mediation-gateway/internal/adapter/storage/postgres"
	redisStorage "rewards-mediation-gateway/internal/adapter/storage/redis"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/internal/mediation"
	"rewards-mediation-gateway/internal/service"
	"rewards-mediation-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Options carries dependencies that cannot come from configuration.
type Options struct {
	// HTTPClient performs backend requests. Defaults to a plain http.Client.
	HTTPClient backend.HTTPClient
	// Bindings connect mediation adapters to the ad network SDKs, keyed by adapter name.
	Bindings map[string]mediation.Binding
	// Redis overrides the client built from configuration.
	Redis *goredis.Client
}

// App is a wired gateway.
type App struct {
	Router      *gin.Engine
	Coordinator *mediation.Coordinator

	currency   *service.CurrencyServiceImpl
	tracking   *service.TrackingServiceImpl
	advertiser *service.AdvertiserServiceImpl
	audit      *service.AuditServiceImpl
	closers    []func()
}

type stores struct {
	credentials ports.CredentialsRepository
	prefs       ports.PreferenceStore
	callbacks   ports.CallbackLogRepository
	audits      ports.AuditRepository
	cache       ports.CurrencyCache
	nonces      ports.NonceStore
	rateLimits  *redisStorage.RateLimitStore
	health      []ports.HealthChecker
}

// New builds the gateway. Call Close to release its resources.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts Options) (*App, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is required")
	}

	a := &App{}
	st, err := a.openStores(ctx, cfg, log, opts)
	if err != nil {
		a.Close()
		return nil, err
	}

	encSvc, err := newEncryption(cfg.Crypto)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("initialize encryption service: %w", err)
	}

	client, err := backend.NewClient(opts.HTTPClient, backend.Options{
		Staging:           cfg.Backend.Staging,
		Timeout:           cfg.Backend.Timeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
		MaxResponseBytes:  cfg.Backend.MaxResponseBytes,
		URLs:              cfg.Backend.URLs,
	}, logger.Component(log, "backend"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("initialize backend client: %w", err)
	}

	sigSvc := service.NewSHA1SignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	urls := service.NewURLBuilder(sigSvc, cfg.SDK.Version, cfg.SDK.CustomParameters)

	userIDs := service.NewUserIDService(st.prefs, logger.Component(log, "userid"))
	sessions := service.NewSessionService(st.credentials, encSvc, tokenSvc, userIDs, logger.Component(log, "session"))

	a.currency = service.NewCurrencyService(sessions, client, urls, sigSvc, st.cache, st.prefs, service.CurrencySettings{
		CacheWindow:      cfg.Currency.CacheWindow,
		ShowNotification: cfg.Currency.ShowNotification,
		DefaultName:      cfg.Currency.DefaultName,
	}, logger.Component(log, "currency"))
	unlock := service.NewUnlockService(sessions, client, urls, sigSvc, logger.Component(log, "unlock"))
	offerwall := service.NewOfferwallService(sessions, client, urls)
	a.advertiser = service.NewAdvertiserService(sessions, client, urls, st.prefs, st.callbacks, logger.Component(log, "advertiser"))
	a.tracking = service.NewTrackingService(client, urls, logger.Component(log, "tracking"))
	a.audit = service.NewAuditService(st.audits, logger.Component(log, "audit"))

	a.Coordinator = mediation.NewCoordinator(logger.Component(log, "mediation"), mediation.DefaultAdapters(opts.Bindings)...)
	started := a.Coordinator.Start(ctx, cfg.Mediation.Adapters)
	log.Info().Int("started", started).Int("configured", len(cfg.Mediation.Adapters)).Msg("mediation adapters started")

	interstitials := service.NewInterstitialService(sessions, client, urls, a.Coordinator, a.tracking, logger.Component(log, "interstitial"))

	a.Router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:      sessions,
		CurrencySvc:     a.currency,
		UnlockSvc:       unlock,
		OfferwallSvc:    offerwall,
		AdvertiserSvc:   a.advertiser,
		InterstitialSvc: interstitials,
		Coordinator:     a.Coordinator,
		SigSvc:          sigSvc,
		NonceStore:      st.nonces,
		TokenSvc:        tokenSvc,
		RateLimitStore:  st.rateLimits,
		AuditSvc:        a.audit,
		HealthCheckers:  st.health,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		Logger:          log,
	})
	return a, nil
}

// openStores selects the storage driver. Redis backs the cache, nonces and
// rate limits whenever a client is available.
func (a *App) openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts Options) (*stores, error) {
	st := &stores{}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		st.credentials = pgStorage.NewCredentialsRepo(pool)
		st.prefs = pgStorage.NewPreferenceRepo(pool)
		st.callbacks = pgStorage.NewCallbackLogRepo(pool)
		st.audits = pgStorage.NewAuditRepo(pool)
		st.health = append(st.health, pgStorage.NewHealthCheck(pool))
	default:
		st.credentials = memory.NewCredentialsRepo()
		st.prefs = memory.NewPreferenceStore()
		st.callbacks = memory.NewCallbackLogRepo()
		st.audits = memory.NewAuditRepo()
	}

	rdb := opts.Redis
	if rdb == nil && cfg.Storage.Driver == config.StoragePostgres {
		client, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		rdb = client
	}

	if rdb != nil {
		st.cache = redisStorage.NewCurrencyCache(rdb)
		st.nonces = redisStorage.NewNonceStore(rdb)
		st.rateLimits = redisStorage.NewRateLimitStore(rdb)
		st.health = append(st.health, redisStorage.NewHealthCheck(rdb))
	} else {
		st.cache = memory.NewCurrencyCache()
		st.nonces = memory.NewNonceStore()
	}
	return st, nil
}

func newEncryption(cfg config.CryptoConfig) (*service.AESEncryptionService, error) {
	switch {
	case cfg.AESKey != "":
		return service.NewAESEncryptionService(cfg.AESKey)
	case cfg.Passphrase != "":
		return service.NewAESEncryptionServiceFromPassphrase(cfg.Passphrase, cfg.Salt)
	}
	return nil, errors.New("crypto.aes_key or crypto.passphrase is required")
}

// Close drains background work and releases storage connections.
func (a *App) Close() {
	if a.advertiser != nil {
		a.advertiser.Close()
	}
	if a.currency != nil {
		a.currency.Wait()
	}
	if a.tracking != nil {
		a.tracking.Wait()
	}
	if a.audit != nil {
		a.audit.Wait()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
