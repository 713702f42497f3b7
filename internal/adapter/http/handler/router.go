package handler

import (
	"rewards-mediation-gateway/internal/adapter/http/middleware"
	redisStore "rewards-mediation-gateway/internal/adapter/storage/redis"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc      ports.SessionService
	CurrencySvc     ports.CurrencyService
	UnlockSvc       ports.UnlockService
	OfferwallSvc    ports.OfferwallService
	AdvertiserSvc   ports.AdvertiserService
	InterstitialSvc ports.InterstitialService
	Coordinator     ports.MediationCoordinator
	SigSvc          ports.SignatureService
	NonceStore      ports.NonceStore
	TokenSvc        ports.TokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc        ports.AuditService         // nil = audit logging disabled
	HealthCheckers  []ports.HealthChecker
	MaxBodyBytes    int64
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(maxBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	metrics.Init()
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	sessionHandler := NewSessionHandler(deps.SessionSvc)
	v1.POST("/sessions", rl("sessions"), sessionHandler.Start)

	// --- Signed routes (security token) ---
	signed := middleware.SignedRequest(deps.SessionSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	v1.POST("/credentials/rotate", signed, rl("rotate"), sessionHandler.RotateSecurityToken)

	// --- Session token routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	authed := v1.Group("", jwtAuth)

	rewardsHandler := NewRewardsHandler(deps.CurrencySvc, deps.UnlockSvc, deps.OfferwallSvc)
	authed.GET("/currency/delta", rl("currency"), rewardsHandler.CurrencyDelta)
	authed.GET("/unlock/items", rl("unlock"), rewardsHandler.UnlockItems)
	authed.GET("/offerwall/url", rl("offerwall"), rewardsHandler.OfferwallURL)

	advertiserHandler := NewAdvertiserHandler(deps.AdvertiserSvc)
	advertiser := authed.Group("/advertiser", rl("advertiser"))
	{
		advertiser.POST("/install", advertiserHandler.ReportInstall)
		advertiser.POST("/actions", advertiserHandler.ReportAction)
	}

	interstitialHandler := NewInterstitialHandler(deps.InterstitialSvc)
	interstitial := authed.Group("/interstitial", rl("interstitial"))
	{
		interstitial.POST("/request", interstitialHandler.Request)
		interstitial.POST("/show", interstitialHandler.Show)
		interstitial.POST("/events", interstitialHandler.ReportEvent)
	}

	mediationHandler := NewMediationHandler(deps.Coordinator)
	mediation := authed.Group("/mediation", rl("mediation"))
	{
		mediation.GET("/adapters", mediationHandler.Adapters)
		mediation.POST("/:network/validate", mediationHandler.ValidateVideo)
		mediation.POST("/:network/play", mediationHandler.PlayVideo)
	}

	return r
}
