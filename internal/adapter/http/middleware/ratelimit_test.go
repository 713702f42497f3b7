package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rewards-mediation-gateway/internal/adapter/http/middleware"
	redisStore "rewards-mediation-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisStore.NewRateLimitStore(client)

	r := gin.New()
	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test", middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/authed", func(c *gin.Context) {
		c.Set(middleware.CtxCredentialsToken, c.GetHeader("X-Test-Token"))
		c.Next()
	}, middleware.RateLimiter(store, "authed", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func get(router *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := get(router, "/test", nil)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/test", nil).Code)
	}

	w := get(router, "/test", nil)
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_KeysByQueryToken(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/test?token=credsA", nil).Code)
	}
	assert.Equal(t, 429, get(router, "/test?token=credsA", nil).Code)

	// Independent counter
	assert.Equal(t, 200, get(router, "/test?token=credsB", nil).Code)
}

func TestRateLimiter_KeysByAuthenticatedCredentials(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/authed", map[string]string{"X-Test-Token": "credsA"}).Code)
	}
	assert.Equal(t, 429, get(router, "/authed", map[string]string{"X-Test-Token": "credsA"}).Code)
	assert.Equal(t, 200, get(router, "/authed", map[string]string{"X-Test-Token": "credsB"}).Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := redisStore.NewRateLimitStore(client)
	mr.Close()

	r := gin.New()
	r.GET("/test", middleware.RateLimiter(store, "test", middleware.RateLimitRule{Limit: 1, Window: time.Minute}, zerolog.Nop()),
		func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, get(r, "/test", nil).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/test", nil).Code)
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(20), rules["sessions"].Limit)
	assert.Equal(t, int64(5), rules["rotate"].Limit)
	assert.Equal(t, int64(60), rules["currency"].Limit)
	assert.Equal(t, int64(30), rules["advertiser"].Limit)
	assert.Equal(t, int64(120), rules["interstitial"].Limit)
	for group, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, group)
	}
}
