package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/ids"
	"rewards-mediation-gateway/pkg/metrics"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Query parameters of signed requests
	ParamToken     = "token"
	ParamTimestamp = "timestamp"
	ParamNonce     = "nonce"
	ParamSignature = "signature"
	// ParamBody is the pseudo parameter the raw request body is signed as.
	ParamBody = "body"

	HeaderRequestID = "X-Request-ID"

	// Max timestamp drift allowed (60 seconds)
	maxTimestampDrift = 60 * time.Second

	// Nonce TTL (120 seconds)
	nonceTTL = 120 * time.Second

	// Context keys
	CtxCredentialsToken = "credentials_token"
	CtxAppID            = "app_id"
)

// RequestID assigns every request a ULID, honouring a well-formed inbound X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = ids.New()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// SignedRequest verifies requests signed with the credentials security token.
// Pipeline: Check timestamp -> Resolve credentials -> Verify signature -> Check nonce.
// The signature covers every query parameter except signature itself, plus
// the raw body as the "body" parameter when one is sent.
func SignedRequest(
	sessions ports.SessionService,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		token := query.Get(ParamToken)
		signature := query.Get(ParamSignature)
		timestampStr := query.Get(ParamTimestamp)
		nonce := query.Get(ParamNonce)

		if token == "" || signature == "" || timestampStr == "" || nonce == "" {
			response.Error(c, apperror.ErrInvalidSignature())
			c.Abort()
			return
		}

		// Step 1: Timestamp check
		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}
		now := time.Now().Unix()
		if math.Abs(float64(now-timestamp)) > maxTimestampDrift.Seconds() {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}

		// Step 2: Resolve credentials
		creds, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == apperror.ErrNotFound("").Code {
				response.Error(c, apperror.ErrInvalidCredentialsToken())
				c.Abort()
				return
			}
			log.Error().Err(err).Msg("failed to resolve credentials")
			response.Error(c, err)
			c.Abort()
			return
		}
		if !creds.HasSecurityToken() {
			response.Error(c, apperror.ErrMissingSecurityToken())
			c.Abort()
			return
		}

		// Step 3: Signature verification
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, err = io.ReadAll(c.Request.Body)
			if err != nil {
				response.Error(c, apperror.Validation("cannot read request body"))
				c.Abort()
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		params := make(map[string]string, len(query))
		for k, v := range query {
			if k == ParamSignature || len(v) == 0 {
				continue
			}
			params[k] = v[0]
		}
		if len(bodyBytes) > 0 {
			params[ParamBody] = string(bodyBytes)
		}

		if !sigSvc.VerifyParams(params, creds.SecurityToken, signature) {
			response.Error(c, apperror.ErrInvalidSignature())
			c.Abort()
			return
		}

		// Step 4: Nonce check, only for authentic requests
		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), creds.Token, nonce, nonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			response.Error(c, apperror.ErrNonceUsed())
			c.Abort()
			return
		}

		c.Set(CtxCredentialsToken, creds.Token)
		c.Set(CtxAppID, creds.AppID)
		c.Next()
	}
}

// JWTAuth creates a middleware that validates session tokens.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) == len("Bearer ") {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[len("Bearer "):])
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxCredentialsToken, claims.CredentialsToken)
		c.Set(CtxAppID, claims.AppID)
		c.Next()
	}
}

// CredentialsToken returns the credentials token set by an auth middleware.
func CredentialsToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxCredentialsToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Metrics records request counts and latencies per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.HTTPStarted()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}

// Recovery turns a panic into a SYS_001 envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Error().
				Interface("panic", r).
				Str("request_id", c.GetString(response.RequestIDKey)).
				Str("route", c.FullPath()).
				Msg("panic recovered")
			response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
			c.Abort()
		}()
		c.Next()
	}
}
