package service

import (
	"errors"
	"fmt"
	"time"

	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/ids"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionAudience marks tokens minted for SDK sessions.
const sessionAudience = "sdk-session"

type sessionClaims struct {
	AppID string `json:"app_id"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 session tokens whose subject is a credentials token.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Generate returns the signed token and its expiry.
func (s *JWTTokenService) Generate(credentialsToken string, appID string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.expiry)

	claims := sessionClaims{
		AppID: appID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ids.New(),
			Subject:   credentialsToken,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{sessionAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, issuer, audience and expiry.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(sessionAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("subject is not a credentials token: %w", err)
	}

	return &ports.TokenClaims{
		CredentialsToken: claims.Subject,
		AppID:            claims.AppID,
	}, nil
}
