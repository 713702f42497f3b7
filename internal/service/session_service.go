package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService.
// Resolved credentials are kept in a process-wide registry keyed by token.
type SessionServiceImpl struct {
	repo    ports.CredentialsRepository
	encSvc  ports.EncryptionService
	tokens  ports.TokenService
	userIDs *UserIDService
	log     zerolog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	registry map[string]domain.Credentials
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	repo ports.CredentialsRepository,
	encSvc ports.EncryptionService,
	tokens ports.TokenService,
	userIDs *UserIDService,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		repo:     repo,
		encSvc:   encSvc,
		tokens:   tokens,
		userIDs:  userIDs,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		registry: make(map[string]domain.Credentials),
	}
}

// Start builds credentials for the app/user pair and issues a session token.
// Starting again for the same pair replaces device info and security token.
func (s *SessionServiceImpl) Start(ctx context.Context, req ports.StartRequest) (*ports.StartResponse, error) {
	appID := strings.TrimSpace(req.AppID)
	if appID == "" {
		return nil, apperror.Validation("app_id is required")
	}

	userID, generated, err := s.userIDs.Resolve(ctx, req.UserID, req.InstallationID, req.Device)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}

	creds, err := domain.NewCredentials(appID, userID, req.SecurityToken, req.Device, s.now())
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if creds.HasSecurityToken() {
		enc, err := s.encSvc.Seal(creds.SecurityToken, creds.Token)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt security token: %w", err))
		}
		creds.SecurityTokenEnc = enc
	}

	if err := s.repo.Save(ctx, &creds); err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("save credentials: %w", err))
	}
	s.register(creds)

	sessionToken, expiresAt, err := s.tokens.Generate(creds.Token, creds.AppID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate session token: %w", err))
	}

	s.log.Info().
		Str("credentials_token", creds.Token).
		Str("app_id", creds.AppID).
		Bool("generated_user_id", generated).
		Bool("signed", creds.HasSecurityToken()).
		Msg("session started")

	return &ports.StartResponse{
		Credentials:     creds,
		GeneratedUserID: generated,
		SessionToken:    sessionToken,
		ExpiresAt:       expiresAt,
	}, nil
}

// Resolve returns the credentials for token, loading them from the
// repository on a registry miss.
func (s *SessionServiceImpl) Resolve(ctx context.Context, credentialsToken string) (*domain.Credentials, error) {
	s.mu.RLock()
	creds, ok := s.registry[credentialsToken]
	s.mu.RUnlock()
	if ok {
		return &creds, nil
	}

	stored, err := s.repo.GetByToken(ctx, credentialsToken)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("load credentials: %w", err))
	}
	if stored == nil {
		return nil, apperror.ErrNotFound("credentials")
	}

	if stored.SecurityTokenEnc != "" {
		plain, err := s.encSvc.Open(stored.SecurityTokenEnc, stored.Token)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt security token: %w", err))
		}
		stored.SecurityToken = plain
	}

	s.register(*stored)
	return stored, nil
}

// RotateSecurityToken replaces the security token of existing credentials.
func (s *SessionServiceImpl) RotateSecurityToken(ctx context.Context, credentialsToken string, newToken string) error {
	if strings.TrimSpace(newToken) == "" {
		return apperror.Validation("security_token is required")
	}

	current, err := s.Resolve(ctx, credentialsToken)
	if err != nil {
		return err
	}

	rotated := current.WithSecurityToken(newToken, s.now())
	enc, err := s.encSvc.Seal(rotated.SecurityToken, rotated.Token)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt security token: %w", err))
	}
	rotated.SecurityTokenEnc = enc

	if err := s.repo.UpdateSecurityToken(ctx, credentialsToken, enc); err != nil {
		return apperror.ErrStorage(fmt.Errorf("update security token: %w", err))
	}
	s.register(rotated)

	s.log.Info().Str("credentials_token", credentialsToken).Msg("security token rotated")
	return nil
}

func (s *SessionServiceImpl) register(creds domain.Credentials) {
	s.mu.Lock()
	s.registry[creds.Token] = creds
	s.mu.Unlock()
}
