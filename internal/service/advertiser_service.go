package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	paramAnswerReceived  = "answer_received"
	paramSubID           = "subid"
	paramInstallReferrer = "install_referrer"
	paramActionID        = "action_id"
)

// AdvertiserServiceImpl implements ports.AdvertiserService.
type AdvertiserServiceImpl struct {
	sessions  ports.SessionService
	backend   ports.BackendClient
	urls      *URLBuilder
	prefs     ports.PreferenceStore
	callbacks ports.CallbackLogRepository
	log       zerolog.Logger
	now       func() time.Time

	// base outlives the request that scheduled a delayed callback.
	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAdvertiserService creates a new AdvertiserServiceImpl.
func NewAdvertiserService(
	sessions ports.SessionService,
	backend ports.BackendClient,
	urls *URLBuilder,
	prefs ports.PreferenceStore,
	callbacks ports.CallbackLogRepository,
	log zerolog.Logger,
) *AdvertiserServiceImpl {
	base, cancel := context.WithCancel(context.Background())
	return &AdvertiserServiceImpl{
		sessions:  sessions,
		backend:   backend,
		urls:      urls,
		prefs:     prefs,
		callbacks: callbacks,
		log:       log,
		now:       time.Now,
		base:      base,
		cancel:    cancel,
	}
}

// ReportInstall notifies the backend that the app was installed.
// Sub id and referrer are remembered and reused when omitted.
func (s *AdvertiserServiceImpl) ReportInstall(ctx context.Context, req ports.InstallRequest) (*domain.CallbackLog, error) {
	creds, err := s.sessions.Resolve(ctx, req.CredentialsToken)
	if err != nil {
		return nil, err
	}

	subID, err := s.remember(ctx, domain.InstallSubIDKey(creds.AppID), req.SubID)
	if err != nil {
		return nil, err
	}
	referrer, err := s.remember(ctx, domain.InstallReferrerKey(creds.AppID), req.InstallReferrer)
	if err != nil {
		return nil, err
	}

	params := map[string]string{}
	if subID != "" {
		params[paramSubID] = subID
	}
	if referrer != "" {
		params[paramInstallReferrer] = referrer
	}

	return s.send(ctx, *creds, domain.CallbackKindInstall, ports.EndpointInstall, "", domain.InstallCallbackKey(creds.AppID), params, req.CustomParams)
}

// ReportInstallWithDelay sends the install callback after delay in the
// background. Pending callbacks are abandoned by Close.
func (s *AdvertiserServiceImpl) ReportInstallWithDelay(ctx context.Context, req ports.InstallRequest, delay time.Duration) error {
	if _, err := s.sessions.Resolve(ctx, req.CredentialsToken); err != nil {
		return err
	}
	if delay <= 0 {
		_, err := s.ReportInstall(ctx, req)
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-s.base.Done():
			s.log.Debug().Str("credentials_token", req.CredentialsToken).Msg("delayed install callback abandoned")
			return
		case <-timer.C:
		}
		if _, err := s.ReportInstall(s.base, req); err != nil {
			s.log.Warn().Err(err).Str("credentials_token", req.CredentialsToken).Msg("delayed install callback failed")
		}
	}()
	return nil
}

// ReportAction notifies the backend that the user completed an action.
func (s *AdvertiserServiceImpl) ReportAction(ctx context.Context, req ports.ActionRequest) (*domain.CallbackLog, error) {
	if err := domain.ValidateIdentifier(req.ActionID); err != nil {
		return nil, apperror.ErrInvalidIdentifier("action id", err.Error())
	}
	creds, err := s.sessions.Resolve(ctx, req.CredentialsToken)
	if err != nil {
		return nil, err
	}

	params := map[string]string{paramActionID: req.ActionID}
	return s.send(ctx, *creds, domain.CallbackKindAction, ports.EndpointAction, req.ActionID, domain.ActionCallbackKey(creds.AppID, req.ActionID), params, req.CustomParams)
}

// Close abandons delayed callbacks and waits for running ones.
func (s *AdvertiserServiceImpl) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *AdvertiserServiceImpl) send(
	ctx context.Context,
	creds domain.Credentials,
	kind domain.CallbackKind,
	endpoint ports.Endpoint,
	actionID string,
	flagKey string,
	params map[string]string,
	customParams map[string]string,
) (*domain.CallbackLog, error) {
	answered, _, err := s.prefs.Get(ctx, domain.AdvertiserStateFile, flagKey)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	params[paramAnswerReceived] = "0"
	if answered == "true" {
		params[paramAnswerReceived] = "1"
	}

	rawURL, err := s.urls.Build(s.backend.URL(endpoint), domain.NewSession(creds, customParams), URLOptions{Params: params})
	if err != nil {
		return nil, err
	}

	entry := &domain.CallbackLog{
		ID:               uuid.New(),
		Kind:             kind,
		CredentialsToken: creds.Token,
		AppID:            creds.AppID,
		ActionID:         actionID,
		URL:              rawURL,
		AnswerReceived:   answered == "true",
		Status:           domain.CallbackStatusFailed,
		CreatedAt:        s.now(),
	}

	resp, err := s.backend.Get(ctx, endpoint, rawURL)
	switch {
	case err != nil:
		msg := err.Error()
		entry.LastError = &msg
	case resp.StatusCode != http.StatusOK:
		status := resp.StatusCode
		entry.HTTPStatus = &status
		msg := http.StatusText(status)
		entry.LastError = &msg
	default:
		status := resp.StatusCode
		entry.HTTPStatus = &status
		entry.Status = domain.CallbackStatusDelivered
	}
	metrics.Callback(string(kind), string(entry.Status))

	if entry.Delivered() {
		if err := s.prefs.Put(ctx, domain.AdvertiserStateFile, map[string]string{flagKey: "true"}); err != nil {
			return nil, apperror.ErrStorage(err)
		}
	}
	if err := s.callbacks.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("callback_id", entry.ID.String()).Msg("failed to record callback")
	}

	event := s.log.Info()
	if !entry.Delivered() {
		event = s.log.Warn()
	}
	event.Str("kind", string(kind)).Str("app_id", creds.AppID).Str("status", string(entry.Status)).Msg("advertiser callback sent")
	return entry, nil
}

// remember stores value under key, or loads the stored value when empty.
func (s *AdvertiserServiceImpl) remember(ctx context.Context, key, value string) (string, error) {
	if value != "" {
		if err := s.prefs.Put(ctx, domain.AdvertiserStateFile, map[string]string{key: value}); err != nil {
			return "", apperror.ErrStorage(err)
		}
		return value, nil
	}
	stored, _, err := s.prefs.Get(ctx, domain.AdvertiserStateFile, key)
	if err != nil {
		return "", apperror.ErrStorage(err)
	}
	return stored, nil
}
