package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Android ids reported by broken devices.
var knownInvalidAndroidIDs = map[string]struct{}{
	"9774d56d682e549c": {},
}

// UserIDService resolves the user id of a session, generating one from
// device identifiers when the host supplies none.
type UserIDService struct {
	prefs ports.PreferenceStore
	log   zerolog.Logger
}

// NewUserIDService creates a resolver that persists generated ids in prefs.
func NewUserIDService(prefs ports.PreferenceStore, log zerolog.Logger) *UserIDService {
	return &UserIDService{prefs: prefs, log: log}
}

// Resolve returns userID when set. Otherwise it returns the id previously
// generated for installationID, or generates and stores a new one.
// The boolean reports whether the id was generated.
func (s *UserIDService) Resolve(ctx context.Context, userID, installationID string, device domain.DeviceInfo) (string, bool, error) {
	if userID = strings.TrimSpace(userID); userID != "" {
		return userID, false, nil
	}

	if installationID == "" {
		return GenerateUserID(device), true, nil
	}

	key := domain.GeneratedUserIDKey(installationID)
	stored, ok, err := s.prefs.Get(ctx, domain.PublisherStateFile, key)
	if err != nil {
		return "", false, fmt.Errorf("loading generated user id: %w", err)
	}
	if ok && stored != "" {
		return stored, true, nil
	}

	generated := GenerateUserID(device)
	if err := s.prefs.Put(ctx, domain.PublisherStateFile, map[string]string{key: generated}); err != nil {
		return "", false, fmt.Errorf("storing generated user id: %w", err)
	}
	s.log.Debug().Str("installation_id", installationID).Msg("generated user id")
	return generated, true, nil
}

// GenerateUserID hashes the valid device identifiers, or a random UUID
// when the device reports none.
func GenerateUserID(device domain.DeviceInfo) string {
	var b strings.Builder
	if IsValidDeviceID(device.UDID) {
		b.WriteString(device.UDID)
	}
	if IsValidAndroidID(device.AndroidID) {
		b.WriteString(device.AndroidID)
	}
	if IsValidDeviceID(device.HardwareSerial) {
		b.WriteString(device.HardwareSerial)
	}
	if b.Len() == 0 {
		b.WriteString(uuid.NewString())
	}
	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// IsValidDeviceID rejects blank ids and ids that parse as the integer zero.
func IsValidDeviceID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	if n, err := strconv.Atoi(id); err == nil && n == 0 {
		return false
	}
	return true
}

// IsValidAndroidID additionally rejects known bogus android ids.
func IsValidAndroidID(id string) bool {
	if !IsValidDeviceID(id) {
		return false
	}
	_, bogus := knownInvalidAndroidIDs[id]
	return !bogus
}
