package service

import (
	"fmt"
	"net/url"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
)

// Query parameter names understood by the backend.
const (
	ParamUserID                = "uid"
	ParamDeviceID              = "device_id"
	ParamAppID                 = "appid"
	ParamOSVersion             = "os_version"
	ParamPhoneVersion          = "phone_version"
	ParamLanguage              = "language"
	ParamSDKVersion            = "sdk_version"
	ParamAndroidID             = "android_id"
	ParamMACAddress            = "mac_address"
	ParamScreenWidth           = "screen_width"
	ParamScreenHeight          = "screen_height"
	ParamScreenDensityX        = "screen_density_x"
	ParamScreenDensityY        = "screen_density_y"
	ParamScreenDensityCategory = "screen_density_category"
	ParamSignature             = "signature"
	ParamTimestamp             = "timestamp"
	ParamCurrency              = "currency"
	ParamAllowCampaign         = "allow_campaign"
)

// URLOptions tunes a single Build call.
type URLOptions struct {
	// Params are endpoint parameters. They override custom parameters and
	// must have non-empty keys and values.
	Params        map[string]string
	ScreenMetrics bool
	OmitUserID    bool
	// Unsigned skips the signature even when a security token is set.
	Unsigned bool
}

// URLBuilder assembles backend URLs carrying the device parameters, the
// layered custom parameters and, when the credentials hold a security
// token, the request signature.
type URLBuilder struct {
	sigSvc       ports.SignatureService
	sdkVersion   string
	globalParams map[string]string
}

// NewURLBuilder creates a builder that stamps sdkVersion and globalParams on every URL.
func NewURLBuilder(sigSvc ports.SignatureService, sdkVersion string, globalParams map[string]string) *URLBuilder {
	return &URLBuilder{sigSvc: sigSvc, sdkVersion: sdkVersion, globalParams: globalParams}
}

// Build returns baseURL with the query parameters of sess and opts.
func (b *URLBuilder) Build(baseURL string, sess *domain.Session, opts URLOptions) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("parse base url %q: %w", baseURL, err))
	}

	params, err := b.Params(sess, opts)
	if err != nil {
		return "", err
	}

	query := u.Query()
	for k, v := range params {
		query.Set(k, v)
	}
	if secret := sess.Credentials.SecurityToken; secret != "" && !opts.Unsigned {
		query.Set(ParamSignature, b.sigSvc.SignParams(params, secret))
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Params returns the unsigned parameter set Build would send.
func (b *URLBuilder) Params(sess *domain.Session, opts URLOptions) (map[string]string, error) {
	creds := sess.Credentials
	dev := creds.Device

	params := map[string]string{
		ParamDeviceID:     dev.UDID,
		ParamAppID:        creds.AppID,
		ParamOSVersion:    dev.OSVersion,
		ParamPhoneVersion: dev.PhoneVersion,
		ParamLanguage:     dev.Language,
		ParamSDKVersion:   b.sdkVersion,
		ParamAndroidID:    dev.AndroidID,
		ParamMACAddress:   dev.MACAddress,
	}
	if !opts.OmitUserID {
		params[ParamUserID] = creds.UserID
	}
	if opts.ScreenMetrics {
		params[ParamScreenWidth] = dev.ScreenWidth
		params[ParamScreenHeight] = dev.ScreenHeight
		params[ParamScreenDensityX] = dev.ScreenDensityX
		params[ParamScreenDensityY] = dev.ScreenDensityY
		params[ParamScreenDensityCategory] = dev.ScreenDensityCategory
	}

	for _, layer := range []map[string]string{b.globalParams, sess.CustomParams, opts.Params} {
		if err := ValidateKeyValueParams(layer); err != nil {
			return nil, err
		}
		for k, v := range layer {
			params[k] = v
		}
	}
	return params, nil
}

// ValidateKeyValueParams rejects empty keys and values.
func ValidateKeyValueParams(params map[string]string) error {
	for k, v := range params {
		if k == "" || v == "" {
			return apperror.Validation("custom parameters cannot have an empty key or value")
		}
	}
	return nil
}

// MapKeysToValues pairs keys[i] with values[i].
func MapKeysToValues(keys, values []string) (map[string]string, error) {
	if len(keys) != len(values) {
		return nil, apperror.Validation("custom parameter keys and values must have the same length")
	}
	out := make(map[string]string, len(keys))
	for i, k := range keys {
		if k == "" || values[i] == "" {
			return nil, apperror.Validation("custom parameter keys and values cannot be empty")
		}
		out[k] = values[i]
	}
	return out, nil
}
