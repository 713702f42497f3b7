package dto

// DeviceRequest describes the host device reported at session start.
type DeviceRequest struct {
	UDID                  string `json:"udid" binding:"max=128"`
	AndroidID             string `json:"android_id" binding:"max=128"`
	HardwareSerial        string `json:"hardware_serial" binding:"max=128"`
	MACAddress            string `json:"mac_address" binding:"max=64"`
	OSVersion             string `json:"os_version" binding:"max=64"`
	PhoneVersion          string `json:"phone_version" binding:"max=128"`
	Language              string `json:"language" binding:"max=16"`
	ScreenWidth           string `json:"screen_width" binding:"max=16"`
	ScreenHeight          string `json:"screen_height" binding:"max=16"`
	ScreenDensityX        string `json:"screen_density_x" binding:"max=16"`
	ScreenDensityY        string `json:"screen_density_y" binding:"max=16"`
	ScreenDensityCategory string `json:"screen_density_category" binding:"max=32"`
	ReverseOrientation    bool   `json:"reverse_orientation"`
}

// StartSessionRequest is the request body for starting a session.
type StartSessionRequest struct {
	AppID          string        `json:"app_id" binding:"required,sdk_id,max=64"`
	UserID         string        `json:"user_id" binding:"max=256"`
	SecurityToken  string        `json:"security_token" binding:"max=256"`
	InstallationID string        `json:"installation_id" binding:"max=128"`
	Device         DeviceRequest `json:"device"`
}

// StartSessionResponse is the response body for a started session.
type StartSessionResponse struct {
	CredentialsToken string `json:"credentials_token"`
	AppID            string `json:"app_id"`
	UserID           string `json:"user_id"`
	GeneratedUserID  bool   `json:"generated_user_id"`
	SessionToken     string `json:"session_token"`
	ExpiresAt        int64  `json:"expires_at"` // Unix timestamp
}

// RotateTokenRequest is the request body for security token rotation.
type RotateTokenRequest struct {
	SecurityToken string `json:"security_token" binding:"required,max=256"`
}

// CurrencyDeltaResponse is the response body for a currency delta.
type CurrencyDeltaResponse struct {
	DeltaOfCoins        string `json:"delta_of_coins"`
	LatestTransactionID string `json:"latest_transaction_id"`
	CurrencyID          string `json:"currency_id"`
	CurrencyName        string `json:"currency_name"`
	IsDefault           bool   `json:"is_default"`
	Cached              bool   `json:"cached"`
	Notification        string `json:"notification,omitempty"`
}

// UnlockItemResponse is one unlock item.
type UnlockItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unlocked  bool   `json:"unlocked"`
	Timestamp int64  `json:"timestamp"`
}

// UnlockItemsResponse wraps the unlock item list.
type UnlockItemsResponse struct {
	Items []UnlockItemResponse `json:"items"`
}

// OfferwallURLResponse carries the offerwall URL the host opens.
type OfferwallURLResponse struct {
	URL string `json:"url"`
}

// InstallCallbackRequest is the request body for the install callback.
type InstallCallbackRequest struct {
	SubID           string            `json:"sub_id" binding:"max=256"`
	InstallReferrer string            `json:"install_referrer" binding:"max=1024"`
	DelaySeconds    int               `json:"delay_seconds" binding:"min=0,max=3600"`
	CustomParams    map[string]string `json:"custom_params"`
}

// ActionCallbackRequest is the request body for an action callback.
type ActionCallbackRequest struct {
	ActionID     string            `json:"action_id" binding:"required,max=128"`
	CustomParams map[string]string `json:"custom_params"`
}

// CallbackResponse is the response body for a sent callback.
type CallbackResponse struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	ActionID       string  `json:"action_id,omitempty"`
	Status         string  `json:"status"`
	AnswerReceived bool    `json:"answer_received"`
	HTTPStatus     *int    `json:"http_status,omitempty"`
	LastError      *string `json:"last_error,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// ScheduledCallbackResponse acknowledges a delayed install callback.
type ScheduledCallbackResponse struct {
	Scheduled    bool `json:"scheduled"`
	DelaySeconds int  `json:"delay_seconds"`
}

// InterstitialRequest is the request body for an interstitial request.
type InterstitialRequest struct {
	BackgroundURL string            `json:"background_url" binding:"omitempty,safe_url,max=2048"`
	Skin          string            `json:"skin" binding:"omitempty,sdk_id,max=64"`
	CustomParams  map[string]string `json:"custom_params"`
}

// InterstitialEventRequest is the request body for a host reported event.
type InterstitialEventRequest struct {
	Event   string `json:"event" binding:"required,oneof=click close show_error"`
	Message string `json:"message" binding:"max=512"`
}

// ValidateVideoRequest is the request body for a video validation.
type ValidateVideoRequest struct {
	ContextData map[string]string `json:"context_data"`
}

// ValidateVideoResponse is the answer of a network for a video.
type ValidateVideoResponse struct {
	Network string `json:"network"`
	Result  string `json:"result"`
}

// PlayVideoResponse is the final event of a played video.
type PlayVideoResponse struct {
	Network string `json:"network"`
	Event   string `json:"event"`
}
