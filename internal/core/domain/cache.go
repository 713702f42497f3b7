package domain

import "time"

// CachedError is the serialisable form of a failed currency request.
type CachedError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	HTTPStatus    int    `json:"http_status"`
	Kind          string `json:"kind"`
	ServerCode    string `json:"server_code,omitempty"`
	ServerMessage string `json:"server_message,omitempty"`
}

// CachedCurrencyResponse is the last currency response served for a cache key.
// Exactly one of Delta and Error is set.
type CachedCurrencyResponse struct {
	Timestamp           time.Time      `json:"timestamp"`
	LatestTransactionID string         `json:"latest_transaction_id"`
	Delta               *CurrencyDelta `json:"delta,omitempty"`
	Error               *CachedError   `json:"error,omitempty"`
}

// Fresh reports whether the entry is still inside the cache window at now.
func (c *CachedCurrencyResponse) Fresh(now time.Time, window time.Duration) bool {
	return c != nil && now.Sub(c.Timestamp) < window
}

// BuildCurrencyCacheKey constructs the cache key for a currency request.
func BuildCurrencyCacheKey(credentialsToken, currencyID string) string {
	return credentialsToken + ":" + currencyID
}
