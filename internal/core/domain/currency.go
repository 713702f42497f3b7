package domain

import (
	"github.com/shopspring/decimal"
)

// NoTransaction is the latest-transaction id sent before any credit was seen.
const NoTransaction = "NO_TRANSACTION"

// CurrencyDelta is the virtual currency earned since the last known transaction.
type CurrencyDelta struct {
	DeltaOfCoins        decimal.Decimal `json:"delta_of_coins"`
	LatestTransactionID string          `json:"latest_transaction_id"`
	CurrencyID          string          `json:"currency_id"`
	CurrencyName        string          `json:"currency_name"`
	IsDefault           bool            `json:"is_default"`
}

// Replayed returns the copy served from cache: same ids, nothing earned.
func (d CurrencyDelta) Replayed() CurrencyDelta {
	d.DeltaOfCoins = decimal.Zero
	return d
}

// HasEarned reports whether the delta is a positive amount.
func (d CurrencyDelta) HasEarned() bool {
	return d.DeltaOfCoins.IsPositive()
}
