package domain

// Preference files mirror the key-value files the SDK persisted on device.
const (
	PublisherStateFile  = "SponsorPayPublisherState"
	AdvertiserStateFile = "SponsorPayAdvertiserState"
)

const (
	latestTransactionIDPrefix = "STATE_LATEST_CURRENCY_TRANSACTION_ID_"
	defaultCurrencyIDPrefix   = "DEFAULT_CURRENCY_ID_KEY_"
	generatedUserIDPrefix     = "STATE_GENERATED_USERID_KEY_"
	callbackReceivedPrefix    = "STATE_GOT_SUCCESSFUL_RESPONSE_"
	installSubIDPrefix        = "STATE_INSTALL_SUBID_KEY_"
	installReferrerPrefix     = "STATE_INSTALL_REFERRER_KEY_"
)

// LatestTransactionIDKey is the publisher-state key holding the newest
// transaction id seen for an app, user and currency.
func LatestTransactionIDKey(appID, userID, currencyID string) string {
	return latestTransactionIDPrefix + appID + "_" + userID + "_" + latestTransactionIDPrefix + currencyID
}

// DefaultCurrencyIDKey is the publisher-state key of the app's default currency.
func DefaultCurrencyIDKey(appID string) string {
	return defaultCurrencyIDPrefix + appID
}

// GeneratedUserIDKey is the publisher-state key of a generated user id.
func GeneratedUserIDKey(installationID string) string {
	return generatedUserIDPrefix + installationID
}

// InstallCallbackKey is the advertiser-state flag set once an install was acknowledged.
func InstallCallbackKey(appID string) string {
	return callbackReceivedPrefix + appID
}

// ActionCallbackKey is the advertiser-state flag set once an action was acknowledged.
func ActionCallbackKey(appID, actionID string) string {
	return callbackReceivedPrefix + appID + "_" + actionID
}

// InstallSubIDKey is the advertiser-state key of the install sub id.
func InstallSubIDKey(appID string) string {
	return installSubIDPrefix + appID
}

// InstallReferrerKey is the advertiser-state key of the install referrer.
func InstallReferrerKey(appID string) string {
	return installReferrerPrefix + appID
}
