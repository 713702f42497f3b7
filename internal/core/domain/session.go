package domain

// Session is one publisher-facing call made on behalf of a set of credentials.
// It is built per request and never stored.
type Session struct {
	Credentials  Credentials
	CustomParams map[string]string
}

// NewSession builds a session, layering custom parameter maps in order.
// Later maps override earlier ones.
func NewSession(creds Credentials, params ...map[string]string) *Session {
	merged := make(map[string]string)
	for _, m := range params {
		for k, v := range m {
			merged[k] = v
		}
	}
	return &Session{Credentials: creds, CustomParams: merged}
}
