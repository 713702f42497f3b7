package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures of calls made against the rewards backend.
// Host apps branch on it the same way the SDK listeners did.
type Kind string

const (
	KindNone                     Kind = ""
	KindNoConnection             Kind = "ERROR_NO_INTERNET_CONNECTION"
	KindInvalidResponse          Kind = "ERROR_INVALID_RESPONSE"
	KindInvalidResponseSignature Kind = "ERROR_INVALID_RESPONSE_SIGNATURE"
	KindServerReturnedError      Kind = "SERVER_RETURNED_ERROR"
	KindOther                    Kind = "ERROR_OTHER"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code          string `json:"error_code"`
	Message       string `json:"message"`
	HTTPStatus    int    `json:"-"`
	Kind          Kind   `json:"error_type,omitempty"`
	ServerCode    string `json:"server_code,omitempty"`
	ServerMessage string `json:"server_message,omitempty"`
	Err           error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf reports the backend error kind carried by err.
// Errors that are not AppErrors count as KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == KindNone {
			return KindOther
		}
		return appErr.Kind
	}
	return KindOther
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidCredentialsToken() *AppError {
	return New("SEC_001", "Unknown credentials token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrMissingSecurityToken() *AppError {
	return New("SEC_005", "Security token is required for this operation", http.StatusPreconditionFailed)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 input validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidIdentifier(what string, reason string) *AppError {
	return New("VAL_002", fmt.Sprintf("invalid %s: %s", what, reason), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Ads & Mediation (ADS) ----

func ErrNoAdAvailable() *AppError {
	return New("ADS_001", "No ad available, request one first", http.StatusConflict)
}

func ErrAdapterUnavailable(name string) *AppError {
	return New("ADS_002", fmt.Sprintf("mediation adapter %q is not started", name), http.StatusNotFound)
}

func ErrUnsupportedFormat(name string, format string) *AppError {
	return New("ADS_003", fmt.Sprintf("mediation adapter %q does not support %s", name, format), http.StatusUnprocessableEntity)
}

func ErrShowFailed(err error) *AppError {
	return Wrap("ADS_004", "Ad could not be shown", http.StatusBadGateway, err)
}

// ---- Backend requests (REQ) ----

func ErrNoConnection(err error) *AppError {
	e := Wrap("REQ_001", "Backend could not be reached", http.StatusBadGateway, err)
	e.Kind = KindNoConnection
	return e
}

func ErrInvalidResponse(err error) *AppError {
	e := Wrap("REQ_002", "Backend returned an invalid response", http.StatusBadGateway, err)
	e.Kind = KindInvalidResponse
	return e
}

func ErrInvalidResponseSignature() *AppError {
	e := New("REQ_003", "Backend response signature mismatch", http.StatusBadGateway)
	e.Kind = KindInvalidResponseSignature
	return e
}

func ErrServerReturned(serverCode string, serverMessage string) *AppError {
	e := New("REQ_004", "Backend returned an error", http.StatusBadGateway)
	e.Kind = KindServerReturnedError
	e.ServerCode = serverCode
	e.ServerMessage = serverMessage
	return e
}

func ErrOther(err error) *AppError {
	e := Wrap("REQ_005", "Unexpected backend failure", http.StatusBadGateway, err)
	e.Kind = KindOther
	return e
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Storage failure", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
