package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
)

// serverError is the body of a non-2xx backend reply.
type serverError struct {
	Code    *string `json:"code"`
	Message *string `json:"message"`
}

// classifyResponse maps a backend exchange to nil or a REQ_* error.
// The signature header is checked only when secret is not empty.
func classifyResponse(sigSvc ports.SignatureService, resp *ports.RawResponse, transportErr error, secret string) error {
	if transportErr != nil {
		return apperror.ErrNoConnection(transportErr)
	}
	if resp == nil {
		return apperror.ErrOther(fmt.Errorf("empty backend response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body serverError
		if err := json.Unmarshal(resp.Body, &body); err != nil || body.Code == nil || body.Message == nil {
			return apperror.ErrOther(fmt.Errorf("backend status %d", resp.StatusCode))
		}
		return apperror.ErrServerReturned(*body.Code, *body.Message)
	}

	if secret != "" && !sigSvc.VerifyString(string(resp.Body), secret, resp.Signature) {
		return apperror.ErrInvalidResponseSignature()
	}
	return nil
}

// decodeBody unmarshals a successful body, rejecting unknown shapes.
func decodeBody(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return apperror.ErrInvalidResponse(fmt.Errorf("decode body: %w", err))
	}
	return nil
}
