package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorKind discriminates the members of the client's error taxonomy.
// Callers branch on it via KindOf or the Is* helpers instead of matching
// error strings.
type ErrorKind string

const (
	KindGeneric        ErrorKind = "generic"
	KindAuthentication ErrorKind = "authentication"
	KindAuthorization  ErrorKind = "authorization"
	KindNotFound       ErrorKind = "not_found"
	KindValidation     ErrorKind = "validation"
	KindRateLimit      ErrorKind = "rate_limit"
	KindNetwork        ErrorKind = "network"
	KindServer         ErrorKind = "server"
)

// APIError is the single failure type surfaced by the client. Kind selects
// the variant; the remaining fields are populated where they apply:
// FieldErrors for validation failures, RetryAfter (seconds) for rate limits,
// Err for the underlying transport cause on network failures.
type APIError struct {
	Kind        ErrorKind
	Message     string
	StatusCode  int               // zero for network errors
	Body        []byte            // raw response body, may be non-JSON
	FieldErrors map[string]string // field -> message, validation only
	RetryAfter  int               // seconds, rate-limit only; zero if absent
	Err         error             // underlying cause, network only
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("shopwire: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("shopwire: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("shopwire: %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind carried by err, or "" when err is not an
// *APIError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }
func IsAuthorization(err error) bool  { return KindOf(err) == KindAuthorization }
func IsNotFound(err error) bool       { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool     { return KindOf(err) == KindValidation }
func IsRateLimit(err error) bool      { return KindOf(err) == KindRateLimit }
func IsNetwork(err error) bool        { return KindOf(err) == KindNetwork }
func IsServer(err error) bool         { return KindOf(err) == KindServer }

// errorBody mirrors the API's error envelope. The details map carries
// per-field validation messages on 400/422 responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status  int `json:"status"`
		Details map[string]struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"data"`
}

// classifyResponse maps a non-2xx response to its taxonomy member. The body
// is decoded leniently: non-JSON bodies are kept raw and classification
// proceeds on the status code alone.
func classifyResponse(status int, body []byte, header http.Header) *APIError {
	var parsed errorBody
	hasBody := len(body) > 0 && json.Unmarshal(body, &parsed) == nil

	msg := parsed.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "request failed"
	}

	apiErr := &APIError{
		Kind:       KindGeneric,
		Message:    msg,
		StatusCode: status,
		Body:       body,
	}

	switch {
	case status == http.StatusUnauthorized:
		apiErr.Kind = KindAuthentication
	case status == http.StatusForbidden:
		apiErr.Kind = KindAuthorization
	case status == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		apiErr.Kind = KindValidation
		if hasBody && len(parsed.Data.Details) > 0 {
			apiErr.FieldErrors = make(map[string]string, len(parsed.Data.Details))
			for field, detail := range parsed.Data.Details {
				apiErr.FieldErrors[field] = detail.Message
			}
		}
	case status == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
		if secs, err := strconv.Atoi(header.Get("Retry-After")); err == nil {
			apiErr.RetryAfter = secs
		}
	case status >= http.StatusInternalServerError:
		apiErr.Kind = KindServer
	}
	return apiErr
}

// newNetworkError wraps a transport-level failure (dial, DNS, timeout).
func newNetworkError(msg string, cause error) *APIError {
	return &APIError{Kind: KindNetwork, Message: msg, Err: cause}
}

// wrapError passes typed errors through unchanged and folds anything else
// into the generic kind, preserving its message.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return &APIError{Kind: KindGeneric, Message: err.Error(), Err: err}
}
