package client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyStatusKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{401, KindAuthentication},
		{403, KindAuthorization},
		{404, KindNotFound},
		{400, KindValidation},
		{422, KindValidation},
		{429, KindRateLimit},
		{500, KindServer},
		{503, KindServer},
		{418, KindGeneric},
	}
	for _, tc := range cases {
		err := classifyResponse(tc.status, nil, http.Header{})
		if err.Kind != tc.kind {
			t.Fatalf("status %d classified as %s, want %s", tc.status, err.Kind, tc.kind)
		}
		if err.StatusCode != tc.status {
			t.Fatalf("status %d not carried on error", tc.status)
		}
	}
}

func TestClassifyRetryAfter(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "60")
	err := classifyResponse(429, nil, h)
	if err.Kind != KindRateLimit || err.RetryAfter != 60 {
		t.Fatalf("retry-after not parsed: %+v", err)
	}

	h.Set("Retry-After", "soon")
	err = classifyResponse(429, nil, h)
	if err.RetryAfter != 0 {
		t.Fatalf("non-numeric retry-after should be dropped, got %d", err.RetryAfter)
	}
}

func TestClassifyValidationDetails(t *testing.T) {
	body := []byte(`{
		"code": "rest_invalid_param",
		"message": "Invalid parameter(s): regular_price",
		"data": {
			"status": 400,
			"details": {
				"regular_price": {"code": "rest_invalid_type", "message": "regular_price is not of type string."}
			}
		}
	}`)
	err := classifyResponse(400, body, http.Header{})
	if err.Kind != KindValidation {
		t.Fatalf("kind = %s", err.Kind)
	}
	if err.Message != "Invalid parameter(s): regular_price" {
		t.Fatalf("body message not used: %q", err.Message)
	}
	if err.FieldErrors["regular_price"] != "regular_price is not of type string." {
		t.Fatalf("field errors not extracted: %v", err.FieldErrors)
	}
}

func TestClassifyMessagePrecedence(t *testing.T) {
	// Body message wins.
	err := classifyResponse(404, []byte(`{"message":"No route found"}`), http.Header{})
	if err.Message != "No route found" {
		t.Fatalf("body message not preferred: %q", err.Message)
	}

	// Fall back to status text.
	err = classifyResponse(404, nil, http.Header{})
	if err.Message != "Not Found" {
		t.Fatalf("status text fallback: %q", err.Message)
	}

	// Unknown status with no body falls back to the fixed string.
	err = classifyResponse(599, nil, http.Header{})
	if err.Message != "request failed" {
		t.Fatalf("fixed fallback: %q", err.Message)
	}
}

func TestClassifyToleratesNonJSONBody(t *testing.T) {
	body := []byte("<html>Bad Gateway</html>")
	err := classifyResponse(502, body, http.Header{})
	if err.Kind != KindServer {
		t.Fatalf("kind = %s", err.Kind)
	}
	if string(err.Body) != string(body) {
		t.Fatalf("raw body not preserved")
	}
}

func TestKindHelpers(t *testing.T) {
	err := fmt.Errorf("outer: %w", &APIError{Kind: KindNotFound, Message: "gone"})
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound should see wrapped APIError")
	}
	if IsRateLimit(err) {
		t.Fatalf("wrong kind matched")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("plain error should have no kind")
	}
}

func TestWrapError(t *testing.T) {
	typed := &APIError{Kind: KindServer, Message: "boom"}
	if wrapError(typed) != error(typed) {
		t.Fatalf("typed error must pass through unchanged")
	}

	plain := errors.New("unexpected")
	wrapped := wrapError(plain)
	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) || apiErr.Kind != KindGeneric {
		t.Fatalf("plain error not wrapped generically: %v", wrapped)
	}
	if !errors.Is(wrapped, plain) {
		t.Fatalf("cause not preserved")
	}
	if wrapError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := newNetworkError("request failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable via errors.Is")
	}
	if err.Kind != KindNetwork {
		t.Fatalf("kind = %s", err.Kind)
	}
}
