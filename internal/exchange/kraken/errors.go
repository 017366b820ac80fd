package kraken

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an exchange-boundary failure. Raw transport errors
// never leave this package unclassified.
type ErrorKind string

const (
	ErrKindRequestFailed    ErrorKind = "RequestFailed"
	ErrKindUnknownAsset     ErrorKind = "UnknownAsset"
	ErrKindUnknownPair      ErrorKind = "UnknownPair"
	ErrKindInvalidArguments ErrorKind = "InvalidArguments"
	ErrKindAuth             ErrorKind = "Auth"
)

// APIError is a classified Kraken API failure.
type APIError struct {
	Kind      ErrorKind
	Operation string
	Message   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kraken %s: %s", e.Operation, e.Message)
}

// wrapError converts an SDK error into a classified APIError.
func wrapError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Kind:      classify(err),
		Operation: operation,
		Message:   strings.ReplaceAll(err.Error(), "\n", " "),
	}
}

// classify maps Kraken's error strings onto the wrapper taxonomy. The SDK
// surfaces the exchange's error list (e.g. "EQuery:Unknown asset pair")
// inside the error message.
func classify(err error) ErrorKind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Unknown asset pair"):
		return ErrKindUnknownPair
	case strings.Contains(msg, "Unknown asset"):
		return ErrKindUnknownAsset
	case strings.Contains(msg, "Invalid arguments"):
		return ErrKindInvalidArguments
	case strings.Contains(msg, "EAPI:"), strings.Contains(msg, "Permission denied"):
		return ErrKindAuth
	}
	return ErrKindRequestFailed
}

// IsUnknownPair reports whether the error means the requested pair or
// asset does not exist on the exchange.
func IsUnknownPair(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrKindUnknownPair || apiErr.Kind == ErrKindUnknownAsset
	}
	return false
}

// IsAuthError reports whether the error is an authentication failure.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrKindAuth
	}
	return false
}
