package model

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FailureKind classifies an inference failure. The batch runner records
// the failure text in place of a diagnosis and moves on; no kind is
// retried.
type FailureKind int

const (
	FailureConnection FailureKind = iota
	FailureStatus
	FailureOther
)

// InferenceError wraps an endpoint failure with its classification.
type InferenceError struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *InferenceError) Error() string {
	switch e.Kind {
	case FailureConnection:
		return "model: cannot connect to inference endpoint"
	case FailureStatus:
		return fmt.Sprintf("model: endpoint returned HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("model: %v", e.Err)
	}
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// FailureText renders an error as the short text stored in place of the
// model response in batch artifacts.
func FailureText(err error) string {
	var infErr *InferenceError
	if errors.As(err, &infErr) {
		switch infErr.Kind {
		case FailureConnection:
			return "Cannot connect to Ollama"
		case FailureStatus:
			return fmt.Sprintf("Error: HTTP %d", infErr.StatusCode)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
