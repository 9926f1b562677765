// Package generr defines the failure taxonomy shared by the content store and
// the generation pipeline. Every error is surfaced to the caller exactly once;
// nothing in this codebase retries automatically.
package generr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means generation credentials or a store backend is not
	// configured. Fatal to the attempted operation until an operator acts.
	ErrConfiguration = errors.New("configuration missing")
	// ErrQuotaExceeded means the generation service rejected the call for
	// rate or quota reasons. Recoverable by supplying an emergency key.
	ErrQuotaExceeded = errors.New("generation quota exceeded")
	// ErrTransient means a store or generation call failed to complete.
	ErrTransient = errors.New("transient network failure")
	// ErrValidation means generated output was empty, a placeholder, or below
	// the minimum length. The store is left untouched.
	ErrValidation = errors.New("generated content failed validation")
	// ErrMalformedResponse means structured output did not parse against the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed generation response")
	// ErrNotFound is the generic sentinel for missing records.
	ErrNotFound = errors.New("not found")
	// ErrGenerationInProgress guards against overlapping generation requests
	// for the same subject from one client.
	ErrGenerationInProgress = errors.New("generation already in progress")
)

func Configuration(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func Quota(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrQuotaExceeded, fmt.Sprintf(format, args...))
}

func Transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Malformed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
}

// Code maps an error to the API error code used by the HTTP layer.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "not_configured"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrValidation):
		return "invalid_generation"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrGenerationInProgress):
		return "generation_in_progress"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTransient):
		return "network_error"
	default:
		return "internal_error"
	}
}
