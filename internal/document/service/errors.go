package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("document not found")
)

// ValidationError reports a missing required request field. The handler layer
// maps it to a 400 response.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// GenerationError wraps an upstream LLM failure, including deadline expiry.
// Never retried; maps to a 500 response.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// TranslationError wraps an upstream translation failure on the explicit
// translate path. Prompt localization recovers from translation failures
// silently instead of producing this error.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return e.Err.Error()
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
