package go_moip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies why a request was rejected before reaching MoIP.
//
// Every kind is also an error, so callers can match with errors.Is(err, ErrInvalidPhone).
type ErrorKind string

func (k ErrorKind) Error() string { return string(k) }

// Configuration.
const (
	ErrMissingConfig   ErrorKind = "MissingConfigError"
	ErrMissingToken    ErrorKind = "MissingTokenError"
	ErrMissingKey      ErrorKind = "MissingKeyError"
	ErrMissingEndpoint ErrorKind = "MissingEndpointError"
)

// Payer.
const (
	ErrInvalidPhone     ErrorKind = "InvalidPhone"
	ErrInvalidCellphone ErrorKind = "InvalidCellphone"
)

// Instrument and common fields.
const (
	ErrInvalidExpiry       ErrorKind = "InvalidExpiry"
	ErrMissingBirthdate    ErrorKind = "MissingBirthdate"
	ErrInvalidInstitution  ErrorKind = "InvalidInstitution"
	ErrInvalidReceiving    ErrorKind = "InvalidReceiving"
	ErrInvalidValue        ErrorKind = "InvalidValue"
	ErrInvalidInstallments ErrorKind = "InvalidInstallments"
	ErrMissingField        ErrorKind = "MissingField"
	ErrInvalidCommission   ErrorKind = "InvalidCommission"
)

// Dispatch.
const (
	ErrUnsupportedInstrument ErrorKind = "UnsupportedInstrument"
	ErrMalformedParams       ErrorKind = "MalformedParams"
)

// ValidationError is the single failure reported by Build.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func newValidationError(kind ErrorKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation error"
	}
	var b strings.Builder
	b.WriteString("validation error: ")
	b.WriteString(string(e.Kind))
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// KindOf returns the kind of a validation failure, or "" for any other error.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return ""
}

// APIError represents a non-2xx response from MoIP.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return "moip api error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("moip api error: status %d", e.StatusCode)
	}
	b := e.Body
	if len(b) > 1024 {
		b = b[:1024]
	}
	return fmt.Sprintf("moip api error: status %d: %s", e.StatusCode, string(b))
}

// GatewayError is returned when MoIP accepted the call but answered Status=Falha.
type GatewayError struct {
	ID       string
	Messages []GatewayMessage
}

type GatewayMessage struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return "moip gateway rejected the instruction"
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		if m.Code == "" {
			parts = append(parts, m.Message)
			continue
		}
		parts = append(parts, m.Code+" "+m.Message)
	}
	return "moip gateway rejected the instruction: " + strings.Join(parts, "; ")
}
