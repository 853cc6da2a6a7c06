package mcp

import (
	"errors"
	"fmt"

	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/host"
	"github.com/akwrites/penlight/internal/store"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors are
// returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, plan.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects to see valid ids"}
	case errors.Is(err, plan.ErrIncompletePlan):
		return &APIError{Code: "INCOMPLETE_PLAN", Message: "plan requires name, target words and deadline"}
	case errors.Is(err, plan.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, host.ErrDocumentUnavailable):
		return &APIError{Code: "DOCUMENT_UNAVAILABLE", Message: "could not read the manuscript document", RecoveryHint: "Check the configured document path"}
	case errors.Is(err, store.ErrMalformedState), errors.Is(err, store.ErrUnknownVersion):
		return &APIError{Code: "STORE_CORRUPT", Message: err.Error()}
	default:
		return err
	}
}
