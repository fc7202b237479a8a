package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks failures detected locally before any network call.
	ErrValidation = errors.New("validation error")
	// ErrExternalService marks transport failures and non-success endpoint responses.
	ErrExternalService = errors.New("external service error")
	// ErrConfiguration marks unusable local configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrBusy is returned when a run is requested while another is in flight.
	ErrBusy = errors.New("operation already in progress")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalService
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsLocal reports whether the error never left the process: validation and
// configuration failures, plus the busy guard.
func IsLocal(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrConfiguration) || errors.Is(err, ErrBusy)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
