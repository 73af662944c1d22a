package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrProviderNotFound = fmt.Errorf("%w: provider", ErrNotFound)
	ErrRunNotFound      = fmt.Errorf("%w: analysis run", ErrNotFound)

	// Record validation errors
	ErrInvalidRecord      = errors.New("invalid provider record")
	ErrQualityOutOfRange  = fmt.Errorf("%w: quality score outside [1,5]", ErrInvalidRecord)
	ErrNonPositiveCost    = fmt.Errorf("%w: cost per utilizer must be positive", ErrInvalidRecord)
	ErrNoOperatingStates  = fmt.Errorf("%w: operating states must be non-empty", ErrInvalidRecord)
	ErrNegativeUtilizers  = fmt.Errorf("%w: utilizers must be >= 0", ErrInvalidRecord)
	ErrNegativeTermValue  = fmt.Errorf("%w: termination value must be >= 0", ErrInvalidRecord)
	ErrUnknownEnumValue   = fmt.Errorf("%w: unknown enum value", ErrInvalidRecord)
	ErrInconsistentMarket = fmt.Errorf("%w: primary CBSA not derivable from operating states", ErrInvalidRecord)

	// Configuration contract errors - misconfiguration, fail fast
	ErrInvalidThresholds = errors.New("invalid analysis thresholds")
	ErrInvalidConfig     = errors.New("invalid engine configuration")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewRecordError(providerID string, cause error) error {
	return fmt.Errorf("provider %s: %w", providerID, cause)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsRecordError(err error) bool {
	return errors.Is(err, ErrInvalidRecord)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidThresholds) || errors.Is(err, ErrInvalidConfig)
}
