package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PersistenceError wraps a store failure together with the operation that failed.
// A failure on "create" is fatal for activation; failures on guarded transitions are
// reported as "did not apply".
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrSOSEventNotFound         = &NotFoundError{Entity: "SOS event"}
	ErrEmergencyContactNotFound = &NotFoundError{Entity: "emergency contact"}
	ErrNotificationNotFound     = &NotFoundError{Entity: "notification record"}
	ErrMemberNotFound           = &NotFoundError{Entity: "member"}
)

// Already Exists Errors
var (
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "with this email"}
)

// SOS Errors
var (
	ErrLocationUnavailable  = errors.New("location unavailable")
	ErrNoContactsConfigured = errors.New("no emergency contacts configured")
	ErrNoAdministrators     = errors.New("no administrators configured")
	ErrSOSEventTerminal     = errors.New("SOS event is already resolved")
	ErrInvalidTier          = errors.New("invalid escalation tier")
	ErrInvalidOutcome       = errors.New("invalid resolution outcome")
	ErrInvalidSubjectRole   = errors.New("invalid subject role")
)

// Notification Errors
var (
	ErrChannelNotConfigured = errors.New("notification channel is not configured")
	ErrNoRecipientAddress   = errors.New("recipient has no address for channel")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrInvalidEscalationThresholds = &ConfigurationError{Message: "escalation thresholds must be positive and strictly increasing"}
	ErrGeoIPDatabaseMissing        = &ConfigurationError{Message: "GeoIP database path is not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewPersistenceError creates a new PersistenceError for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
