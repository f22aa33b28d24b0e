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
	Context string // Additional context like "for this player"
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

// ConflictError is returned when a write keeps losing optimistic concurrency races.
// It is transient; the caller may retry the whole command.
type ConflictError struct {
	Entity   string
	Attempts int
}

func (e *ConflictError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("%s update conflicted after %d attempts", e.Entity, e.Attempts)
	}
	return fmt.Sprintf("%s update conflicted", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// UnavailableError represents a collaborator that failed or timed out
type UnavailableError struct {
	Service string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
	}
	return fmt.Sprintf("%s unavailable", e.Service)
}

// Unwrap exposes the underlying cause
func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Is enables errors.Is() comparison for UnavailableError
func (e *UnavailableError) Is(target error) bool {
	t, ok := target.(*UnavailableError)
	if !ok {
		return false
	}
	return e.Service == t.Service
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ForbiddenError is returned when an authenticated caller acts outside their own identity
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGroupNotFound     = &NotFoundError{Entity: "group"}
	ErrPlayerNotFound    = &NotFoundError{Entity: "player"}
	ErrCharacterNotFound = &NotFoundError{Entity: "character"}
)

// Already Exists Errors
var (
	ErrPlayerExists    = &AlreadyExistsError{Entity: "player", Context: "with this handle"}
	ErrCharacterExists = &AlreadyExistsError{Entity: "character", Context: "for this player"}
)

// Membership Errors
var (
	ErrGroupFull      = errors.New("group is full")
	ErrAlreadyInGroup = errors.New("player is already in a group")
	ErrNotAMember     = errors.New("player is not a member of this group")
)

// Concurrency Errors
var (
	// ErrVersionConflict is returned by stores when the stored version moved on.
	// The engine retries on it and never returns it to callers.
	ErrVersionConflict = errors.New("stale group version")
	ErrConflict        = &ConflictError{Entity: "group"}
)

// Collaborator Errors
var (
	ErrReputationUnavailable = &UnavailableError{Service: "reputation"}
)

// Authentication Errors
var (
	ErrMissingCredentials = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
)

// Authorization Errors
var (
	ErrActingForOtherPlayer = &ForbiddenError{Message: "signals may only act for the signed-in player"}
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

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsMembership reports whether err is one of the membership rule violations
func IsMembership(err error) bool {
	return errors.Is(err, ErrGroupFull) || errors.Is(err, ErrAlreadyInGroup) || errors.Is(err, ErrNotAMember)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a ConflictError recording how many attempts were made
func NewConflictError(entity string, attempts int) error {
	return &ConflictError{Entity: entity, Attempts: attempts}
}

// NewUnavailableError wraps a collaborator failure
func NewUnavailableError(service string, cause error) error {
	return &UnavailableError{Service: service, Cause: cause}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}
