package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the principal is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrStorage indicates a failure talking to the record store or the asset store.
var ErrStorage = errors.New("storage error")

// Validation codes reported back to the donor/admin forms.
const (
	CodeAmountInvalid       = "amount_invalid"
	CodeProofRequired       = "proof_required"
	CodeUnsupportedFileType = "unsupported_file_type"
	CodeFileTooLarge        = "file_too_large"
	CodeDirectionInvalid    = "direction_invalid"
	CodeDonorNameTooLong    = "donor_name_too_long"
)

// ValidationError is an input problem shown inline to the user. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrValidation) succeed for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for the given code.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// NewStorageError wraps a store/asset failure so callers can match ErrStorage.
func NewStorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
