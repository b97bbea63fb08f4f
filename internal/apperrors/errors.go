// Package apperrors defines the result codes every use case returns on
// failure. Codes travel as error values so callers can match them with
// errors.Is and the HTTP layer can map them to status codes; only genuine
// infrastructure failures (connectivity etc.) propagate as plain wrapped
// errors without a code.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a terminal use-case failure.
type ErrorCode string

const (
	// Identity
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"

	// Authorization
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Existence
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeGuardianNotFound ErrorCode = "GUARDIAN_NOT_FOUND"

	// State conflict
	CodeInvalidStatus         ErrorCode = "INVALID_STATUS"
	CodePetAlreadyAdopted     ErrorCode = "PET_ALREADY_ADOPTED"
	CodePetNotApproved        ErrorCode = "PET_NOT_APPROVED"
	CodePetInactive           ErrorCode = "PET_INACTIVE"
	CodeAlreadyMember         ErrorCode = "ALREADY_MEMBER"
	CodePositionAlreadyTaken  ErrorCode = "POSITION_ALREADY_TAKEN"
	CodeCannotRemoveLastOwner ErrorCode = "CANNOT_REMOVE_LAST_OWNER"
	CodeCannotRemoveLastImage ErrorCode = "CANNOT_REMOVE_LAST_IMAGE"

	// Validation
	CodeInvalidData        ErrorCode = "INVALID_DATA"
	CodeInvalidImages      ErrorCode = "INVALID_IMAGES"
	CodeInvalidStoragePath ErrorCode = "INVALID_STORAGE_PATH"
	CodeInvalidCity        ErrorCode = "INVALID_CITY"
	CodeMissingReviewNote  ErrorCode = "MISSING_REVIEW_NOTE"
	CodeMaxImagesReached   ErrorCode = "MAX_IMAGES_REACHED"

	// Policy
	CodeWorkspaceBlocked   ErrorCode = "WORKSPACE_BLOCKED"
	CodeForbiddenRole      ErrorCode = "FORBIDDEN_ROLE"
	CodeEmailInUse         ErrorCode = "EMAIL_IN_USE"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)

// AppError is an error carrying a use-case result code. Two AppErrors match
// under errors.Is when their codes are equal, so the sentinel values below
// work as targets regardless of wrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Sentinels, one per code. Services return these (or wrapped variants built
// with NewAppError) and handlers switch on CodeOf.
var (
	ErrUnauthenticated = &AppError{Code: CodeUnauthenticated, Message: "authentication required"}
	ErrForbidden       = &AppError{Code: CodeForbidden, Message: "operation not permitted"}

	ErrNotFound         = &AppError{Code: CodeNotFound, Message: "resource not found"}
	ErrUserNotFound     = &AppError{Code: CodeUserNotFound, Message: "user not found"}
	ErrGuardianNotFound = &AppError{Code: CodeGuardianNotFound, Message: "guardian user not found"}

	ErrInvalidStatus         = &AppError{Code: CodeInvalidStatus, Message: "entity status does not allow this transition"}
	ErrPetAlreadyAdopted     = &AppError{Code: CodePetAlreadyAdopted, Message: "pet already has a registered adoption"}
	ErrPetNotApproved        = &AppError{Code: CodePetNotApproved, Message: "pet is not approved"}
	ErrPetInactive           = &AppError{Code: CodePetInactive, Message: "pet is inactive"}
	ErrAlreadyMember         = &AppError{Code: CodeAlreadyMember, Message: "user is already a workspace member"}
	ErrPositionAlreadyTaken  = &AppError{Code: CodePositionAlreadyTaken, Message: "image position is already occupied"}
	ErrCannotRemoveLastOwner = &AppError{Code: CodeCannotRemoveLastOwner, Message: "workspace must keep at least one active owner"}
	ErrCannotRemoveLastImage = &AppError{Code: CodeCannotRemoveLastImage, Message: "pet under review must keep at least one image"}

	ErrInvalidData        = &AppError{Code: CodeInvalidData, Message: "pet is missing required data"}
	ErrInvalidImages      = &AppError{Code: CodeInvalidImages, Message: "pet image set violates invariants"}
	ErrInvalidStoragePath = &AppError{Code: CodeInvalidStoragePath, Message: "storage path does not match pet image convention"}
	ErrInvalidCity        = &AppError{Code: CodeInvalidCity, Message: "place does not exist or is not a city"}
	ErrMissingReviewNote  = &AppError{Code: CodeMissingReviewNote, Message: "rejection requires a review note"}
	ErrMaxImagesReached   = &AppError{Code: CodeMaxImagesReached, Message: "pet already has the maximum number of images"}

	ErrWorkspaceBlocked   = &AppError{Code: CodeWorkspaceBlocked, Message: "workspace is inactive or not verified"}
	ErrForbiddenRole      = &AppError{Code: CodeForbiddenRole, Message: "role cannot be self-registered"}
	ErrEmailInUse         = &AppError{Code: CodeEmailInUse, Message: "email is already registered"}
	ErrInvalidCredentials = &AppError{Code: CodeInvalidCredentials, Message: "invalid email or password"}
)

// CodeOf extracts the result code from an error chain. It returns the empty
// code when err carries no AppError (infrastructure failure).
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
