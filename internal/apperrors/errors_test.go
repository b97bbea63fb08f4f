package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethehero/adopt_backend/internal/apperrors"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	wrapped := apperrors.NewAppError(apperrors.CodeNotFound, "pet not found", errors.New("no rows in result set"))

	assert.ErrorIs(t, wrapped, apperrors.ErrNotFound)
	assert.NotErrorIs(t, wrapped, apperrors.ErrForbidden)
}

func TestAppError_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to submit pet: %w", apperrors.ErrInvalidStatus)

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Equal(t, apperrors.CodeInvalidStatus, apperrors.CodeOf(err))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("unique constraint violation")
	err := apperrors.NewAppError(apperrors.CodeEmailInUse, "email is already registered", cause)

	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, apperrors.CodeWorkspaceBlocked, apperrors.CodeOf(apperrors.ErrWorkspaceBlocked))
	assert.Equal(t, apperrors.ErrorCode(""), apperrors.CodeOf(errors.New("plain infrastructure error")))
	assert.Equal(t, apperrors.ErrorCode(""), apperrors.CodeOf(nil))
}

func TestAppError_ErrorString(t *testing.T) {
	plain := apperrors.ErrGuardianNotFound.Error()
	assert.Contains(t, plain, "GUARDIAN_NOT_FOUND")
	assert.Contains(t, plain, "guardian user not found")

	wrapped := apperrors.NewAppError(apperrors.CodeInvalidCity, "place is not a city", errors.New("type=STATE")).Error()
	assert.Contains(t, wrapped, "INVALID_CITY")
	assert.Contains(t, wrapped, "type=STATE")
}
