package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/middleware"
)

// httpStatusFor maps a use-case result code to an HTTP status. Errors
// carrying no code are infrastructure failures and map to 500.
func httpStatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.CodeUnauthenticated, apperrors.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.CodeForbidden, apperrors.CodeForbiddenRole:
		return http.StatusForbidden
	case apperrors.CodeNotFound, apperrors.CodeUserNotFound, apperrors.CodeGuardianNotFound:
		return http.StatusNotFound
	case apperrors.CodeAlreadyMember, apperrors.CodePositionAlreadyTaken,
		apperrors.CodePetAlreadyAdopted, apperrors.CodeEmailInUse,
		apperrors.CodeMaxImagesReached, apperrors.CodeCannotRemoveLastOwner,
		apperrors.CodeCannotRemoveLastImage:
		return http.StatusConflict
	case apperrors.CodeInvalidStoragePath, apperrors.CodeInvalidCity, apperrors.CodeMissingReviewNote:
		return http.StatusBadRequest
	case apperrors.CodeInvalidStatus, apperrors.CodeInvalidData, apperrors.CodeInvalidImages,
		apperrors.CodePetNotApproved, apperrors.CodePetInactive, apperrors.CodeWorkspaceBlocked:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates a service error into the HTTP response,
// logging infrastructure failures at error level and expected rejections at
// warn.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := apperrors.CodeOf(err)
	status := httpStatusFor(code)

	if status == http.StatusInternalServerError {
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	logger.Warn("Request rejected", slog.String("code", string(code)), slog.String("error", err.Error()))

	// Only the AppError message travels to the client; wrapped causes stay
	// in the logs.
	message := "Request rejected"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, gin.H{"error": message, "code": string(code)})
}
