package handlers

import (
	"errors"
	"net/http"

	"lfg-backend/internal/auth"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"
	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error     string `json:"error" example:"error message"`
	Field     string `json:"field,omitempty" example:"difficulty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsForbidden(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsMembership(err), apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status its kind maps to. Internal errors
// are logged and hidden from the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}
	if apperrors.IsConflict(err) {
		resp.Retryable = true
	}
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		resp.Error = "Internal server error"
	}

	c.JSON(status, resp)
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
}

// parseID parses the :id path parameter
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + what + " ID", Field: "id"})
		return uuid.Nil, false
	}
	return id, true
}

// callerHandle returns the authenticated handle or writes 401
func callerHandle(c *gin.Context) (string, bool) {
	handle, ok := auth.GetPlayerHandle(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials)
		return "", false
	}
	return handle, true
}

// currentPlayer resolves the authenticated caller to a registered player
func currentPlayer(c *gin.Context, directory service.DirectoryServiceInterface) (*service.PlayerResponse, bool) {
	handle, ok := callerHandle(c)
	if !ok {
		return nil, false
	}
	player, err := directory.GetPlayer(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return player, true
}
