package handlers

import (
	"net/http"

	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SignalHandler accepts membership signals raised on group notices
type SignalHandler struct {
	signals service.SignalServiceInterface
}

// NewSignalHandler creates a new signal handler
func NewSignalHandler(signals service.SignalServiceInterface) *SignalHandler {
	return &SignalHandler{signals: signals}
}

// HandleSignal applies a join or leave signal
// @Summary Apply membership signal
// @Description Join or leave a group as the signed-in player. player_handle, when sent, must match the caller.
// @Tags signals
// @Accept json
// @Produce json
// @Param signal body service.MembershipSignal true "Signal"
// @Success 200 {object} service.SignalResult "Signal outcome"
// @Failure 400 {object} ErrorResponse "Invalid signal"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Signal names another player"
// @Failure 404 {object} ErrorResponse "Group or player not found"
// @Failure 409 {object} ErrorResponse "Membership rule violated, or retryable conflict"
// @Security BearerAuth
// @Router /signals [post]
func (h *SignalHandler) HandleSignal(c *gin.Context) {
	var signal service.MembershipSignal
	if err := c.ShouldBindJSON(&signal); err != nil {
		bindError(c, err)
		return
	}

	handle, ok := callerHandle(c)
	if !ok {
		return
	}

	result, err := h.signals.Handle(c.Request.Context(), handle, &signal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
