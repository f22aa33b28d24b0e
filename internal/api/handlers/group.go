package handlers

import (
	"net/http"

	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	groups    service.GroupServiceInterface
	directory service.DirectoryServiceInterface
	notices   service.NoticeServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groups service.GroupServiceInterface, directory service.DirectoryServiceInterface, notices service.NoticeServiceInterface) *GroupHandler {
	return &GroupHandler{groups: groups, directory: directory, notices: notices}
}

// CreateGroup creates a new group led by the caller
// @Summary Create a new group
// @Description Create a group for an activity; the caller becomes its leader and only member
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Caller is not registered"
// @Failure 409 {object} ErrorResponse "Caller is already in a group"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	group, err := h.groups.Create(c.Request.Context(), player.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListActiveGroups lists groups that can still be joined
// @Summary List active groups
// @Description Groups that are not filled and not expired, newest first
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Active groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListActiveGroups(c *gin.Context) {
	groups, err := h.groups.GetActiveGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Description Get a snapshot of a group by its UUID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}

	group, err := h.groups.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetNotice renders the public notice of a group
// @Summary Get group notice
// @Description Render the notice shown for a group, one field per member
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupNotice "Rendered notice"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/notice [get]
func (h *GroupHandler) GetNotice(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}

	notice, err := h.notices.Render(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

// JoinGroup adds the caller to a group
// @Summary Join group
// @Description Add the caller to a group that has room
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Updated group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group or caller not found"
// @Failure 409 {object} ErrorResponse "Group full, caller already in a group, or retryable conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	group, err := h.groups.Join(c.Request.Context(), id, player.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// LeaveGroup removes the caller from a group
// @Summary Leave group
// @Description Remove the caller from a group; the last member leaving disbands it
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.LeaveResponse "Leave outcome"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group or caller not found"
// @Failure 409 {object} ErrorResponse "Caller is not a member, or retryable conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	left, err := h.groups.Leave(c.Request.Context(), id, player.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, left)
}
