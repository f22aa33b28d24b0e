package handlers

import (
	"net/http"

	"lfg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests about the calling player
type PlayerHandler struct {
	directory service.DirectoryServiceInterface
	groups    service.GroupServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(directory service.DirectoryServiceInterface, groups service.GroupServiceInterface) *PlayerHandler {
	return &PlayerHandler{directory: directory, groups: groups}
}

// Register registers the caller or refreshes their tag
// @Summary Register caller
// @Description Get-or-create the player for the authenticated handle
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.ResolvePlayerRequest true "Display tag"
// @Success 200 {object} service.PlayerResponse "Registered player"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /players/me [post]
func (h *PlayerHandler) Register(c *gin.Context) {
	var req service.ResolvePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	handle, ok := callerHandle(c)
	if !ok {
		return
	}

	player, err := h.directory.Resolve(c.Request.Context(), handle, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// ListCharacters lists the caller's characters
// @Summary List characters
// @Tags players
// @Produce json
// @Success 200 {array} service.CharacterResponse "Linked characters"
// @Failure 404 {object} ErrorResponse "Caller is not registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /players/me/characters [get]
func (h *PlayerHandler) ListCharacters(c *gin.Context) {
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	characters, err := h.directory.ListCharacters(c.Request.Context(), player.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

// LinkCharacter links a character to the caller
// @Summary Link character
// @Description Link a character; its reputation score is fetched before it is saved
// @Tags players
// @Accept json
// @Produce json
// @Param character body service.CharacterRequest true "Character data"
// @Success 201 {object} service.CharacterResponse "Linked character"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Caller is not registered"
// @Failure 409 {object} ErrorResponse "Character already linked"
// @Failure 503 {object} ErrorResponse "Reputation service unavailable"
// @Security BearerAuth
// @Router /players/me/characters [post]
func (h *PlayerHandler) LinkCharacter(c *gin.Context) {
	var req service.CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	character, err := h.directory.LinkCharacter(c.Request.Context(), player.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, character)
}

// UpdateCharacter refreshes one of the caller's characters
// @Summary Update character
// @Description Update class and item level and refresh the reputation score
// @Tags players
// @Accept json
// @Produce json
// @Param character body service.CharacterRequest true "Character data"
// @Success 200 {object} service.CharacterResponse "Updated character"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Caller or character not found"
// @Failure 503 {object} ErrorResponse "Reputation service unavailable"
// @Security BearerAuth
// @Router /players/me/characters [put]
func (h *PlayerHandler) UpdateCharacter(c *gin.Context) {
	var req service.CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	character, err := h.directory.UpdateCharacter(c.Request.Context(), player.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, character)
}

// ListGroups lists the groups the caller belongs to
// @Summary List caller groups
// @Tags players
// @Produce json
// @Success 200 {array} service.GroupResponse "Caller groups"
// @Failure 404 {object} ErrorResponse "Caller is not registered"
// @Security BearerAuth
// @Router /players/me/groups [get]
func (h *PlayerHandler) ListGroups(c *gin.Context) {
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	groups, err := h.groups.GetGroupsForPlayer(c.Request.Context(), player.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// LeaveCurrent removes the caller from whatever group they are in
// @Summary Leave current group
// @Tags players
// @Produce json
// @Success 200 {object} service.LeaveResponse "Leave outcome"
// @Failure 404 {object} ErrorResponse "Caller is not registered"
// @Failure 409 {object} ErrorResponse "Caller is not in a group"
// @Security BearerAuth
// @Router /players/me/leave [post]
func (h *PlayerHandler) LeaveCurrent(c *gin.Context) {
	player, ok := currentPlayer(c, h.directory)
	if !ok {
		return
	}

	left, err := h.groups.LeaveCurrent(c.Request.Context(), player.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, left)
}
