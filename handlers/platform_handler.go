package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reuben-baek/gamestore/service"
)

type PlatformHandler struct {
	platformService *service.PlatformService
	gameService     *service.GameService
}

func NewPlatformHandler(platformService *service.PlatformService, gameService *service.GameService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService, gameService: gameService}
}

func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	platforms, err := h.platformService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req service.PlatformCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	platform, err := h.platformService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, platform)
}

func (h *PlatformHandler) GetPlatform(c *gin.Context) {
	id, ok := pathID(c, "platform")
	if !ok {
		return
	}
	platform, err := h.platformService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if platform == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
		return
	}
	c.JSON(http.StatusOK, platform)
}

func (h *PlatformHandler) UpdatePlatform(c *gin.Context) {
	id, ok := pathID(c, "platform")
	if !ok {
		return
	}
	var req service.PlatformUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	updated, err := h.platformService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform updated successfully"})
}

func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	id, ok := pathID(c, "platform")
	if !ok {
		return
	}
	deleted, err := h.platformService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform deleted successfully"})
}

func (h *PlatformHandler) GetPlatformGames(c *gin.Context) {
	id, ok := pathID(c, "platform")
	if !ok {
		return
	}
	games, err := h.gameService.GetByPlatform(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// LookupPlatforms answers ?type=A&type=B with the ids of matching platforms.
func (h *PlatformHandler) LookupPlatforms(c *gin.Context) {
	ids, err := h.platformService.GetPlatformIDsByGameNames(c.Request.Context(), c.QueryArray("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}
