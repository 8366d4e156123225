package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/service"
)

type GameHandler struct {
	gameService     *service.GameService
	genreService    *service.GenreService
	platformService *service.PlatformService
}

func NewGameHandler(gameService *service.GameService, genreService *service.GenreService, platformService *service.PlatformService) *GameHandler {
	return &GameHandler{
		gameService:     gameService,
		genreService:    genreService,
		platformService: platformService,
	}
}

// ListGames filters by ?key, ?genreId or ?platformId when given.
func (h *GameHandler) ListGames(c *gin.Context) {
	ctx := c.Request.Context()
	if key := c.Query("key"); key != "" {
		h.respondGame(c, key)
		return
	}

	var (
		games []service.GameResult
		err   error
	)
	switch {
	case c.Query("genreId") != "":
		genreID, parseErr := uuid.Parse(c.Query("genreId"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
			return
		}
		games, err = h.gameService.GetByGenre(ctx, genreID)
	case c.Query("platformId") != "":
		platformID, parseErr := uuid.Parse(c.Query("platformId"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform ID"})
			return
		}
		games, err = h.gameService.GetByPlatform(ctx, platformID)
	default:
		games, err = h.gameService.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.GameCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	game, err := h.gameService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	var req service.GameUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	if _, err := h.gameService.Update(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game updated successfully"})
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	deleted, err := h.gameService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

func (h *GameHandler) GetGameByKey(c *gin.Context) {
	h.respondGame(c, c.Param("key"))
}

func (h *GameHandler) respondGame(c *gin.Context, key string) {
	game, err := h.gameService.GetByKey(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) GetGameGenres(c *gin.Context) {
	genres, err := h.genreService.GetByGameKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *GameHandler) GetGamePlatforms(c *gin.Context) {
	platforms, err := h.platformService.GetByGameKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

func (h *GameHandler) DownloadGame(c *gin.Context) {
	key := c.Param("key")
	content, err := h.gameService.GenerateGameFile(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key+".txt"))
	c.Data(http.StatusOK, "application/octet-stream", content)
}
