package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reuben-baek/gamestore/service"
)

type GenreHandler struct {
	genreService *service.GenreService
	gameService  *service.GameService
}

func NewGenreHandler(genreService *service.GenreService, gameService *service.GameService) *GenreHandler {
	return &GenreHandler{genreService: genreService, gameService: gameService}
}

func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.genreService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req service.GenreCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.genreService.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	genre, err := h.genreService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if genre == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, genre)
}

// EditGenre returns the genre in the shape PUT /genres/:id expects.
func (h *GenreHandler) EditGenre(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	edit, err := h.genreService.GetForUpdate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if edit == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, edit)
}

func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	var req service.GenreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	updated, err := h.genreService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre updated successfully"})
}

func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	deleted, err := h.genreService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre deleted successfully"})
}

func (h *GenreHandler) GetGenreGames(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	games, err := h.gameService.GetByGenre(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *GenreHandler) GetSubGenres(c *gin.Context) {
	id, ok := pathID(c, "genre")
	if !ok {
		return
	}
	genres, err := h.genreService.GetByParentID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// LookupGenres answers ?name=A&name=B with the ids of genres named A or B.
func (h *GenreHandler) LookupGenres(c *gin.Context) {
	ids, err := h.genreService.GetGenreIDsByGameNames(c.Request.Context(), c.QueryArray("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}
