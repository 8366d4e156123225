package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reuben-baek/gamestore/cache"
	"github.com/reuben-baek/gamestore/handlers"
)

func SetupRoutes(
	router *gin.Engine,
	gameHandler *handlers.GameHandler,
	genreHandler *handlers.GenreHandler,
	platformHandler *handlers.PlatformHandler,
	store cache.Store,
	cacheTTL time.Duration,
) {
	router.Use(handlers.Metrics(), handlers.RequestLogger(), cache.Invalidation(store))
	cached := cache.Responses(store, cacheTTL)

	games := router.Group("/games")
	{
		games.GET("", gameHandler.ListGames)
		games.POST("", gameHandler.CreateGame)
		games.GET("/:id", gameHandler.GetGame)
		games.PUT("/:id", gameHandler.UpdateGame)
		games.DELETE("/:id", gameHandler.DeleteGame)
		games.GET("/key/:key", gameHandler.GetGameByKey)
		games.GET("/key/:key/genres", gameHandler.GetGameGenres)
		games.GET("/key/:key/platforms", gameHandler.GetGamePlatforms)
		games.GET("/key/:key/file", gameHandler.DownloadGame)
	}

	genres := router.Group("/genres")
	{
		genres.GET("", cached, genreHandler.ListGenres)
		genres.POST("", genreHandler.CreateGenre)
		genres.GET("/lookup", genreHandler.LookupGenres)
		genres.GET("/:id", genreHandler.GetGenre)
		genres.GET("/:id/edit", genreHandler.EditGenre)
		genres.PUT("/:id", genreHandler.UpdateGenre)
		genres.DELETE("/:id", genreHandler.DeleteGenre)
		genres.GET("/:id/games", cached, genreHandler.GetGenreGames)
		genres.GET("/:id/genres", cached, genreHandler.GetSubGenres)
	}

	platforms := router.Group("/platforms")
	{
		platforms.GET("", platformHandler.ListPlatforms)
		platforms.POST("", platformHandler.CreatePlatform)
		platforms.GET("/lookup", platformHandler.LookupPlatforms)
		platforms.GET("/:id", platformHandler.GetPlatform)
		platforms.PUT("/:id", platformHandler.UpdatePlatform)
		platforms.DELETE("/:id", platformHandler.DeletePlatform)
		platforms.GET("/:id/games", platformHandler.GetPlatformGames)
	}

	router.GET("/metrics", handlers.MetricsHandler())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
