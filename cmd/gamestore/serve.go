package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reuben-baek/gamestore/cache"
	"github.com/reuben-baek/gamestore/handlers"
	"github.com/reuben-baek/gamestore/infra"
	"github.com/reuben-baek/gamestore/routes"
	"github.com/reuben-baek/gamestore/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap(*cfgFile)
			if err != nil {
				return err
			}
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}

			var store cache.Store
			if cfg.Redis.Addr != "" {
				client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
				defer client.Close()
				store = cache.NewRedisStore(client)
				logrus.Infof("serve: caching responses in redis [%s] for %s", cfg.Redis.Addr, cfg.Cache.TTL)
			}

			unitOfWorks := infra.NewUnitOfWorkFactory(db)
			gameService := service.NewGameService(unitOfWorks)
			genreService := service.NewGenreService(unitOfWorks)
			platformService := service.NewPlatformService(unitOfWorks)

			router := gin.New()
			router.Use(gin.Recovery())
			routes.SetupRoutes(router,
				handlers.NewGameHandler(gameService, genreService, platformService),
				handlers.NewGenreHandler(genreService, gameService),
				handlers.NewPlatformHandler(platformService, gameService),
				store, cfg.Cache.TTL)

			server := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logrus.Infof("serve: listening on %s", cfg.HTTP.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logrus.Info("serve: shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
