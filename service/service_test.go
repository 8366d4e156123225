package service_test

import (
	"context"
	"testing"

	"github.com/reuben-baek/gamestore/infra"
	"github.com/reuben-baek/gamestore/service"
	"github.com/stretchr/testify/require"
)

type services struct {
	games     *service.GameService
	genres    *service.GenreService
	platforms *service.PlatformService
}

func newServices(t *testing.T) services {
	t.Helper()
	db, err := infra.OpenDatabase("file::memory:", "silent")
	require.Nil(t, err)
	require.Nil(t, infra.AutoMigrate(db))
	unitOfWorks := infra.NewUnitOfWorkFactory(db)
	_, err = infra.Seed(context.Background(), unitOfWorks.New())
	require.Nil(t, err)

	return services{
		games:     service.NewGameService(unitOfWorks),
		genres:    service.NewGenreService(unitOfWorks),
		platforms: service.NewPlatformService(unitOfWorks),
	}
}
