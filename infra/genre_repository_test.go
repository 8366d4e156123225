package infra_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/reuben-baek/gamestore/infra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genreNames(genres []domain.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func TestGenreRepository(t *testing.T) {
	_, unitOfWorks := newSeededDB(t)

	t.Run("find by id resolves parent", func(t *testing.T) {
		genre, err := unitOfWorks.New().Genres().FindByID(context.Background(), infra.RTSGenreID)
		require.Nil(t, err)
		assert.Equal(t, "RTS", genre.Name)
		require.NotNil(t, genre.ParentGenre)
		assert.Equal(t, "Strategy", genre.ParentGenre.Name)

		root, err := unitOfWorks.New().Genres().FindByID(context.Background(), infra.StrategyGenreID)
		require.Nil(t, err)
		assert.Nil(t, root.ParentGenreID)
		assert.Nil(t, root.ParentGenre)
	})

	t.Run("get by parent id", func(t *testing.T) {
		children, err := unitOfWorks.New().Genres().GetByParentID(context.Background(), infra.StrategyGenreID)
		require.Nil(t, err)
		assert.ElementsMatch(t, []string{"RTS", "TBS"}, genreNames(children))

		none, err := unitOfWorks.New().Genres().GetByParentID(context.Background(), infra.RPGGenreID)
		require.Nil(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("get by game key", func(t *testing.T) {
		genres, err := unitOfWorks.New().Genres().GetByGameKey(context.Background(), "arcade-shooter")
		require.Nil(t, err)
		assert.Equal(t, []string{"FPS"}, genreNames(genres))

		unknown, err := unitOfWorks.New().Genres().GetByGameKey(context.Background(), "unknown")
		require.Nil(t, err)
		assert.Empty(t, unknown)
	})

	t.Run("parent with children cannot be deleted", func(t *testing.T) {
		ctx := context.Background()
		unitOfWork := unitOfWorks.New()
		strategy, err := unitOfWork.Genres().FindByID(ctx, infra.StrategyGenreID)
		require.Nil(t, err)
		require.Nil(t, unitOfWork.Genres().Delete(ctx, &strategy))
		_, err = unitOfWork.Commit(ctx)
		assert.NotNil(t, err)

		_, err = unitOfWorks.New().Genres().FindByID(ctx, infra.StrategyGenreID)
		assert.Nil(t, err)

		children, err := unitOfWorks.New().Genres().GetByParentID(ctx, infra.StrategyGenreID)
		require.Nil(t, err)
		assert.ElementsMatch(t, []string{"RTS", "TBS"}, genreNames(children))
	})

	t.Run("deleting a genre unlinks it from games", func(t *testing.T) {
		ctx := context.Background()
		unitOfWork := unitOfWorks.New()
		genre := domain.Genre{ID: uuid.New(), Name: "Puzzle"}
		game := domain.Game{
			ID:         uuid.New(),
			Name:       "Blocks",
			Key:        "blocks",
			GameGenres: []domain.GameGenre{{GenreID: genre.ID}, {GenreID: infra.RPGGenreID}},
		}
		require.Nil(t, unitOfWork.Genres().Add(ctx, &genre))
		require.Nil(t, unitOfWork.Games().Add(ctx, &game))
		_, err := unitOfWork.Commit(ctx)
		require.Nil(t, err)

		unitOfWork = unitOfWorks.New()
		require.Nil(t, unitOfWork.Genres().Delete(ctx, &genre))
		_, err = unitOfWork.Commit(ctx)
		require.Nil(t, err)

		found, err := unitOfWorks.New().Games().GetFullByID(ctx, game.ID)
		require.Nil(t, err)
		assert.Equal(t, []uuid.UUID{infra.RPGGenreID}, found.GenreIDs())
	})

	t.Run("unknown parent fails at commit", func(t *testing.T) {
		ctx := context.Background()
		unitOfWork := unitOfWorks.New()
		parent := uuid.New()
		genre := domain.Genre{ID: uuid.New(), Name: "Orphan", ParentGenreID: &parent}
		require.Nil(t, unitOfWork.Genres().Add(ctx, &genre))
		_, err := unitOfWork.Commit(ctx)
		assert.NotNil(t, err)

		_, err = unitOfWorks.New().Genres().FindByID(ctx, genre.ID)
		assert.ErrorIs(t, err, data.NotFoundError)
	})
}

func TestPlatformRepository(t *testing.T) {
	_, unitOfWorks := newSeededDB(t)

	t.Run("get by game key", func(t *testing.T) {
		platforms, err := unitOfWorks.New().Platforms().GetByGameKey(context.Background(), "super-strategy")
		require.Nil(t, err)
		require.Len(t, platforms, 1)
		assert.Equal(t, "Desktop", platforms[0].Type)

		unknown, err := unitOfWorks.New().Platforms().GetByGameKey(context.Background(), "unknown")
		require.Nil(t, err)
		assert.Empty(t, unknown)
	})

	t.Run("update", func(t *testing.T) {
		ctx := context.Background()
		unitOfWork := unitOfWorks.New()
		platform, err := unitOfWork.Platforms().FindByID(ctx, infra.BrowserPlatformID)
		require.Nil(t, err)
		platform.Type = "Web"
		require.Nil(t, unitOfWork.Platforms().Update(ctx, &platform))
		affected, err := unitOfWork.Commit(ctx)
		require.Nil(t, err)
		assert.Equal(t, int64(1), affected)

		found, err := unitOfWorks.New().Platforms().FindByID(ctx, infra.BrowserPlatformID)
		require.Nil(t, err)
		assert.Equal(t, "Web", found.Type)
	})

	t.Run("ordered listing", func(t *testing.T) {
		platforms, err := unitOfWorks.New().Platforms().GetAll(context.Background()).Order("type").Find()
		require.Nil(t, err)
		require.Len(t, platforms, 4)
		assert.Equal(t, "Console", platforms[0].Type)
	})
}
