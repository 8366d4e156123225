package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/infra"
	"github.com/reuben-baek/gamestore/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultIDs(results []service.GameResult) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestGameService_Add(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	t.Run("nil request", func(t *testing.T) {
		_, err := s.games.Add(ctx, nil)
		assert.ErrorIs(t, err, service.ErrNilRequest)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := s.games.Add(ctx, &service.GameCreationRequest{Key: "nameless"})
		var validationErr *service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "required", validationErr.Fields["Name"])
	})

	t.Run("blank name cannot derive a key", func(t *testing.T) {
		_, err := s.games.Add(ctx, &service.GameCreationRequest{Name: "   "})
		var validationErr *service.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("key derived from name", func(t *testing.T) {
		result, err := s.games.Add(ctx, &service.GameCreationRequest{
			Name:        "  Space Trader  ",
			GenreIDs:    []uuid.UUID{infra.StrategyGenreID, infra.StrategyGenreID, infra.RPGGenreID},
			PlatformIDs: []uuid.UUID{infra.DesktopPlatformID},
		})
		require.Nil(t, err)
		assert.NotEqual(t, uuid.Nil, result.ID)
		assert.Equal(t, "space_trader", result.Key)
		assert.ElementsMatch(t, []string{"Strategy", "RPG"}, result.Genres)
		assert.Equal(t, []string{"Desktop"}, result.Platforms)
	})

	t.Run("explicit key kept", func(t *testing.T) {
		result, err := s.games.Add(ctx, &service.GameCreationRequest{Name: "Puzzle Box", Key: "pbox"})
		require.Nil(t, err)
		assert.Equal(t, "pbox", result.Key)
		assert.Empty(t, result.Genres)
		assert.Empty(t, result.Platforms)
	})

	t.Run("duplicate key fails and leaves no rows", func(t *testing.T) {
		_, err := s.games.Add(ctx, &service.GameCreationRequest{Name: "Another", Key: "super-strategy"})
		assert.NotNil(t, err)

		games, err := s.games.GetAll(ctx)
		require.Nil(t, err)
		for _, g := range games {
			assert.NotEqual(t, "Another", g.Name)
		}
	})

	t.Run("unknown genre fails at commit", func(t *testing.T) {
		_, err := s.games.Add(ctx, &service.GameCreationRequest{Name: "Ghost", GenreIDs: []uuid.UUID{uuid.New()}})
		assert.NotNil(t, err)

		found, err := s.games.GetByKey(ctx, "ghost")
		require.Nil(t, err)
		assert.Nil(t, found)
	})
}

func TestGameService_Update(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	created, err := s.games.Add(ctx, &service.GameCreationRequest{
		Name:        "Rebrand Me",
		GenreIDs:    []uuid.UUID{infra.RTSGenreID},
		PlatformIDs: []uuid.UUID{infra.MobilePlatformID, infra.BrowserPlatformID},
	})
	require.Nil(t, err)

	t.Run("nil request", func(t *testing.T) {
		_, err := s.games.Update(ctx, nil)
		assert.ErrorIs(t, err, service.ErrNilRequest)
	})

	t.Run("absent game", func(t *testing.T) {
		ok, err := s.games.Update(ctx, &service.GameUpdateRequest{ID: uuid.New(), Name: "Nobody"})
		assert.False(t, ok)
		assert.ErrorIs(t, err, service.ErrGameNotFound)
	})

	t.Run("replaces fields and associations", func(t *testing.T) {
		request := &service.GameUpdateRequest{
			ID:          created.ID,
			Name:        "Rebranded Game",
			Description: "now with more genres",
			GenreIDs:    []uuid.UUID{infra.TBSGenreID, infra.ActionGenreID},
			PlatformIDs: []uuid.UUID{infra.ConsolePlatformID},
		}
		ok, err := s.games.Update(ctx, request)
		require.Nil(t, err)
		assert.True(t, ok)

		found, err := s.games.GetByID(ctx, created.ID)
		require.Nil(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "rebranded_game", found.Key)
		assert.Equal(t, "now with more genres", found.Description)
		assert.ElementsMatch(t, []string{"TBS", "Action"}, found.Genres)
		assert.Equal(t, []string{"Console"}, found.Platforms)

		// same request again leaves the same state
		ok, err = s.games.Update(ctx, request)
		require.Nil(t, err)
		assert.True(t, ok)
		again, err := s.games.GetByID(ctx, created.ID)
		require.Nil(t, err)
		assert.ElementsMatch(t, found.Genres, again.Genres)
		assert.ElementsMatch(t, found.Platforms, again.Platforms)

		byRTS, err := s.games.GetByGenre(ctx, infra.RTSGenreID)
		require.Nil(t, err)
		assert.NotContains(t, resultIDs(byRTS), created.ID)
		byMobile, err := s.games.GetByPlatform(ctx, infra.MobilePlatformID)
		require.Nil(t, err)
		assert.NotContains(t, resultIDs(byMobile), created.ID)
		byConsole, err := s.games.GetByPlatform(ctx, infra.ConsolePlatformID)
		require.Nil(t, err)
		assert.Contains(t, resultIDs(byConsole), created.ID)
	})

	t.Run("clears associations", func(t *testing.T) {
		ok, err := s.games.Update(ctx, &service.GameUpdateRequest{ID: created.ID, Name: "Bare", Key: "bare"})
		require.Nil(t, err)
		assert.True(t, ok)

		found, err := s.games.GetByKey(ctx, "bare")
		require.Nil(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found.Genres)
		assert.Empty(t, found.Platforms)
	})
}

func TestGameService_Delete(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	t.Run("absent game", func(t *testing.T) {
		ok, err := s.games.Delete(ctx, uuid.New())
		require.Nil(t, err)
		assert.False(t, ok)
	})

	t.Run("existing game", func(t *testing.T) {
		ok, err := s.games.Delete(ctx, infra.ArcadeShooterGameID)
		require.Nil(t, err)
		assert.True(t, ok)

		found, err := s.games.GetByID(ctx, infra.ArcadeShooterGameID)
		require.Nil(t, err)
		assert.Nil(t, found)

		byFPS, err := s.games.GetByGenre(ctx, infra.FPSGenreID)
		require.Nil(t, err)
		assert.Empty(t, byFPS)
		byConsole, err := s.games.GetByPlatform(ctx, infra.ConsolePlatformID)
		require.Nil(t, err)
		assert.Empty(t, byConsole)
	})
}

func TestGameService_Reads(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	t.Run("get all", func(t *testing.T) {
		games, err := s.games.GetAll(ctx)
		require.Nil(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "Arcade Shooter", games[0].Name)
		assert.Equal(t, []string{"FPS"}, games[0].Genres)
		assert.Equal(t, []string{"Console"}, games[0].Platforms)
	})

	t.Run("get by key", func(t *testing.T) {
		game, err := s.games.GetByKey(ctx, "super-strategy")
		require.Nil(t, err)
		require.NotNil(t, game)
		assert.Equal(t, infra.SuperStrategyGameID, game.ID)
		assert.Equal(t, []string{"Strategy"}, game.Genres)

		missing, err := s.games.GetByKey(ctx, "missing")
		require.Nil(t, err)
		assert.Nil(t, missing)
	})

	t.Run("filter by genre", func(t *testing.T) {
		games, err := s.games.GetByGenre(ctx, infra.StrategyGenreID)
		require.Nil(t, err)
		assert.Equal(t, []uuid.UUID{infra.SuperStrategyGameID}, resultIDs(games))

		none, err := s.games.GetByGenre(ctx, infra.RPGGenreID)
		require.Nil(t, err)
		assert.Empty(t, none)
	})

	t.Run("file export is not supported", func(t *testing.T) {
		_, err := s.games.GenerateGameFile(ctx, "super-strategy")
		assert.ErrorIs(t, err, service.ErrNotSupported)
	})
}
