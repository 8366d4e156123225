package infra

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
)

var (
	StrategyGenreID = uuid.MustParse("aaa11111-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	RTSGenreID      = uuid.MustParse("aaa22222-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	TBSGenreID      = uuid.MustParse("aaa33333-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	RPGGenreID      = uuid.MustParse("bbb11111-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	ActionGenreID   = uuid.MustParse("ccc11111-cccc-cccc-cccc-cccccccccccc")
	FPSGenreID      = uuid.MustParse("ccc22222-cccc-cccc-cccc-cccccccccccc")

	MobilePlatformID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	BrowserPlatformID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	DesktopPlatformID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ConsolePlatformID = uuid.MustParse("44444444-4444-4444-4444-444444444444")

	SuperStrategyGameID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
	ArcadeShooterGameID = uuid.MustParse("88888888-8888-8888-8888-888888888888")
)

func seedGenres() []domain.Genre {
	return []domain.Genre{
		{ID: StrategyGenreID, Name: "Strategy"},
		{ID: RTSGenreID, Name: "RTS", ParentGenreID: &StrategyGenreID},
		{ID: TBSGenreID, Name: "TBS", ParentGenreID: &StrategyGenreID},
		{ID: RPGGenreID, Name: "RPG"},
		{ID: ActionGenreID, Name: "Action"},
		{ID: FPSGenreID, Name: "FPS", ParentGenreID: &ActionGenreID},
	}
}

func seedPlatforms() []domain.Platform {
	return []domain.Platform{
		{ID: MobilePlatformID, Type: "Mobile"},
		{ID: BrowserPlatformID, Type: "Browser"},
		{ID: DesktopPlatformID, Type: "Desktop"},
		{ID: ConsolePlatformID, Type: "Console"},
	}
}

func seedGames() []domain.Game {
	return []domain.Game{
		{
			ID:            SuperStrategyGameID,
			Name:          "Super Strategy Game",
			Key:           "super-strategy",
			Description:   "A deep and challenging strategy game.",
			GameGenres:    []domain.GameGenre{{GenreID: StrategyGenreID}},
			GamePlatforms: []domain.GamePlatform{{PlatformID: DesktopPlatformID}},
		},
		{
			ID:            ArcadeShooterGameID,
			Name:          "Arcade Shooter",
			Key:           "arcade-shooter",
			Description:   "Fast-paced arcade FPS experience.",
			GameGenres:    []domain.GameGenre{{GenreID: FPSGenreID}},
			GamePlatforms: []domain.GamePlatform{{PlatformID: ConsolePlatformID}},
		},
	}
}

// Seed stages the catalog's reference rows that are not present yet and
// commits them in one unit of work.
func Seed(ctx context.Context, unitOfWork domain.UnitOfWork) (int64, error) {
	for _, genre := range seedGenres() {
		genre := genre
		if _, err := unitOfWork.Genres().FindByID(ctx, genre.ID); errors.Is(err, data.NotFoundError) {
			if err := unitOfWork.Genres().Add(ctx, &genre); err != nil {
				return 0, err
			}
		} else if err != nil {
			return 0, err
		}
	}
	for _, platform := range seedPlatforms() {
		platform := platform
		if _, err := unitOfWork.Platforms().FindByID(ctx, platform.ID); errors.Is(err, data.NotFoundError) {
			if err := unitOfWork.Platforms().Add(ctx, &platform); err != nil {
				return 0, err
			}
		} else if err != nil {
			return 0, err
		}
	}
	for _, game := range seedGames() {
		game := game
		if _, err := unitOfWork.Games().FindByID(ctx, game.ID); errors.Is(err, data.NotFoundError) {
			if err := unitOfWork.Games().Add(ctx, &game); err != nil {
				return 0, err
			}
		} else if err != nil {
			return 0, err
		}
	}
	affected, err := unitOfWork.Commit(ctx)
	if err != nil {
		return 0, err
	}
	logrus.Infof("Seed: %d rows inserted", affected)
	return affected, nil
}
