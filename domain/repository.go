package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
)

// GameRepository adds association-aware queries. Every query returns games
// with GameGenres.Genre and GamePlatforms.Platform resolved.
type GameRepository interface {
	data.Repository[Game, uuid.UUID]
	GetByKey(ctx context.Context, key string) (Game, error)
	GetByGenre(ctx context.Context, genreID uuid.UUID) ([]Game, error)
	GetByPlatform(ctx context.Context, platformID uuid.UUID) ([]Game, error)
	GetFullByID(ctx context.Context, id uuid.UUID) (Game, error)
}

// GenreRepository resolves ParentGenre on FindByID.
type GenreRepository interface {
	data.Repository[Genre, uuid.UUID]
	GetByParentID(ctx context.Context, parentID uuid.UUID) ([]Genre, error)
	GetByGameKey(ctx context.Context, gameKey string) ([]Genre, error)
}

type PlatformRepository interface {
	data.Repository[Platform, uuid.UUID]
	GetByGameKey(ctx context.Context, gameKey string) ([]Platform, error)
}

// UnitOfWork groups the three repositories over one pending change set.
// Nothing staged through them is visible until Commit succeeds.
type UnitOfWork interface {
	Games() GameRepository
	Genres() GenreRepository
	Platforms() PlatformRepository
	Commit(ctx context.Context) (int64, error)
}

// UnitOfWorkFactory hands out a fresh UnitOfWork per operation.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
