package infra

import (
	"context"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"gorm.io/gorm/clause"
)

type GenreRepository struct {
	*data.GormRepository[domain.Genre, uuid.UUID]
}

func NewGenreRepository(repository *data.GormRepository[domain.Genre, uuid.UUID]) *GenreRepository {
	return &GenreRepository{GormRepository: repository}
}

// FindByID resolves the parent genre as well.
func (g *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Genre, error) {
	return g.FindOne(g.DB(ctx).Preload("ParentGenre"), id)
}

func (g *GenreRepository) GetByParentID(ctx context.Context, parentID uuid.UUID) ([]domain.Genre, error) {
	genres := []domain.Genre{}
	if err := g.DB(ctx).Where("parent_genre_id = ?", parentID).Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// GetByGameKey returns the genres linked to the game with gameKey. An unknown
// key yields an empty slice.
func (g *GenreRepository) GetByGameKey(ctx context.Context, gameKey string) ([]domain.Genre, error) {
	genres := []domain.Genre{}
	err := g.DB(ctx).
		Joins("JOIN game_genres ON game_genres.genre_id = genres.id").
		Joins("JOIN games ON games.id = game_genres.game_id").
		Where(clause.Eq{Column: clause.Column{Table: "games", Name: "key"}, Value: gameKey}).
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}
