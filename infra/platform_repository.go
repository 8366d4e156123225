package infra

import (
	"context"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"gorm.io/gorm/clause"
)

type PlatformRepository struct {
	*data.GormRepository[domain.Platform, uuid.UUID]
}

func NewPlatformRepository(repository *data.GormRepository[domain.Platform, uuid.UUID]) *PlatformRepository {
	return &PlatformRepository{GormRepository: repository}
}

func (p *PlatformRepository) GetByGameKey(ctx context.Context, gameKey string) ([]domain.Platform, error) {
	platforms := []domain.Platform{}
	err := p.DB(ctx).
		Joins("JOIN game_platforms ON game_platforms.platform_id = platforms.id").
		Joins("JOIN games ON games.id = game_platforms.game_id").
		Where(clause.Eq{Column: clause.Column{Table: "games", Name: "key"}, Value: gameKey}).
		Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}
