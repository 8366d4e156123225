package infra

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	*data.GormRepository[domain.Game, uuid.UUID]
}

func NewGameRepository(repository *data.GormRepository[domain.Game, uuid.UUID]) *GameRepository {
	return &GameRepository{GormRepository: repository}
}

// Add stages the game row followed by its association rows.
func (g *GameRepository) Add(ctx context.Context, game *domain.Game) error {
	if err := g.GormRepository.Add(ctx, game); err != nil {
		return err
	}
	g.stageAssociations(*game)
	return nil
}

// Update stages the game's own columns and a wholesale replacement of both
// association sets.
func (g *GameRepository) Update(ctx context.Context, game *domain.Game) error {
	if err := g.GormRepository.Update(ctx, game); err != nil {
		return err
	}
	g.stageDetach(game.ID)
	g.stageAssociations(*game)
	return nil
}

// Delete stages removal of the association rows, then of the game itself.
func (g *GameRepository) Delete(ctx context.Context, game *domain.Game) error {
	if game == nil {
		return data.NilEntityError
	}
	g.stageDetach(game.ID)
	return g.GormRepository.Delete(ctx, game)
}

func (g *GameRepository) stageDetach(gameID uuid.UUID) {
	g.Stage("detach game_genres", func(tx *gorm.DB) (int64, error) {
		result := tx.Where("game_id = ?", gameID).Delete(&domain.GameGenre{})
		return result.RowsAffected, result.Error
	})
	g.Stage("detach game_platforms", func(tx *gorm.DB) (int64, error) {
		result := tx.Where("game_id = ?", gameID).Delete(&domain.GamePlatform{})
		return result.RowsAffected, result.Error
	})
}

func (g *GameRepository) stageAssociations(game domain.Game) {
	gameGenres := make([]domain.GameGenre, 0, len(game.GameGenres))
	for _, gg := range game.GameGenres {
		gameGenres = append(gameGenres, domain.GameGenre{GameID: game.ID, GenreID: gg.GenreID})
	}
	gamePlatforms := make([]domain.GamePlatform, 0, len(game.GamePlatforms))
	for _, gp := range game.GamePlatforms {
		gamePlatforms = append(gamePlatforms, domain.GamePlatform{GameID: game.ID, PlatformID: gp.PlatformID})
	}
	logrus.Debugf("GameRepository.stageAssociations: game [%s] genres %d platforms %d", game.ID, len(gameGenres), len(gamePlatforms))

	if len(gameGenres) > 0 {
		g.Stage("attach game_genres", func(tx *gorm.DB) (int64, error) {
			result := tx.Omit(clause.Associations).Create(&gameGenres)
			return result.RowsAffected, result.Error
		})
	}
	if len(gamePlatforms) > 0 {
		g.Stage("attach game_platforms", func(tx *gorm.DB) (int64, error) {
			result := tx.Omit(clause.Associations).Create(&gamePlatforms)
			return result.RowsAffected, result.Error
		})
	}
}

// full preloads both association sets together with the rows they point at.
func full(db *gorm.DB) *gorm.DB {
	return db.Preload("GameGenres.Genre").Preload("GamePlatforms.Platform")
}

// GetAll returns games with both association sets resolved.
func (g *GameRepository) GetAll(ctx context.Context) data.Query[domain.Game] {
	return g.GormRepository.GetAll(ctx).
		Preload("GameGenres.Genre").
		Preload("GamePlatforms.Platform")
}

func (g *GameRepository) GetByKey(ctx context.Context, key string) (domain.Game, error) {
	var game domain.Game
	err := full(g.DB(ctx)).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "key"}, Value: key}).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game, data.NotFoundError
		}
		return game, err
	}
	return game, nil
}

func (g *GameRepository) GetByGenre(ctx context.Context, genreID uuid.UUID) ([]domain.Game, error) {
	db := g.DB(ctx)
	linked := db.Model(&domain.GameGenre{}).Select("game_id").Where("genre_id = ?", genreID)
	var games []domain.Game
	if err := full(db).Where("id IN (?)", linked).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (g *GameRepository) GetByPlatform(ctx context.Context, platformID uuid.UUID) ([]domain.Game, error) {
	db := g.DB(ctx)
	linked := db.Model(&domain.GamePlatform{}).Select("game_id").Where("platform_id = ?", platformID)
	var games []domain.Game
	if err := full(db).Where("id IN (?)", linked).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (g *GameRepository) GetFullByID(ctx context.Context, id uuid.UUID) (domain.Game, error) {
	return g.FindOne(full(g.DB(ctx)), id)
}
