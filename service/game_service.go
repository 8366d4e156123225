package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
)

type GameService struct {
	unitOfWorks domain.UnitOfWorkFactory
}

func NewGameService(unitOfWorks domain.UnitOfWorkFactory) *GameService {
	return &GameService{unitOfWorks: unitOfWorks}
}

// gameKey returns key when set, otherwise the slug of name.
func gameKey(key, name string) (string, error) {
	if k := strings.TrimSpace(key); k != "" {
		return k, nil
	}
	if slug := Slugify(name); slug != "" {
		return slug, nil
	}
	return "", newValidationError("Key", "required")
}

func gameGenres(gameID uuid.UUID, ids []uuid.UUID) []domain.GameGenre {
	rows := make([]domain.GameGenre, 0, len(ids))
	for _, id := range distinct(ids) {
		rows = append(rows, domain.GameGenre{GameID: gameID, GenreID: id})
	}
	return rows
}

func gamePlatforms(gameID uuid.UUID, ids []uuid.UUID) []domain.GamePlatform {
	rows := make([]domain.GamePlatform, 0, len(ids))
	for _, id := range distinct(ids) {
		rows = append(rows, domain.GamePlatform{GameID: gameID, PlatformID: id})
	}
	return rows
}

// Add creates a game with its genre and platform links in one commit.
// Linked ids are not checked up front; an unknown id fails the commit.
func (s *GameService) Add(ctx context.Context, request *GameCreationRequest) (GameResult, error) {
	if request == nil {
		return GameResult{}, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return GameResult{}, err
	}
	key, err := gameKey(request.Key, request.Name)
	if err != nil {
		return GameResult{}, err
	}

	id := uuid.New()
	game := domain.Game{
		ID:            id,
		Name:          request.Name,
		Key:           key,
		Description:   request.Description,
		GameGenres:    gameGenres(id, request.GenreIDs),
		GamePlatforms: gamePlatforms(id, request.PlatformIDs),
	}
	unitOfWork := s.unitOfWorks.New()
	if err := unitOfWork.Games().Add(ctx, &game); err != nil {
		return GameResult{}, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return GameResult{}, err
	}
	logrus.Infof("GameService.Add: game [%s] key [%s] created", game.ID, game.Key)

	created, err := s.unitOfWorks.New().Games().GetFullByID(ctx, id)
	if err != nil {
		return GameResult{}, fmt.Errorf("GameService.Add: reload %s: %w", id, err)
	}
	return toGameResult(created), nil
}

// Update overwrites the game's fields and replaces both association sets.
func (s *GameService) Update(ctx context.Context, request *GameUpdateRequest) (bool, error) {
	if request == nil {
		return false, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return false, err
	}
	key, err := gameKey(request.Key, request.Name)
	if err != nil {
		return false, err
	}

	unitOfWork := s.unitOfWorks.New()
	game, err := unitOfWork.Games().GetFullByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, fmt.Errorf("%w: %s", ErrGameNotFound, request.ID)
		}
		return false, fmt.Errorf("GameService.Update: %w", err)
	}

	game.Name = request.Name
	game.Description = request.Description
	game.Key = key
	game.GameGenres = gameGenres(game.ID, request.GenreIDs)
	game.GamePlatforms = gamePlatforms(game.ID, request.PlatformIDs)
	if err := unitOfWork.Games().Update(ctx, &game); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	logrus.Infof("GameService.Update: game [%s] updated", game.ID)
	return true, nil
}

// Delete removes the game together with its genre and platform links.
func (s *GameService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	unitOfWork := s.unitOfWorks.New()
	game, err := unitOfWork.Games().GetFullByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, nil
		}
		return false, fmt.Errorf("GameService.Delete: %w", err)
	}
	if err := unitOfWork.Games().Delete(ctx, &game); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	logrus.Infof("GameService.Delete: game [%s] deleted", id)
	return true, nil
}

func (s *GameService) GetAll(ctx context.Context) ([]GameResult, error) {
	games, err := s.unitOfWorks.New().Games().GetAll(ctx).Order("name").Find()
	if err != nil {
		return nil, fmt.Errorf("GameService.GetAll: %w", err)
	}
	return toGameResults(games), nil
}

// GetByID returns nil when no game has id.
func (s *GameService) GetByID(ctx context.Context, id uuid.UUID) (*GameResult, error) {
	game, err := s.unitOfWorks.New().Games().GetFullByID(ctx, id)
	return singleGame(game, err)
}

// GetByKey returns nil when no game has key.
func (s *GameService) GetByKey(ctx context.Context, key string) (*GameResult, error) {
	game, err := s.unitOfWorks.New().Games().GetByKey(ctx, key)
	return singleGame(game, err)
}

func singleGame(game domain.Game, err error) (*GameResult, error) {
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return nil, nil
		}
		return nil, fmt.Errorf("GameService: %w", err)
	}
	result := toGameResult(game)
	return &result, nil
}

func (s *GameService) GetByGenre(ctx context.Context, genreID uuid.UUID) ([]GameResult, error) {
	games, err := s.unitOfWorks.New().Games().GetByGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("GameService.GetByGenre: %w", err)
	}
	return toGameResults(games), nil
}

func (s *GameService) GetByPlatform(ctx context.Context, platformID uuid.UUID) ([]GameResult, error) {
	games, err := s.unitOfWorks.New().Games().GetByPlatform(ctx, platformID)
	if err != nil {
		return nil, fmt.Errorf("GameService.GetByPlatform: %w", err)
	}
	return toGameResults(games), nil
}

// GenerateGameFile would export a game by key. No export format exists yet.
func (s *GameService) GenerateGameFile(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrNotSupported
}
