package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
)

type GenreService struct {
	unitOfWorks domain.UnitOfWorkFactory
}

func NewGenreService(unitOfWorks domain.UnitOfWorkFactory) *GenreService {
	return &GenreService{unitOfWorks: unitOfWorks}
}

// Add creates a genre and returns its id. An unknown parent fails the commit.
func (s *GenreService) Add(ctx context.Context, request *GenreCreationRequest) (uuid.UUID, error) {
	if request == nil {
		return uuid.Nil, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return uuid.Nil, err
	}
	genre := domain.Genre{
		ID:            uuid.New(),
		Name:          request.Name,
		ParentGenreID: request.ParentGenreID,
	}
	unitOfWork := s.unitOfWorks.New()
	if err := unitOfWork.Genres().Add(ctx, &genre); err != nil {
		return uuid.Nil, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	logrus.Infof("GenreService.Add: genre [%s] %s created", genre.ID, genre.Name)
	return genre.ID, nil
}

// Update returns false without error when the genre does not exist.
func (s *GenreService) Update(ctx context.Context, request *GenreUpdateRequest) (bool, error) {
	if request == nil {
		return false, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return false, err
	}
	if request.ParentGenreID != nil && *request.ParentGenreID == request.ID {
		return false, newValidationError("ParentGenreID", "ne=ID")
	}

	unitOfWork := s.unitOfWorks.New()
	genre, err := unitOfWork.Genres().FindByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, nil
		}
		return false, fmt.Errorf("GenreService.Update: %w", err)
	}
	genre.Name = request.Name
	genre.ParentGenreID = request.ParentGenreID
	genre.ParentGenre = nil
	if err := unitOfWork.Genres().Update(ctx, &genre); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	logrus.Infof("GenreService.Update: genre [%s] updated", genre.ID)
	return true, nil
}

// Delete removes the genre and its game links. A genre that still has
// sub-genres fails the commit.
func (s *GenreService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	unitOfWork := s.unitOfWorks.New()
	genre, err := unitOfWork.Genres().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, nil
		}
		return false, fmt.Errorf("GenreService.Delete: %w", err)
	}
	if err := unitOfWork.Genres().Delete(ctx, &genre); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	logrus.Infof("GenreService.Delete: genre [%s] deleted", id)
	return true, nil
}

func (s *GenreService) GetAll(ctx context.Context) ([]GenreResult, error) {
	genres, err := s.unitOfWorks.New().Genres().GetAll(ctx).Preload("ParentGenre").Order("name").Find()
	if err != nil {
		return nil, fmt.Errorf("GenreService.GetAll: %w", err)
	}
	return toGenreResults(genres), nil
}

func (s *GenreService) GetByID(ctx context.Context, id uuid.UUID) (*GenreResult, error) {
	genre, err := s.unitOfWorks.New().Genres().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return nil, nil
		}
		return nil, fmt.Errorf("GenreService.GetByID: %w", err)
	}
	result := toGenreResult(genre)
	return &result, nil
}

// GetForUpdate returns the current values of a genre as an update request,
// or nil when it does not exist.
func (s *GenreService) GetForUpdate(ctx context.Context, id uuid.UUID) (*GenreUpdateRequest, error) {
	genre, err := s.unitOfWorks.New().Genres().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return nil, nil
		}
		return nil, fmt.Errorf("GenreService.GetForUpdate: %w", err)
	}
	return &GenreUpdateRequest{ID: genre.ID, Name: genre.Name, ParentGenreID: genre.ParentGenreID}, nil
}

func (s *GenreService) GetByParentID(ctx context.Context, parentID uuid.UUID) ([]GenreResult, error) {
	genres, err := s.unitOfWorks.New().Genres().GetByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("GenreService.GetByParentID: %w", err)
	}
	return toGenreResults(genres), nil
}

func (s *GenreService) GetByGameKey(ctx context.Context, gameKey string) ([]GenreResult, error) {
	genres, err := s.unitOfWorks.New().Genres().GetByGameKey(ctx, gameKey)
	if err != nil {
		return nil, fmt.Errorf("GenreService.GetByGameKey: %w", err)
	}
	return toGenreResults(genres), nil
}

// GetGenreIDsByGameNames returns the ids of the genres whose name is in names.
func (s *GenreService) GetGenreIDsByGameNames(ctx context.Context, names []string) ([]uuid.UUID, error) {
	genres, err := s.unitOfWorks.New().Genres().GetAll(ctx).Find()
	if err != nil {
		return nil, fmt.Errorf("GenreService.GetGenreIDsByGameNames: %w", err)
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	ids := []uuid.UUID{}
	for _, genre := range genres {
		if _, ok := wanted[genre.Name]; ok {
			ids = append(ids, genre.ID)
		}
	}
	return ids, nil
}
