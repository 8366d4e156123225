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

type PlatformService struct {
	unitOfWorks domain.UnitOfWorkFactory
}

func NewPlatformService(unitOfWorks domain.UnitOfWorkFactory) *PlatformService {
	return &PlatformService{unitOfWorks: unitOfWorks}
}

func (s *PlatformService) Create(ctx context.Context, request *PlatformCreationRequest) (PlatformResult, error) {
	if request == nil {
		return PlatformResult{}, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return PlatformResult{}, err
	}
	platform := domain.Platform{ID: uuid.New(), Type: request.Type}
	unitOfWork := s.unitOfWorks.New()
	if err := unitOfWork.Platforms().Add(ctx, &platform); err != nil {
		return PlatformResult{}, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return PlatformResult{}, err
	}
	logrus.Infof("PlatformService.Create: platform [%s] %s created", platform.ID, platform.Type)
	return toPlatformResult(platform), nil
}

func (s *PlatformService) Update(ctx context.Context, request *PlatformUpdateRequest) (bool, error) {
	if request == nil {
		return false, ErrNilRequest
	}
	if err := validateRequest(request); err != nil {
		return false, err
	}
	unitOfWork := s.unitOfWorks.New()
	platform, err := unitOfWork.Platforms().FindByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, nil
		}
		return false, fmt.Errorf("PlatformService.Update: %w", err)
	}
	platform.Type = request.Type
	if err := unitOfWork.Platforms().Update(ctx, &platform); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PlatformService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	unitOfWork := s.unitOfWorks.New()
	platform, err := unitOfWork.Platforms().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return false, nil
		}
		return false, fmt.Errorf("PlatformService.Delete: %w", err)
	}
	if err := unitOfWork.Platforms().Delete(ctx, &platform); err != nil {
		return false, err
	}
	if _, err := unitOfWork.Commit(ctx); err != nil {
		return false, err
	}
	logrus.Infof("PlatformService.Delete: platform [%s] deleted", id)
	return true, nil
}

func (s *PlatformService) GetAll(ctx context.Context) ([]PlatformResult, error) {
	platforms, err := s.unitOfWorks.New().Platforms().GetAll(ctx).Order("type").Find()
	if err != nil {
		return nil, fmt.Errorf("PlatformService.GetAll: %w", err)
	}
	return toPlatformResults(platforms), nil
}

func (s *PlatformService) GetByID(ctx context.Context, id uuid.UUID) (*PlatformResult, error) {
	platform, err := s.unitOfWorks.New().Platforms().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return nil, nil
		}
		return nil, fmt.Errorf("PlatformService.GetByID: %w", err)
	}
	result := toPlatformResult(platform)
	return &result, nil
}

func (s *PlatformService) GetByGameKey(ctx context.Context, gameKey string) ([]PlatformResult, error) {
	platforms, err := s.unitOfWorks.New().Platforms().GetByGameKey(ctx, gameKey)
	if err != nil {
		return nil, fmt.Errorf("PlatformService.GetByGameKey: %w", err)
	}
	return toPlatformResults(platforms), nil
}

// GetPlatformIDsByGameNames returns the ids of the platforms whose type is in names.
func (s *PlatformService) GetPlatformIDsByGameNames(ctx context.Context, names []string) ([]uuid.UUID, error) {
	platforms, err := s.unitOfWorks.New().Platforms().GetAll(ctx).Find()
	if err != nil {
		return nil, fmt.Errorf("PlatformService.GetPlatformIDsByGameNames: %w", err)
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	ids := []uuid.UUID{}
	for _, platform := range platforms {
		if _, ok := wanted[platform.Type]; ok {
			ids = append(ids, platform.ID)
		}
	}
	return ids, nil
}
