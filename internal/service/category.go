package service

import (
	"context"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
)

type CategoryServiceImpl struct {
	repo   repository.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания категории", zap.String("name", dto.Name), zap.Error(err))
		return 0, err
	}

	s.logger.Info("создана категория услуг", zap.Int64("id", id), zap.String("name", dto.Name))

	return id, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления категории", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *CategoryServiceImpl) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.repo.Deactivate(ctx, id)
	if err != nil {
		s.logger.Error("ошибка деактивации категории", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, onlyActive bool) ([]domain.ServiceCategory, error) {
	return s.repo.List(ctx, onlyActive)
}
