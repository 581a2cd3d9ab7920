package service

import (
	"context"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
)

type RequestServiceImpl struct {
	repo             repository.RequestRepository
	professionalRepo repository.ProfessionalRepository
	logger           *zap.Logger
}

func NewRequestService(
	repo repository.RequestRepository,
	professionalRepo repository.ProfessionalRepository,
	logger *zap.Logger,
) *RequestServiceImpl {
	return &RequestServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

func (s *RequestServiceImpl) Create(ctx context.Context, clientID int64, dto domain.CreateRequestDTO) (int64, error) {
	professional, err := s.professionalRepo.GetByID(ctx, dto.ProfessionalID)
	if err != nil {
		return 0, err
	}

	if professional.UserID == clientID {
		return 0, domain.NewValidationError("нельзя создать заявку самому себе")
	}

	if dto.SpecialtyID != nil {
		found := false
		for _, specialty := range professional.Specialties {
			if specialty.ID == *dto.SpecialtyID {
				found = true
				break
			}
		}
		if !found {
			return 0, domain.ErrSpecialtyNotFound
		}
	}

	id, err := s.repo.Create(ctx, clientID, dto)
	if err != nil {
		s.logger.Error("ошибка создания заявки",
			zap.Int64("clientId", clientID),
			zap.Int64("professionalId", dto.ProfessionalID),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("создана заявка на услугу", zap.Int64("id", id), zap.Int64("clientId", clientID))

	return id, nil
}

func (s *RequestServiceImpl) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RequestServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("недопустимый статус заявки")
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !request.Status.CanTransitionTo(status) {
		return domain.NewValidationError("недопустимый переход статуса: " + string(request.Status) + " -> " + string(status))
	}

	err = s.repo.Update(ctx, id, domain.UpdateRequestDTO{Status: &status})
	if err != nil {
		s.logger.Error("ошибка обновления статуса заявки", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *RequestServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateRequestDTO) error {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Status != nil && !request.Status.CanTransitionTo(*dto.Status) {
		return domain.NewValidationError("недопустимый переход статуса: " + string(request.Status) + " -> " + string(*dto.Status))
	}

	if (dto.Description != nil || dto.PreferredDate != nil) && request.Status != domain.RequestStatusPending {
		return domain.NewValidationError("изменять заявку можно только в статусе pending")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления заявки", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *RequestServiceImpl) Cancel(ctx context.Context, id int64) error {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !request.Status.CanTransitionTo(domain.RequestStatusCancelled) {
		return domain.NewValidationError("заявку в статусе " + string(request.Status) + " нельзя отменить")
	}

	err = s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка отмены заявки", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *RequestServiceImpl) List(ctx context.Context, filter domain.RequestFilter) ([]domain.ServiceRequest, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения заявок", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчета заявок", zap.Error(err))
		return nil, 0, err
	}

	return requests, total, nil
}
