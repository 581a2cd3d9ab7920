package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
	"conpro/internal/storage"
)

type ProfessionalServiceImpl struct {
	repo        repository.ProfessionalRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewProfessionalService(
	repo repository.ProfessionalRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ProfessionalServiceImpl {
	return &ProfessionalServiceImpl{
		repo:        repo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *ProfessionalServiceImpl) Create(ctx context.Context, userID int64, dto domain.CreateProfessionalDTO) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	if user.Role != domain.UserRoleProfessional {
		return 0, domain.NewValidationError("профиль профессионала доступен только пользователям с ролью professional")
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		return 0, domain.NewValidationError("профиль профессионала уже существует")
	}

	id, err := s.repo.Create(ctx, userID, dto)
	if err != nil {
		s.logger.Error("ошибка создания профессионала", zap.Int64("userId", userID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("создан профиль профессионала", zap.Int64("id", id), zap.Int64("userId", userID))

	return id, nil
}

func (s *ProfessionalServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProfessionalServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ProfessionalServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления профессионала", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *ProfessionalServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления профессионала", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *ProfessionalServiceImpl) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	professionals, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка поиска профессионалов", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчета профессионалов", zap.Error(err))
		return nil, 0, err
	}

	return professionals, total, nil
}

func (s *ProfessionalServiceImpl) UploadProfilePhoto(ctx context.Context, professionalID int64, photo []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("файловое хранилище не настроено")
	}

	professional, err := s.repo.GetByID(ctx, professionalID)
	if err != nil {
		return "", err
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки фотографии", zap.Int64("professionalId", professionalID), zap.Error(err))
		return "", err
	}

	if professional.ProfilePhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, professional.ProfilePhotoURL); err != nil {
			s.logger.Warn("ошибка удаления старой фотографии", zap.Error(err))
		}
	}

	err = s.repo.UpdateProfilePhoto(ctx, professionalID, url)
	if err != nil {
		s.logger.Error("ошибка сохранения URL фотографии", zap.Int64("professionalId", professionalID), zap.Error(err))
		return "", err
	}

	return url, nil
}

func (s *ProfessionalServiceImpl) DeleteProfilePhoto(ctx context.Context, professionalID int64) error {
	if s.fileStorage == nil {
		return errors.New("файловое хранилище не настроено")
	}

	professional, err := s.repo.GetByID(ctx, professionalID)
	if err != nil {
		return err
	}

	if professional.ProfilePhotoURL == "" {
		return nil
	}

	if err := s.fileStorage.DeleteFile(ctx, professional.ProfilePhotoURL); err != nil {
		s.logger.Warn("ошибка удаления фотографии из хранилища", zap.Error(err))
	}

	return s.repo.UpdateProfilePhoto(ctx, professionalID, "")
}
