package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
	"conpro/internal/storage"
)

type PortfolioServiceImpl struct {
	repo             repository.PortfolioRepository
	professionalRepo repository.ProfessionalRepository
	categoryRepo     repository.CategoryRepository
	fileStorage      storage.FileStorage
	logger           *zap.Logger
}

func NewPortfolioService(
	repo repository.PortfolioRepository,
	professionalRepo repository.ProfessionalRepository,
	categoryRepo repository.CategoryRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		categoryRepo:     categoryRepo,
		fileStorage:      fileStorage,
		logger:           logger,
	}
}

func (s *PortfolioServiceImpl) Create(ctx context.Context, professionalID int64, dto domain.CreateProjectDTO) (int64, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return 0, err
	}

	completedOn, err := parseDate(dto.CompletedOn)
	if err != nil {
		return 0, domain.NewValidationError("недопустимая дата выполнения проекта: " + dto.CompletedOn)
	}
	if completedOn.After(time.Now()) {
		return 0, domain.NewValidationError("дата выполнения проекта не может быть в будущем")
	}

	exists, err := s.categoryRepo.Exists(ctx, dto.CategoryID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrCategoryNotFound
	}

	count, err := s.repo.CountActiveProjects(ctx, professionalID)
	if err != nil {
		return 0, err
	}
	if count >= domain.MaxPortfolioProjects {
		return 0, domain.NewValidationError(fmt.Sprintf("в портфолио не может быть больше %d проектов", domain.MaxPortfolioProjects))
	}

	project := domain.PortfolioProject{
		ProfessionalID: professionalID,
		ProjectName:    dto.ProjectName,
		CompletedOn:    completedOn,
		Description:    dto.Description,
		CategoryID:     dto.CategoryID,
		RequestID:      dto.RequestID,
		SortOrder:      count + 1,
	}

	id, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error("ошибка создания проекта портфолио", zap.Int64("professionalId", professionalID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("создан проект портфолио", zap.Int64("id", id), zap.Int64("professionalId", professionalID))

	return id, nil
}

func (s *PortfolioServiceImpl) GetByID(ctx context.Context, projectID int64) (*domain.PortfolioProject, error) {
	return s.repo.GetByID(ctx, projectID)
}

func (s *PortfolioServiceImpl) List(ctx context.Context, professionalID int64) ([]domain.PortfolioProject, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.repo.ListByProfessional(ctx, professionalID)
}

// Update применяет только переданные поля. Оценку и комментарий клиента
// профессионал изменить не может.
func (s *PortfolioServiceImpl) Update(ctx context.Context, professionalID, projectID int64, dto domain.UpdateProjectDTO) error {
	project, err := s.ownedProject(ctx, professionalID, projectID)
	if err != nil {
		return err
	}

	if dto.ProjectName != nil {
		if *dto.ProjectName == "" {
			return domain.NewValidationError("название проекта не может быть пустым")
		}
		project.ProjectName = *dto.ProjectName
	}
	if dto.CompletedOn != nil {
		completedOn, err := parseDate(*dto.CompletedOn)
		if err != nil {
			return domain.NewValidationError("недопустимая дата выполнения проекта: " + *dto.CompletedOn)
		}
		project.CompletedOn = completedOn
	}
	if dto.Description != nil {
		project.Description = *dto.Description
	}
	if dto.CategoryID != nil {
		exists, err := s.categoryRepo.Exists(ctx, *dto.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCategoryNotFound
		}
		project.CategoryID = *dto.CategoryID
	}
	if dto.SortOrder != nil {
		project.SortOrder = *dto.SortOrder
	}

	if err := s.repo.Update(ctx, *project); err != nil {
		s.logger.Error("ошибка обновления проекта портфолио", zap.Int64("projectId", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (s *PortfolioServiceImpl) Delete(ctx context.Context, professionalID, projectID int64) error {
	if _, err := s.ownedProject(ctx, professionalID, projectID); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, professionalID, projectID); err != nil {
		s.logger.Error("ошибка удаления проекта портфолио", zap.Int64("projectId", projectID), zap.Error(err))
		return err
	}

	s.logger.Info("проект портфолио удален", zap.Int64("projectId", projectID))

	return nil
}

func (s *PortfolioServiceImpl) UploadImage(ctx context.Context, professionalID, projectID int64, image []byte, filename string, dto domain.AddProjectImageDTO) (*domain.ProjectImage, error) {
	if s.fileStorage == nil {
		return nil, errors.New("файловое хранилище не настроено")
	}

	if _, err := s.ownedProject(ctx, professionalID, projectID); err != nil {
		return nil, err
	}

	imageType := domain.ProjectImageType(dto.ImageType)
	if dto.ImageType == "" {
		imageType = domain.ImageTypeGeneral
	}
	if !imageType.IsValid() {
		return nil, domain.NewValidationError("недопустимый тип изображения: " + dto.ImageType)
	}

	count, err := s.repo.CountImages(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxProjectImages {
		return nil, domain.NewValidationError(fmt.Sprintf("у проекта не может быть больше %d изображений", domain.MaxProjectImages))
	}

	url, err := s.fileStorage.UploadFile(ctx, image, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки изображения проекта", zap.Int64("projectId", projectID), zap.Error(err))
		return nil, err
	}

	projectImage := domain.ProjectImage{
		ProjectID: projectID,
		URL:       url,
		ImageType: imageType,
		Caption:   dto.Caption,
		SortOrder: count + 1,
	}

	id, err := s.repo.AddImage(ctx, projectImage)
	if err != nil {
		// Файл уже в хранилище, а строки в базе не будет.
		if deleteErr := s.fileStorage.DeleteFile(ctx, url); deleteErr != nil {
			s.logger.Warn("ошибка удаления осиротевшего файла", zap.String("url", url), zap.Error(deleteErr))
		}
		s.logger.Error("ошибка сохранения изображения проекта", zap.Int64("projectId", projectID), zap.Error(err))
		return nil, err
	}
	projectImage.ID = id

	return &projectImage, nil
}

func (s *PortfolioServiceImpl) DeleteImage(ctx context.Context, professionalID, projectID, imageID int64) error {
	if s.fileStorage == nil {
		return errors.New("файловое хранилище не настроено")
	}

	if _, err := s.ownedProject(ctx, professionalID, projectID); err != nil {
		return err
	}

	images, err := s.repo.ListImages(ctx, projectID)
	if err != nil {
		return err
	}

	var target *domain.ProjectImage
	for i := range images {
		if images[i].ID == imageID {
			target = &images[i]
			break
		}
	}
	if target == nil {
		return domain.ErrProjectImageNotFound
	}

	if err := s.fileStorage.DeleteFile(ctx, target.URL); err != nil {
		s.logger.Warn("ошибка удаления изображения из хранилища", zap.String("url", target.URL), zap.Error(err))
	}

	if err := s.repo.DeleteImage(ctx, projectID, imageID); err != nil {
		s.logger.Error("ошибка удаления изображения проекта", zap.Int64("imageId", imageID), zap.Error(err))
		return err
	}

	return nil
}

// ownedProject возвращает активный проект, принадлежащий профессионалу.
func (s *PortfolioServiceImpl) ownedProject(ctx context.Context, professionalID, projectID int64) (*domain.PortfolioProject, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ProfessionalID != professionalID || !project.IsActive {
		return nil, domain.ErrProjectNotFound
	}

	return project, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
