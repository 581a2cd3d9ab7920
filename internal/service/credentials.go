package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
	"conpro/internal/storage"
)

// CredentialsServiceImpl управляет сертификатами и социальными
// ссылками профессионала.
type CredentialsServiceImpl struct {
	certificationRepo repository.CertificationRepository
	socialLinkRepo    repository.SocialLinkRepository
	professionalRepo  repository.ProfessionalRepository
	fileStorage       storage.FileStorage
	logger            *zap.Logger
}

func NewCredentialsService(
	certificationRepo repository.CertificationRepository,
	socialLinkRepo repository.SocialLinkRepository,
	professionalRepo repository.ProfessionalRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *CredentialsServiceImpl {
	return &CredentialsServiceImpl{
		certificationRepo: certificationRepo,
		socialLinkRepo:    socialLinkRepo,
		professionalRepo:  professionalRepo,
		fileStorage:       fileStorage,
		logger:            logger,
	}
}

func (s *CredentialsServiceImpl) CreateCertification(ctx context.Context, professionalID int64, dto domain.CreateCertificationDTO) (int64, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return 0, err
	}

	issuedOn, err := parseDate(dto.IssuedOn)
	if err != nil {
		return 0, domain.NewValidationError("недопустимая дата получения сертификата: " + dto.IssuedOn)
	}

	certification := domain.Certification{
		ProfessionalID: professionalID,
		Name:           dto.Name,
		Institution:    dto.Institution,
		IssuedOn:       issuedOn,
		Description:    dto.Description,
		SortOrder:      1,
	}

	if dto.ValidUntil != nil {
		validUntil, err := parseDate(*dto.ValidUntil)
		if err != nil {
			return 0, domain.NewValidationError("недопустимая дата окончания действия: " + *dto.ValidUntil)
		}
		if validUntil.Before(issuedOn) {
			return 0, domain.NewValidationError("срок действия не может закончиться раньше даты получения")
		}
		certification.ValidUntil = &validUntil
	}

	id, err := s.certificationRepo.Create(ctx, certification)
	if err != nil {
		s.logger.Error("ошибка создания сертификата", zap.Int64("professionalId", professionalID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("создан сертификат", zap.Int64("id", id), zap.Int64("professionalId", professionalID))

	return id, nil
}

func (s *CredentialsServiceImpl) UpdateCertification(ctx context.Context, professionalID, certificationID int64, dto domain.UpdateCertificationDTO) error {
	certification, err := s.ownedCertification(ctx, professionalID, certificationID)
	if err != nil {
		return err
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return domain.NewValidationError("название сертификата не может быть пустым")
		}
		certification.Name = *dto.Name
	}
	if dto.Institution != nil {
		certification.Institution = *dto.Institution
	}
	if dto.IssuedOn != nil {
		issuedOn, err := parseDate(*dto.IssuedOn)
		if err != nil {
			return domain.NewValidationError("недопустимая дата получения сертификата: " + *dto.IssuedOn)
		}
		certification.IssuedOn = issuedOn
	}
	if dto.ValidUntil != nil {
		validUntil, err := parseDate(*dto.ValidUntil)
		if err != nil {
			return domain.NewValidationError("недопустимая дата окончания действия: " + *dto.ValidUntil)
		}
		certification.ValidUntil = &validUntil
	}
	if certification.ValidUntil != nil && certification.ValidUntil.Before(certification.IssuedOn) {
		return domain.NewValidationError("срок действия не может закончиться раньше даты получения")
	}
	if dto.Description != nil {
		certification.Description = *dto.Description
	}
	if dto.SortOrder != nil {
		certification.SortOrder = *dto.SortOrder
	}

	if err := s.certificationRepo.Update(ctx, *certification); err != nil {
		s.logger.Error("ошибка обновления сертификата", zap.Int64("certificationId", certificationID), zap.Error(err))
		return err
	}

	return nil
}

func (s *CredentialsServiceImpl) DeleteCertification(ctx context.Context, professionalID, certificationID int64) error {
	certification, err := s.ownedCertification(ctx, professionalID, certificationID)
	if err != nil {
		return err
	}

	if certification.DocumentURL != nil && s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, *certification.DocumentURL); err != nil {
			s.logger.Warn("ошибка удаления документа из хранилища", zap.Error(err))
		}
	}

	if err := s.certificationRepo.Deactivate(ctx, professionalID, certificationID); err != nil {
		s.logger.Error("ошибка удаления сертификата", zap.Int64("certificationId", certificationID), zap.Error(err))
		return err
	}

	return nil
}

func (s *CredentialsServiceImpl) ListCertifications(ctx context.Context, professionalID int64) ([]domain.Certification, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.certificationRepo.ListByProfessional(ctx, professionalID)
}

func (s *CredentialsServiceImpl) UploadCertificationDocument(ctx context.Context, professionalID, certificationID int64, document []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("файловое хранилище не настроено")
	}

	certification, err := s.ownedCertification(ctx, professionalID, certificationID)
	if err != nil {
		return "", err
	}

	url, err := s.fileStorage.UploadFile(ctx, document, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки документа сертификата", zap.Int64("certificationId", certificationID), zap.Error(err))
		return "", err
	}

	if certification.DocumentURL != nil {
		if err := s.fileStorage.DeleteFile(ctx, *certification.DocumentURL); err != nil {
			s.logger.Warn("ошибка удаления старого документа", zap.Error(err))
		}
	}

	if err := s.certificationRepo.SetDocumentURL(ctx, professionalID, certificationID, &url); err != nil {
		s.logger.Error("ошибка сохранения URL документа", zap.Int64("certificationId", certificationID), zap.Error(err))
		return "", err
	}

	return url, nil
}

// ReplaceSocialLinks заменяет весь список ссылок профессионала.
// Пустой список допустим и просто очищает профиль.
func (s *CredentialsServiceImpl) ReplaceSocialLinks(ctx context.Context, professionalID int64, dtos []domain.SocialLinkDTO) ([]domain.SocialLink, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	if len(dtos) > domain.MaxSocialLinks {
		return nil, domain.NewValidationError(fmt.Sprintf("допускается не больше %d социальных ссылок", domain.MaxSocialLinks))
	}

	links := make([]domain.SocialLink, 0, len(dtos))
	seenPlatforms := make(map[domain.SocialPlatform]bool)
	for _, dto := range dtos {
		platform := domain.SocialPlatform(strings.ToLower(strings.TrimSpace(dto.Platform)))
		if !platform.IsValid() {
			return nil, domain.NewValidationError("недопустимая платформа: " + dto.Platform)
		}
		if seenPlatforms[platform] {
			return nil, domain.NewValidationError("платформы не должны повторяться")
		}
		seenPlatforms[platform] = true

		url := strings.TrimSpace(dto.URL)
		if url == "" {
			return nil, domain.NewValidationError("не указан URL социальной ссылки")
		}

		links = append(links, domain.SocialLink{
			ProfessionalID: professionalID,
			Platform:       platform,
			URL:            url,
		})
	}

	if err := s.socialLinkRepo.Replace(ctx, professionalID, links); err != nil {
		s.logger.Error("ошибка сохранения социальных ссылок", zap.Int64("professionalId", professionalID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("социальные ссылки обновлены",
		zap.Int64("professionalId", professionalID),
		zap.Int("links", len(links)),
	)

	return links, nil
}

func (s *CredentialsServiceImpl) ListSocialLinks(ctx context.Context, professionalID int64) ([]domain.SocialLink, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.socialLinkRepo.ListByProfessional(ctx, professionalID)
}

func (s *CredentialsServiceImpl) ownedCertification(ctx context.Context, professionalID, certificationID int64) (*domain.Certification, error) {
	certification, err := s.certificationRepo.GetByID(ctx, certificationID)
	if err != nil {
		return nil, err
	}
	if certification.ProfessionalID != professionalID || !certification.IsActive {
		return nil, domain.ErrCertificationNotFound
	}

	return certification, nil
}
