package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

func newCredentialsService(t *testing.T) (*CredentialsServiceImpl, *MockCertificationRepository, *MockSocialLinkRepository, *MockProfessionalRepository, *MockFileStorage) {
	t.Helper()

	certificationRepo := new(MockCertificationRepository)
	socialLinkRepo := new(MockSocialLinkRepository)
	professionalRepo := new(MockProfessionalRepository)
	fileStorage := new(MockFileStorage)
	svc := NewCredentialsService(certificationRepo, socialLinkRepo, professionalRepo, fileStorage, zap.NewNop())

	return svc, certificationRepo, socialLinkRepo, professionalRepo, fileStorage
}

func TestCredentialsService_CreateCertification(t *testing.T) {
	svc, certificationRepo, _, professionalRepo, _ := newCredentialsService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	certificationRepo.On("Create", ctx, mock.MatchedBy(func(certification domain.Certification) bool {
		return certification.ProfessionalID == 7 && certification.Name == "Gasfitero certificado"
	})).Return(int64(11), nil)

	id, err := svc.CreateCertification(ctx, 7, domain.CreateCertificationDTO{
		Name:        "Gasfitero certificado",
		Institution: "SENCICO",
		IssuedOn:    "2024-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestCredentialsService_CreateCertification_DateValidation(t *testing.T) {
	tests := []struct {
		name string
		dto  domain.CreateCertificationDTO
	}{
		{
			name: "некорректная дата получения",
			dto:  domain.CreateCertificationDTO{Name: "Cert", Institution: "SENCICO", IssuedOn: "15-03-2024"},
		},
		{
			name: "срок действия раньше даты получения",
			dto:  domain.CreateCertificationDTO{Name: "Cert", Institution: "SENCICO", IssuedOn: "2024-03-15", ValidUntil: strPtr("2023-01-01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, certificationRepo, _, professionalRepo, _ := newCredentialsService(t)
			ctx := context.Background()

			professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)

			_, err := svc.CreateCertification(ctx, 7, tt.dto)

			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
			certificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCredentialsService_UpdateCertification_ForeignCertification(t *testing.T) {
	svc, certificationRepo, _, _, _ := newCredentialsService(t)
	ctx := context.Background()

	certificationRepo.On("GetByID", ctx, int64(11)).Return(&domain.Certification{ID: 11, ProfessionalID: 99, IsActive: true}, nil)

	name := "Otro nombre"
	err := svc.UpdateCertification(ctx, 7, 11, domain.UpdateCertificationDTO{Name: &name})

	require.ErrorIs(t, err, domain.ErrCertificationNotFound)
	certificationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCredentialsService_ReplaceSocialLinks_NormalizesPlatform(t *testing.T) {
	svc, _, socialLinkRepo, professionalRepo, _ := newCredentialsService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	socialLinkRepo.On("Replace", ctx, int64(7), mock.MatchedBy(func(links []domain.SocialLink) bool {
		return len(links) == 1 &&
			links[0].Platform == domain.PlatformInstagram &&
			links[0].URL == "https://instagram.com/maestro"
	})).Return(nil)

	links, err := svc.ReplaceSocialLinks(ctx, 7, []domain.SocialLinkDTO{
		{Platform: " INSTAGRAM ", URL: " https://instagram.com/maestro "},
	})

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, domain.PlatformInstagram, links[0].Platform)
}

func TestCredentialsService_ReplaceSocialLinks_EmptyListClearsProfile(t *testing.T) {
	svc, _, socialLinkRepo, professionalRepo, _ := newCredentialsService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	socialLinkRepo.On("Replace", ctx, int64(7), mock.MatchedBy(func(links []domain.SocialLink) bool {
		return len(links) == 0
	})).Return(nil)

	links, err := svc.ReplaceSocialLinks(ctx, 7, nil)

	require.NoError(t, err)
	assert.Empty(t, links)
	socialLinkRepo.AssertExpectations(t)
}

func TestCredentialsService_ReplaceSocialLinks_ValidationErrors(t *testing.T) {
	tooMany := make([]domain.SocialLinkDTO, domain.MaxSocialLinks+1)
	for i := range tooMany {
		tooMany[i] = domain.SocialLinkDTO{Platform: "website", URL: fmt.Sprintf("https://site%d.pe", i)}
	}

	tests := []struct {
		name string
		dtos []domain.SocialLinkDTO
	}{
		{
			name: "недопустимая платформа",
			dtos: []domain.SocialLinkDTO{{Platform: "myspace", URL: "https://myspace.com/x"}},
		},
		{
			name: "повторяющаяся платформа",
			dtos: []domain.SocialLinkDTO{
				{Platform: "facebook", URL: "https://facebook.com/a"},
				{Platform: "Facebook", URL: "https://facebook.com/b"},
			},
		},
		{
			name: "пустой URL",
			dtos: []domain.SocialLinkDTO{{Platform: "tiktok", URL: "   "}},
		},
		{
			name: "слишком много ссылок",
			dtos: tooMany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, socialLinkRepo, professionalRepo, _ := newCredentialsService(t)
			ctx := context.Background()

			professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)

			_, err := svc.ReplaceSocialLinks(ctx, 7, tt.dtos)

			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
			socialLinkRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCredentialsService_ListSocialLinks_ProfessionalNotFound(t *testing.T) {
	svc, _, socialLinkRepo, professionalRepo, _ := newCredentialsService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrProfessionalNotFound)

	_, err := svc.ListSocialLinks(ctx, 99)

	require.ErrorIs(t, err, domain.ErrProfessionalNotFound)
	socialLinkRepo.AssertNotCalled(t, "ListByProfessional", mock.Anything, mock.Anything)
}
