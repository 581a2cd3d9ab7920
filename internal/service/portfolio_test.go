package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

func newPortfolioService(t *testing.T) (*PortfolioServiceImpl, *MockPortfolioRepository, *MockProfessionalRepository, *MockCategoryRepository, *MockFileStorage) {
	t.Helper()

	repo := new(MockPortfolioRepository)
	professionalRepo := new(MockProfessionalRepository)
	categoryRepo := new(MockCategoryRepository)
	fileStorage := new(MockFileStorage)
	svc := NewPortfolioService(repo, professionalRepo, categoryRepo, fileStorage, zap.NewNop())

	return svc, repo, professionalRepo, categoryRepo, fileStorage
}

func validProjectDTO() domain.CreateProjectDTO {
	return domain.CreateProjectDTO{
		ProjectName: "Remodelación de cocina",
		CompletedOn: "2026-05-10",
		Description: "Cocina completa con instalación eléctrica",
		CategoryID:  3,
	}
}

func TestPortfolioService_Create(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo, _ := newPortfolioService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, int64(3)).Return(true, nil)
	repo.On("CountActiveProjects", ctx, int64(7)).Return(4, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(project domain.PortfolioProject) bool {
		return project.ProfessionalID == 7 &&
			project.CategoryID == 3 &&
			project.SortOrder == 5 &&
			project.CompletedOn.Equal(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	})).Return(int64(42), nil)

	id, err := svc.Create(ctx, 7, validProjectDTO())

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	repo.AssertExpectations(t)
}

func TestPortfolioService_Create_LimitReached(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo, _ := newPortfolioService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, int64(3)).Return(true, nil)
	repo.On("CountActiveProjects", ctx, int64(7)).Return(domain.MaxPortfolioProjects, nil)

	_, err := svc.Create(ctx, 7, validProjectDTO())

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPortfolioService_Create_DateValidation(t *testing.T) {
	tests := []struct {
		name        string
		completedOn string
	}{
		{name: "дата в будущем", completedOn: time.Now().AddDate(1, 0, 0).Format("2006-01-02")},
		{name: "некорректный формат даты", completedOn: "10/05/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, professionalRepo, _, _ := newPortfolioService(t)
			ctx := context.Background()

			professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)

			dto := validProjectDTO()
			dto.CompletedOn = tt.completedOn

			_, err := svc.Create(ctx, 7, dto)

			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPortfolioService_Create_CategoryNotFound(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo, _ := newPortfolioService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, int64(3)).Return(false, nil)

	_, err := svc.Create(ctx, 7, validProjectDTO())

	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPortfolioService_Update_ForeignProject(t *testing.T) {
	svc, repo, _, _, _ := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 99, IsActive: true}, nil)

	name := "Nuevo nombre"
	err := svc.Update(ctx, 7, 42, domain.UpdateProjectDTO{ProjectName: &name})

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPortfolioService_Update_InactiveProject(t *testing.T) {
	svc, repo, _, _, _ := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: false}, nil)

	name := "Nuevo nombre"
	err := svc.Update(ctx, 7, 42, domain.UpdateProjectDTO{ProjectName: &name})

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPortfolioService_UploadImage_DefaultsToGeneral(t *testing.T) {
	svc, repo, _, _, fileStorage := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: true}, nil)
	repo.On("CountImages", ctx, int64(42)).Return(2, nil)
	fileStorage.On("UploadFile", ctx, mock.Anything, "antes.jpg").Return("https://files/antes.jpg", nil)
	repo.On("AddImage", ctx, mock.MatchedBy(func(image domain.ProjectImage) bool {
		return image.ImageType == domain.ImageTypeGeneral && image.SortOrder == 3
	})).Return(int64(5), nil)

	image, err := svc.UploadImage(ctx, 7, 42, []byte("jpeg"), "antes.jpg", domain.AddProjectImageDTO{})

	require.NoError(t, err)
	assert.Equal(t, int64(5), image.ID)
	assert.Equal(t, domain.ImageTypeGeneral, image.ImageType)
}

func TestPortfolioService_UploadImage_InvalidType(t *testing.T) {
	svc, repo, _, _, fileStorage := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: true}, nil)

	_, err := svc.UploadImage(ctx, 7, 42, []byte("jpeg"), "foto.jpg", domain.AddProjectImageDTO{ImageType: "panorama"})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
	fileStorage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestPortfolioService_UploadImage_LimitReached(t *testing.T) {
	svc, repo, _, _, fileStorage := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: true}, nil)
	repo.On("CountImages", ctx, int64(42)).Return(domain.MaxProjectImages, nil)

	_, err := svc.UploadImage(ctx, 7, 42, []byte("jpeg"), "foto.jpg", domain.AddProjectImageDTO{ImageType: "before"})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
	fileStorage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestPortfolioService_UploadImage_CleansUpOrphanFile(t *testing.T) {
	svc, repo, _, _, fileStorage := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: true}, nil)
	repo.On("CountImages", ctx, int64(42)).Return(0, nil)
	fileStorage.On("UploadFile", ctx, mock.Anything, "foto.jpg").Return("https://files/foto.jpg", nil)
	repo.On("AddImage", ctx, mock.Anything).Return(int64(0), errors.New("база недоступна"))
	fileStorage.On("DeleteFile", ctx, "https://files/foto.jpg").Return(nil)

	_, err := svc.UploadImage(ctx, 7, 42, []byte("jpeg"), "foto.jpg", domain.AddProjectImageDTO{ImageType: "after"})

	require.Error(t, err)
	fileStorage.AssertCalled(t, "DeleteFile", ctx, "https://files/foto.jpg")
}

func TestPortfolioService_DeleteImage_NotFound(t *testing.T) {
	svc, repo, _, _, fileStorage := newPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&domain.PortfolioProject{ID: 42, ProfessionalID: 7, IsActive: true}, nil)
	repo.On("ListImages", ctx, int64(42)).Return([]domain.ProjectImage{{ID: 1, ProjectID: 42}}, nil)

	err := svc.DeleteImage(ctx, 7, 42, 999)

	require.ErrorIs(t, err, domain.ErrProjectImageNotFound)
	fileStorage.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything, mock.Anything)
}
