package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"conpro/internal/domain"
)

// MockServiceProfileRepository mocks repository.ServiceProfileRepository
type MockServiceProfileRepository struct {
	mock.Mock
}

func (m *MockServiceProfileRepository) HasActiveServices(ctx context.Context, professionalID int64) (bool, error) {
	args := m.Called(ctx, professionalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceProfileRepository) GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.ServiceProfile, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProfile), args.Error(1)
}

func (m *MockServiceProfileRepository) SyncServices(ctx context.Context, professionalID int64, specialties []domain.Specialty, area domain.CoverageArea, availability domain.AvailabilitySchedule) (*domain.ServiceProfile, bool, error) {
	args := m.Called(ctx, professionalID, specialties, area, availability)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ServiceProfile), args.Bool(1), args.Error(2)
}

func (m *MockServiceProfileRepository) DeleteServices(ctx context.Context, professionalID int64) error {
	args := m.Called(ctx, professionalID)
	return args.Error(0)
}

func (m *MockServiceProfileRepository) AddSpecialty(ctx context.Context, specialty domain.Specialty) (int64, error) {
	args := m.Called(ctx, specialty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceProfileRepository) DeactivateSpecialty(ctx context.Context, professionalID, specialtyID int64) error {
	args := m.Called(ctx, professionalID, specialtyID)
	return args.Error(0)
}

func (m *MockServiceProfileRepository) MarkPrincipal(ctx context.Context, professionalID, specialtyID int64) error {
	args := m.Called(ctx, professionalID, specialtyID)
	return args.Error(0)
}

func (m *MockServiceProfileRepository) ListSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Specialty), args.Error(1)
}

func (m *MockServiceProfileRepository) CountActiveSpecialties(ctx context.Context, professionalID int64) (int, error) {
	args := m.Called(ctx, professionalID)
	return args.Int(0), args.Error(1)
}

func (m *MockServiceProfileRepository) HasSpecialtyWithCategory(ctx context.Context, professionalID, categoryID int64) (bool, error) {
	args := m.Called(ctx, professionalID, categoryID)
	return args.Bool(0), args.Error(1)
}

// MockProfessionalRepository mocks repository.ProfessionalRepository
type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) Create(ctx context.Context, userID int64, dto domain.CreateProfessionalDTO) (int64, error) {
	args := m.Called(ctx, userID, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfessionalRepository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockProfessionalRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfessionalRepository) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) CountByFilter(ctx context.Context, filter domain.ProfessionalFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockProfessionalRepository) UpdateProfilePhoto(ctx context.Context, id int64, photoURL string) error {
	args := m.Called(ctx, id, photoURL)
	return args.Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockCategoryRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context, onlyActive bool) ([]domain.ServiceCategory, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPortfolioRepository mocks repository.PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, project domain.PortfolioProject) (int64, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioProject), args.Error(1)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, project domain.PortfolioProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockPortfolioRepository) Deactivate(ctx context.Context, professionalID, projectID int64) error {
	args := m.Called(ctx, professionalID, projectID)
	return args.Error(0)
}

func (m *MockPortfolioRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.PortfolioProject, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioProject), args.Error(1)
}

func (m *MockPortfolioRepository) CountActiveProjects(ctx context.Context, professionalID int64) (int, error) {
	args := m.Called(ctx, professionalID)
	return args.Int(0), args.Error(1)
}

func (m *MockPortfolioRepository) AddImage(ctx context.Context, image domain.ProjectImage) (int64, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectImage), args.Error(1)
}

func (m *MockPortfolioRepository) CountImages(ctx context.Context, projectID int64) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockPortfolioRepository) DeleteImage(ctx context.Context, projectID, imageID int64) error {
	args := m.Called(ctx, projectID, imageID)
	return args.Error(0)
}

// MockCertificationRepository mocks repository.CertificationRepository
type MockCertificationRepository struct {
	mock.Mock
}

func (m *MockCertificationRepository) Create(ctx context.Context, certification domain.Certification) (int64, error) {
	args := m.Called(ctx, certification)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCertificationRepository) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

func (m *MockCertificationRepository) Update(ctx context.Context, certification domain.Certification) error {
	args := m.Called(ctx, certification)
	return args.Error(0)
}

func (m *MockCertificationRepository) Deactivate(ctx context.Context, professionalID, certificationID int64) error {
	args := m.Called(ctx, professionalID, certificationID)
	return args.Error(0)
}

func (m *MockCertificationRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockCertificationRepository) SetDocumentURL(ctx context.Context, professionalID, certificationID int64, documentURL *string) error {
	args := m.Called(ctx, professionalID, certificationID, documentURL)
	return args.Error(0)
}

// MockSocialLinkRepository mocks repository.SocialLinkRepository
type MockSocialLinkRepository struct {
	mock.Mock
}

func (m *MockSocialLinkRepository) Replace(ctx context.Context, professionalID int64, links []domain.SocialLink) error {
	args := m.Called(ctx, professionalID, links)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.SocialLink, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialLink), args.Error(1)
}

// MockFileStorage mocks storage.FileStorage
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

func (m *MockFileStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileStorage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, fileURL, expiry)
	return args.String(0), args.Error(1)
}

// MockRequestRepository mocks repository.RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, clientID int64, dto domain.CreateRequestDTO) (int64, error) {
	args := m.Called(ctx, clientID, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, id int64, dto domain.UpdateRequestDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.ServiceRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) CountByFilter(ctx context.Context, filter domain.RequestFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
