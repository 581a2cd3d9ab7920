package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"conpro/internal/domain"
)

type Repositories struct {
	User          UserRepository
	Auth          AuthRepository
	Professional  ProfessionalRepository
	Category      CategoryRepository
	Services      ServiceProfileRepository
	Request       RequestRepository
	Portfolio     PortfolioRepository
	Certification CertificationRepository
	SocialLink    SocialLinkRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Auth:          NewAuthRepository(db),
		Professional:  NewProfessionalRepository(db),
		Category:      NewCategoryRepository(db),
		Services:      NewServiceProfileRepository(db),
		Request:       NewRequestRepository(db),
		Portfolio:     NewPortfolioRepository(db),
		Certification: NewCertificationRepository(db),
		SocialLink:    NewSocialLinkRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type ProfessionalRepository interface {
	Create(ctx context.Context, userID int64, dto domain.CreateProfessionalDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, error)
	CountByFilter(ctx context.Context, filter domain.ProfessionalFilter) (int, error)
	UpdateProfilePhoto(ctx context.Context, id int64, photoURL string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]domain.ServiceCategory, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// ServiceProfileRepository управляет полной конфигурацией услуг профессионала.
// SyncServices выполняет все записи в одной транзакции: частичного результата
// снаружи транзакции не видно никогда. Решение "создание или обновление"
// принимается внутри транзакции под блокировкой строки профессионала, поэтому
// две параллельные первые синхронизации не могут обе пройти по пути создания.
type ServiceProfileRepository interface {
	HasActiveServices(ctx context.Context, professionalID int64) (bool, error)
	GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.ServiceProfile, error)
	SyncServices(ctx context.Context, professionalID int64, specialties []domain.Specialty, area domain.CoverageArea, availability domain.AvailabilitySchedule) (*domain.ServiceProfile, bool, error)
	DeleteServices(ctx context.Context, professionalID int64) error

	AddSpecialty(ctx context.Context, specialty domain.Specialty) (int64, error)
	DeactivateSpecialty(ctx context.Context, professionalID, specialtyID int64) error
	MarkPrincipal(ctx context.Context, professionalID, specialtyID int64) error
	ListSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error)
	CountActiveSpecialties(ctx context.Context, professionalID int64) (int, error)
	HasSpecialtyWithCategory(ctx context.Context, professionalID, categoryID int64) (bool, error)
}

// PortfolioRepository хранит проекты портфолио и их изображения.
// Проекты удаляются мягко, изображения — насовсем.
type PortfolioRepository interface {
	Create(ctx context.Context, project domain.PortfolioProject) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioProject, error)
	Update(ctx context.Context, project domain.PortfolioProject) error
	Deactivate(ctx context.Context, professionalID, projectID int64) error
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.PortfolioProject, error)
	CountActiveProjects(ctx context.Context, professionalID int64) (int, error)

	AddImage(ctx context.Context, image domain.ProjectImage) (int64, error)
	ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error)
	CountImages(ctx context.Context, projectID int64) (int, error)
	DeleteImage(ctx context.Context, projectID, imageID int64) error
}

type CertificationRepository interface {
	Create(ctx context.Context, certification domain.Certification) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Certification, error)
	Update(ctx context.Context, certification domain.Certification) error
	Deactivate(ctx context.Context, professionalID, certificationID int64) error
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Certification, error)
	SetDocumentURL(ctx context.Context, professionalID, certificationID int64, documentURL *string) error
}

type SocialLinkRepository interface {
	Replace(ctx context.Context, professionalID int64, links []domain.SocialLink) error
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.SocialLink, error)
}

type RequestRepository interface {
	Create(ctx context.Context, clientID int64, dto domain.CreateRequestDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
	Update(ctx context.Context, id int64, dto domain.UpdateRequestDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.ServiceRequest, error)
	CountByFilter(ctx context.Context, filter domain.RequestFilter) (int, error)
}
