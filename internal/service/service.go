package service

import (
	"context"

	"go.uber.org/zap"

	"conpro/config"
	"conpro/internal/domain"
	"conpro/internal/repository"
	"conpro/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	User         UserService
	Auth         AuthService
	Professional ProfessionalService
	Category     CategoryService
	Profile      ServiceProfileService
	Request      RequestService
	Portfolio    PortfolioService
	Credentials  CredentialsService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Professional: NewProfessionalService(deps.Repos.Professional, deps.Repos.User, deps.FileStorage, deps.Logger),
		Category:     NewCategoryService(deps.Repos.Category, deps.Logger),
		Profile:      NewServiceProfileService(deps.Repos.Services, deps.Repos.Professional, deps.Repos.Category, deps.Logger),
		Request:      NewRequestService(deps.Repos.Request, deps.Repos.Professional, deps.Logger),
		Portfolio:    NewPortfolioService(deps.Repos.Portfolio, deps.Repos.Professional, deps.Repos.Category, deps.FileStorage, deps.Logger),
		Credentials:  NewCredentialsService(deps.Repos.Certification, deps.Repos.SocialLink, deps.Repos.Professional, deps.FileStorage, deps.Logger),
	}
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type ProfessionalService interface {
	Create(ctx context.Context, userID int64, dto domain.CreateProfessionalDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error)

	UploadProfilePhoto(ctx context.Context, professionalID int64, photo []byte, filename string) (string, error)
	DeleteProfilePhoto(ctx context.Context, professionalID int64) error
}

type CategoryService interface {
	Create(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]domain.ServiceCategory, error)
}

// ServiceProfileService — движок синхронизации конфигурации услуг.
// Sync атомарно создаёт или обновляет специальности, зону покрытия
// и расписание доступности профессионала.
type ServiceProfileService interface {
	Sync(ctx context.Context, professionalID int64, dto domain.SyncServicesDTO) (*domain.SyncResult, error)
	Get(ctx context.Context, professionalID int64) (*domain.ServiceProfile, error)
	Remove(ctx context.Context, professionalID int64) error

	AddSpecialty(ctx context.Context, professionalID int64, dto domain.AddSpecialtyDTO) (int64, error)
	RemoveSpecialty(ctx context.Context, professionalID, specialtyID int64) error
	MarkPrincipal(ctx context.Context, professionalID, specialtyID int64) error
	ListSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error)
}

// PortfolioService управляет проектами портфолио и их изображениями.
type PortfolioService interface {
	Create(ctx context.Context, professionalID int64, dto domain.CreateProjectDTO) (int64, error)
	GetByID(ctx context.Context, projectID int64) (*domain.PortfolioProject, error)
	List(ctx context.Context, professionalID int64) ([]domain.PortfolioProject, error)
	Update(ctx context.Context, professionalID, projectID int64, dto domain.UpdateProjectDTO) error
	Delete(ctx context.Context, professionalID, projectID int64) error

	UploadImage(ctx context.Context, professionalID, projectID int64, image []byte, filename string, dto domain.AddProjectImageDTO) (*domain.ProjectImage, error)
	DeleteImage(ctx context.Context, professionalID, projectID, imageID int64) error
}

// CredentialsService управляет сертификатами и социальными ссылками.
type CredentialsService interface {
	CreateCertification(ctx context.Context, professionalID int64, dto domain.CreateCertificationDTO) (int64, error)
	UpdateCertification(ctx context.Context, professionalID, certificationID int64, dto domain.UpdateCertificationDTO) error
	DeleteCertification(ctx context.Context, professionalID, certificationID int64) error
	ListCertifications(ctx context.Context, professionalID int64) ([]domain.Certification, error)
	UploadCertificationDocument(ctx context.Context, professionalID, certificationID int64, document []byte, filename string) (string, error)

	ReplaceSocialLinks(ctx context.Context, professionalID int64, dtos []domain.SocialLinkDTO) ([]domain.SocialLink, error)
	ListSocialLinks(ctx context.Context, professionalID int64) ([]domain.SocialLink, error)
}

type RequestService interface {
	Create(ctx context.Context, clientID int64, dto domain.CreateRequestDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	Update(ctx context.Context, id int64, dto domain.UpdateRequestDTO) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.ServiceRequest, int, error)
}
