package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"conpro/config"
	"conpro/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("/", h.getProfessionals)
			professionals.GET("/me", h.authMiddleware(), h.getMyProfessionalProfile)
			professionals.GET("/:id", h.getProfessionalByID)

			professionals.GET("/:id/services", h.getProfessionalServices)
			professionals.GET("/:id/specialties", h.getProfessionalSpecialties)

			professionals.GET("/:id/portfolio", h.getPortfolioProjects)
			professionals.GET("/:id/portfolio/:projectId", h.getPortfolioProject)
			professionals.GET("/:id/certifications", h.getCertifications)
			professionals.GET("/:id/social-links", h.getSocialLinks)

			auth := professionals.Group("/", h.authMiddleware())
			{
				auth.POST("/", h.createProfessional)
				auth.PUT("/:id", h.updateProfessional)
				auth.DELETE("/:id", h.deleteProfessional)

				auth.POST("/:id/services", h.syncProfessionalServices)
				auth.PUT("/:id/services", h.syncProfessionalServices)
				auth.DELETE("/:id/services", h.removeProfessionalServices)

				auth.POST("/:id/specialties", h.addProfessionalSpecialty)
				auth.DELETE("/:id/specialties/:specialtyId", h.removeProfessionalSpecialty)
				auth.PUT("/:id/specialties/:specialtyId/principal", h.markPrincipalSpecialty)

				auth.POST("/:id/photo", h.uploadProfessionalPhoto)
				auth.DELETE("/:id/photo", h.deleteProfessionalPhoto)

				auth.POST("/:id/portfolio", h.createPortfolioProject)
				auth.PUT("/:id/portfolio/:projectId", h.updatePortfolioProject)
				auth.DELETE("/:id/portfolio/:projectId", h.deletePortfolioProject)
				auth.POST("/:id/portfolio/:projectId/images", h.uploadProjectImage)
				auth.DELETE("/:id/portfolio/:projectId/images/:imageId", h.deleteProjectImage)

				auth.POST("/:id/certifications", h.createCertification)
				auth.PUT("/:id/certifications/:certificationId", h.updateCertification)
				auth.DELETE("/:id/certifications/:certificationId", h.deleteCertification)
				auth.POST("/:id/certifications/:certificationId/document", h.uploadCertificationDocument)

				auth.PUT("/:id/social-links", h.replaceSocialLinks)
			}
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", h.getCategories)
			categories.GET("/:id", h.getCategoryByID)

			admin := categories.Group("/")
			admin.Use(h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createCategory)
				admin.PUT("/:id", h.updateCategory)
				admin.DELETE("/:id", h.deactivateCategory)
			}
		}

		requests := api.Group("/requests")
		requests.Use(h.authMiddleware())
		{
			requests.POST("/", h.createRequest)
			requests.GET("/", h.getRequests)
			requests.GET("/:id", h.getRequestByID)
			requests.PUT("/:id", h.updateRequest)
			requests.PUT("/:id/status", h.updateRequestStatus)
			requests.DELETE("/:id", h.cancelRequest)
		}
	}
}
