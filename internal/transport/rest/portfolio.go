package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

// @Summary Портфолио профессионала
// @Tags Портфолио
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {array} domain.PortfolioProject
// @Failure 404 {object} errorResponseBody "Профессионал не найден"
// @Router /professionals/{id}/portfolio [get]
func (h *Handler) getPortfolioProjects(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	projects, err := h.services.Portfolio.List(c.Request.Context(), professionalID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, projects)
}

// @Summary Проект портфолио по ID
// @Tags Портфолио
// @Produce json
// @Param id path int true "ID профессионала"
// @Param projectId path int true "ID проекта"
// @Success 200 {object} domain.PortfolioProject
// @Failure 404 {object} errorResponseBody "Проект не найден"
// @Router /professionals/{id}/portfolio/{projectId} [get]
func (h *Handler) getPortfolioProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID проекта")
		return
	}

	project, err := h.services.Portfolio.GetByID(c.Request.Context(), projectID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, project)
}

// @Summary Создание проекта портфолио
// @Tags Портфолио
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body domain.CreateProjectDTO true "Данные проекта"
// @Success 201 {object} successResponseBody "ID созданного проекта"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/portfolio [post]
func (h *Handler) createPortfolioProject(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, professionalID) {
		forbiddenResponse(c)
		return
	}

	var input domain.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Portfolio.Create(c.Request.Context(), professionalID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление проекта портфолио
// @Tags Портфолио
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param projectId path int true "ID проекта"
// @Param input body domain.UpdateProjectDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/portfolio/{projectId} [put]
func (h *Handler) updatePortfolioProject(c *gin.Context) {
	professionalID, projectID, ok := h.portfolioPathParams(c)
	if !ok {
		return
	}

	var input domain.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Portfolio.Update(c.Request.Context(), professionalID, projectID, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "проект обновлен")
}

// @Summary Удаление проекта портфолио
// @Tags Портфолио
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param projectId path int true "ID проекта"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/portfolio/{projectId} [delete]
func (h *Handler) deletePortfolioProject(c *gin.Context) {
	professionalID, projectID, ok := h.portfolioPathParams(c)
	if !ok {
		return
	}

	if err := h.services.Portfolio.Delete(c.Request.Context(), professionalID, projectID); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "проект удален")
}

// @Summary Загрузка изображения проекта
// @Tags Портфолио
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param projectId path int true "ID проекта"
// @Param image formData file true "Файл изображения"
// @Param image_type formData string false "Тип изображения: before, after, process, general"
// @Param caption formData string false "Подпись"
// @Success 201 {object} domain.ProjectImage
// @Failure 400 {object} errorResponseBody "Некорректный файл"
// @Router /professionals/{id}/portfolio/{projectId}/images [post]
func (h *Handler) uploadProjectImage(c *gin.Context) {
	professionalID, projectID, ok := h.portfolioPathParams(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequestResponse(c, "файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "не удалось открыть файл")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "не удалось прочитать файл")
		return
	}

	dto := domain.AddProjectImageDTO{
		ImageType: c.PostForm("image_type"),
		Caption:   c.PostForm("caption"),
	}

	image, err := h.services.Portfolio.UploadImage(c.Request.Context(), professionalID, projectID, data, fileHeader.Filename, dto)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusCreated, image)
}

// @Summary Удаление изображения проекта
// @Tags Портфолио
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param projectId path int true "ID проекта"
// @Param imageId path int true "ID изображения"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Изображение не найдено"
// @Router /professionals/{id}/portfolio/{projectId}/images/{imageId} [delete]
func (h *Handler) deleteProjectImage(c *gin.Context) {
	professionalID, projectID, ok := h.portfolioPathParams(c)
	if !ok {
		return
	}

	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID изображения")
		return
	}

	if err := h.services.Portfolio.DeleteImage(c.Request.Context(), professionalID, projectID, imageID); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "изображение удалено")
}

// portfolioPathParams разбирает ID профессионала и проекта из пути и
// проверяет право управления профилем. При ошибке ответ уже отправлен.
func (h *Handler) portfolioPathParams(c *gin.Context) (int64, int64, bool) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return 0, 0, false
	}

	projectID, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID проекта")
		return 0, 0, false
	}

	if !h.canManageProfessional(c, professionalID) {
		forbiddenResponse(c)
		return 0, 0, false
	}

	return professionalID, projectID, true
}
