package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

// @Summary Сертификаты профессионала
// @Tags Сертификаты
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {array} domain.Certification
// @Failure 404 {object} errorResponseBody "Профессионал не найден"
// @Router /professionals/{id}/certifications [get]
func (h *Handler) getCertifications(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	certifications, err := h.services.Credentials.ListCertifications(c.Request.Context(), professionalID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, certifications)
}

// @Summary Добавление сертификата
// @Tags Сертификаты
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body domain.CreateCertificationDTO true "Данные сертификата"
// @Success 201 {object} successResponseBody "ID созданного сертификата"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /professionals/{id}/certifications [post]
func (h *Handler) createCertification(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, professionalID) {
		forbiddenResponse(c)
		return
	}

	var input domain.CreateCertificationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Credentials.CreateCertification(c.Request.Context(), professionalID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление сертификата
// @Tags Сертификаты
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param certificationId path int true "ID сертификата"
// @Param input body domain.UpdateCertificationDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/certifications/{certificationId} [put]
func (h *Handler) updateCertification(c *gin.Context) {
	professionalID, certificationID, ok := h.certificationPathParams(c)
	if !ok {
		return
	}

	var input domain.UpdateCertificationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Credentials.UpdateCertification(c.Request.Context(), professionalID, certificationID, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сертификат обновлен")
}

// @Summary Удаление сертификата
// @Tags Сертификаты
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param certificationId path int true "ID сертификата"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Сертификат не найден"
// @Router /professionals/{id}/certifications/{certificationId} [delete]
func (h *Handler) deleteCertification(c *gin.Context) {
	professionalID, certificationID, ok := h.certificationPathParams(c)
	if !ok {
		return
	}

	if err := h.services.Credentials.DeleteCertification(c.Request.Context(), professionalID, certificationID); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сертификат удален")
}

// @Summary Загрузка документа сертификата
// @Tags Сертификаты
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param certificationId path int true "ID сертификата"
// @Param document formData file true "Файл документа"
// @Success 200 {object} successResponseBody "URL загруженного документа"
// @Failure 400 {object} errorResponseBody "Некорректный файл"
// @Router /professionals/{id}/certifications/{certificationId}/document [post]
func (h *Handler) uploadCertificationDocument(c *gin.Context) {
	professionalID, certificationID, ok := h.certificationPathParams(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("document")
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

	url, err := h.services.Credentials.UploadCertificationDocument(c.Request.Context(), professionalID, certificationID, data, fileHeader.Filename)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"document_url": url,
	})
}

// @Summary Социальные ссылки профессионала
// @Tags Социальные ссылки
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {array} domain.SocialLink
// @Failure 404 {object} errorResponseBody "Профессионал не найден"
// @Router /professionals/{id}/social-links [get]
func (h *Handler) getSocialLinks(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	links, err := h.services.Credentials.ListSocialLinks(c.Request.Context(), professionalID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, links)
}

// @Summary Замена социальных ссылок
// @Description Заменяет весь список ссылок профессионала переданным набором
// @Tags Социальные ссылки
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body []domain.SocialLinkDTO true "Список ссылок"
// @Success 200 {array} domain.SocialLink
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /professionals/{id}/social-links [put]
func (h *Handler) replaceSocialLinks(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, professionalID) {
		forbiddenResponse(c)
		return
	}

	var input []domain.SocialLinkDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	links, err := h.services.Credentials.ReplaceSocialLinks(c.Request.Context(), professionalID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, links)
}

func (h *Handler) certificationPathParams(c *gin.Context) (int64, int64, bool) {
	professionalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return 0, 0, false
	}

	certificationID, err := strconv.ParseInt(c.Param("certificationId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID сертификата")
		return 0, 0, false
	}

	if !h.canManageProfessional(c, professionalID) {
		forbiddenResponse(c)
		return 0, 0, false
	}

	return professionalID, certificationID, true
}
