package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

// @Summary Поиск профессионалов
// @Description Ищет активных профессионалов по категории, департаменту, стоимости и тексту
// @Tags Профессионалы
// @Produce json
// @Param category_id query int false "ID категории услуг"
// @Param department query string false "Департамент покрытия"
// @Param max_cost query number false "Максимальная стоимость"
// @Param query query string false "Поиск по заголовку профиля"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	filter := domain.ProfessionalFilter{}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID категории")
			return
		}
		filter.CategoryID = &categoryID
	}

	if department := c.Query("department"); department != "" {
		filter.Department = &department
	}

	if maxCostStr := c.Query("max_cost"); maxCostStr != "" {
		maxCost, err := strconv.ParseFloat(maxCostStr, 64)
		if err != nil || maxCost <= 0 {
			badRequestResponse(c, "некорректная максимальная стоимость")
			return
		}
		filter.MaxCost = &maxCost
	}

	if query := c.Query("query"); query != "" {
		filter.Query = &query
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter.Limit = limit
	filter.Offset = offset

	professionals, total, err := h.services.Professional.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка поиска профессионалов", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка поиска профессионалов")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, professionals, total, page, limit)
}

// @Summary Профессионал по ID
// @Tags Профессионалы
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {object} domain.Professional
// @Failure 404 {object} errorResponseBody "Профессионал не найден"
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	professional, err := h.services.Professional.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Мой профиль профессионала
// @Tags Профессионалы
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.Professional
// @Failure 404 {object} errorResponseBody "Профиль не найден"
// @Router /professionals/me [get]
func (h *Handler) getMyProfessionalProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	professional, err := h.services.Professional.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Создание профиля профессионала
// @Tags Профессионалы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateProfessionalDTO true "Данные профиля"
// @Success 201 {object} successResponseBody "ID созданного профиля"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /professionals [post]
func (h *Handler) createProfessional(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateProfessionalDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Professional.Create(c.Request.Context(), userID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление профиля профессионала
// @Tags Профессионалы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body domain.UpdateProfessionalDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id} [put]
func (h *Handler) updateProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	var input domain.UpdateProfessionalDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Professional.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "профиль обновлен")
}

// @Summary Удаление профиля профессионала
// @Tags Профессионалы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id} [delete]
func (h *Handler) deleteProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Professional.Delete(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "профиль удален")
}

// @Summary Загрузка фотографии профиля
// @Tags Профессионалы
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param photo formData file true "Файл изображения"
// @Success 200 {object} successResponseBody "URL загруженной фотографии"
// @Failure 400 {object} errorResponseBody "Некорректный файл"
// @Router /professionals/{id}/photo [post]
func (h *Handler) uploadProfessionalPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	fileHeader, err := c.FormFile("photo")
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

	url, err := h.services.Professional.UploadProfilePhoto(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		h.logger.Error("ошибка загрузки фотографии", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"photo_url": url,
	})
}

// @Summary Удаление фотографии профиля
// @Tags Профессионалы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/photo [delete]
func (h *Handler) deleteProfessionalPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Professional.DeleteProfilePhoto(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "фотография удалена")
}

// canManageProfessional разрешает операцию владельцу профиля или администратору.
func (h *Handler) canManageProfessional(c *gin.Context, professionalID int64) bool {
	userID, err := getUserID(c)
	if err != nil {
		return false
	}

	role, err := getUserRole(c)
	if err == nil && role == domain.UserRoleAdmin {
		return true
	}

	professional, err := h.services.Professional.GetByID(c.Request.Context(), professionalID)
	if err != nil {
		return false
	}

	return professional.UserID == userID
}
