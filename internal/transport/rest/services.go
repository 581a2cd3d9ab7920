package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

// @Summary Конфигурация услуг профессионала
// @Description Возвращает специальности, зону покрытия и расписание доступности
// @Tags Услуги
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {object} domain.ServiceProfile
// @Failure 404 {object} errorResponseBody "Услуги не настроены"
// @Router /professionals/{id}/services [get]
func (h *Handler) getProfessionalServices(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	profile, err := h.services.Profile.Get(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// @Summary Синхронизация конфигурации услуг
// @Description Атомарно создаёт или обновляет специальности, зону покрытия и расписание. Специальности с ID обновляются на месте, без ID — создаются, отсутствующие — деактивируются.
// @Tags Услуги
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body domain.SyncServicesDTO true "Полная конфигурация услуг"
// @Success 200 {object} domain.SyncResult "Конфигурация обновлена"
// @Success 201 {object} domain.SyncResult "Конфигурация создана"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Профессионал или категория не найдены"
// @Router /professionals/{id}/services [put]
func (h *Handler) syncProfessionalServices(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	var input domain.SyncServicesDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	result, err := h.services.Profile.Sync(c.Request.Context(), id, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if result.Created {
		createdResponse(c, result)
		return
	}

	successResponse(c, http.StatusOK, result)
}

// @Summary Удаление конфигурации услуг
// @Description Деактивирует все специальности и удаляет зону покрытия с расписанием
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Услуги не настроены"
// @Router /professionals/{id}/services [delete]
func (h *Handler) removeProfessionalServices(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Profile.Remove(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "конфигурация услуг удалена")
}

// @Summary Специальности профессионала
// @Tags Услуги
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {array} domain.Specialty
// @Router /professionals/{id}/specialties [get]
func (h *Handler) getProfessionalSpecialties(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	specialties, err := h.services.Profile.ListSpecialties(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, specialties)
}

// @Summary Добавление специальности
// @Tags Услуги
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param input body domain.AddSpecialtyDTO true "Данные специальности"
// @Success 201 {object} successResponseBody "ID созданной специальности"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /professionals/{id}/specialties [post]
func (h *Handler) addProfessionalSpecialty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	var input domain.AddSpecialtyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	specialtyID, err := h.services.Profile.AddSpecialty(c.Request.Context(), id, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": specialtyID,
	})
}

// @Summary Удаление специальности
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param specialtyId path int true "ID специальности"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Специальность не найдена"
// @Router /professionals/{id}/specialties/{specialtyId} [delete]
func (h *Handler) removeProfessionalSpecialty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	specialtyID, err := strconv.ParseInt(c.Param("specialtyId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID специальности")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Profile.RemoveSpecialty(c.Request.Context(), id, specialtyID); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "специальность удалена")
}

// @Summary Назначение основной специальности
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID профессионала"
// @Param specialtyId path int true "ID специальности"
// @Success 200 {object} messageResponseType
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Специальность не найдена"
// @Router /professionals/{id}/specialties/{specialtyId}/principal [put]
func (h *Handler) markPrincipalSpecialty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID профессионала")
		return
	}

	specialtyID, err := strconv.ParseInt(c.Param("specialtyId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID специальности")
		return
	}

	if !h.canManageProfessional(c, id) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Profile.MarkPrincipal(c.Request.Context(), id, specialtyID); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "основная специальность назначена")
}
