package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

type updateRequestStatusInput struct {
	Status domain.RequestStatus `json:"status" binding:"required,oneof=pending accepted rejected completed cancelled"`
}

// @Summary Создание заявки на услугу
// @Tags Заявки
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateRequestDTO true "Данные заявки"
// @Success 201 {object} successResponseBody "ID созданной заявки"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /requests [post]
func (h *Handler) createRequest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Request.Create(c.Request.Context(), userID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Заявка по ID
// @Tags Заявки
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} domain.ServiceRequest
// @Failure 404 {object} errorResponseBody "Заявка не найдена"
// @Router /requests/{id} [get]
func (h *Handler) getRequestByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID заявки")
		return
	}

	request, err := h.services.Request.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if !h.canAccessRequest(c, request) {
		forbiddenResponse(c)
		return
	}

	successResponse(c, http.StatusOK, request)
}

// @Summary Список заявок
// @Description Клиент видит свои заявки, профессионал — адресованные ему
// @Tags Заявки
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Фильтр по статусу"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse
// @Router /requests [get]
func (h *Handler) getRequests(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	filter := domain.RequestFilter{}

	switch role {
	case domain.UserRoleProfessional:
		professional, err := h.services.Professional.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			notFoundResponse(c, "профиль профессионала не найден")
			return
		}
		filter.ProfessionalID = &professional.ID
	case domain.UserRoleAdmin:
		// администратор видит все заявки
	default:
		filter.ClientID = &userID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.RequestStatus(statusStr)
		if !status.IsValid() {
			badRequestResponse(c, "недопустимый статус заявки")
			return
		}
		filter.Status = &status
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

	requests, total, err := h.services.Request.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения заявок", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения заявок")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, requests, total, page, limit)
}

// @Summary Обновление заявки
// @Tags Заявки
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Param input body domain.UpdateRequestDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /requests/{id} [put]
func (h *Handler) updateRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID заявки")
		return
	}

	request, err := h.services.Request.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if !h.canAccessRequest(c, request) {
		forbiddenResponse(c)
		return
	}

	var input domain.UpdateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Request.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "заявка обновлена")
}

// @Summary Изменение статуса заявки
// @Description Принятие и отклонение доступно профессионалу, отмена — клиенту
// @Tags Заявки
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Param input body updateRequestStatusInput true "Новый статус"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Недопустимый переход статуса"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /requests/{id}/status [put]
func (h *Handler) updateRequestStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID заявки")
		return
	}

	request, err := h.services.Request.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if !h.canAccessRequest(c, request) {
		forbiddenResponse(c)
		return
	}

	var input updateRequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Request.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "статус заявки обновлен")
}

// @Summary Отмена заявки
// @Tags Заявки
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Заявку нельзя отменить"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /requests/{id} [delete]
func (h *Handler) cancelRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID заявки")
		return
	}

	request, err := h.services.Request.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if !h.canAccessRequest(c, request) {
		forbiddenResponse(c)
		return
	}

	if err := h.services.Request.Cancel(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "заявка отменена")
}

// canAccessRequest разрешает доступ клиенту заявки, профессионалу-адресату
// и администратору.
func (h *Handler) canAccessRequest(c *gin.Context, request *domain.ServiceRequest) bool {
	userID, err := getUserID(c)
	if err != nil {
		return false
	}

	if request.ClientID == userID {
		return true
	}

	role, err := getUserRole(c)
	if err != nil {
		return false
	}

	if role == domain.UserRoleAdmin {
		return true
	}

	if role == domain.UserRoleProfessional {
		professional, err := h.services.Professional.GetByUserID(c.Request.Context(), userID)
		if err == nil && professional.ID == request.ProfessionalID {
			return true
		}
	}

	return false
}
