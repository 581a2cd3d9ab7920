package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

// @Summary Список категорий услуг
// @Tags Категории
// @Produce json
// @Param include_inactive query bool false "Включать деактивированные категории"
// @Success 200 {array} domain.ServiceCategory
// @Router /categories [get]
func (h *Handler) getCategories(c *gin.Context) {
	onlyActive := c.DefaultQuery("include_inactive", "false") != "true"

	categories, err := h.services.Category.List(c.Request.Context(), onlyActive)
	if err != nil {
		h.logger.Error("ошибка получения категорий", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения категорий")
		return
	}

	successResponse(c, http.StatusOK, categories)
}

// @Summary Категория по ID
// @Tags Категории
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} domain.ServiceCategory
// @Failure 404 {object} errorResponseBody "Категория не найдена"
// @Router /categories/{id} [get]
func (h *Handler) getCategoryByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID категории")
		return
	}

	category, err := h.services.Category.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, category)
}

// @Summary Создание категории
// @Tags Категории
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateCategoryDTO true "Данные категории"
// @Success 201 {object} successResponseBody "ID созданной категории"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input domain.CreateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Category.Create(c.Request.Context(), input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление категории
// @Tags Категории
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID категории"
// @Param input body domain.UpdateCategoryDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Категория не найдена"
// @Router /categories/{id} [put]
func (h *Handler) updateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID категории")
		return
	}

	var input domain.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Category.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "категория обновлена")
}

// @Summary Деактивация категории
// @Tags Категории
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID категории"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Категория не найдена"
// @Router /categories/{id} [delete]
func (h *Handler) deactivateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID категории")
		return
	}

	if err := h.services.Category.Deactivate(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "категория деактивирована")
}
