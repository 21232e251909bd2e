package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/service"
)

// CategoryHandler exposes category CRUD over HTTP.
type CategoryHandler struct {
	categories *service.CategoryService
	logger     zerolog.Logger
}

func NewCategoryHandler(categories *service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger.With().Str("handler", "category").Logger(),
	}
}

type categoryRequest struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color,omitempty"`
}

type categoryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color,omitempty"`
}

func toCategoryResponse(cat *domain.Category) categoryResponse {
	return categoryResponse{
		ID:    cat.ID.String(),
		Name:  cat.Name,
		Type:  string(cat.Type),
		Color: cat.Color,
	}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	category, err := h.categories.CreateCategory(service.CreateCategoryInput{
		Name:  req.Name,
		Type:  domain.TransactionType(req.Type),
		Color: req.Color,
	})
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("create category failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid category id", nil)
	}

	category, err := h.categories.GetCategory(id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "category not found")
		}
		h.logger.Error().Err(err).Str("category_id", id.String()).Msg("get category failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.ListCategories()
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, toCategoryResponse(cat))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid category id", nil)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	category, err := h.categories.UpdateCategory(id, service.CreateCategoryInput{
		Name:  req.Name,
		Type:  domain.TransactionType(req.Type),
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return NewNotFoundError(c, "category not found")
		case isValidationError(err):
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Str("category_id", id.String()).Msg("update category failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid category id", nil)
	}

	if err := h.categories.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return NewNotFoundError(c, "category not found")
		case errors.Is(err, domain.ErrCategoryInUse):
			return NewConflictError(c, "category has transactions and cannot be deleted")
		}
		h.logger.Error().Err(err).Str("category_id", id.String()).Msg("delete category failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.NoContent(http.StatusNoContent)
}
