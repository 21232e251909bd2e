package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/centavo-app/centavo/centavo-backend/internal/service"
)

// RecurringHandler exposes recurring transaction templates over HTTP.
type RecurringHandler struct {
	recurring *service.RecurringService
	currency  finance.CurrencyCode
	logger    zerolog.Logger
}

func NewRecurringHandler(recurring *service.RecurringService, currency finance.CurrencyCode, logger zerolog.Logger) *RecurringHandler {
	return &RecurringHandler{
		recurring: recurring,
		currency:  currency,
		logger:    logger.With().Str("handler", "recurring").Logger(),
	}
}

type createRecurringRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	CategoryID  string `json:"category_id"`
	Frequency   string `json:"frequency"`
	StartDate   string `json:"start_date"`
}

type updateRecurringRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	CategoryID  string `json:"category_id"`
	Frequency   string `json:"frequency"`
	NextDate    string `json:"next_date"`
	IsActive    bool   `json:"is_active"`
}

type recurringResponse struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
	Type            string `json:"type"`
	CategoryID      string `json:"category_id"`
	Frequency       string `json:"frequency"`
	NextDate        string `json:"next_date"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
}

func (h *RecurringHandler) toResponse(rt *domain.RecurringTransaction) recurringResponse {
	return recurringResponse{
		ID:              rt.ID.String(),
		Description:     rt.Description,
		Amount:          rt.Amount.StringFixed(2),
		FormattedAmount: finance.FormatCurrency(rt.Amount, h.currency),
		Type:            string(rt.Type),
		CategoryID:      rt.CategoryID.String(),
		Frequency:       string(rt.Frequency),
		NextDate:        rt.NextDate,
		IsActive:        rt.IsActive,
		CreatedAt:       rt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func parseAmountField(raw string, fieldErrs *[]ValidationError) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		amount = finance.ParseCurrencyInput(raw)
		if amount.IsZero() && raw != "0" {
			*fieldErrs = append(*fieldErrs, ValidationError{Field: "amount", Message: "must be a valid number"})
		}
	}
	return amount
}

func parseCategoryField(raw string, fieldErrs *[]ValidationError) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		*fieldErrs = append(*fieldErrs, ValidationError{Field: "category_id", Message: "must be a valid UUID"})
	}
	return id
}

func (h *RecurringHandler) Create(c echo.Context) error {
	var req createRecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	var fieldErrs []ValidationError
	amount := parseAmountField(req.Amount, &fieldErrs)
	categoryID := parseCategoryField(req.CategoryID, &fieldErrs)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid recurring transaction", fieldErrs)
	}

	rt, err := h.recurring.CreateRecurring(service.CreateRecurringInput{
		Description: req.Description,
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		CategoryID:  categoryID,
		Frequency:   domain.Frequency(req.Frequency),
		StartDate:   req.StartDate,
	})
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("create recurring transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusCreated, h.toResponse(rt))
}

func (h *RecurringHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid recurring transaction id", nil)
	}

	rt, err := h.recurring.GetRecurring(id)
	if err != nil {
		if errors.Is(err, domain.ErrRecurringNotFound) {
			return NewNotFoundError(c, "recurring transaction not found")
		}
		h.logger.Error().Err(err).Str("recurring_id", id.String()).Msg("get recurring transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, h.toResponse(rt))
}

func (h *RecurringHandler) List(c echo.Context) error {
	var activeOnly *bool
	switch c.QueryParam("active") {
	case "":
	case "true":
		v := true
		activeOnly = &v
	case "false":
		v := false
		activeOnly = &v
	default:
		return NewValidationError(c, "invalid filters", []ValidationError{
			{Field: "active", Message: "must be true or false"},
		})
	}

	templates, err := h.recurring.ListRecurring(activeOnly)
	if err != nil {
		h.logger.Error().Err(err).Msg("list recurring transactions failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := make([]recurringResponse, 0, len(templates))
	for _, rt := range templates {
		resp = append(resp, h.toResponse(rt))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RecurringHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid recurring transaction id", nil)
	}

	var req updateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	var fieldErrs []ValidationError
	amount := parseAmountField(req.Amount, &fieldErrs)
	categoryID := parseCategoryField(req.CategoryID, &fieldErrs)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid recurring transaction", fieldErrs)
	}

	rt, err := h.recurring.UpdateRecurring(id, service.UpdateRecurringInput{
		Description: req.Description,
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		CategoryID:  categoryID,
		Frequency:   domain.Frequency(req.Frequency),
		NextDate:    req.NextDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecurringNotFound):
			return NewNotFoundError(c, "recurring transaction not found")
		case isValidationError(err):
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Str("recurring_id", id.String()).Msg("update recurring transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, h.toResponse(rt))
}

func (h *RecurringHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid recurring transaction id", nil)
	}

	if err := h.recurring.DeleteRecurring(id); err != nil {
		if errors.Is(err, domain.ErrRecurringNotFound) {
			return NewNotFoundError(c, "recurring transaction not found")
		}
		h.logger.Error().Err(err).Str("recurring_id", id.String()).Msg("delete recurring transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.NoContent(http.StatusNoContent)
}

// Process materializes all due recurring transactions. The optional
// date query parameter overrides the current date, mainly for catch-up
// runs and testing.
func (h *RecurringHandler) Process(c echo.Context) error {
	date := c.QueryParam("date")
	result, err := h.recurring.ProcessDue(date)
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("process recurring transactions failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	h.logger.Info().
		Int("generated", result.Generated).
		Int("skipped", result.Skipped).
		Msg("processed recurring transactions")
	return c.JSON(http.StatusOK, result)
}
