package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/centavo-app/centavo/centavo-backend/internal/service"
)

// TransactionHandler exposes transaction CRUD over HTTP.
type TransactionHandler struct {
	transactions *service.TransactionService
	currency     finance.CurrencyCode
	logger       zerolog.Logger
}

func NewTransactionHandler(transactions *service.TransactionService, currency finance.CurrencyCode, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		currency:     currency,
		logger:       logger.With().Str("handler", "transaction").Logger(),
	}
}

type transactionRequest struct {
	Type          string  `json:"type"`
	Amount        string  `json:"amount"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"category_id"`
	Date          string  `json:"date"`
	IsRecurring   bool    `json:"is_recurring"`
	Frequency     *string `json:"frequency,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}

type transactionResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
	Description     string  `json:"description"`
	CategoryID      string  `json:"category_id"`
	Date            string  `json:"date"`
	IsRecurring     bool    `json:"is_recurring"`
	Frequency       *string `json:"frequency,omitempty"`
	PaymentMethod   *string `json:"payment_method,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func (h *TransactionHandler) toResponse(t *domain.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:              t.ID.String(),
		Type:            string(t.Type),
		Amount:          t.Amount.StringFixed(2),
		FormattedAmount: finance.FormatCurrency(t.Amount, h.currency),
		Description:     t.Description,
		CategoryID:      t.CategoryID.String(),
		Date:            t.Date,
		IsRecurring:     t.IsRecurring,
		PaymentMethod:   t.PaymentMethod,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.Frequency != nil {
		f := string(*t.Frequency)
		resp.Frequency = &f
	}
	return resp
}

func (h *TransactionHandler) parseInput(req transactionRequest) (service.CreateTransactionInput, []ValidationError) {
	var fieldErrs []ValidationError
	amount := parseAmountField(req.Amount, &fieldErrs)
	categoryID := parseCategoryField(req.CategoryID, &fieldErrs)

	input := service.CreateTransactionInput{
		Type:          domain.TransactionType(req.Type),
		Amount:        amount,
		Description:   req.Description,
		CategoryID:    categoryID,
		Date:          req.Date,
		IsRecurring:   req.IsRecurring,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Frequency != nil {
		f := domain.Frequency(*req.Frequency)
		input.Frequency = &f
	}
	return input, fieldErrs
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	input, fieldErrs := h.parseInput(req)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid transaction", fieldErrs)
	}

	transaction, err := h.transactions.CreateTransaction(input)
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("create transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusCreated, h.toResponse(transaction))
}

func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid transaction id", nil)
	}

	transaction, err := h.transactions.GetTransaction(id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "transaction not found")
		}
		h.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("get transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, h.toResponse(transaction))
}

func (h *TransactionHandler) List(c echo.Context) error {
	filters, fieldErrs := parseTransactionFilters(c)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid filters", fieldErrs)
	}

	transactions, err := h.transactions.ListTransactions(&filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("list transactions failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, h.toResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid transaction id", nil)
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	input, fieldErrs := h.parseInput(req)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid transaction", fieldErrs)
	}

	transaction, err := h.transactions.UpdateTransaction(id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			return NewNotFoundError(c, "transaction not found")
		case isValidationError(err):
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("update transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, h.toResponse(transaction))
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "invalid transaction id", nil)
	}

	if err := h.transactions.DeleteTransaction(id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "transaction not found")
		}
		h.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("delete transaction failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.NoContent(http.StatusNoContent)
}

func parseTransactionFilters(c echo.Context) (domain.TransactionFilters, []ValidationError) {
	var (
		filters   domain.TransactionFilters
		fieldErrs []ValidationError
	)

	if v := c.QueryParam("start_date"); v != "" {
		filters.StartDate = &v
	}
	if v := c.QueryParam("end_date"); v != "" {
		filters.EndDate = &v
	}
	if v := c.QueryParam("type"); v != "" {
		t := domain.TransactionType(v)
		if t != domain.TransactionTypeIncome && t != domain.TransactionTypeExpense {
			fieldErrs = append(fieldErrs, ValidationError{Field: "type", Message: "must be income or expense"})
		} else {
			filters.Type = &t
		}
	}
	if v := c.QueryParam("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			fieldErrs = append(fieldErrs, ValidationError{Field: "category_id", Message: "must be a valid UUID"})
		} else {
			filters.CategoryID = &id
		}
	}
	return filters, fieldErrs
}
