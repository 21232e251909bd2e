package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/centavo-app/centavo/centavo-backend/internal/service"
)

const defaultMonthlyRange = 12

// AnalyticsHandler exposes aggregated reports over HTTP.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	currency  finance.CurrencyCode
	locale    string
	logger    zerolog.Logger
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, currency finance.CurrencyCode, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		currency:  currency,
		locale:    finance.CurrencyConfigFor(currency).Locale,
		logger:    logger.With().Str("handler", "analytics").Logger(),
	}
}

type monthlyBalanceResponse struct {
	Month             string `json:"month"`
	MonthLabel        string `json:"month_label"`
	TotalIncome       string `json:"total_income"`
	TotalExpenses     string `json:"total_expenses"`
	Balance           string `json:"balance"`
	FormattedIncome   string `json:"formatted_income"`
	FormattedExpenses string `json:"formatted_expenses"`
	FormattedBalance  string `json:"formatted_balance"`
	TransactionCount  int    `json:"transaction_count"`
}

func (h *AnalyticsHandler) toMonthlyResponse(b domain.MonthlyBalance) monthlyBalanceResponse {
	return monthlyBalanceResponse{
		Month:             b.Month,
		MonthLabel:        finance.MonthName(b.Month, h.locale),
		TotalIncome:       b.TotalIncome.StringFixed(2),
		TotalExpenses:     b.TotalExpenses.StringFixed(2),
		Balance:           b.Balance.StringFixed(2),
		FormattedIncome:   finance.FormatCurrency(b.TotalIncome, h.currency),
		FormattedExpenses: finance.FormatCurrency(b.TotalExpenses, h.currency),
		FormattedBalance:  finance.FormatCurrency(b.Balance, h.currency),
		TransactionCount:  b.TransactionCount,
	}
}

// MonthlyBalances reports per-month income, expenses and balance.
// Callers pass either months=N for the trailing N months or an
// explicit start/end month range.
func (h *AnalyticsHandler) MonthlyBalances(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")

	var (
		balances []domain.MonthlyBalance
		err      error
	)
	switch {
	case start != "" || end != "":
		if start == "" || end == "" {
			return NewValidationError(c, "start and end must be provided together", nil)
		}
		balances, err = h.analytics.MonthlyBalancesBetween(start, end)
	default:
		months := defaultMonthlyRange
		if v := c.QueryParam("months"); v != "" {
			months, err = strconv.Atoi(v)
			if err != nil || months < 1 || months > 120 {
				return NewValidationError(c, "invalid filters", []ValidationError{
					{Field: "months", Message: "must be an integer between 1 and 120"},
				})
			}
		}
		balances, err = h.analytics.MonthlyBalances(months)
	}
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("monthly balances failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := make([]monthlyBalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp = append(resp, h.toMonthlyResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}

type categorySummaryResponse struct {
	CategoryID          string  `json:"category_id"`
	Total               string  `json:"total"`
	FormattedTotal      string  `json:"formatted_total"`
	Count               int     `json:"count"`
	Percentage          float64 `json:"percentage"`
	FormattedPercentage string  `json:"formatted_percentage"`
}

// CategoryBreakdown reports per-category totals and shares for one
// month and transaction type.
func (h *AnalyticsHandler) CategoryBreakdown(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = finance.CurrentMonth()
	}

	txnType := domain.TransactionTypeExpense
	if v := c.QueryParam("type"); v != "" {
		txnType = domain.TransactionType(v)
		if txnType != domain.TransactionTypeIncome && txnType != domain.TransactionTypeExpense {
			return NewValidationError(c, "invalid filters", []ValidationError{
				{Field: "type", Message: "must be income or expense"},
			})
		}
	}

	summaries, err := h.analytics.CategoryBreakdown(month, txnType)
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Str("month", month).Msg("category breakdown failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := make([]categorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, categorySummaryResponse{
			CategoryID:          s.CategoryID.String(),
			Total:               s.Total.StringFixed(2),
			FormattedTotal:      finance.FormatCurrency(s.Total, h.currency),
			Count:               s.Count,
			Percentage:          s.Percentage,
			FormattedPercentage: finance.FormatPercentage(s.Percentage, 0),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

type periodSummaryResponse struct {
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	TotalIncome       string `json:"total_income"`
	TotalExpenses     string `json:"total_expenses"`
	Balance           string `json:"balance"`
	FormattedIncome   string `json:"formatted_income"`
	FormattedExpenses string `json:"formatted_expenses"`
	FormattedBalance  string `json:"formatted_balance"`
	TransactionCount  int    `json:"transaction_count"`
}

// PeriodSummary reports totals for an arbitrary inclusive date range.
func (h *AnalyticsHandler) PeriodSummary(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" || end == "" {
		return NewValidationError(c, "start and end are required", nil)
	}

	summary, err := h.analytics.PeriodSummary(start, end)
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("period summary failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	return c.JSON(http.StatusOK, periodSummaryResponse{
		StartDate:         summary.StartDate,
		EndDate:           summary.EndDate,
		TotalIncome:       summary.TotalIncome.StringFixed(2),
		TotalExpenses:     summary.TotalExpenses.StringFixed(2),
		Balance:           summary.Balance.StringFixed(2),
		FormattedIncome:   finance.FormatCurrency(summary.TotalIncome, h.currency),
		FormattedExpenses: finance.FormatCurrency(summary.TotalExpenses, h.currency),
		FormattedBalance:  finance.FormatCurrency(summary.Balance, h.currency),
		TransactionCount:  summary.TransactionCount,
	})
}
