package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/centavo-app/centavo/centavo-backend/internal/service"
)

// ProjectionHandler exposes savings-plan projections over HTTP.
type ProjectionHandler struct {
	projections *service.ProjectionService
	currency    finance.CurrencyCode
	logger      zerolog.Logger
}

func NewProjectionHandler(projections *service.ProjectionService, currency finance.CurrencyCode, logger zerolog.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		projections: projections,
		currency:    currency,
		logger:      logger.With().Str("handler", "projection").Logger(),
	}
}

type compoundInterestRequest struct {
	Principal           string  `json:"principal"`
	MonthlyContribution string  `json:"monthly_contribution"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	Years               int     `json:"years"`
	Compounding         string  `json:"compounding"`
}

type yearlyBreakdownResponse struct {
	Year                 int    `json:"year"`
	Amount               string `json:"amount"`
	Contributed          string `json:"contributed"`
	Interest             string `json:"interest"`
	FormattedAmount      string `json:"formatted_amount"`
	FormattedContributed string `json:"formatted_contributed"`
	FormattedInterest    string `json:"formatted_interest"`
}

type compoundInterestResponse struct {
	FinalAmount               string                    `json:"final_amount"`
	TotalContributed          string                    `json:"total_contributed"`
	TotalInterest             string                    `json:"total_interest"`
	FormattedFinalAmount      string                    `json:"formatted_final_amount"`
	FormattedTotalContributed string                    `json:"formatted_total_contributed"`
	FormattedTotalInterest    string                    `json:"formatted_total_interest"`
	YearlyBreakdown           []yearlyBreakdownResponse `json:"yearly_breakdown"`
}

func parseMoneyField(raw, field string, fieldErrs *[]ValidationError) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		*fieldErrs = append(*fieldErrs, ValidationError{Field: field, Message: "must be a valid number"})
	}
	return amount
}

// CompoundInterest simulates a savings plan with monthly contributions
// and periodic interest capitalization.
func (h *ProjectionHandler) CompoundInterest(c echo.Context) error {
	var req compoundInterestRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body", nil)
	}

	var fieldErrs []ValidationError
	principal := parseMoneyField(req.Principal, "principal", &fieldErrs)
	contribution := parseMoneyField(req.MonthlyContribution, "monthly_contribution", &fieldErrs)
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "invalid projection", fieldErrs)
	}

	result, err := h.projections.ProjectCompoundInterest(service.CompoundInterestInput{
		Principal:           principal,
		MonthlyContribution: contribution,
		AnnualRatePercent:   req.AnnualRatePercent,
		Years:               req.Years,
		Compounding:         finance.Compounding(req.Compounding),
	})
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		h.logger.Error().Err(err).Msg("compound interest projection failed")
		return NewInternalError(c, "an unexpected error occurred")
	}

	resp := compoundInterestResponse{
		FinalAmount:               result.FinalAmount.StringFixed(2),
		TotalContributed:          result.TotalContributed.StringFixed(2),
		TotalInterest:             result.TotalInterest.StringFixed(2),
		FormattedFinalAmount:      finance.FormatCurrency(result.FinalAmount, h.currency),
		FormattedTotalContributed: finance.FormatCurrency(result.TotalContributed, h.currency),
		FormattedTotalInterest:    finance.FormatCurrency(result.TotalInterest, h.currency),
		YearlyBreakdown:           make([]yearlyBreakdownResponse, 0, len(result.YearlyBreakdown)),
	}
	for _, y := range result.YearlyBreakdown {
		resp.YearlyBreakdown = append(resp.YearlyBreakdown, yearlyBreakdownResponse{
			Year:                 y.Year,
			Amount:               y.Amount.StringFixed(2),
			Contributed:          y.Contributed.StringFixed(2),
			Interest:             y.Interest.StringFixed(2),
			FormattedAmount:      finance.FormatCurrency(y.Amount, h.currency),
			FormattedContributed: finance.FormatCurrency(y.Contributed, h.currency),
			FormattedInterest:    finance.FormatCurrency(y.Interest, h.currency),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
