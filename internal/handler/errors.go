package handler

import (
	"errors"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
)

var validationErrors = []error{
	domain.ErrDescriptionRequired,
	domain.ErrDescriptionTooLong,
	domain.ErrNameRequired,
	domain.ErrNameTooLong,
	domain.ErrInvalidAmount,
	domain.ErrInvalidTransactionType,
	domain.ErrInvalidFrequency,
	domain.ErrInvalidDate,
	domain.ErrInvalidMonth,
	domain.ErrInvalidPrincipal,
	domain.ErrInvalidContribution,
	domain.ErrInvalidRate,
	domain.ErrInvalidYears,
	domain.ErrInvalidCompounding,
	domain.ErrCategoryNotFound,
}

// isValidationError reports whether err is a caller-input problem that
// maps to a 400 rather than a 404/500. Referencing a missing category
// counts: the ID came from the request body.
func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
