package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternalError          = errors.New("internal error")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrRecurringNotFound      = errors.New("recurring transaction not found")
	ErrCategoryInUse          = errors.New("category has transactions")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidFrequency       = errors.New("invalid recurrence frequency")
	ErrInvalidDate            = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth           = errors.New("month must be in YYYY-MM format")
	ErrInvalidPrincipal       = errors.New("principal must not be negative")
	ErrInvalidContribution    = errors.New("monthly contribution must not be negative")
	ErrInvalidRate            = errors.New("annual rate must not be negative")
	ErrInvalidYears           = errors.New("years must be between 1 and 100")
	ErrInvalidCompounding     = errors.New("invalid compounding frequency")
)

// Validation constants
const (
	MaxDescriptionLength  = 255
	MaxCategoryNameLength = 100
)
