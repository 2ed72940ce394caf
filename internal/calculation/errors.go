package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
)

var (
	// ErrInsufficientService matches every *InsufficientServiceError.
	ErrInsufficientService = errors.New("insufficient service")

	// ErrInvalidInput matches every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
)

// InsufficientServiceError is returned when the worker has not completed the
// minimum one month of service inside the selected period.
type InsufficientServiceError struct {
	Window   domain.PeriodWindow
	HireDate time.Time
	Months   int
	Days     int
}

func (e *InsufficientServiceError) Error() string {
	return fmt.Sprintf("worker must complete at least one full month in period %s (hired %s: %d months, %d days)",
		e.Window.Label(), e.HireDate.Format(dateutil.DateLayout), e.Months, e.Days)
}

func (e *InsufficientServiceError) Is(target error) bool {
	return target == ErrInsufficientService
}

// InvalidInputError reports a malformed or out-of-range input field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ErrorKind classifies an error for reports: "insufficient_service",
// "invalid_input" or "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientService):
		return "insufficient_service"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
