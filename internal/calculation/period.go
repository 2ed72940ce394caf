package calculation

import (
	"time"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
)

const (
	// FullPeriodMonths is credited to workers hired before the window opens.
	FullPeriodMonths = 6

	// MinimumServiceDays qualifies a worker who has not completed a whole month.
	MinimumServiceDays = 30
)

// MonthsAndDaysWorked returns the months and remainder days a worker hired on
// hireDate is credited inside window. Workers hired before the window starts
// get the full six months; hires after the window end get (0, 0).
func MonthsAndDaysWorked(hireDate time.Time, window domain.PeriodWindow) (months, days int) {
	if dateutil.DateOnly(hireDate).Before(window.Start) {
		return FullPeriodMonths, 0
	}
	return dateutil.MonthsAndDays(hireDate, window.End)
}

// IsEligible applies the minimum-service rule: one whole month, or at least
// thirty days when the span does not complete a calendar month.
func IsEligible(months, days int) bool {
	return months >= 1 || days >= MinimumServiceDays
}

// checkService computes the credited service and fails with
// *InsufficientServiceError when the worker does not qualify.
func checkService(hireDate time.Time, window domain.PeriodWindow) (months, days int, err error) {
	months, days = MonthsAndDaysWorked(hireDate, window)
	if !IsEligible(months, days) {
		return 0, 0, &InsufficientServiceError{Window: window, HireDate: hireDate, Months: months, Days: days}
	}
	return months, days, nil
}

// creditedDays removes absences from the remainder days without going below zero.
func creditedDays(days, absences int) int {
	return max(0, days-absences)
}

// resolveWindow validates the period of a worker record against the benefit
// being computed and returns its dates for the reference year.
func resolveWindow(w *domain.WorkerRecord, referenceYear int, accept func(domain.PeriodKind) bool, benefit string) (domain.PeriodWindow, error) {
	if w.ReferenceYear != 0 {
		referenceYear = w.ReferenceYear
	}
	if referenceYear <= 0 {
		return domain.PeriodWindow{}, invalidInput("reference_year", "must be a positive year, got %d", referenceYear)
	}
	if !accept(w.Period) {
		return domain.PeriodWindow{}, invalidInput("period", "%q is not a %s period", w.Period, benefit)
	}
	return w.Period.Window(referenceYear)
}
