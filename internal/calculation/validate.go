package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func validateRegime(r domain.CompanyRegime) error {
	switch r {
	case domain.RegimeGeneral, domain.RegimeMicro, domain.RegimeSmall:
		return nil
	}
	return invalidInput("regime", "unknown company regime %q", r)
}

// validateWorker checks the fields shared by the CTS and gratification calculators.
func validateWorker(w *domain.WorkerRecord) error {
	if w.HireDate.IsZero() {
		return invalidInput("hire_date", "is required")
	}
	if err := validateRegime(w.Regime); err != nil {
		return err
	}
	switch w.Salary.Kind() {
	case domain.SalaryFixed:
		if w.Salary.Amount().IsNegative() {
			return invalidInput("salary", "fixed amount cannot be negative")
		}
	case domain.SalaryVariable:
		for i, v := range w.Salary.Slots() {
			if v.IsNegative() {
				return invalidInput("salary", "sample %d cannot be negative", i+1)
			}
		}
	default:
		return invalidInput("salary", "a fixed amount or variable samples are required")
	}
	if w.PriorBonus.IsNegative() {
		return invalidInput("prior_bonus", "cannot be negative")
	}
	if w.Absences < 0 {
		return invalidInput("absences", "cannot be negative")
	}
	components := []struct {
		field string
		c     domain.OptionalComponent
	}{
		{"commissions", w.Commissions},
		{"regular_bonuses", w.RegularBonuses},
		{"overtime", w.Overtime},
	}
	for _, item := range components {
		if err := validateComponent(item.field, item.c); err != nil {
			return err
		}
	}
	return nil
}

func validateComponent(field string, c domain.OptionalComponent) error {
	if len(c.Samples) > domain.SemesterSlots {
		return invalidInput(field, "accepts at most %d samples, got %d", domain.SemesterSlots, len(c.Samples))
	}
	for i, v := range c.Samples {
		if v.IsNegative() {
			return invalidInput(field, "sample %d cannot be negative", i+1)
		}
	}
	return nil
}

// validatePay checks hours, rate and pension scheme of an instructor pay request.
func validatePay(in *domain.PayInput, maxWeeklyHours int) error {
	if err := validateRegime(in.Regime); err != nil {
		return err
	}
	if in.WeeklyHours < 0 || in.WeeklyHours > maxWeeklyHours {
		return invalidInput("weekly_hours", "must be between 0 and %d, got %d", maxWeeklyHours, in.WeeklyHours)
	}
	if in.OvertimeHours < 0 {
		return invalidInput("overtime_hours", "cannot be negative, got %d", in.OvertimeHours)
	}
	if in.HourlyRate.LessThan(decimal.Zero) {
		return invalidInput("hourly_rate", "cannot be negative")
	}
	switch in.Pension.System {
	case domain.PensionONP, domain.PensionAFP:
	default:
		return invalidInput("pension", "unknown pension system %q", in.Pension.System)
	}
	return nil
}
