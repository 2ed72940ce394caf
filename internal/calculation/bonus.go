package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	money "github.com/laborcalc/benefits-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BonusCalculator computes the July and December gratification together with
// the extraordinary bonus that replaces the employer's health contribution.
type BonusCalculator struct {
	Aggregator *RemunerationAggregator
	Params     domain.LegalParameters
	Logger     Logger
}

// NewBonusCalculator creates a gratification calculator for the given parameters.
func NewBonusCalculator(params domain.LegalParameters) *BonusCalculator {
	return &BonusCalculator{
		Aggregator: NewRemunerationAggregator(params),
		Params:     params,
		Logger:     NopLogger{},
	}
}

// Calculate returns the gratification breakdown of a worker for a jan_jun or
// jul_dec period. Micro companies get a zero breakdown with status
// not_eligible_regime and no error.
func (bc *BonusCalculator) Calculate(w domain.WorkerRecord, referenceYear int) (*domain.BonusBreakdown, error) {
	if err := validateRegime(w.Regime); err != nil {
		return nil, err
	}
	if !w.Regime.ReceivesGratification() {
		return notEligibleBonus(w), nil
	}
	if err := validateWorker(&w); err != nil {
		return nil, err
	}
	switch w.HealthInsurance {
	case domain.InsuranceEsSalud, domain.InsuranceEPS:
	default:
		return nil, invalidInput("health_insurance", "must be essalud or eps, got %q", w.HealthInsurance)
	}
	window, err := resolveWindow(&w, referenceYear, domain.PeriodKind.IsBonusPeriod, "gratification")
	if err != nil {
		return nil, err
	}
	months, days, err := checkService(w.HireDate, window)
	if err != nil {
		return nil, err
	}

	// Prior bonus, regular bonuses and overtime do not enter the gratification base.
	salary := BaseSalary(w.Salary)
	commissions := ComponentAverage(w.Commissions)
	allowance := bc.Aggregator.Allowance(w.FamilyAllowance)
	computable := salary.Add(commissions).Add(allowance)

	credited := creditedDays(days, w.Absences)
	total := money.NewMoneyFromDecimal(computable)
	byMonth := total.Prorate(int64(months), 6)
	byDay := total.Prorate(int64(credited), 6*30)
	truncated := byMonth.Add(byDay)
	rate := bc.Params.ExtraordinaryRateFor(w.HealthInsurance)
	extraordinary := truncated.Percent(rate)
	final := truncated.Add(extraordinary)

	bc.Logger.Debugf("gratification %s: %d months, %d days (%d credited), truncated %s, total %s",
		window.Kind, months, days, credited, truncated.String(), final.String())

	return &domain.BonusBreakdown{
		Worker:             w.Name,
		Status:             domain.BonusComputed,
		Period:             window,
		Regime:             w.Regime,
		HealthInsurance:    w.HealthInsurance,
		MonthsWorked:       months,
		DaysWorked:         days,
		Absences:           w.Absences,
		DaysCredited:       credited,
		SalaryAverage:      salary,
		CommissionsAverage: commissions,
		FamilyAllowance:    allowance,
		TotalComputable:    computable,
		AmountByMonth:      byMonth.Decimal,
		AmountByDay:        byDay.Decimal,
		Truncated:          truncated.Decimal,
		ExtraordinaryRate:  rate,
		ExtraordinaryBonus: extraordinary.Decimal,
		Total:              final.Decimal,
	}, nil
}

func notEligibleBonus(w domain.WorkerRecord) *domain.BonusBreakdown {
	return &domain.BonusBreakdown{
		Worker:             w.Name,
		Status:             domain.BonusNotEligibleRegime,
		Period:             domain.PeriodWindow{Kind: w.Period, ReferenceYear: w.ReferenceYear},
		Regime:             w.Regime,
		HealthInsurance:    w.HealthInsurance,
		SalaryAverage:      decimal.Zero,
		CommissionsAverage: decimal.Zero,
		FamilyAllowance:    decimal.Zero,
		TotalComputable:    decimal.Zero,
		AmountByMonth:      decimal.Zero,
		AmountByDay:        decimal.Zero,
		Truncated:          decimal.Zero,
		ExtraordinaryRate:  decimal.Zero,
		ExtraordinaryBonus: decimal.Zero,
		Total:              decimal.Zero,
	}
}
