package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	money "github.com/laborcalc/benefits-calculator/pkg/decimal"
)

// SeveranceCalculator computes the semiannual CTS deposit.
type SeveranceCalculator struct {
	Aggregator *RemunerationAggregator
	Logger     Logger
}

// NewSeveranceCalculator creates a CTS calculator for the given parameters.
func NewSeveranceCalculator(params domain.LegalParameters) *SeveranceCalculator {
	return &SeveranceCalculator{
		Aggregator: NewRemunerationAggregator(params),
		Logger:     NopLogger{},
	}
}

// Calculate returns the CTS breakdown of a worker for a nov_apr or may_oct
// period of the reference year (the record's own reference year wins when set).
//
// The computable remuneration is prorated as total/12 per month and total/360
// per credited day; micro and small companies pay half of both amounts.
func (sc *SeveranceCalculator) Calculate(w domain.WorkerRecord, referenceYear int) (*domain.CTSBreakdown, error) {
	if err := validateWorker(&w); err != nil {
		return nil, err
	}
	window, err := resolveWindow(&w, referenceYear, domain.PeriodKind.IsSeverancePeriod, "CTS")
	if err != nil {
		return nil, err
	}
	months, days, err := checkService(w.HireDate, window)
	if err != nil {
		return nil, err
	}

	rem := sc.Aggregator.Computable(RemunerationInput{
		Salary:          w.Salary,
		FamilyAllowance: w.FamilyAllowance,
		PriorBonus:      w.PriorBonus,
		Commissions:     w.Commissions,
		RegularBonuses:  w.RegularBonuses,
		Overtime:        w.Overtime,
	})

	credited := creditedDays(days, w.Absences)
	total := money.NewMoneyFromDecimal(rem.Total)
	byMonth := total.Prorate(int64(months), 12)
	byDay := total.Prorate(int64(credited), 360)
	if w.Regime.HalvesCTS() {
		byMonth = byMonth.Half()
		byDay = byDay.Half()
	}
	cts := byMonth.Add(byDay)

	sc.Logger.Debugf("cts %s: %d months, %d days (%d credited), computable %s, total %s",
		window.Kind, months, days, credited, rem.Total.StringFixed(2), cts.String())

	return &domain.CTSBreakdown{
		Worker:             w.Name,
		Period:             window,
		Regime:             w.Regime,
		MonthsWorked:       months,
		DaysWorked:         days,
		Absences:           w.Absences,
		DaysCredited:       credited,
		BaseRemuneration:   rem.Base,
		FamilyAllowance:    rem.FamilyAllowance,
		BonusShare:         rem.BonusShare,
		OvertimeAverage:    rem.Overtime,
		CommissionsAverage: rem.Commissions,
		BonusesAverage:     rem.RegularBonuses,
		TotalComputable:    rem.Total,
		Halved:             w.Regime.HalvesCTS(),
		AmountByMonth:      byMonth.Decimal,
		AmountByDay:        byDay.Decimal,
		Total:              cts.Decimal,
	}, nil
}
