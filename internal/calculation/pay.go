package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PayCalculator computes the net monthly pay of an hourly instructor.
type PayCalculator struct {
	Params  domain.LegalParameters
	Tax     *IncomeTaxCalculator
	Pension *PensionCalculator
	Logger  Logger
}

// NewPayCalculator creates a pay calculator sharing the given parameters.
func NewPayCalculator(params domain.LegalParameters) *PayCalculator {
	return &PayCalculator{
		Params:  params,
		Tax:     NewIncomeTaxCalculator(params),
		Pension: NewPensionCalculator(params),
		Logger:  NopLogger{},
	}
}

// Calculate returns the pay breakdown of an instructor. A zero hourly rate
// selects the configured default rate.
func (pc *PayCalculator) Calculate(in domain.PayInput) (*domain.PayBreakdown, error) {
	if err := validatePay(&in, pc.Params.MaxWeeklyHours); err != nil {
		return nil, err
	}
	rate := in.HourlyRate
	if rate.IsZero() {
		rate = pc.Params.DefaultHourlyRate
	}

	grossBase := rate.Mul(decimal.NewFromInt(int64(in.WeeklyHours * pc.Params.WeeksPerMonth)))
	overtime := pc.OvertimePay(in.OvertimeHours, rate)
	allowance := decimal.Zero
	if in.FamilyAllowance {
		allowance = pc.Params.FamilyAllowance
	}
	grossTotal := grossBase.Add(overtime).Add(allowance)

	threshold := pc.WithholdingThreshold(in.Regime)
	b := &domain.PayBreakdown{
		Worker:          in.Name,
		Regime:          in.Regime,
		WeeklyHours:     in.WeeklyHours,
		OvertimeHours:   in.OvertimeHours,
		HourlyRate:      rate,
		GrossBase:       grossBase,
		OvertimePay:     overtime,
		FamilyAllowance: allowance,
		GrossTotal:      grossTotal,
		TaxThreshold:    threshold,
		IncomeTax:       decimal.Zero,
	}
	if grossTotal.GreaterThan(threshold) {
		projection := pc.Tax.Project(grossTotal, in.Regime)
		b.Tax = &projection
		b.IncomeTax = projection.MonthlyWithholding
	}
	b.Pension = pc.Pension.Discount(grossTotal, in.Pension)
	b.TotalDiscount = b.IncomeTax.Add(b.Pension.Total)
	b.Net = grossTotal.Sub(b.TotalDiscount)
	b.ExtraordinaryBonus = b.Net.Mul(pc.Params.ExtraordinaryBonusRate)

	pc.Logger.Debugf("pay: gross %s, tax %s, pension %s, net %s",
		grossTotal.StringFixed(2), b.IncomeTax.StringFixed(2), b.Pension.Total.StringFixed(2), b.Net.StringFixed(2))
	return b, nil
}

// OvertimePay pays the first tier of hours (2 by default) at 125% of the rate
// and every further hour at 135%.
func (pc *PayCalculator) OvertimePay(hours int, rate decimal.Decimal) decimal.Decimal {
	if hours <= 0 {
		return decimal.Zero
	}
	first := min(hours, pc.Params.OvertimeFirstTierHours)
	rest := hours - first
	pay := rate.Mul(pc.Params.OvertimeFirstTierRate).Mul(decimal.NewFromInt(int64(first)))
	if rest > 0 {
		pay = pay.Add(rate.Mul(pc.Params.OvertimeSecondTierRate).Mul(decimal.NewFromInt(int64(rest))))
	}
	return pay
}

// WithholdingThreshold is the monthly gross above which income tax is
// withheld: 7 UIT / 12 for micro companies and 7 UIT / 14 otherwise.
func (pc *PayCalculator) WithholdingThreshold(regime domain.CompanyRegime) decimal.Decimal {
	divisor := pc.Params.WithholdingDivisor
	if regime == domain.RegimeMicro {
		divisor = pc.Params.WithholdingDivisorMicro
	}
	return pc.Params.UnitValue.Mul(pc.Params.ExemptionUnits).Div(divisor)
}
