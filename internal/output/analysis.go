package output

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Totals aggregates the amounts of every successful outcome in a report.
type Totals struct {
	CTS                decimal.Decimal
	Gratification      decimal.Decimal
	ExtraordinaryBonus decimal.Decimal
	GrossPay           decimal.Decimal
	NetPay             decimal.Decimal
	Counts             map[domain.CalculationKind]int
	NotEligible        int
	Failed             int
}

// SummarizeReport adds up the report per calculation kind. Ineligible
// gratifications are counted separately and contribute zero.
func SummarizeReport(report *domain.BatchReport) Totals {
	t := Totals{
		CTS:                decimal.Zero,
		Gratification:      decimal.Zero,
		ExtraordinaryBonus: decimal.Zero,
		GrossPay:           decimal.Zero,
		NetPay:             decimal.Zero,
		Counts:             map[domain.CalculationKind]int{},
	}
	for _, o := range report.Outcomes {
		if o.Failed() {
			t.Failed++
			continue
		}
		t.Counts[o.Kind]++
		switch {
		case o.CTS != nil:
			t.CTS = t.CTS.Add(o.CTS.Total)
		case o.Bonus != nil:
			if !o.Bonus.Eligible() {
				t.NotEligible++
			}
			t.Gratification = t.Gratification.Add(o.Bonus.Total)
			t.ExtraordinaryBonus = t.ExtraordinaryBonus.Add(o.Bonus.ExtraordinaryBonus)
		case o.Pay != nil:
			t.GrossPay = t.GrossPay.Add(o.Pay.GrossTotal)
			t.NetPay = t.NetPay.Add(o.Pay.Net)
		}
	}
	return t
}

// outcomeTotal is the headline amount of an outcome: CTS total, gratification
// total or net pay.
func outcomeTotal(o domain.CalculationOutcome) decimal.Decimal {
	switch {
	case o.CTS != nil:
		return o.CTS.Total
	case o.Bonus != nil:
		return o.Bonus.Total
	case o.Pay != nil:
		return o.Pay.Net
	}
	return decimal.Zero
}

// outcomeStatus is "ok", "not_eligible_regime" or the error kind.
func outcomeStatus(o domain.CalculationOutcome) string {
	switch {
	case o.Failed():
		return o.ErrorKind
	case o.Bonus != nil && !o.Bonus.Eligible():
		return string(o.Bonus.Status)
	}
	return "ok"
}

// outcomePeriod returns the period kind of CTS and gratification outcomes.
func outcomePeriod(o domain.CalculationOutcome) string {
	switch {
	case o.CTS != nil:
		return string(o.CTS.Period.Kind)
	case o.Bonus != nil:
		return string(o.Bonus.Period.Kind)
	}
	return ""
}

// outcomeRegime returns the company regime of a successful outcome.
func outcomeRegime(o domain.CalculationOutcome) string {
	switch {
	case o.CTS != nil:
		return string(o.CTS.Regime)
	case o.Bonus != nil:
		return string(o.Bonus.Regime)
	case o.Pay != nil:
		return string(o.Pay.Regime)
	}
	return ""
}
