package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// IncomeTaxCalculator projects the annual fifth-category income tax of a
// monthly remuneration and derives the monthly withholding.
type IncomeTaxCalculator struct {
	UnitValue            decimal.Decimal
	ExemptionUnits       decimal.Decimal
	Brackets             []domain.TaxBracket
	GratificationFactors domain.RegimeFactors
	ExtraordinaryRate    decimal.Decimal
}

// NewIncomeTaxCalculator creates a tax calculator with the configured brackets.
func NewIncomeTaxCalculator(params domain.LegalParameters) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		UnitValue:            params.UnitValue,
		ExemptionUnits:       params.ExemptionUnits,
		Brackets:             params.TaxBrackets,
		GratificationFactors: params.TaxGratificationFactors,
		ExtraordinaryRate:    params.ExtraordinaryBonusRate,
	}
}

// Exemption returns the annual amount exempt from tax (7 UIT by default).
func (tc *IncomeTaxCalculator) Exemption() decimal.Decimal {
	return tc.UnitValue.Mul(tc.ExemptionUnits)
}

// MonthlyWithholding returns the monthly tax withheld from monthlyGross.
func (tc *IncomeTaxCalculator) MonthlyWithholding(monthlyGross decimal.Decimal, regime domain.CompanyRegime) decimal.Decimal {
	return tc.Project(monthlyGross, regime).MonthlyWithholding
}

// Project annualizes monthlyGross (twelve salaries, the regime's gratifications
// and the extraordinary bonus), taxes the excess over the exemption through the
// marginal brackets and spreads the annual tax over twelve months.
func (tc *IncomeTaxCalculator) Project(monthlyGross decimal.Decimal, regime domain.CompanyRegime) domain.IncomeTaxBreakdown {
	annual := monthlyGross.Mul(monthsPerYear)
	gratifications := monthlyGross.Mul(tc.GratificationFactors.For(regime))
	extraordinary := monthlyGross.Mul(tc.ExtraordinaryRate)
	totalIncome := annual.Add(gratifications).Add(extraordinary)
	exemption := tc.Exemption()

	b := domain.IncomeTaxBreakdown{
		MonthlyGross:       monthlyGross,
		AnnualRemuneration: annual,
		Gratifications:     gratifications,
		ExtraordinaryBonus: extraordinary,
		TotalAnnualIncome:  totalIncome,
		Exemption:          exemption,
		Excess:             decimal.Zero,
		AnnualTax:          decimal.Zero,
		MonthlyWithholding: decimal.Zero,
	}
	excess := totalIncome.Sub(exemption)
	if excess.LessThanOrEqual(decimal.Zero) {
		return b
	}
	b.Excess = excess
	b.AnnualTax, b.Brackets = tc.AnnualTax(excess)
	b.MonthlyWithholding = b.AnnualTax.Div(monthsPerYear)
	return b
}

// AnnualTax applies the marginal brackets to the taxable excess. Each bracket
// taxes only the part of the excess inside its band.
func (tc *IncomeTaxCalculator) AnnualTax(excess decimal.Decimal) (decimal.Decimal, []domain.BracketCharge) {
	total := decimal.Zero
	charges := make([]domain.BracketCharge, 0, len(tc.Brackets))
	for _, bracket := range tc.Brackets {
		lower := bracket.LowerUnits.Mul(tc.UnitValue)
		taxable := decimal.Max(decimal.Zero, excess.Sub(lower))
		if bracket.WidthUnits.IsPositive() {
			taxable = decimal.Min(taxable, bracket.WidthUnits.Mul(tc.UnitValue))
		}
		tax := taxable.Mul(bracket.Rate)
		total = total.Add(tax)
		charges = append(charges, domain.BracketCharge{Rate: bracket.Rate, Taxable: taxable, Tax: tax})
	}
	return total, charges
}
