package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PensionCalculator computes the monthly pension withholding under ONP or an AFP.
type PensionCalculator struct {
	Params domain.LegalParameters
}

// NewPensionCalculator creates a pension calculator with the configured rates.
func NewPensionCalculator(params domain.LegalParameters) *PensionCalculator {
	return &PensionCalculator{Params: params}
}

// MonthlyDiscount returns the total monthly pension withholding.
func (pc *PensionCalculator) MonthlyDiscount(monthlyGross decimal.Decimal, scheme domain.PensionScheme) decimal.Decimal {
	return pc.Discount(monthlyGross, scheme).Total
}

// Discount splits the withholding into its parts. ONP charges a flat rate;
// an AFP charges the insurance premium, the mandatory contribution and the
// provider's variable commission.
func (pc *PensionCalculator) Discount(monthlyGross decimal.Decimal, scheme domain.PensionScheme) domain.PensionDiscount {
	if scheme.System == domain.PensionONP {
		contribution := monthlyGross.Mul(pc.Params.ONPRate)
		return domain.PensionDiscount{
			Scheme:       scheme,
			Insurance:    decimal.Zero,
			Contribution: contribution,
			Commission:   decimal.Zero,
			Total:        contribution,
		}
	}

	insurance := monthlyGross.Mul(pc.Params.AFPInsuranceRate)
	contribution := monthlyGross.Mul(pc.Params.AFPMandatoryRate)
	commission := monthlyGross.Mul(pc.Params.AFPCommission(scheme.Provider))
	return domain.PensionDiscount{
		Scheme:       scheme,
		Insurance:    insurance,
		Contribution: contribution,
		Commission:   commission,
		Total:        insurance.Add(contribution).Add(commission),
	}
}
