package output

import (
	"fmt"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the statutory values rendered in detailed outputs
// when a report carries none of its own.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultLegalParameters())

// GenerateAssumptions creates the assumptions list from the parameters in use
func GenerateAssumptions(p domain.LegalParameters) []string {
	return []string{
		fmt.Sprintf("UIT: %s; tax exemption %s UIT (%s)", FormatCurrency(p.UnitValue),
			p.ExemptionUnits.String(), FormatCurrency(p.UnitValue.Mul(p.ExemptionUnits))),
		fmt.Sprintf("Family allowance: %s", FormatCurrency(p.FamilyAllowance)),
		fmt.Sprintf("Extraordinary bonus: %s EsSalud, %s EPS",
			FormatPercentage(p.ExtraordinaryBonusRate), FormatPercentage(p.ExtraordinaryBonusRateEPS)),
		fmt.Sprintf("ONP: %s; AFP insurance %s + mandatory %s + provider commission",
			FormatPercentage(p.ONPRate), FormatPercentage(p.AFPInsuranceRate), FormatPercentage(p.AFPMandatoryRate)),
		fmt.Sprintf("Instructor pay: up to %d weekly hours x %d weeks, default rate %s",
			p.MaxWeeklyHours, p.WeeksPerMonth, FormatCurrency(p.DefaultHourlyRate)),
		"CTS: micro and small companies pay 50%; gratification: micro companies pay none",
	}
}

var decimalHundred = decimal.NewFromInt(100)
