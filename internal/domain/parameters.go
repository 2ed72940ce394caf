package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one marginal band of the fifth-category income tax, expressed
// in multiples of the tax unit (UIT). A zero width marks the open top band.
type TaxBracket struct {
	LowerUnits decimal.Decimal `yaml:"lower_units" json:"lower_units"`
	WidthUnits decimal.Decimal `yaml:"width_units" json:"width_units"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// RegimeFactors holds one multiplier per company regime.
type RegimeFactors struct {
	General decimal.Decimal `yaml:"general" json:"general"`
	Small   decimal.Decimal `yaml:"small" json:"small"`
	Micro   decimal.Decimal `yaml:"micro" json:"micro"`
}

// For returns the factor of a regime.
func (f RegimeFactors) For(r CompanyRegime) decimal.Decimal {
	switch r {
	case RegimeSmall:
		return f.Small
	case RegimeMicro:
		return f.Micro
	default:
		return f.General
	}
}

// LegalParameters collects every statutory constant the calculators use
// (updated when the UIT or pension commissions change).
type LegalParameters struct {
	// Tax unit (UIT) and fifth-category income tax
	UnitValue               decimal.Decimal `yaml:"unit_value" json:"unit_value"`                               // Default: 5150
	ExemptionUnits          decimal.Decimal `yaml:"exemption_units" json:"exemption_units"`                     // Default: 7
	TaxBrackets             []TaxBracket    `yaml:"tax_brackets" json:"tax_brackets"`                           // 8/14/17/20/30%
	TaxGratificationFactors RegimeFactors   `yaml:"tax_gratification_factors" json:"tax_gratification_factors"` // Default: 2 / 1 / 0

	// Withholding applies only above UnitValue*ExemptionUnits/divisor per month
	WithholdingDivisor      decimal.Decimal `yaml:"withholding_divisor" json:"withholding_divisor"`             // Default: 14
	WithholdingDivisorMicro decimal.Decimal `yaml:"withholding_divisor_micro" json:"withholding_divisor_micro"` // Default: 12

	// Remuneration components
	FamilyAllowance decimal.Decimal `yaml:"family_allowance" json:"family_allowance"` // Default: 102.50

	// Extraordinary bonus paid with gratifications (Ley 30334)
	ExtraordinaryBonusRate    decimal.Decimal `yaml:"extraordinary_bonus_rate" json:"extraordinary_bonus_rate"`         // Default: 0.09 (EsSalud)
	ExtraordinaryBonusRateEPS decimal.Decimal `yaml:"extraordinary_bonus_rate_eps" json:"extraordinary_bonus_rate_eps"` // Default: 0.0675 (EPS)

	// Pension systems
	ONPRate          decimal.Decimal                 `yaml:"onp_rate" json:"onp_rate"`                     // Default: 0.13
	AFPInsuranceRate decimal.Decimal                 `yaml:"afp_insurance_rate" json:"afp_insurance_rate"` // Default: 0.017
	AFPMandatoryRate decimal.Decimal                 `yaml:"afp_mandatory_rate" json:"afp_mandatory_rate"` // Default: 0.10
	AFPCommissions   map[AFPProvider]decimal.Decimal `yaml:"afp_commissions" json:"afp_commissions"`

	// Instructor pay
	MaxWeeklyHours         int             `yaml:"max_weekly_hours" json:"max_weekly_hours"`                   // Default: 23
	WeeksPerMonth          int             `yaml:"weeks_per_month" json:"weeks_per_month"`                     // Default: 4
	DefaultHourlyRate      decimal.Decimal `yaml:"default_hourly_rate" json:"default_hourly_rate"`             // Default: 50
	OvertimeFirstTierHours int             `yaml:"overtime_first_tier_hours" json:"overtime_first_tier_hours"` // Default: 2
	OvertimeFirstTierRate  decimal.Decimal `yaml:"overtime_first_tier_rate" json:"overtime_first_tier_rate"`   // Default: 1.25
	OvertimeSecondTierRate decimal.Decimal `yaml:"overtime_second_tier_rate" json:"overtime_second_tier_rate"` // Default: 1.35
}

// DefaultLegalParameters returns the 2024 statutory values.
func DefaultLegalParameters() LegalParameters {
	return LegalParameters{
		UnitValue:      decimal.NewFromInt(5150),
		ExemptionUnits: decimal.NewFromInt(7),
		TaxBrackets: []TaxBracket{
			{LowerUnits: decimal.Zero, WidthUnits: decimal.NewFromInt(5), Rate: decimal.NewFromFloat(0.08)},
			{LowerUnits: decimal.NewFromInt(5), WidthUnits: decimal.NewFromInt(15), Rate: decimal.NewFromFloat(0.14)},
			{LowerUnits: decimal.NewFromInt(20), WidthUnits: decimal.NewFromInt(15), Rate: decimal.NewFromFloat(0.17)},
			{LowerUnits: decimal.NewFromInt(35), WidthUnits: decimal.NewFromInt(10), Rate: decimal.NewFromFloat(0.20)},
			{LowerUnits: decimal.NewFromInt(45), WidthUnits: decimal.Zero, Rate: decimal.NewFromFloat(0.30)},
		},
		TaxGratificationFactors: RegimeFactors{
			General: decimal.NewFromInt(2),
			Small:   decimal.NewFromInt(1),
			Micro:   decimal.Zero,
		},
		WithholdingDivisor:        decimal.NewFromInt(14),
		WithholdingDivisorMicro:   decimal.NewFromInt(12),
		FamilyAllowance:           decimal.NewFromFloat(102.50),
		ExtraordinaryBonusRate:    decimal.NewFromFloat(0.09),
		ExtraordinaryBonusRateEPS: decimal.NewFromFloat(0.0675),
		ONPRate:                   decimal.NewFromFloat(0.13),
		AFPInsuranceRate:          decimal.NewFromFloat(0.017),
		AFPMandatoryRate:          decimal.NewFromFloat(0.10),
		AFPCommissions: map[AFPProvider]decimal.Decimal{
			AFPHabitat:   decimal.NewFromFloat(0.0147),
			AFPIntegra:   decimal.NewFromFloat(0.0155),
			AFPPrima:     decimal.NewFromFloat(0.016),
			AFPProfuturo: decimal.NewFromFloat(0.0169),
		},
		MaxWeeklyHours:         23,
		WeeksPerMonth:          4,
		DefaultHourlyRate:      decimal.NewFromInt(50),
		OvertimeFirstTierHours: 2,
		OvertimeFirstTierRate:  decimal.NewFromFloat(1.25),
		OvertimeSecondTierRate: decimal.NewFromFloat(1.35),
	}
}

// ExtraordinaryRateFor returns the extraordinary bonus rate of an insurance scheme.
func (p LegalParameters) ExtraordinaryRateFor(h HealthInsurance) decimal.Decimal {
	if h == InsuranceEPS {
		return p.ExtraordinaryBonusRateEPS
	}
	return p.ExtraordinaryBonusRate
}

// AFPCommission returns the variable commission of a provider, falling back
// to Integra's rate for providers missing from the table.
func (p LegalParameters) AFPCommission(provider AFPProvider) decimal.Decimal {
	if rate, ok := p.AFPCommissions[provider]; ok {
		return rate
	}
	return p.AFPCommissions[AFPIntegra]
}
