package domain

import (
	"github.com/shopspring/decimal"
)

// CTSBreakdown is the full result of a severance (CTS) calculation.
type CTSBreakdown struct {
	Worker       string        `json:"worker,omitempty" yaml:"worker,omitempty"`
	Period       PeriodWindow  `json:"period" yaml:"period"`
	Regime       CompanyRegime `json:"regime" yaml:"regime"`
	MonthsWorked int           `json:"months_worked" yaml:"months_worked"`
	DaysWorked   int           `json:"days_worked" yaml:"days_worked"`
	Absences     int           `json:"absences" yaml:"absences"`
	DaysCredited int           `json:"days_credited" yaml:"days_credited"`

	BaseRemuneration   decimal.Decimal `json:"base_remuneration" yaml:"base_remuneration"`
	FamilyAllowance    decimal.Decimal `json:"family_allowance" yaml:"family_allowance"`
	BonusShare         decimal.Decimal `json:"bonus_share" yaml:"bonus_share"`
	OvertimeAverage    decimal.Decimal `json:"overtime_average" yaml:"overtime_average"`
	CommissionsAverage decimal.Decimal `json:"commissions_average" yaml:"commissions_average"`
	BonusesAverage     decimal.Decimal `json:"bonuses_average" yaml:"bonuses_average"`
	TotalComputable    decimal.Decimal `json:"total_computable" yaml:"total_computable"`

	Halved        bool            `json:"halved" yaml:"halved"`
	AmountByMonth decimal.Decimal `json:"amount_by_month" yaml:"amount_by_month"`
	AmountByDay   decimal.Decimal `json:"amount_by_day" yaml:"amount_by_day"`
	Total         decimal.Decimal `json:"total" yaml:"total"`
}

// BonusStatus tells a computed gratification apart from the defined zero
// outcome of regimes that do not receive one.
type BonusStatus string

const (
	BonusComputed          BonusStatus = "computed"
	BonusNotEligibleRegime BonusStatus = "not_eligible_regime"
)

// BonusBreakdown is the full result of a gratification calculation.
type BonusBreakdown struct {
	Worker          string          `json:"worker,omitempty" yaml:"worker,omitempty"`
	Status          BonusStatus     `json:"status" yaml:"status"`
	Period          PeriodWindow    `json:"period" yaml:"period"`
	Regime          CompanyRegime   `json:"regime" yaml:"regime"`
	HealthInsurance HealthInsurance `json:"health_insurance,omitempty" yaml:"health_insurance,omitempty"`
	MonthsWorked    int             `json:"months_worked" yaml:"months_worked"`
	DaysWorked      int             `json:"days_worked" yaml:"days_worked"`
	Absences        int             `json:"absences" yaml:"absences"`
	DaysCredited    int             `json:"days_credited" yaml:"days_credited"`

	SalaryAverage      decimal.Decimal `json:"salary_average" yaml:"salary_average"`
	CommissionsAverage decimal.Decimal `json:"commissions_average" yaml:"commissions_average"`
	FamilyAllowance    decimal.Decimal `json:"family_allowance" yaml:"family_allowance"`
	TotalComputable    decimal.Decimal `json:"total_computable" yaml:"total_computable"`

	AmountByMonth      decimal.Decimal `json:"amount_by_month" yaml:"amount_by_month"`
	AmountByDay        decimal.Decimal `json:"amount_by_day" yaml:"amount_by_day"`
	Truncated          decimal.Decimal `json:"truncated" yaml:"truncated"`
	ExtraordinaryRate  decimal.Decimal `json:"extraordinary_rate" yaml:"extraordinary_rate"`
	ExtraordinaryBonus decimal.Decimal `json:"extraordinary_bonus" yaml:"extraordinary_bonus"`
	Total              decimal.Decimal `json:"total" yaml:"total"`
}

// Eligible reports whether the regime receives a gratification at all.
func (b *BonusBreakdown) Eligible() bool {
	return b.Status == BonusComputed
}

// BracketCharge is the tax charged inside one income-tax bracket.
type BracketCharge struct {
	Rate    decimal.Decimal `json:"rate" yaml:"rate"`
	Taxable decimal.Decimal `json:"taxable" yaml:"taxable"`
	Tax     decimal.Decimal `json:"tax" yaml:"tax"`
}

// IncomeTaxBreakdown details the annualized fifth-category tax projection.
type IncomeTaxBreakdown struct {
	MonthlyGross       decimal.Decimal `json:"monthly_gross" yaml:"monthly_gross"`
	AnnualRemuneration decimal.Decimal `json:"annual_remuneration" yaml:"annual_remuneration"`
	Gratifications     decimal.Decimal `json:"gratifications" yaml:"gratifications"`
	ExtraordinaryBonus decimal.Decimal `json:"extraordinary_bonus" yaml:"extraordinary_bonus"`
	TotalAnnualIncome  decimal.Decimal `json:"total_annual_income" yaml:"total_annual_income"`
	Exemption          decimal.Decimal `json:"exemption" yaml:"exemption"`
	Excess             decimal.Decimal `json:"excess" yaml:"excess"`
	Brackets           []BracketCharge `json:"brackets,omitempty" yaml:"brackets,omitempty"`
	AnnualTax          decimal.Decimal `json:"annual_tax" yaml:"annual_tax"`
	MonthlyWithholding decimal.Decimal `json:"monthly_withholding" yaml:"monthly_withholding"`
}

// PensionDiscount splits the monthly pension withholding into its parts.
// ONP discounts report everything under Contribution.
type PensionDiscount struct {
	Scheme       PensionScheme   `json:"scheme" yaml:"scheme"`
	Insurance    decimal.Decimal `json:"insurance" yaml:"insurance"`
	Contribution decimal.Decimal `json:"contribution" yaml:"contribution"`
	Commission   decimal.Decimal `json:"commission" yaml:"commission"`
	Total        decimal.Decimal `json:"total" yaml:"total"`
}

// PayBreakdown is the full result of an instructor pay calculation.
type PayBreakdown struct {
	Worker        string          `json:"worker,omitempty" yaml:"worker,omitempty"`
	Regime        CompanyRegime   `json:"regime" yaml:"regime"`
	WeeklyHours   int             `json:"weekly_hours" yaml:"weekly_hours"`
	OvertimeHours int             `json:"overtime_hours" yaml:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" yaml:"hourly_rate"`

	GrossBase       decimal.Decimal `json:"gross_base" yaml:"gross_base"`
	OvertimePay     decimal.Decimal `json:"overtime_pay" yaml:"overtime_pay"`
	FamilyAllowance decimal.Decimal `json:"family_allowance" yaml:"family_allowance"`
	GrossTotal      decimal.Decimal `json:"gross_total" yaml:"gross_total"`

	TaxThreshold decimal.Decimal     `json:"tax_threshold" yaml:"tax_threshold"`
	Tax          *IncomeTaxBreakdown `json:"tax,omitempty" yaml:"tax,omitempty"`
	IncomeTax    decimal.Decimal     `json:"income_tax" yaml:"income_tax"`
	Pension      PensionDiscount     `json:"pension" yaml:"pension"`

	TotalDiscount      decimal.Decimal `json:"total_discount" yaml:"total_discount"`
	Net                decimal.Decimal `json:"net" yaml:"net"`
	ExtraordinaryBonus decimal.Decimal `json:"extraordinary_bonus" yaml:"extraordinary_bonus"`
}
