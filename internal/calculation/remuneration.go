package calculation

import (
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var semester = decimal.NewFromInt(domain.SemesterSlots)

// RemunerationInput gathers the pay items that make up the computable remuneration.
type RemunerationInput struct {
	Salary          domain.SalaryInput
	FamilyAllowance bool
	PriorBonus      decimal.Decimal
	Commissions     domain.OptionalComponent
	RegularBonuses  domain.OptionalComponent
	Overtime        domain.OptionalComponent
}

// Remuneration is the computable remuneration with each of its parts.
// Nothing is rounded here.
type Remuneration struct {
	Base            decimal.Decimal
	FamilyAllowance decimal.Decimal
	BonusShare      decimal.Decimal
	Commissions     decimal.Decimal
	RegularBonuses  decimal.Decimal
	Overtime        decimal.Decimal
	Total           decimal.Decimal
}

// RemunerationAggregator combines salary, allowance, prior bonus share and
// optional components into the computable remuneration.
type RemunerationAggregator struct {
	FamilyAllowance decimal.Decimal
}

// NewRemunerationAggregator creates an aggregator using the configured allowance.
func NewRemunerationAggregator(params domain.LegalParameters) *RemunerationAggregator {
	return &RemunerationAggregator{FamilyAllowance: params.FamilyAllowance}
}

// Computable returns the computable remuneration used by CTS: base salary,
// family allowance, one sixth of the prior bonus and the average of every
// enabled optional component.
func (a *RemunerationAggregator) Computable(in RemunerationInput) Remuneration {
	r := Remuneration{
		Base:            BaseSalary(in.Salary),
		FamilyAllowance: a.Allowance(in.FamilyAllowance),
		BonusShare:      in.PriorBonus.Div(semester),
		Commissions:     ComponentAverage(in.Commissions),
		RegularBonuses:  ComponentAverage(in.RegularBonuses),
		Overtime:        ComponentAverage(in.Overtime),
	}
	r.Total = r.Base.Add(r.FamilyAllowance).Add(r.BonusShare).
		Add(r.Commissions).Add(r.RegularBonuses).Add(r.Overtime)
	return r
}

// Allowance returns the family allowance when the worker is entitled to it.
func (a *RemunerationAggregator) Allowance(entitled bool) decimal.Decimal {
	if entitled {
		return a.FamilyAllowance
	}
	return decimal.Zero
}

// BaseSalary returns the fixed amount, or the mean of the six monthly slots of
// a variable salary with missing slots counted as zero.
func BaseSalary(s domain.SalaryInput) decimal.Decimal {
	if s.Kind() == domain.SalaryFixed {
		return s.Amount()
	}
	sum := decimal.Zero
	for _, v := range s.Slots() {
		sum = sum.Add(v)
	}
	return sum.Div(semester)
}

// ComponentAverage returns sum/6 for an enabled component and zero otherwise.
// The divisor stays 6 even when fewer samples were entered.
func ComponentAverage(c domain.OptionalComponent) decimal.Decimal {
	if !c.Enabled {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, c.Samples...).Div(semester)
}
