package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SemesterSlots is the number of monthly samples averaged for variable pay.
const SemesterSlots = 6

// SalaryKind distinguishes fixed from variable salaries.
type SalaryKind string

const (
	SalaryFixed    SalaryKind = "fixed"
	SalaryVariable SalaryKind = "variable"
)

// SalaryInput is either a fixed monthly amount or up to six monthly samples of a
// variable salary. Build it with FixedSalary or VariableSalary.
type SalaryInput struct {
	kind    SalaryKind
	amount  decimal.Decimal
	samples []decimal.Decimal
}

// FixedSalary returns a fixed monthly salary.
func FixedSalary(amount decimal.Decimal) SalaryInput {
	return SalaryInput{kind: SalaryFixed, amount: amount}
}

// VariableSalary returns a variable salary from at most six monthly samples.
// Missing slots count as zero when the salary is averaged.
func VariableSalary(samples ...decimal.Decimal) (SalaryInput, error) {
	if len(samples) > SemesterSlots {
		return SalaryInput{}, fmt.Errorf("variable salary accepts at most %d samples, got %d", SemesterSlots, len(samples))
	}
	return SalaryInput{kind: SalaryVariable, samples: append([]decimal.Decimal(nil), samples...)}, nil
}

// Kind returns fixed or variable; the zero SalaryInput has an empty kind.
func (s SalaryInput) Kind() SalaryKind { return s.kind }

// Amount is the fixed amount (zero for variable salaries).
func (s SalaryInput) Amount() decimal.Decimal { return s.amount }

// Slots returns the six monthly slots, zero-filled. A fixed salary fills
// every slot with its amount.
func (s SalaryInput) Slots() [SemesterSlots]decimal.Decimal {
	var slots [SemesterSlots]decimal.Decimal
	for i := range slots {
		switch {
		case s.kind == SalaryFixed:
			slots[i] = s.amount
		case i < len(s.samples):
			slots[i] = s.samples[i]
		}
	}
	return slots
}

type salaryYAML struct {
	Fixed    *decimal.Decimal  `yaml:"fixed,omitempty"`
	Variable []decimal.Decimal `yaml:"variable,omitempty"`
}

// UnmarshalYAML reads either {fixed: 1000} or {variable: [900, 950, ...]}.
func (s *SalaryInput) UnmarshalYAML(value *yaml.Node) error {
	var raw salaryYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Fixed != nil && raw.Variable != nil:
		return fmt.Errorf("salary must be either fixed or variable, not both")
	case raw.Fixed != nil:
		*s = FixedSalary(*raw.Fixed)
		return nil
	case raw.Variable != nil:
		v, err := VariableSalary(raw.Variable...)
		if err != nil {
			return err
		}
		*s = v
		return nil
	}
	return fmt.Errorf("salary requires a fixed amount or variable samples")
}

// MarshalYAML writes the same shape UnmarshalYAML reads.
func (s SalaryInput) MarshalYAML() (interface{}, error) {
	if s.kind == SalaryFixed {
		return salaryYAML{Fixed: &s.amount}, nil
	}
	return salaryYAML{Variable: s.samples}, nil
}

// OptionalComponent is a variable pay item (commissions, regular bonuses,
// overtime) reported as up to six monthly samples. When enabled it always
// contributes sum/6, however many samples were entered.
type OptionalComponent struct {
	Enabled bool              `yaml:"enabled" json:"enabled"`
	Samples []decimal.Decimal `yaml:"samples,omitempty" json:"samples,omitempty"`
}

// Component returns an enabled component with the given samples.
func Component(samples ...decimal.Decimal) OptionalComponent {
	return OptionalComponent{Enabled: true, Samples: samples}
}

// WorkerRecord is the input of the CTS and gratification calculators. A record
// is built fresh for each request and never mutated by the engine.
type WorkerRecord struct {
	Name            string            `yaml:"name,omitempty" json:"name,omitempty"`
	HireDate        time.Time         `yaml:"hire_date" json:"hire_date"`
	Period          PeriodKind        `yaml:"period" json:"period"`
	ReferenceYear   int               `yaml:"reference_year,omitempty" json:"reference_year,omitempty"`
	Regime          CompanyRegime     `yaml:"regime" json:"regime"`
	Salary          SalaryInput       `yaml:"salary" json:"-"`
	FamilyAllowance bool              `yaml:"family_allowance" json:"family_allowance"`
	PriorBonus      decimal.Decimal   `yaml:"prior_bonus" json:"prior_bonus"`
	Absences        int               `yaml:"absences" json:"absences"`
	HealthInsurance HealthInsurance   `yaml:"health_insurance,omitempty" json:"health_insurance,omitempty"`
	Commissions     OptionalComponent `yaml:"commissions" json:"commissions"`
	RegularBonuses  OptionalComponent `yaml:"regular_bonuses" json:"regular_bonuses"`
	Overtime        OptionalComponent `yaml:"overtime" json:"overtime"`
}

// PayInput is the input of the instructor pay calculator.
type PayInput struct {
	Name            string          `yaml:"name,omitempty" json:"name,omitempty"`
	Regime          CompanyRegime   `yaml:"regime" json:"regime"`
	WeeklyHours     int             `yaml:"weekly_hours" json:"weekly_hours"`
	OvertimeHours   int             `yaml:"overtime_hours" json:"overtime_hours"`
	HourlyRate      decimal.Decimal `yaml:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	FamilyAllowance bool            `yaml:"family_allowance" json:"family_allowance"`
	Pension         PensionScheme   `yaml:"pension" json:"pension"`
}
