package config

import (
	"fmt"
	"os"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of legal parameter and batch files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadParameters reads a YAML parameter file on top of the statutory defaults.
// Keys missing from the file keep their default value; an empty filename
// returns the defaults unchanged.
func (ip *InputParser) LoadParameters(filename string) (*domain.LegalParameters, error) {
	params := domain.DefaultLegalParameters()
	if filename == "" {
		return &params, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return &params, nil
}

// ValidateParameters validates the legal parameters
func (ip *InputParser) ValidateParameters(p *domain.LegalParameters) error {
	if !p.UnitValue.IsPositive() {
		return fmt.Errorf("unit value (UIT) must be positive")
	}
	if p.ExemptionUnits.IsNegative() {
		return fmt.Errorf("exemption units cannot be negative")
	}
	if !p.WithholdingDivisor.IsPositive() || !p.WithholdingDivisorMicro.IsPositive() {
		return fmt.Errorf("withholding divisors must be positive")
	}
	if err := validateBrackets(p.TaxBrackets); err != nil {
		return fmt.Errorf("tax brackets: %w", err)
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"extraordinary_bonus_rate", p.ExtraordinaryBonusRate},
		{"extraordinary_bonus_rate_eps", p.ExtraordinaryBonusRateEPS},
		{"onp_rate", p.ONPRate},
		{"afp_insurance_rate", p.AFPInsuranceRate},
		{"afp_mandatory_rate", p.AFPMandatoryRate},
	}
	for _, r := range rates {
		if err := validateRate(r.name, r.rate); err != nil {
			return err
		}
	}
	if _, ok := p.AFPCommissions[domain.AFPIntegra]; !ok {
		return fmt.Errorf("afp_commissions must include integra (used for unlisted providers)")
	}
	for provider, rate := range p.AFPCommissions {
		if err := validateRate("afp_commissions."+string(provider), rate); err != nil {
			return err
		}
	}

	if p.FamilyAllowance.IsNegative() {
		return fmt.Errorf("family allowance cannot be negative")
	}
	if p.MaxWeeklyHours <= 0 {
		return fmt.Errorf("max weekly hours must be positive")
	}
	if p.WeeksPerMonth <= 0 {
		return fmt.Errorf("weeks per month must be positive")
	}
	if p.DefaultHourlyRate.IsNegative() {
		return fmt.Errorf("default hourly rate cannot be negative")
	}
	if p.OvertimeFirstTierHours < 0 {
		return fmt.Errorf("overtime first tier hours cannot be negative")
	}
	if p.OvertimeFirstTierRate.LessThan(decimal.NewFromInt(1)) || p.OvertimeSecondTierRate.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("overtime rates must be at least 100%%")
	}

	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate)
	}
	return nil
}

// validateBrackets requires contiguous bands in ascending order with only the
// last one open-ended.
func validateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	next := decimal.Zero
	for i, b := range brackets {
		if !b.LowerUnits.Equal(next) {
			return fmt.Errorf("bracket %d starts at %s UIT, expected %s", i+1, b.LowerUnits, next)
		}
		if err := validateRate(fmt.Sprintf("bracket %d rate", i+1), b.Rate); err != nil {
			return err
		}
		last := i == len(brackets)-1
		if !last && !b.WidthUnits.IsPositive() {
			return fmt.Errorf("only the last bracket may be open-ended (bracket %d)", i+1)
		}
		if last && !b.WidthUnits.IsZero() {
			return fmt.Errorf("the last bracket must be open-ended")
		}
		next = next.Add(b.WidthUnits)
	}
	return nil
}

// LoadBatch loads a batch of calculation requests from a YAML file
func (ip *InputParser) LoadBatch(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var batch domain.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}
	return &batch, nil
}

// ValidateBatch checks the shape of every request. Field values are checked by
// the calculators so that one bad record does not reject the whole batch.
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if len(batch.Requests) == 0 {
		return fmt.Errorf("no requests provided")
	}
	if batch.ReferenceYear < 0 {
		return fmt.Errorf("reference year cannot be negative")
	}
	for i, req := range batch.Requests {
		if err := ip.validateRequest(&req); err != nil {
			return fmt.Errorf("request %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

func (ip *InputParser) validateRequest(req *domain.CalculationRequest) error {
	switch req.Kind {
	case domain.KindSeverance, domain.KindBonus:
		if req.Worker == nil {
			return fmt.Errorf("%s request requires a worker block", req.Kind)
		}
		if req.Pay != nil {
			return fmt.Errorf("%s request cannot carry a pay block", req.Kind)
		}
	case domain.KindPay:
		if req.Pay == nil {
			return fmt.Errorf("pay request requires a pay block")
		}
		if req.Worker != nil {
			return fmt.Errorf("pay request cannot carry a worker block")
		}
	default:
		return fmt.Errorf("kind is required (cts, gratification or pay)")
	}
	return nil
}

// CreateExampleBatch creates an example batch covering every calculation kind
func (ip *InputParser) CreateExampleBatch(referenceYear int) *domain.Batch {
	variable, _ := domain.VariableSalary(
		decimal.NewFromInt(1400), decimal.NewFromInt(1500), decimal.NewFromInt(1450),
		decimal.NewFromInt(1600), decimal.NewFromInt(1550), decimal.NewFromInt(1500),
	)

	return &domain.Batch{
		ReferenceYear: referenceYear,
		Requests: []domain.CalculationRequest{
			{
				Kind: domain.KindSeverance,
				Worker: &domain.WorkerRecord{
					Name:            "Ana Torres",
					HireDate:        dateutil.Date(2022, 3, 1),
					Period:          domain.PeriodNovApr,
					Regime:          domain.RegimeGeneral,
					Salary:          domain.FixedSalary(decimal.NewFromInt(2500)),
					FamilyAllowance: true,
					PriorBonus:      decimal.NewFromInt(2500),
					Overtime: domain.Component(
						decimal.NewFromInt(120), decimal.NewFromInt(80), decimal.NewFromInt(100),
					),
				},
			},
			{
				Kind: domain.KindBonus,
				Worker: &domain.WorkerRecord{
					Name:            "Luis Quispe",
					HireDate:        dateutil.Date(referenceYear, 3, 15),
					Period:          domain.PeriodJanJun,
					Regime:          domain.RegimeSmall,
					Salary:          variable,
					Absences:        2,
					HealthInsurance: domain.InsuranceEsSalud,
					Commissions:     domain.Component(decimal.NewFromInt(300), decimal.NewFromInt(300)),
				},
			},
			{
				Kind: domain.KindPay,
				Pay: &domain.PayInput{
					Name:          "Instructor Rivera",
					Regime:        domain.RegimeGeneral,
					WeeklyHours:   20,
					OvertimeHours: 3,
					HourlyRate:    decimal.NewFromInt(50),
					Pension:       domain.AFP(domain.AFPPrima),
				},
			},
		},
	}
}
