/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication. Dates travel as
	"YYYY-MM-DD" strings and enums as their names or Spanish aliases, so
	clients never depend on the domain encoding.

TYPES:

	Requests:
	  WorkerRequest (CTS and gratification), PayRequest, BatchRequest

	Responses:
	  PeriodDTO, ErrorResponse, HealthResponse
	  Breakdowns and batch reports are returned as domain types.

VALIDATION:

	Conversion to domain types rejects unknown enums and malformed dates with
	*calculation.InvalidInputError. Range checks stay in the calculators.
*/
package api

import (
	"errors"
	"strconv"

	"github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SalaryDTO is either {"type":"fixed","amount":1000} or
// {"type":"variable","samples":[900,950]}.
type SalaryDTO struct {
	Type    string            `json:"type"`
	Amount  decimal.Decimal   `json:"amount"`
	Samples []decimal.Decimal `json:"samples,omitempty"`
}

// ComponentDTO is an optional remuneration component.
type ComponentDTO struct {
	Enabled bool              `json:"enabled"`
	Samples []decimal.Decimal `json:"samples,omitempty"`
}

// WorkerRequest is the body of POST /api/cts and POST /api/gratification.
type WorkerRequest struct {
	Name            string          `json:"name"`
	HireDate        string          `json:"hire_date"`
	Period          string          `json:"period"`
	ReferenceYear   int             `json:"reference_year,omitempty"`
	Regime          string          `json:"regime"`
	Salary          SalaryDTO       `json:"salary"`
	FamilyAllowance bool            `json:"family_allowance"`
	PriorBonus      decimal.Decimal `json:"prior_bonus"`
	Absences        int             `json:"absences"`
	HealthInsurance string          `json:"health_insurance,omitempty"`
	Commissions     ComponentDTO    `json:"commissions"`
	RegularBonuses  ComponentDTO    `json:"regular_bonuses"`
	Overtime        ComponentDTO    `json:"overtime"`
}

// PayRequest is the body of POST /api/pay.
type PayRequest struct {
	Name            string          `json:"name"`
	Regime          string          `json:"regime"`
	WeeklyHours     int             `json:"weekly_hours"`
	OvertimeHours   int             `json:"overtime_hours"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	FamilyAllowance bool            `json:"family_allowance"`
	PensionSystem   string          `json:"pension_system"`
	AFPProvider     string          `json:"afp_provider,omitempty"`
}

// BatchItem is one request of a batch; Worker or Pay is set depending on Kind.
type BatchItem struct {
	Kind   string         `json:"kind"`
	Worker *WorkerRequest `json:"worker,omitempty"`
	Pay    *PayRequest    `json:"pay,omitempty"`
}

// BatchRequest is the body of POST /api/batch.
type BatchRequest struct {
	ReferenceYear int         `json:"reference_year,omitempty"`
	Requests      []BatchItem `json:"requests"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PeriodDTO describes one computation window.
type PeriodDTO struct {
	Kind    string `json:"kind"`
	Benefit string `json:"benefit"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// PeriodsResponse lists the windows of a reference year.
type PeriodsResponse struct {
	ReferenceYear int         `json:"reference_year"`
	Periods       []PeriodDTO `json:"periods"`
}

// ErrorResponse is returned for every non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status        string `json:"status"`
	ReferenceYear int    `json:"reference_year"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

var errSalaryShape = errors.New(`salary must be {"type":"fixed","amount":...} or {"type":"variable","samples":[...]}`)

func badField(field string, err error) error {
	return &calculation.InvalidInputError{Field: field, Reason: err.Error()}
}

// ToWorkerRecord converts the request into a domain record.
func (req WorkerRequest) ToWorkerRecord() (domain.WorkerRecord, error) {
	hireDate, err := dateutil.ParseDate(req.HireDate)
	if err != nil {
		return domain.WorkerRecord{}, badField("hire_date", err)
	}
	period, err := domain.ParsePeriodKind(req.Period)
	if err != nil {
		return domain.WorkerRecord{}, badField("period", err)
	}
	regime, err := domain.ParseCompanyRegime(req.Regime)
	if err != nil {
		return domain.WorkerRecord{}, badField("regime", err)
	}
	salary, err := req.Salary.toSalary()
	if err != nil {
		return domain.WorkerRecord{}, badField("salary", err)
	}
	var insurance domain.HealthInsurance
	if req.HealthInsurance != "" {
		if insurance, err = domain.ParseHealthInsurance(req.HealthInsurance); err != nil {
			return domain.WorkerRecord{}, badField("health_insurance", err)
		}
	}

	return domain.WorkerRecord{
		Name:            req.Name,
		HireDate:        hireDate,
		Period:          period,
		ReferenceYear:   req.ReferenceYear,
		Regime:          regime,
		Salary:          salary,
		FamilyAllowance: req.FamilyAllowance,
		PriorBonus:      req.PriorBonus,
		Absences:        req.Absences,
		HealthInsurance: insurance,
		Commissions:     req.Commissions.toComponent(),
		RegularBonuses:  req.RegularBonuses.toComponent(),
		Overtime:        req.Overtime.toComponent(),
	}, nil
}

func (s SalaryDTO) toSalary() (domain.SalaryInput, error) {
	switch s.Type {
	case "", string(domain.SalaryFixed):
		if len(s.Samples) > 0 {
			return domain.SalaryInput{}, errSalaryShape
		}
		return domain.FixedSalary(s.Amount), nil
	case string(domain.SalaryVariable):
		return domain.VariableSalary(s.Samples...)
	}
	return domain.SalaryInput{}, errSalaryShape
}

func (c ComponentDTO) toComponent() domain.OptionalComponent {
	return domain.OptionalComponent{Enabled: c.Enabled, Samples: c.Samples}
}

// ToPayInput converts the request into a domain pay input.
func (req PayRequest) ToPayInput() (domain.PayInput, error) {
	regime, err := domain.ParseCompanyRegime(req.Regime)
	if err != nil {
		return domain.PayInput{}, badField("regime", err)
	}
	scheme, err := domain.ParsePensionScheme(req.PensionSystem, req.AFPProvider)
	if err != nil {
		return domain.PayInput{}, badField("pension", err)
	}
	return domain.PayInput{
		Name:            req.Name,
		Regime:          regime,
		WeeklyHours:     req.WeeklyHours,
		OvertimeHours:   req.OvertimeHours,
		HourlyRate:      req.HourlyRate,
		FamilyAllowance: req.FamilyAllowance,
		Pension:         scheme,
	}, nil
}

// ToBatch converts the request into a domain batch. Each item must carry the
// block its kind needs.
func (req BatchRequest) ToBatch() (*domain.Batch, error) {
	if len(req.Requests) == 0 {
		return nil, &calculation.InvalidInputError{Field: "requests", Reason: "at least one request is required"}
	}
	batch := &domain.Batch{ReferenceYear: req.ReferenceYear, Requests: make([]domain.CalculationRequest, 0, len(req.Requests))}
	for i, item := range req.Requests {
		kind, err := domain.ParseCalculationKind(item.Kind)
		if err != nil {
			return nil, badField(indexedField(i, "kind"), err)
		}
		cr := domain.CalculationRequest{Kind: kind}
		switch {
		case kind == domain.KindPay && item.Pay != nil:
			in, err := item.Pay.ToPayInput()
			if err != nil {
				return nil, prefixField(i, err)
			}
			cr.Pay = &in
		case kind != domain.KindPay && item.Worker != nil:
			w, err := item.Worker.ToWorkerRecord()
			if err != nil {
				return nil, prefixField(i, err)
			}
			cr.Worker = &w
		default:
			return nil, &calculation.InvalidInputError{Field: indexedField(i, "kind"), Reason: "missing the worker or pay block for " + string(kind)}
		}
		batch.Requests = append(batch.Requests, cr)
	}
	return batch, nil
}

func indexedField(i int, field string) string {
	return "requests[" + strconv.Itoa(i) + "]." + field
}

func prefixField(i int, err error) error {
	if iie, ok := err.(*calculation.InvalidInputError); ok {
		return &calculation.InvalidInputError{Field: indexedField(i, iie.Field), Reason: iie.Reason}
	}
	return err
}

func toPeriodDTO(w domain.PeriodWindow) PeriodDTO {
	benefit := "gratification"
	if w.Kind.IsSeverancePeriod() {
		benefit = "cts"
	}
	return PeriodDTO{
		Kind:    string(w.Kind),
		Benefit: benefit,
		Start:   w.Start.Format(dateutil.DateLayout),
		End:     w.End.Format(dateutil.DateLayout),
	}
}
