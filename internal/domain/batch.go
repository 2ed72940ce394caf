package domain

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// CalculationKind selects which calculator handles a request.
type CalculationKind string

const (
	KindSeverance CalculationKind = "cts"
	KindBonus     CalculationKind = "gratification"
	KindPay       CalculationKind = "pay"
)

// ParseCalculationKind accepts "cts", "gratification"/"grat"/"bonus" and "pay".
func ParseCalculationKind(s string) (CalculationKind, error) {
	switch normalizeTag(s) {
	case "cts", "severance":
		return KindSeverance, nil
	case "gratification", "gratificacion", "grat", "bonus":
		return KindBonus, nil
	case "pay", "pago", "instructor_pay":
		return KindPay, nil
	}
	return "", fmt.Errorf("unknown calculation kind %q (use cts, gratification or pay)", s)
}

// UnmarshalYAML accepts any alias understood by ParseCalculationKind.
func (k *CalculationKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCalculationKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// CalculationRequest is one entry of a batch. Worker is used by cts and
// gratification requests, Pay by pay requests.
type CalculationRequest struct {
	Kind   CalculationKind `yaml:"kind" json:"kind"`
	Worker *WorkerRecord   `yaml:"worker,omitempty" json:"worker,omitempty"`
	Pay    *PayInput       `yaml:"pay,omitempty" json:"pay,omitempty"`
}

// Label names the request for reports.
func (r CalculationRequest) Label() string {
	switch {
	case r.Worker != nil && r.Worker.Name != "":
		return r.Worker.Name
	case r.Pay != nil && r.Pay.Name != "":
		return r.Pay.Name
	}
	return string(r.Kind)
}

// Batch is a set of independent calculation requests sharing a reference year.
type Batch struct {
	ReferenceYear int                  `yaml:"reference_year,omitempty" json:"reference_year,omitempty"`
	Requests      []CalculationRequest `yaml:"requests" json:"requests"`
}

// CalculationOutcome holds exactly one of CTS, Bonus or Pay on success, or an
// error message and class on failure.
type CalculationOutcome struct {
	Index     int             `json:"index" yaml:"index"`
	Name      string          `json:"name" yaml:"name"`
	Kind      CalculationKind `json:"kind" yaml:"kind"`
	CTS       *CTSBreakdown   `json:"cts,omitempty" yaml:"cts,omitempty"`
	Bonus     *BonusBreakdown `json:"gratification,omitempty" yaml:"gratification,omitempty"`
	Pay       *PayBreakdown   `json:"pay,omitempty" yaml:"pay,omitempty"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// Failed reports whether the calculation was rejected.
func (o CalculationOutcome) Failed() bool {
	return o.Error != ""
}

// BatchReport collects the outcomes of a batch run in request order.
type BatchReport struct {
	RunID         string               `json:"run_id" yaml:"run_id"`
	ReferenceYear int                  `json:"reference_year" yaml:"reference_year"`
	GeneratedAt   time.Time            `json:"generated_at" yaml:"generated_at"`
	Outcomes      []CalculationOutcome `json:"outcomes" yaml:"outcomes"`
	Succeeded     int                  `json:"succeeded" yaml:"succeeded"`
	Failed        int                  `json:"failed" yaml:"failed"`
	Assumptions   []string             `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}
