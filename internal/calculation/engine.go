package calculation

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/laborcalc/benefits-calculator/internal/domain"
)

// CalculationEngine orchestrates the CTS, gratification and pay calculators.
// It holds no per-request state, so one engine can serve concurrent callers.
type CalculationEngine struct {
	Params        domain.LegalParameters
	ReferenceYear int
	Severance     *SeveranceCalculator
	Bonus         *BonusCalculator
	Pay           *PayCalculator
	Workers       int // batch parallelism; 0 means runtime.NumCPU()
	Logger        Logger
}

// NewCalculationEngine creates an engine with the default legal parameters and
// the current year as reference year.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultLegalParameters(), CurrentReferenceYear())
}

// NewCalculationEngineWithConfig creates an engine with explicit parameters and
// reference year.
func NewCalculationEngineWithConfig(params domain.LegalParameters, referenceYear int) *CalculationEngine {
	ce := &CalculationEngine{
		Params:        params,
		ReferenceYear: referenceYear,
		Severance:     NewSeveranceCalculator(params),
		Bonus:         NewBonusCalculator(params),
		Pay:           NewPayCalculator(params),
	}
	ce.SetLogger(nil)
	return ce
}

// SetLogger sets the logger for the engine and its calculators. If nil is
// provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Severance.Logger = l
	ce.Bonus.Logger = l
	ce.Pay.Logger = l
}

// CalculateSeverance computes the CTS of a worker.
func (ce *CalculationEngine) CalculateSeverance(w domain.WorkerRecord) (*domain.CTSBreakdown, error) {
	return ce.Severance.Calculate(w, ce.ReferenceYear)
}

// CalculateBonus computes the gratification of a worker.
func (ce *CalculationEngine) CalculateBonus(w domain.WorkerRecord) (*domain.BonusBreakdown, error) {
	return ce.Bonus.Calculate(w, ce.ReferenceYear)
}

// CalculatePay computes the net pay of an instructor.
func (ce *CalculationEngine) CalculatePay(in domain.PayInput) (*domain.PayBreakdown, error) {
	return ce.Pay.Calculate(in)
}

// Run dispatches a single request to its calculator. Failures are reported in
// the outcome, never as a partially filled breakdown.
func (ce *CalculationEngine) Run(index int, req domain.CalculationRequest) domain.CalculationOutcome {
	out := domain.CalculationOutcome{Index: index, Name: req.Label(), Kind: req.Kind}
	var err error
	switch req.Kind {
	case domain.KindSeverance, domain.KindBonus:
		if req.Worker == nil {
			err = invalidInput("worker", "is required for %s requests", req.Kind)
			break
		}
		if req.Kind == domain.KindSeverance {
			out.CTS, err = ce.CalculateSeverance(*req.Worker)
		} else {
			out.Bonus, err = ce.CalculateBonus(*req.Worker)
		}
	case domain.KindPay:
		if req.Pay == nil {
			err = invalidInput("pay", "is required for pay requests")
			break
		}
		out.Pay, err = ce.CalculatePay(*req.Pay)
	default:
		err = invalidInput("kind", "unknown calculation kind %q", req.Kind)
	}
	if err != nil {
		out.CTS, out.Bonus, out.Pay = nil, nil, nil
		out.Error = err.Error()
		out.ErrorKind = ErrorKind(err)
		ce.Logger.Warnf("request %d (%s): %v", index, out.Name, err)
	}
	return out
}

// RunBatch runs every request of a batch on a bounded pool of goroutines and
// returns the outcomes in request order. A batch reference year overrides the
// engine's default. Cancelling ctx stops scheduling and returns ctx.Err().
func (ce *CalculationEngine) RunBatch(ctx context.Context, batch *domain.Batch) (*domain.BatchReport, error) {
	runner := ce
	if batch.ReferenceYear != 0 && batch.ReferenceYear != ce.ReferenceYear {
		clone := *ce
		clone.ReferenceYear = batch.ReferenceYear
		runner = &clone
	}

	workers := ce.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(batch.Requests) {
		workers = len(batch.Requests)
	}

	outcomes := make([]domain.CalculationOutcome, len(batch.Requests))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = runner.Run(idx, batch.Requests[idx])
			}
		}()
	}

feed:
	for idx := range batch.Requests {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	report := &domain.BatchReport{
		RunID:         uuid.NewString(),
		ReferenceYear: runner.ReferenceYear,
		GeneratedAt:   nowFunc(),
		Outcomes:      outcomes,
	}
	for _, o := range outcomes {
		if o.Failed() {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	ce.Logger.Infof("batch %s: %d succeeded, %d failed", report.RunID, report.Succeeded, report.Failed)
	return report, nil
}
