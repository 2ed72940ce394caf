package main

import (
	"errors"
	"fmt"

	"github.com/laborcalc/benefits-calculator/internal/api"
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/laborcalc/benefits-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// errCalculationFailed is returned after the report has been printed so the
// process exits non-zero when a request was rejected.
var errCalculationFailed = errors.New("calculation failed")

// workerFlags collects the WorkerRecord flags shared by cts and gratification.
type workerFlags struct {
	name            string
	hireDate        string
	period          string
	recordYear      int
	regime          string
	salary          string
	salarySamples   []string
	familyAllowance bool
	priorBonus      string
	absences        int
	insurance       string
	commissions     []string
	regularBonuses  []string
	overtime        []string
}

func (wf *workerFlags) register(cmd *cobra.Command, defaultPeriod string) {
	f := cmd.Flags()
	f.StringVar(&wf.name, "name", "", "worker name shown in the report")
	f.StringVar(&wf.hireDate, "hire-date", "", "hire date, YYYY-MM-DD (required)")
	f.StringVar(&wf.period, "period", defaultPeriod, "computation period")
	f.IntVar(&wf.recordYear, "record-year", 0, "reference year for this worker only (overrides --year)")
	f.StringVar(&wf.regime, "regime", "general", "company regime: general, small or micro")
	f.StringVar(&wf.salary, "salary", "", "fixed monthly salary")
	f.StringSliceVar(&wf.salarySamples, "salary-samples", nil, "variable salary: up to six monthly amounts")
	f.BoolVar(&wf.familyAllowance, "family-allowance", false, "worker receives the family allowance")
	f.StringVar(&wf.priorBonus, "prior-bonus", "0", "last gratification received (CTS only)")
	f.IntVar(&wf.absences, "absences", 0, "unjustified absences in the period")
	f.StringVar(&wf.insurance, "insurance", "essalud", "health insurance: essalud or eps (gratification only)")
	f.StringSliceVar(&wf.commissions, "commissions", nil, "monthly commissions, enables the component")
	f.StringSliceVar(&wf.regularBonuses, "regular-bonuses", nil, "monthly regular bonuses, enables the component (CTS only)")
	f.StringSliceVar(&wf.overtime, "overtime", nil, "monthly overtime amounts, enables the component (CTS only)")
	_ = cmd.MarkFlagRequired("hire-date")
}

func (wf *workerFlags) record() (domain.WorkerRecord, error) {
	req := api.WorkerRequest{
		Name:            wf.name,
		HireDate:        wf.hireDate,
		Period:          wf.period,
		ReferenceYear:   wf.recordYear,
		Regime:          wf.regime,
		FamilyAllowance: wf.familyAllowance,
		Absences:        wf.absences,
		HealthInsurance: wf.insurance,
	}

	var err error
	switch {
	case len(wf.salarySamples) > 0 && wf.salary != "":
		return domain.WorkerRecord{}, errors.New("use either --salary or --salary-samples, not both")
	case len(wf.salarySamples) > 0:
		req.Salary.Type = string(domain.SalaryVariable)
		if req.Salary.Samples, err = parseAmounts("salary-samples", wf.salarySamples); err != nil {
			return domain.WorkerRecord{}, err
		}
	default:
		req.Salary.Type = string(domain.SalaryFixed)
		if req.Salary.Amount, err = parseAmount("salary", wf.salary); err != nil {
			return domain.WorkerRecord{}, err
		}
	}
	if req.PriorBonus, err = parseAmount("prior-bonus", wf.priorBonus); err != nil {
		return domain.WorkerRecord{}, err
	}
	if req.Commissions, err = component("commissions", wf.commissions); err != nil {
		return domain.WorkerRecord{}, err
	}
	if req.RegularBonuses, err = component("regular-bonuses", wf.regularBonuses); err != nil {
		return domain.WorkerRecord{}, err
	}
	if req.Overtime, err = component("overtime", wf.overtime); err != nil {
		return domain.WorkerRecord{}, err
	}
	return req.ToWorkerRecord()
}

func parseAmount(flag, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", flag, raw)
	}
	return d, nil
}

func parseAmounts(flag string, raw []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		d, err := parseAmount(flag, r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func component(flag string, raw []string) (api.ComponentDTO, error) {
	if len(raw) == 0 {
		return api.ComponentDTO{}, nil
	}
	samples, err := parseAmounts(flag, raw)
	if err != nil {
		return api.ComponentDTO{}, err
	}
	return api.ComponentDTO{Enabled: true, Samples: samples}, nil
}

func newCTSCmd(a *app) *cobra.Command {
	var wf workerFlags
	cmd := &cobra.Command{
		Use:   "cts",
		Short: "Compute the CTS severance deposit for one worker",
		Example: `  laborcalc cts --hire-date 2024-01-01 --period nov_apr --salary 1000
  laborcalc cts --hire-date 2025-03-15 --period may_oct --regime small --salary-samples 900,1000,1100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.record()
			if err != nil {
				return err
			}
			return a.runSingle(cmd, domain.CalculationRequest{Kind: domain.KindSeverance, Worker: &w})
		},
	}
	wf.register(cmd, string(domain.PeriodNovApr))
	return cmd
}

func newGratificationCmd(a *app) *cobra.Command {
	var wf workerFlags
	cmd := &cobra.Command{
		Use:     "gratification",
		Aliases: []string{"gratificacion", "grat"},
		Short:   "Compute the gratification and extraordinary bonus for one worker",
		Example: `  laborcalc gratification --hire-date 2024-01-01 --period jan_jun --salary 1800 --family-allowance --commissions 120,120,120,120,120,120`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.record()
			if err != nil {
				return err
			}
			return a.runSingle(cmd, domain.CalculationRequest{Kind: domain.KindBonus, Worker: &w})
		},
	}
	wf.register(cmd, string(domain.PeriodJanJun))
	return cmd
}

func newPayCmd(a *app) *cobra.Command {
	var (
		req  api.PayRequest
		rate string
	)
	cmd := &cobra.Command{
		Use:     "pay",
		Short:   "Compute an instructor's monthly pay, income tax and pension discount",
		Example: `  laborcalc pay --weekly-hours 20 --overtime-hours 3 --rate 50 --pension onp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.HourlyRate, err = parseAmount("rate", rate); err != nil {
				return err
			}
			in, err := req.ToPayInput()
			if err != nil {
				return err
			}
			return a.runSingle(cmd, domain.CalculationRequest{Kind: domain.KindPay, Pay: &in})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "instructor name shown in the report")
	f.StringVar(&req.Regime, "regime", "general", "company regime: general, small or micro")
	f.IntVar(&req.WeeklyHours, "weekly-hours", 0, "teaching hours per week (0-23)")
	f.IntVar(&req.OvertimeHours, "overtime-hours", 0, "overtime hours in the month")
	f.StringVar(&rate, "rate", "", "hourly rate (default from parameters)")
	f.BoolVar(&req.FamilyAllowance, "family-allowance", false, "instructor receives the family allowance")
	f.StringVar(&req.PensionSystem, "pension", "onp", "pension system: onp or afp")
	f.StringVar(&req.AFPProvider, "afp", "", "AFP provider: habitat, integra, prima or profuturo")
	return cmd
}

// runSingle runs one request through the batch path so every output format
// and the failure reporting behave the same as for batch files.
func (a *app) runSingle(cmd *cobra.Command, req domain.CalculationRequest) error {
	report, err := a.engine.RunBatch(cmd.Context(), &domain.Batch{Requests: []domain.CalculationRequest{req}})
	if err != nil {
		return err
	}
	if err := a.render(cmd, report); err != nil {
		return err
	}
	if o := report.Outcomes[0]; o.Failed() {
		return fmt.Errorf("%w: %s", errCalculationFailed, o.Error)
	}
	return nil
}

func (a *app) render(cmd *cobra.Command, report *domain.BatchReport) error {
	report.Assumptions = output.GenerateAssumptions(a.engine.Params)
	return output.GenerateReport(cmd.OutOrStdout(), report, a.opts.format)
}
