package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/config"
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Runs a batch file with debug logging and prints the unrounded intermediate
// figures of every outcome as CSV.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_batch <batch-file> [params-file]")
		return
	}
	p := config.NewInputParser()
	batch, err := p.LoadBatch(os.Args[1])
	if err != nil {
		panic(err)
	}
	paramsFile := ""
	if len(os.Args) > 2 {
		paramsFile = os.Args[2]
	}
	params, err := p.LoadParameters(paramsFile)
	if err != nil {
		panic(err)
	}

	year := batch.ReferenceYear
	if year == 0 {
		year = calc.CurrentReferenceYear()
	}
	engine := calc.NewCalculationEngineWithConfig(*params, year)
	engine.SetLogger(calc.NewStdLogger(os.Stderr, true))
	engine.Workers = 1

	report, err := engine.RunBatch(context.Background(), batch)
	if err != nil {
		panic(err)
	}

	fmt.Println("Index,Name,Kind,Months,Days,Credited,Computable,ByMonth,ByDay,Total")
	totals := map[domain.CalculationKind]decimal.Decimal{}
	for _, o := range report.Outcomes {
		switch {
		case o.Failed():
			fmt.Printf("%d,%s,%s,,,,,,,%s\n", o.Index, o.Name, o.Kind, o.ErrorKind)
			continue
		case o.CTS != nil:
			b := o.CTS
			fmt.Printf("%d,%s,%s,%d,%d,%d,%s,%s,%s,%s\n", o.Index, o.Name, o.Kind, b.MonthsWorked, b.DaysWorked, b.DaysCredited,
				b.TotalComputable.StringFixed(6), b.AmountByMonth.StringFixed(6), b.AmountByDay.StringFixed(6), b.Total.StringFixed(6))
			totals[o.Kind] = totals[o.Kind].Add(b.Total)
		case o.Bonus != nil:
			b := o.Bonus
			fmt.Printf("%d,%s,%s,%d,%d,%d,%s,%s,%s,%s\n", o.Index, o.Name, o.Kind, b.MonthsWorked, b.DaysWorked, b.DaysCredited,
				b.TotalComputable.StringFixed(6), b.AmountByMonth.StringFixed(6), b.AmountByDay.StringFixed(6), b.Total.StringFixed(6))
			totals[o.Kind] = totals[o.Kind].Add(b.Total)
		case o.Pay != nil:
			b := o.Pay
			fmt.Printf("%d,%s,%s,,,,%s,,,%s\n", o.Index, o.Name, o.Kind, b.GrossTotal.StringFixed(6), b.Net.StringFixed(6))
			totals[o.Kind] = totals[o.Kind].Add(b.Net)
		}
	}

	fmt.Println()
	for _, k := range []domain.CalculationKind{domain.KindSeverance, domain.KindBonus, domain.KindPay} {
		fmt.Printf("Total %s: %s\n", k, totals[k].StringFixed(2))
	}
}
