package main

import (
	"fmt"
	"os"

	"github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/config"
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the monthly income tax withholding for a ladder of gross salaries in
// each company regime, plus the bracket detail of the highest rung.
func main() {
	paramsFile := ""
	if len(os.Args) > 1 {
		paramsFile = os.Args[1]
	}
	params, err := config.NewInputParser().LoadParameters(paramsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tc := calculation.NewIncomeTaxCalculator(*params)
	pc := calculation.NewPayCalculator(*params)
	regimes := []domain.CompanyRegime{domain.RegimeGeneral, domain.RegimeSmall, domain.RegimeMicro}

	fmt.Printf("UIT %s, exemption %s\n", params.UnitValue.StringFixed(2), tc.Exemption().StringFixed(2))
	for _, r := range regimes {
		fmt.Printf("Threshold %-8s %s\n", r, pc.WithholdingThreshold(r).StringFixed(2))
	}
	fmt.Println()

	fmt.Printf("%10s", "Gross")
	for _, r := range regimes {
		fmt.Printf(" %12s", r)
	}
	fmt.Println()

	ladder := []int64{1500, 2500, 3000, 3500, 4000, 5000, 7500, 10000, 15000, 25000, 40000}
	for _, g := range ladder {
		gross := decimal.NewFromInt(g)
		fmt.Printf("%10s", gross.StringFixed(2))
		for _, r := range regimes {
			fmt.Printf(" %12s", tc.MonthlyWithholding(gross, r).StringFixed(2))
		}
		fmt.Println()
	}

	top := decimal.NewFromInt(ladder[len(ladder)-1])
	proj := tc.Project(top, domain.RegimeGeneral)
	fmt.Printf("\nBrackets for %s (general): excess %s\n", top.StringFixed(2), proj.Excess.StringFixed(2))
	for _, b := range proj.Brackets {
		fmt.Printf("  %5s%%  taxable %12s  tax %10s\n", b.Rate.Shift(2).String(), b.Taxable.StringFixed(2), b.Tax.StringFixed(2))
	}
	fmt.Printf("Annual tax: %s\n", proj.AnnualTax.StringFixed(2))
}
