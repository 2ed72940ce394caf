package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders every breakdown line by line via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "LABOR BENEFITS CALCULATION REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "Run ID:          %s\n", report.RunID)
	fmt.Fprintf(&buf, "Reference year:  %d\n", report.ReferenceYear)
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated:       %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&buf, "Requests:        %d (%d succeeded, %d failed)\n", len(report.Outcomes), report.Succeeded, report.Failed)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for _, o := range report.Outcomes {
		fmt.Fprintf(&buf, "[%d] %s: %s\n", o.Index+1, strings.ToUpper(kindTitle(o.Kind)), o.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		switch {
		case o.Failed():
			fmt.Fprintf(&buf, "ERROR (%s): %s\n", o.ErrorKind, o.Error)
		case o.CTS != nil:
			writeCTS(&buf, o.CTS)
		case o.Bonus != nil:
			writeBonus(&buf, o.Bonus)
		case o.Pay != nil:
			writePay(&buf, o.Pay)
		}
		fmt.Fprintln(&buf)
	}

	t := SummarizeReport(report)
	fmt.Fprintln(&buf, "TOTALS")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "  CTS deposits:          %s (%d)\n", FormatCurrency(t.CTS), t.Counts[domain.KindSeverance])
	fmt.Fprintf(&buf, "  Gratifications:        %s (%d, %d not eligible)\n", FormatCurrency(t.Gratification), t.Counts[domain.KindBonus], t.NotEligible)
	fmt.Fprintf(&buf, "  Net instructor pay:    %s (%d)\n", FormatCurrency(t.NetPay), t.Counts[domain.KindPay])
	fmt.Fprintf(&buf, "  Failed requests:       %d\n", t.Failed)
	return buf.Bytes(), nil
}

func kindTitle(k domain.CalculationKind) string {
	switch k {
	case domain.KindSeverance:
		return "CTS"
	case domain.KindBonus:
		return "Gratification"
	case domain.KindPay:
		return "Instructor pay"
	}
	return string(k)
}

func line(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "  %-26s %s\n", label+":", FormatCurrency(amount))
}

func writeCTS(buf *bytes.Buffer, b *domain.CTSBreakdown) {
	fmt.Fprintf(buf, "Period:  %s (%s)\n", b.Period.Kind, b.Period.Label())
	fmt.Fprintf(buf, "Regime:  %s\n", b.Regime.Label())
	fmt.Fprintf(buf, "Service: %s (%d absences, %d days credited)\n", FormatService(b.MonthsWorked, b.DaysWorked), b.Absences, b.DaysCredited)
	fmt.Fprintln(buf, "COMPUTABLE REMUNERATION:")
	line(buf, "Base remuneration", b.BaseRemuneration)
	line(buf, "Family allowance", b.FamilyAllowance)
	line(buf, "Gratification share (1/6)", b.BonusShare)
	line(buf, "Overtime average", b.OvertimeAverage)
	line(buf, "Commissions average", b.CommissionsAverage)
	line(buf, "Bonuses average", b.BonusesAverage)
	line(buf, "Total computable", b.TotalComputable)
	fmt.Fprintln(buf, "AMOUNTS:")
	line(buf, "By month", b.AmountByMonth)
	line(buf, "By day", b.AmountByDay)
	fmt.Fprintf(buf, "  %-26s %s\n", "Halved (micro/small):", yesNo(b.Halved))
	line(buf, "CTS TOTAL", b.Total)
}

func writeBonus(buf *bytes.Buffer, b *domain.BonusBreakdown) {
	fmt.Fprintf(buf, "Regime:  %s\n", b.Regime.Label())
	if !b.Eligible() {
		fmt.Fprintln(buf, "Not eligible: micro companies do not pay gratification")
		line(buf, "GRATIFICATION TOTAL", b.Total)
		return
	}
	fmt.Fprintf(buf, "Period:  %s (%s)\n", b.Period.Kind, b.Period.Label())
	fmt.Fprintf(buf, "Service: %s (%d absences, %d days credited)\n", FormatService(b.MonthsWorked, b.DaysWorked), b.Absences, b.DaysCredited)
	fmt.Fprintln(buf, "COMPUTABLE REMUNERATION:")
	line(buf, "Salary average", b.SalaryAverage)
	line(buf, "Commissions average", b.CommissionsAverage)
	line(buf, "Family allowance", b.FamilyAllowance)
	line(buf, "Total computable", b.TotalComputable)
	fmt.Fprintln(buf, "AMOUNTS:")
	line(buf, "By month", b.AmountByMonth)
	line(buf, "By day", b.AmountByDay)
	line(buf, "Truncated gratification", b.Truncated)
	line(buf, fmt.Sprintf("Extraordinary bonus %s", FormatPercentage(b.ExtraordinaryRate)), b.ExtraordinaryBonus)
	fmt.Fprintf(buf, "  %-26s %s\n", "Health insurance:", b.HealthInsurance.Label())
	line(buf, "GRATIFICATION TOTAL", b.Total)
}

func writePay(buf *bytes.Buffer, b *domain.PayBreakdown) {
	fmt.Fprintf(buf, "Regime:  %s\n", b.Regime.Label())
	fmt.Fprintf(buf, "Hours:   %d weekly, %d overtime at %s/hour\n", b.WeeklyHours, b.OvertimeHours, FormatCurrency(b.HourlyRate))
	fmt.Fprintln(buf, "GROSS PAY:")
	line(buf, "Base pay", b.GrossBase)
	line(buf, "Overtime pay", b.OvertimePay)
	line(buf, "Family allowance", b.FamilyAllowance)
	line(buf, "Gross total", b.GrossTotal)
	fmt.Fprintln(buf, "DISCOUNTS:")
	line(buf, "Withholding threshold", b.TaxThreshold)
	if b.Tax != nil {
		line(buf, "Projected annual income", b.Tax.TotalAnnualIncome)
		line(buf, "Taxable excess", b.Tax.Excess)
		line(buf, "Annual income tax", b.Tax.AnnualTax)
	}
	line(buf, "Income tax (5th category)", b.IncomeTax)
	line(buf, "Pension "+b.Pension.Scheme.Label(), b.Pension.Total)
	line(buf, "Total discount", b.TotalDiscount)
	line(buf, "NET PAY", b.Net)
	line(buf, "Extraordinary bonus", b.ExtraordinaryBonus)
}
