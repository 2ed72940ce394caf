package output

import (
	"bytes"
	"fmt"

	"github.com/laborcalc/benefits-calculator/internal/domain"
)

// ConsoleFormatter provides a concise one-line-per-request summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LABOR BENEFITS SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Reference year: %d  Requests: %d  Failed: %d\n", report.ReferenceYear, len(report.Outcomes), report.Failed)
	fmt.Fprintln(&buf)
	for _, o := range report.Outcomes {
		switch {
		case o.Failed():
			fmt.Fprintf(&buf, "%d. %s [%s]: ERROR %s\n", o.Index+1, o.Name, o.Kind, o.Error)
		case o.Bonus != nil && !o.Bonus.Eligible():
			fmt.Fprintf(&buf, "%d. %s [%s]: not eligible (%s)\n", o.Index+1, o.Name, o.Kind, o.Bonus.Regime.Label())
		case o.Pay != nil:
			fmt.Fprintf(&buf, "%d. %s [%s]: Gross=%s Net=%s\n", o.Index+1, o.Name, o.Kind,
				FormatCurrency(o.Pay.GrossTotal), FormatCurrency(o.Pay.Net))
		default:
			fmt.Fprintf(&buf, "%d. %s [%s] %s: Total=%s\n", o.Index+1, o.Name, o.Kind, outcomePeriod(o), FormatCurrency(outcomeTotal(o)))
		}
	}
	t := SummarizeReport(report)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "CTS=%s Gratification=%s NetPay=%s\n",
		FormatCurrency(t.CTS), FormatCurrency(t.Gratification), FormatCurrency(t.NetPay))
	return buf.Bytes(), nil
}
