package output

import (
	"bytes"
	"encoding/csv"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter writes one row per breakdown line item, so that every
// intermediate amount of every request can be audited in a spreadsheet.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

type lineItem struct {
	item   string
	amount decimal.Decimal
}

func (c CSVDetailedExporter) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "Name", "Kind", "Item", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range report.Outcomes {
		for _, li := range lineItems(o) {
			row := []string{intToString(o.Index + 1), o.Name, string(o.Kind), li.item, li.amount.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func lineItems(o domain.CalculationOutcome) []lineItem {
	switch {
	case o.CTS != nil:
		b := o.CTS
		return []lineItem{
			{"base_remuneration", b.BaseRemuneration},
			{"family_allowance", b.FamilyAllowance},
			{"bonus_share", b.BonusShare},
			{"overtime_average", b.OvertimeAverage},
			{"commissions_average", b.CommissionsAverage},
			{"bonuses_average", b.BonusesAverage},
			{"total_computable", b.TotalComputable},
			{"amount_by_month", b.AmountByMonth},
			{"amount_by_day", b.AmountByDay},
			{"total", b.Total},
		}
	case o.Bonus != nil:
		b := o.Bonus
		return []lineItem{
			{"salary_average", b.SalaryAverage},
			{"commissions_average", b.CommissionsAverage},
			{"family_allowance", b.FamilyAllowance},
			{"total_computable", b.TotalComputable},
			{"amount_by_month", b.AmountByMonth},
			{"amount_by_day", b.AmountByDay},
			{"truncated", b.Truncated},
			{"extraordinary_bonus", b.ExtraordinaryBonus},
			{"total", b.Total},
		}
	case o.Pay != nil:
		b := o.Pay
		return []lineItem{
			{"gross_base", b.GrossBase},
			{"overtime_pay", b.OvertimePay},
			{"family_allowance", b.FamilyAllowance},
			{"gross_total", b.GrossTotal},
			{"income_tax", b.IncomeTax},
			{"pension", b.Pension.Total},
			{"total_discount", b.TotalDiscount},
			{"net", b.Net},
			{"extraordinary_bonus", b.ExtraordinaryBonus},
		}
	}
	return nil
}
