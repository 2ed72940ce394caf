package output

import (
	"fmt"
	"strconv"

	money "github.com/laborcalc/benefits-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as soles with 2 decimals ("S/ 1234.57").
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a rate (0.09) as a percentage with 2 decimals ("9.00%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

// FormatService renders credited service as "1 months, 15 days".
func FormatService(months, days int) string {
	return fmt.Sprintf("%d months, %d days", months, days)
}

func intToString(i int) string { return strconv.Itoa(i) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
