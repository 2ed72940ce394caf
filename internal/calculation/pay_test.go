package calculation

import (
	"testing"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayWithTaxAndONP(t *testing.T) {
	pc := NewPayCalculator(domain.DefaultLegalParameters())
	b, err := pc.Calculate(domain.PayInput{
		Name:          "Instructor A",
		Regime:        domain.RegimeGeneral,
		WeeklyHours:   20,
		OvertimeHours: 3,
		HourlyRate:    dec("50"),
		Pension:       domain.ONP(),
	})
	require.NoError(t, err)

	assertDecimal(t, "4000", b.GrossBase)
	assertDecimal(t, "192.5", b.OvertimePay)
	assertDecimal(t, "0", b.FamilyAllowance)
	assertDecimal(t, "4192.5", b.GrossTotal)
	assertDecimal(t, "2575", b.TaxThreshold)
	require.NotNil(t, b.Tax)
	assertDecimal(t, "1841.786", b.Tax.AnnualTax)
	assertCents(t, "153.48", b.IncomeTax)
	assertDecimal(t, "545.025", b.Pension.Total)
	assertCents(t, "698.51", b.TotalDiscount)
	assertCents(t, "3493.99", b.Net)
	assertCents(t, "314.46", b.ExtraordinaryBonus)
	assert.True(t, b.Net.Add(b.TotalDiscount).Equal(b.GrossTotal))
}

func TestPayBelowThreshold(t *testing.T) {
	b, err := NewPayCalculator(domain.DefaultLegalParameters()).Calculate(domain.PayInput{
		Regime:      domain.RegimeGeneral,
		WeeklyHours: 10,
		HourlyRate:  dec("50"),
		Pension:     domain.AFP(domain.AFPPrima),
	})
	require.NoError(t, err)

	assertDecimal(t, "2000", b.GrossTotal)
	assert.Nil(t, b.Tax)
	assertDecimal(t, "0", b.IncomeTax)
	assertDecimal(t, "266", b.Pension.Total)
	assertDecimal(t, "1734", b.Net)
	assertDecimal(t, "156.06", b.ExtraordinaryBonus)
}

func TestPayThresholdDependsOnRegime(t *testing.T) {
	pc := NewPayCalculator(domain.DefaultLegalParameters())
	assertDecimal(t, "2575", pc.WithholdingThreshold(domain.RegimeGeneral))
	assertDecimal(t, "2575", pc.WithholdingThreshold(domain.RegimeSmall))
	assertCents(t, "3004.17", pc.WithholdingThreshold(domain.RegimeMicro))

	in := domain.PayInput{WeeklyHours: 15, HourlyRate: dec("50"), Pension: domain.ONP()}

	in.Regime = domain.RegimeMicro
	micro, err := pc.Calculate(in)
	require.NoError(t, err)
	assertDecimal(t, "3000", micro.GrossTotal)
	assert.Nil(t, micro.Tax)
	assertDecimal(t, "0", micro.IncomeTax)

	in.Regime = domain.RegimeGeneral
	general, err := pc.Calculate(in)
	require.NoError(t, err)
	require.NotNil(t, general.Tax)
	assertDecimal(t, "497.6", general.Tax.AnnualTax)
	assertCents(t, "41.47", general.IncomeTax)
}

func TestPayDefaultsAndAllowance(t *testing.T) {
	b, err := NewPayCalculator(domain.DefaultLegalParameters()).Calculate(domain.PayInput{
		Regime:          domain.RegimeSmall,
		WeeklyHours:     8,
		FamilyAllowance: true,
		Pension:         domain.ONP(),
	})
	require.NoError(t, err)
	assertDecimal(t, "50", b.HourlyRate)
	assertDecimal(t, "1600", b.GrossBase)
	assertDecimal(t, "102.5", b.FamilyAllowance)
	assertDecimal(t, "1702.5", b.GrossTotal)
}

func TestOvertimePay(t *testing.T) {
	pc := NewPayCalculator(domain.DefaultLegalParameters())
	rate := dec("50")
	tests := []struct {
		hours    int
		expected string
	}{
		{0, "0"},
		{1, "62.5"},
		{2, "125"},
		{3, "192.5"},
		{5, "327.5"},
	}
	for _, tt := range tests {
		assertDecimal(t, tt.expected, pc.OvertimePay(tt.hours, rate), "%d hours", tt.hours)
	}
}

func TestPayIsMonotonicInHours(t *testing.T) {
	pc := NewPayCalculator(domain.DefaultLegalParameters())
	previous := decimal.Zero
	for hours := 0; hours <= 23; hours++ {
		b, err := pc.Calculate(domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: hours, Pension: domain.ONP()})
		require.NoError(t, err)
		assert.True(t, b.GrossTotal.GreaterThanOrEqual(previous))
		assert.True(t, b.Net.LessThanOrEqual(b.GrossTotal))
		previous = b.GrossTotal
	}
}

func TestPayInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.PayInput
		field string
	}{
		{"Weekly hours over cap", domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: 24, Pension: domain.ONP()}, "weekly_hours"},
		{"Negative weekly hours", domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: -1, Pension: domain.ONP()}, "weekly_hours"},
		{"Negative overtime", domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: 10, OvertimeHours: -1, Pension: domain.ONP()}, "overtime_hours"},
		{"Negative rate", domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: 10, HourlyRate: dec("-5"), Pension: domain.ONP()}, "hourly_rate"},
		{"Missing pension", domain.PayInput{Regime: domain.RegimeGeneral, WeeklyHours: 10}, "pension"},
		{"Unknown regime", domain.PayInput{Regime: "state", WeeklyHours: 10, Pension: domain.ONP()}, "regime"},
	}

	pc := NewPayCalculator(domain.DefaultLegalParameters())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := pc.Calculate(tt.in)
			assert.Nil(t, b)
			var iie *InvalidInputError
			require.ErrorAs(t, err, &iie)
			assert.Equal(t, tt.field, iie.Field)
			assert.Equal(t, "invalid_input", ErrorKind(err))
		})
	}
}
