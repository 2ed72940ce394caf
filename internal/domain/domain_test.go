package domain

import (
	"testing"
	"time"

	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseCompanyRegime(t *testing.T) {
	testCases := []struct {
		in       string
		expected CompanyRegime
	}{
		{"general", RegimeGeneral},
		{"Régimen General", RegimeGeneral},
		{"Microempresa", RegimeMicro},
		{"micro", RegimeMicro},
		{"Pequeña Empresa", RegimeSmall},
		{"pequena-empresa", RegimeSmall},
		{"SMALL", RegimeSmall},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := ParseCompanyRegime(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}

	_, err := ParseCompanyRegime("medium")
	assert.Error(t, err)
}

func TestCompanyRegimeRules(t *testing.T) {
	assert.False(t, RegimeGeneral.HalvesCTS())
	assert.True(t, RegimeSmall.HalvesCTS())
	assert.True(t, RegimeMicro.HalvesCTS())

	assert.True(t, RegimeGeneral.ReceivesGratification())
	assert.True(t, RegimeSmall.ReceivesGratification())
	assert.False(t, RegimeMicro.ReceivesGratification())
}

func TestPeriodWindows(t *testing.T) {
	testCases := []struct {
		kind  PeriodKind
		start time.Time
		end   time.Time
	}{
		{PeriodNovApr, dateutil.Date(2024, 11, 1), dateutil.Date(2025, 4, 30)},
		{PeriodMayOct, dateutil.Date(2025, 5, 1), dateutil.Date(2025, 10, 31)},
		{PeriodJanJun, dateutil.Date(2025, 1, 1), dateutil.Date(2025, 6, 30)},
		{PeriodJulDec, dateutil.Date(2025, 7, 1), dateutil.Date(2025, 12, 31)},
	}
	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			w, err := tc.kind.Window(2025)
			require.NoError(t, err)
			assert.Equal(t, tc.start, w.Start)
			assert.Equal(t, tc.end, w.End)
			assert.Equal(t, 2025, w.ReferenceYear)
		})
	}

	_, err := PeriodKind("q3").Window(2025)
	assert.Error(t, err)

	assert.Len(t, SeverancePeriods(2026), 2)
	assert.Equal(t, "2025-11-01 to 2026-04-30", SeverancePeriods(2026)[0].Label())
	assert.Equal(t, PeriodJulDec, BonusPeriods(2026)[1].Kind)
}

func TestParsePeriodKind(t *testing.T) {
	for in, expected := range map[string]PeriodKind{
		"NovAbr":        PeriodNovApr,
		"nov-apr":       PeriodNovApr,
		"PER May - Oct": PeriodMayOct,
		"PER Ene - Jun": PeriodJanJun,
		"jul_dec":       PeriodJulDec,
		"Jul-Dic":       PeriodJulDec,
	} {
		k, err := ParsePeriodKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, k, in)
	}

	assert.True(t, PeriodNovApr.IsSeverancePeriod())
	assert.False(t, PeriodNovApr.IsBonusPeriod())
	assert.True(t, PeriodJulDec.IsBonusPeriod())
}

func TestParsePensionScheme(t *testing.T) {
	s, err := ParsePensionScheme("ONP", "prima")
	require.NoError(t, err)
	assert.Equal(t, ONP(), s)
	assert.Equal(t, "ONP", s.Label())

	s, err = ParsePensionScheme("afp", "Profuturo")
	require.NoError(t, err)
	assert.Equal(t, AFP(AFPProfuturo), s)
	assert.Equal(t, "AFP Profuturo", s.Label())

	s, err = ParsePensionScheme("afp", "")
	require.NoError(t, err)
	assert.Equal(t, "AFP", s.Label())

	_, err = ParsePensionScheme("afp", "unknown")
	assert.Error(t, err)
	_, err = ParsePensionScheme("sss", "")
	assert.Error(t, err)
}

func TestSalaryInputSlots(t *testing.T) {
	fixed := FixedSalary(decimal.NewFromInt(1200))
	assert.Equal(t, SalaryFixed, fixed.Kind())
	for _, slot := range fixed.Slots() {
		assert.True(t, slot.Equal(decimal.NewFromInt(1200)))
	}

	variable, err := VariableSalary(decimal.NewFromInt(900), decimal.NewFromInt(1100))
	require.NoError(t, err)
	slots := variable.Slots()
	assert.True(t, slots[0].Equal(decimal.NewFromInt(900)))
	assert.True(t, slots[1].Equal(decimal.NewFromInt(1100)))
	for _, slot := range slots[2:] {
		assert.True(t, slot.IsZero(), "missing slots are zero-filled")
	}

	seven := make([]decimal.Decimal, 7)
	_, err = VariableSalary(seven...)
	assert.Error(t, err)
}

func TestWorkerRecordYAML(t *testing.T) {
	doc := `
name: Ana
hire_date: 2024-03-15
period: PER Nov - Abr
reference_year: 2025
regime: Pequeña Empresa
salary:
  variable: [1000, "1100.50", 900]
family_allowance: true
prior_bonus: 1200
absences: 2
health_insurance: EPS
commissions:
  enabled: true
  samples: [60, 60]
`
	var w WorkerRecord
	require.NoError(t, yaml.Unmarshal([]byte(doc), &w))

	assert.Equal(t, "Ana", w.Name)
	assert.Equal(t, dateutil.Date(2024, 3, 15), dateutil.DateOnly(w.HireDate))
	assert.Equal(t, PeriodNovApr, w.Period)
	assert.Equal(t, RegimeSmall, w.Regime)
	assert.Equal(t, InsuranceEPS, w.HealthInsurance)
	assert.Equal(t, SalaryVariable, w.Salary.Kind())
	assert.True(t, w.Salary.Slots()[1].Equal(decimal.RequireFromString("1100.50")))
	assert.True(t, w.PriorBonus.Equal(decimal.NewFromInt(1200)))
	assert.True(t, w.Commissions.Enabled)
	assert.Len(t, w.Commissions.Samples, 2)
	assert.False(t, w.Overtime.Enabled)
}

func TestSalaryInputYAMLErrors(t *testing.T) {
	var s SalaryInput
	assert.Error(t, yaml.Unmarshal([]byte(`{fixed: 100, variable: [1]}`), &s))
	assert.Error(t, yaml.Unmarshal([]byte(`{}`), &s))
	assert.Error(t, yaml.Unmarshal([]byte(`{variable: [1,2,3,4,5,6,7]}`), &s))

	require.NoError(t, yaml.Unmarshal([]byte(`{fixed: 1500}`), &s))
	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "fixed")
}

func TestLegalParametersLookups(t *testing.T) {
	p := DefaultLegalParameters()
	assert.True(t, p.ExtraordinaryRateFor(InsuranceEsSalud).Equal(decimal.NewFromFloat(0.09)))
	assert.True(t, p.ExtraordinaryRateFor(InsuranceEPS).Equal(decimal.NewFromFloat(0.0675)))
	assert.True(t, p.AFPCommission(AFPPrima).Equal(decimal.NewFromFloat(0.016)))
	assert.True(t, p.AFPCommission("").Equal(decimal.NewFromFloat(0.0155)), "falls back to Integra")
	assert.True(t, p.TaxGratificationFactors.For(RegimeSmall).Equal(decimal.NewFromInt(1)))
	assert.True(t, p.TaxGratificationFactors.For(RegimeMicro).IsZero())
}

func TestParseCalculationKind(t *testing.T) {
	k, err := ParseCalculationKind("Gratificación")
	require.NoError(t, err)
	assert.Equal(t, KindBonus, k)

	req := CalculationRequest{Kind: KindPay, Pay: &PayInput{Name: "Luis"}}
	assert.Equal(t, "Luis", req.Label())
	assert.Equal(t, "cts", CalculationRequest{Kind: KindSeverance}.Label())

	_, err = ParseCalculationKind("loan")
	assert.Error(t, err)
}
