package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	engine := calculation.NewCalculationEngineWithConfig(domain.DefaultLegalParameters(), 2025)
	return NewRouter(NewHandler(engine))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)), "expected %s, got %s", expected, actual)
}

const ctsBody = `{
	"name": "Ana",
	"hire_date": "2024-01-01",
	"period": "nov_apr",
	"regime": "general",
	"salary": {"type": "fixed", "amount": 1000}
}`

const gratificationBody = `{
	"name": "Rosa",
	"hire_date": "2024-01-01",
	"period": "PER Ene - Jun",
	"regime": "Régimen General",
	"salary": {"type": "fixed", "amount": "1800"},
	"family_allowance": true,
	"health_insurance": "EsSalud",
	"commissions": {"enabled": true, "samples": [120, 120, 120, 120, 120, 120]}
}`

const payBody = `{
	"name": "Instructor A",
	"regime": "general",
	"weekly_hours": 20,
	"overtime_hours": 3,
	"hourly_rate": 50,
	"pension_system": "onp"
}`

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2025, resp.ReferenceYear)
}

func TestCalculateCTS(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/api/cts", ctsBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cts domain.CTSBreakdown
	decodeBody(t, rec, &cts)
	assert.Equal(t, "Ana", cts.Worker)
	assert.Equal(t, 6, cts.MonthsWorked)
	assertAmount(t, "500", cts.Total)
}

func TestCalculateCTSVariableSalary(t *testing.T) {
	body := strings.Replace(ctsBody, `{"type": "fixed", "amount": 1000}`,
		`{"type": "variable", "samples": [1100, 1100, 1150, 1150, 1200, 1200]}`, 1)
	rec := do(t, newTestRouter(), http.MethodPost, "/api/cts", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cts domain.CTSBreakdown
	decodeBody(t, rec, &cts)
	assertAmount(t, "1150", cts.BaseRemuneration)
	assertAmount(t, "575", cts.Total)
}

func TestCalculateGratificationWithAliases(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/api/gratification", gratificationBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var b domain.BonusBreakdown
	decodeBody(t, rec, &b)
	assert.Equal(t, domain.BonusComputed, b.Status)
	assert.Equal(t, domain.PeriodJanJun, b.Period.Kind)
	assertAmount(t, "2022.5", b.TotalComputable)
	assertAmount(t, "182.025", b.ExtraordinaryBonus)
	assertAmount(t, "2204.525", b.Total)
}

func TestCalculateGratificationMicroIsOK(t *testing.T) {
	body := strings.Replace(gratificationBody, `"Régimen General"`, `"micro"`, 1)
	rec := do(t, newTestRouter(), http.MethodPost, "/api/gratification", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var b domain.BonusBreakdown
	decodeBody(t, rec, &b)
	assert.Equal(t, domain.BonusNotEligibleRegime, b.Status)
	assert.True(t, b.Total.IsZero())
}

func TestCalculatePay(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/api/pay", payBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var b domain.PayBreakdown
	decodeBody(t, rec, &b)
	assertAmount(t, "4192.5", b.GrossTotal)
	assert.Equal(t, "153.48", b.IncomeTax.StringFixed(2))
	assert.Equal(t, "3493.99", b.Net.StringFixed(2))
	assert.Equal(t, domain.PensionONP, b.Pension.Scheme.System)
}

func TestCalculationErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		kind   string
	}{
		{
			name:   "late hire",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, "2024-01-01", "2025-04-15", 1),
			status: http.StatusUnprocessableEntity,
			kind:   "insufficient_service",
		},
		{
			name:   "bad date",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, "2024-01-01", "01/01/2024", 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "unknown regime",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, `"general"`, `"mega"`, 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "bonus period for cts",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, "nov_apr", "jan_jun", 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "negative absences",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, `"name": "Ana",`, `"name": "Ana", "absences": -1,`, 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "salary samples on fixed salary",
			path:   "/api/cts",
			body:   strings.Replace(ctsBody, `"amount": 1000`, `"amount": 1000, "samples": [1]`, 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "hours over the limit",
			path:   "/api/pay",
			body:   strings.Replace(payBody, `"weekly_hours": 20`, `"weekly_hours": 30`, 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
		{
			name:   "unknown pension system",
			path:   "/api/pay",
			body:   strings.Replace(payBody, `"onp"`, `"sis"`, 1),
			status: http.StatusBadRequest,
			kind:   "invalid_input",
		},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var resp ErrorResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.NotEmpty(t, resp.Details)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	router := newTestRouter()
	for _, body := range []string{`{`, `{"nmae": "typo"}`, ``} {
		rec := do(t, router, http.MethodPost, "/api/pay", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Invalid request body", resp.Error)
	}
}

func TestRunBatch(t *testing.T) {
	body := `{
		"reference_year": 2025,
		"requests": [
			{"kind": "cts", "worker": ` + ctsBody + `},
			{"kind": "cts", "worker": ` + strings.Replace(ctsBody, "2024-01-01", "2025-04-15", 1) + `},
			{"kind": "gratificacion", "worker": ` + gratificationBody + `},
			{"kind": "pay", "pay": ` + payBody + `}
		]
	}`
	rec := do(t, newTestRouter(), http.MethodPost, "/api/batch", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report domain.BatchReport
	decodeBody(t, rec, &report)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2025, report.ReferenceYear)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 4)

	for i, o := range report.Outcomes {
		assert.Equal(t, i, o.Index)
	}
	require.NotNil(t, report.Outcomes[0].CTS)
	assertAmount(t, "500", report.Outcomes[0].CTS.Total)
	assert.Equal(t, "insufficient_service", report.Outcomes[1].ErrorKind)
	require.NotNil(t, report.Outcomes[2].Bonus)
	assertAmount(t, "2204.525", report.Outcomes[2].Bonus.Total)
	require.NotNil(t, report.Outcomes[3].Pay)
	assert.Equal(t, "3493.99", report.Outcomes[3].Pay.Net.StringFixed(2))
}

func TestRunBatchRejectsMalformedBatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", `{"requests": []}`},
		{"missing block", `{"requests": [{"kind": "pay", "worker": ` + ctsBody + `}]}`},
		{"unknown kind", `{"requests": [{"kind": "vacation", "worker": ` + ctsBody + `}]}`},
		{"bad nested field", `{"requests": [{"kind": "cts", "worker": ` + strings.Replace(ctsBody, "nov_apr", "q1", 1) + `}]}`},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/batch", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp ErrorResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, "invalid_input", resp.Kind)
			if tt.name == "bad nested field" {
				assert.Contains(t, resp.Details, "requests[0].period")
			}
		})
	}
}

func TestListPeriods(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodGet, "/api/periods?year=2024", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PeriodsResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2024, resp.ReferenceYear)
	assert.Equal(t, []PeriodDTO{
		{Kind: "nov_apr", Benefit: "cts", Start: "2023-11-01", End: "2024-04-30"},
		{Kind: "may_oct", Benefit: "cts", Start: "2024-05-01", End: "2024-10-31"},
		{Kind: "jan_jun", Benefit: "gratification", Start: "2024-01-01", End: "2024-06-30"},
		{Kind: "jul_dec", Benefit: "gratification", Start: "2024-07-01", End: "2024-12-31"},
	}, resp.Periods)

	rec = do(t, router, http.MethodGet, "/api/periods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2025, resp.ReferenceYear)

	rec = do(t, router, http.MethodGet, "/api/periods?year=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetParameters(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/parameters", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var params domain.LegalParameters
	decodeBody(t, rec, &params)
	assertAmount(t, "5150", params.UnitValue)
	assertAmount(t, "0.016", params.AFPCommissions[domain.AFPPrima])
	assert.Len(t, params.TaxBrackets, 5)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(&calculation.InvalidInputError{Field: "x", Reason: "y"}))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(&calculation.InsufficientServiceError{}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestNewServer(t *testing.T) {
	engine := calculation.NewCalculationEngineWithConfig(domain.DefaultLegalParameters(), 2025)
	srv := NewServer(":0", NewHandler(engine))

	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, writeTimeout, srv.WriteTimeout)
	require.NotNil(t, srv.Handler)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
