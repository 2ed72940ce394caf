/*
handlers.go - HTTP request handlers for the benefits calculator API

PURPOSE:

	Decodes JSON requests, converts them into domain records, runs them
	through the shared CalculationEngine and encodes the breakdowns.

ENDPOINTS:

	POST /api/cts            - CTS severance deposit for one worker
	POST /api/gratification  - gratification plus extraordinary bonus
	POST /api/pay            - instructor monthly pay and net salary
	POST /api/batch          - many requests in one call, outcomes in order
	GET  /api/parameters     - the legal parameters in effect
	GET  /api/periods        - computation windows of a reference year
	GET  /healthz            - liveness probe

STATUS CODES:

	200 - calculation done (a Micro gratification is 200 with status
	      not_eligible_regime)
	400 - malformed JSON or invalid input
	422 - worker has not completed one month in the period
	500 - anything else

The engine keeps no per-request state, so a single Handler serves all
requests concurrently.
*/
package api

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/domain"
)

// maxBodyBytes bounds request bodies; batches are the largest payloads.
const maxBodyBytes = 1 << 20

// Handler holds the dependencies for HTTP handlers.
type Handler struct {
	Engine *calculation.CalculationEngine
}

// NewHandler creates a new Handler backed by engine.
func NewHandler(engine *calculation.CalculationEngine) *Handler {
	return &Handler{Engine: engine}
}

// =============================================================================
// CALCULATIONS
// =============================================================================

// CalculateCTS handles POST /api/cts.
func (h *Handler) CalculateCTS(w http.ResponseWriter, r *http.Request) {
	var req WorkerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	record, err := req.ToWorkerRecord()
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	result, err := h.Engine.CalculateSeverance(record)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CalculateGratification handles POST /api/gratification.
func (h *Handler) CalculateGratification(w http.ResponseWriter, r *http.Request) {
	var req WorkerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	record, err := req.ToWorkerRecord()
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	result, err := h.Engine.CalculateBonus(record)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CalculatePay handles POST /api/pay.
func (h *Handler) CalculatePay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.ToPayInput()
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	result, err := h.Engine.CalculatePay(in)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RunBatch handles POST /api/batch. Individual failures are reported inside
// the outcomes; only a malformed batch or a dropped connection fails the call.
func (h *Handler) RunBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	batch, err := req.ToBatch()
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	report, err := h.Engine.RunBatch(r.Context(), batch)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Batch did not complete", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// GetParameters handles GET /api/parameters.
func (h *Handler) GetParameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.Params)
}

// ListPeriods handles GET /api/periods?year=2025.
func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	year := h.Engine.ReferenceYear
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid year parameter", err)
			return
		}
		year = parsed
	}

	resp := PeriodsResponse{ReferenceYear: year}
	for _, win := range domain.SeverancePeriods(year) {
		resp.Periods = append(resp.Periods, toPeriodDTO(win))
	}
	for _, win := range domain.BonusPeriods(year) {
		resp.Periods = append(resp.Periods, toPeriodDTO(win))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", ReferenceYear: h.Engine.ReferenceYear})
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// statusFor maps calculation errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculation.ErrInsufficientService):
		return http.StatusUnprocessableEntity
	case errors.Is(err, calculation.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeCalculationError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Kind:    calculation.ErrorKind(err),
		Details: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
