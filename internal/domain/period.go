package domain

import (
	"fmt"
	"time"

	"github.com/laborcalc/benefits-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// PeriodKind names one of the four half-year windows used for proration.
// CTS uses nov_apr and may_oct; gratification uses jan_jun and jul_dec.
type PeriodKind string

const (
	PeriodNovApr PeriodKind = "nov_apr"
	PeriodMayOct PeriodKind = "may_oct"
	PeriodJanJun PeriodKind = "jan_jun"
	PeriodJulDec PeriodKind = "jul_dec"
)

var periodAliases = map[string]PeriodKind{
	"nov_apr":     PeriodNovApr,
	"novabr":      PeriodNovApr,
	"nov_abr":     PeriodNovApr,
	"per_nov_abr": PeriodNovApr,
	"may_oct":     PeriodMayOct,
	"mayoct":      PeriodMayOct,
	"per_may_oct": PeriodMayOct,
	"jan_jun":     PeriodJanJun,
	"ene_jun":     PeriodJanJun,
	"per_ene_jun": PeriodJanJun,
	"jul_dec":     PeriodJulDec,
	"jul_dic":     PeriodJulDec,
	"per_jul_dic": PeriodJulDec,
}

// ParsePeriodKind resolves a period name such as "nov-apr" or "PER Ene - Jun".
func ParsePeriodKind(s string) (PeriodKind, error) {
	if k, ok := periodAliases[normalizeTag(s)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown period %q (use nov_apr, may_oct, jan_jun or jul_dec)", s)
}

// IsSeverancePeriod reports whether CTS can be computed for this window.
func (k PeriodKind) IsSeverancePeriod() bool {
	return k == PeriodNovApr || k == PeriodMayOct
}

// IsBonusPeriod reports whether a gratification can be computed for this window.
func (k PeriodKind) IsBonusPeriod() bool {
	return k == PeriodJanJun || k == PeriodJulDec
}

// Window returns the concrete date span of the period for a reference year.
// The reference year is the year in which the window ends, so nov_apr 2025
// runs from 2024-11-01 to 2025-04-30.
func (k PeriodKind) Window(referenceYear int) (PeriodWindow, error) {
	y := referenceYear
	var start, end time.Time
	switch k {
	case PeriodNovApr:
		start, end = dateutil.Date(y-1, time.November, 1), dateutil.Date(y, time.April, 30)
	case PeriodMayOct:
		start, end = dateutil.Date(y, time.May, 1), dateutil.Date(y, time.October, 31)
	case PeriodJanJun:
		start, end = dateutil.Date(y, time.January, 1), dateutil.Date(y, time.June, 30)
	case PeriodJulDec:
		start, end = dateutil.Date(y, time.July, 1), dateutil.Date(y, time.December, 31)
	default:
		return PeriodWindow{}, fmt.Errorf("unknown period %q", k)
	}
	return PeriodWindow{Kind: k, ReferenceYear: y, Start: start, End: end}, nil
}

// UnmarshalYAML accepts any alias understood by ParsePeriodKind.
func (k *PeriodKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePeriodKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PeriodWindow is a half-year span that bounds eligibility and proration.
type PeriodWindow struct {
	Kind          PeriodKind `yaml:"kind" json:"kind"`
	ReferenceYear int        `yaml:"reference_year" json:"reference_year"`
	Start         time.Time  `yaml:"start" json:"start"`
	End           time.Time  `yaml:"end" json:"end"`
}

// Label renders the window as "2024-11-01 to 2025-04-30".
func (w PeriodWindow) Label() string {
	return w.Start.Format(dateutil.DateLayout) + " to " + w.End.Format(dateutil.DateLayout)
}

// SeverancePeriods returns both CTS windows of a reference year.
func SeverancePeriods(referenceYear int) []PeriodWindow {
	return windows(referenceYear, PeriodNovApr, PeriodMayOct)
}

// BonusPeriods returns both gratification windows of a reference year.
func BonusPeriods(referenceYear int) []PeriodWindow {
	return windows(referenceYear, PeriodJanJun, PeriodJulDec)
}

func windows(year int, kinds ...PeriodKind) []PeriodWindow {
	out := make([]PeriodWindow, 0, len(kinds))
	for _, k := range kinds {
		w, _ := k.Window(year)
		out = append(out, w)
	}
	return out
}
