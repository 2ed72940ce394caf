package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompanyRegime is the company-size classification that scales CTS and
// decides gratification eligibility.
type CompanyRegime string

const (
	RegimeGeneral CompanyRegime = "general"
	RegimeMicro   CompanyRegime = "micro"
	RegimeSmall   CompanyRegime = "small"
)

var regimeAliases = map[string]CompanyRegime{
	"general":         RegimeGeneral,
	"regimen_general": RegimeGeneral,
	"micro":           RegimeMicro,
	"microempresa":    RegimeMicro,
	"regimen_micro":   RegimeMicro,
	"small":           RegimeSmall,
	"pequena":         RegimeSmall,
	"pequena_empresa": RegimeSmall,
	"regimen_pequena": RegimeSmall,
}

// ParseCompanyRegime resolves a regime name or one of its Spanish aliases.
func ParseCompanyRegime(s string) (CompanyRegime, error) {
	if r, ok := regimeAliases[normalizeTag(s)]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown company regime %q (use general, micro or small)", s)
}

// HalvesCTS reports whether CTS amounts are paid at 50% under this regime.
func (r CompanyRegime) HalvesCTS() bool {
	return r == RegimeMicro || r == RegimeSmall
}

// ReceivesGratification is false only for micro companies.
func (r CompanyRegime) ReceivesGratification() bool {
	return r != RegimeMicro
}

// Label returns the display name of the regime.
func (r CompanyRegime) Label() string {
	switch r {
	case RegimeGeneral:
		return "Régimen General"
	case RegimeMicro:
		return "Régimen Microempresa"
	case RegimeSmall:
		return "Régimen Pequeña Empresa"
	default:
		return string(r)
	}
}

// UnmarshalYAML accepts any alias understood by ParseCompanyRegime.
func (r *CompanyRegime) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCompanyRegime(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// HealthInsurance selects the health-insurance scheme that decides the
// extraordinary bonus rate paid with the gratification.
type HealthInsurance string

const (
	InsuranceEsSalud HealthInsurance = "essalud"
	InsuranceEPS     HealthInsurance = "eps"
)

// ParseHealthInsurance resolves "essalud" or "eps".
func ParseHealthInsurance(s string) (HealthInsurance, error) {
	switch normalizeTag(s) {
	case "essalud":
		return InsuranceEsSalud, nil
	case "eps":
		return InsuranceEPS, nil
	}
	return "", fmt.Errorf("unknown health insurance %q (use essalud or eps)", s)
}

// Label returns the display name of the insurance scheme.
func (h HealthInsurance) Label() string {
	switch h {
	case InsuranceEsSalud:
		return "EsSalud"
	case InsuranceEPS:
		return "EPS"
	default:
		return string(h)
	}
}

// UnmarshalYAML accepts any spelling understood by ParseHealthInsurance.
func (h *HealthInsurance) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHealthInsurance(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// PensionSystem is either the public ONP scheme or a private AFP.
type PensionSystem string

const (
	PensionONP PensionSystem = "onp"
	PensionAFP PensionSystem = "afp"
)

// AFPProvider names a private pension fund administrator.
type AFPProvider string

const (
	AFPHabitat   AFPProvider = "habitat"
	AFPIntegra   AFPProvider = "integra"
	AFPPrima     AFPProvider = "prima"
	AFPProfuturo AFPProvider = "profuturo"
)

// AFPProviders lists the known providers in display order.
var AFPProviders = []AFPProvider{AFPHabitat, AFPIntegra, AFPPrima, AFPProfuturo}

// ParseAFPProvider resolves a provider name.
func ParseAFPProvider(s string) (AFPProvider, error) {
	n := AFPProvider(normalizeTag(s))
	for _, p := range AFPProviders {
		if p == n {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown AFP provider %q (use habitat, integra, prima or profuturo)", s)
}

// UnmarshalYAML accepts provider names in any case.
func (p *AFPProvider) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAFPProvider(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PensionScheme is ONP, or AFP together with its provider.
type PensionScheme struct {
	System   PensionSystem `yaml:"system" json:"system"`
	Provider AFPProvider   `yaml:"provider,omitempty" json:"provider,omitempty"`
}

// ONP returns the public flat-rate scheme.
func ONP() PensionScheme {
	return PensionScheme{System: PensionONP}
}

// AFP returns the private scheme administered by provider.
func AFP(provider AFPProvider) PensionScheme {
	return PensionScheme{System: PensionAFP, Provider: provider}
}

// ParsePensionScheme builds a scheme from a system name and an optional provider.
func ParsePensionScheme(system, provider string) (PensionScheme, error) {
	switch normalizeTag(system) {
	case "onp":
		return ONP(), nil
	case "afp":
		if strings.TrimSpace(provider) == "" {
			return AFP(""), nil
		}
		p, err := ParseAFPProvider(provider)
		if err != nil {
			return PensionScheme{}, err
		}
		return AFP(p), nil
	}
	return PensionScheme{}, fmt.Errorf("unknown pension system %q (use onp or afp)", system)
}

// UnmarshalYAML validates the system and provider pair.
func (ps *PensionScheme) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		System   string `yaml:"system"`
		Provider string `yaml:"provider"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParsePensionScheme(raw.System, raw.Provider)
	if err != nil {
		return err
	}
	*ps = parsed
	return nil
}

// Label returns "ONP" or "AFP Prima" style display names.
func (ps PensionScheme) Label() string {
	if ps.System == PensionONP {
		return "ONP"
	}
	if ps.Provider == "" {
		return "AFP"
	}
	return "AFP " + strings.ToUpper(string(ps.Provider[:1])) + string(ps.Provider[1:])
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
	" - ", "_", "-", "_", " ", "_",
)

// normalizeTag lowers a user-supplied tag and folds accents and separators so
// that "Pequeña Empresa", "pequena-empresa" and "PEQUENA_EMPRESA" compare equal.
func normalizeTag(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
