package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/laborcalc/benefits-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// LookupFormatter resolves a format name, enriching the error with the
// available formatters and aliases.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders the report in the requested format and writes it to w.
func GenerateReport(w io.Writer, report *domain.BatchReport, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveParameters writes legal parameters as YAML, in the same shape the
// parameter loader reads.
func SaveParameters(params *domain.LegalParameters, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
