package types

import (
	"fmt"
	"math"

	"github.com/elecreview/voltage-planner/internal/engine"
)

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatCSV  ReportFormat = "csv"
)

// UnnamedCircuitLabel substitutes blank circuit names at display time.
// Sorting happens on the raw name; the substitution is display-only.
const UnnamedCircuitLabel = "<unnamed>"

type ReportData struct {
	RunName       string
	Generated     string
	GeneratedTime string
	Records       []engine.Calculation
}

type Renderer interface {
	SupportedFormat() ReportFormat
	Render(data *ReportData) (string, error)
}

// DisplayName returns the circuit name with the blank-name placeholder
// applied.
func DisplayName(calc engine.Calculation) string {
	if calc.CircuitName == "" {
		return UnnamedCircuitLabel
	}
	return calc.CircuitName
}

// Quantity renders a derived value at the given precision, the -1 sentinel
// shown as N/A. The precisions are a compatibility contract for downstream
// consumers of the report text.
func Quantity(v float64, decimals int) string {
	if v == engine.Unresolved {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// Voltage renders the nominal voltage truncated to whole volts.
func Voltage(v float64) string {
	if v == engine.Unresolved {
		return "N/A"
	}
	return fmt.Sprintf("%d", int(math.Trunc(v)))
}

// Poles renders the pole count, -1 shown as N/A.
func Poles(p int) string {
	if p == -1 {
		return "N/A"
	}
	return fmt.Sprintf("%d", p)
}
