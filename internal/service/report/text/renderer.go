package text

import (
	"fmt"
	"strings"

	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	var b strings.Builder

	title := "VOLTAGE DROP REPORT"
	if data.RunName != "" {
		title = fmt.Sprintf("%s - %s", title, data.RunName)
	}
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("Generated: %s at %s\n", data.Generated, data.GeneratedTime))

	if len(data.Records) == 0 {
		b.WriteString("\nNo circuits to report.\n")
		return b.String(), nil
	}

	for _, calc := range data.Records {
		r.writeCircuit(&b, calc)
	}

	return b.String(), nil
}

func (r *Renderer) writeCircuit(b *strings.Builder, calc engine.Calculation) {
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Circuit: %s\n", types.DisplayName(calc)))
	b.WriteString(fmt.Sprintf("  Poles:             %s\n", types.Poles(calc.Poles)))
	b.WriteString(fmt.Sprintf("  Voltage (V):       %s\n", types.Voltage(calc.Voltage)))
	b.WriteString(fmt.Sprintf("  Current (A):       %s\n", types.Quantity(calc.Current, 3)))
	b.WriteString(fmt.Sprintf("  Power factor:      %s\n", types.Quantity(calc.PowerFactor, 3)))
	b.WriteString(fmt.Sprintf("  Length (m):        %s\n", types.Quantity(calc.LengthMeters, 2)))
	b.WriteString(fmt.Sprintf("  Wire size:         %s (Rc=%s, Xc=%s)\n",
		wireLabel(calc),
		types.Quantity(calc.Wire.Rc, 4),
		types.Quantity(calc.Wire.Xc, 4)))
	b.WriteString(fmt.Sprintf("  K factor:          %s\n", types.Quantity(calc.KFactor, 3)))
	b.WriteString(fmt.Sprintf("  Length (ft):       %s\n", types.Quantity(calc.LengthFeet, 2)))
	b.WriteString(fmt.Sprintf("  Sin phi:           %s\n", types.Quantity(calc.SinPhi, 4)))
	b.WriteString(fmt.Sprintf("  Resistive term:    %s\n", types.Quantity(calc.ResistiveTerm, 4)))
	b.WriteString(fmt.Sprintf("  Reactive term:     %s\n", types.Quantity(calc.ReactiveTerm, 4)))
	b.WriteString(fmt.Sprintf("  Impedance term:    %s\n", types.Quantity(calc.ImpedanceTerm, 4)))
	b.WriteString(fmt.Sprintf("  Voltage drop (V):  %s\n", types.Quantity(calc.VoltageDrop, 4)))
	b.WriteString(fmt.Sprintf("  Voltage drop (%%):  %s\n", types.Quantity(calc.DropPercent, 2)))
}

func wireLabel(calc engine.Calculation) string {
	if calc.Wire.ConductorSize == "" {
		return "N/A"
	}
	return calc.Wire.ConductorSize
}
