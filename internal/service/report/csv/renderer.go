package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/elecreview/voltage-planner/internal/service/report/types"
	"github.com/pkg/errors"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	csvRows := [][]string{
		{"VOLTAGE DROP REPORT"},
		{fmt.Sprintf("Generated: %s at %s", data.Generated, data.GeneratedTime)},
		{""},
		{"Circuit", "Poles", "Voltage (V)", "Current (A)", "Power Factor",
			"Length (m)", "Wire Size", "Rc", "Xc", "K Factor", "Length (ft)",
			"Sin Phi", "Resistive Term", "Reactive Term", "Impedance Term",
			"Voltage Drop (V)", "Voltage Drop (%)"},
	}

	for _, calc := range data.Records {
		wireSize := calc.Wire.ConductorSize
		if wireSize == "" {
			wireSize = "N/A"
		}
		csvRows = append(csvRows, []string{
			types.DisplayName(calc),
			types.Poles(calc.Poles),
			types.Voltage(calc.Voltage),
			types.Quantity(calc.Current, 3),
			types.Quantity(calc.PowerFactor, 3),
			types.Quantity(calc.LengthMeters, 2),
			wireSize,
			types.Quantity(calc.Wire.Rc, 4),
			types.Quantity(calc.Wire.Xc, 4),
			types.Quantity(calc.KFactor, 3),
			types.Quantity(calc.LengthFeet, 2),
			types.Quantity(calc.SinPhi, 4),
			types.Quantity(calc.ResistiveTerm, 4),
			types.Quantity(calc.ReactiveTerm, 4),
			types.Quantity(calc.ImpedanceTerm, 4),
			types.Quantity(calc.VoltageDrop, 4),
			types.Quantity(calc.DropPercent, 2),
		})
	}

	return convertRowsToCSV(csvRows)
}

func convertRowsToCSV(rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return "", errors.Wrap(err, "writing csv rows")
	}
	return buf.String(), nil
}
