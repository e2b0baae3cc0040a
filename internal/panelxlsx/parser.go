// Package panelxlsx imports circuits from a panel-schedule spreadsheet.
// Missing columns and malformed cells are tolerated: absent values stay
// absent and resolve to sentinels inside the engine.
package panelxlsx

import (
	"bytes"
	"strconv"
	"strings"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const circuitsSheet = "Circuits"

// Column headers recognized on the Circuits sheet, matched case-insensitively.
const (
	colCircuit         = "circuit"
	colPoles           = "poles"
	colVoltage         = "voltage"
	colApparentCurrent = "apparent current"
	colPhaseA          = "current phase a"
	colPhaseB          = "current phase b"
	colPhaseC          = "current phase c"
	colPowerFactor     = "power factor"
	colLength          = "length"
	colCircuitLength   = "circuit length"
	colWireSize        = "wire size"
	colTypeWireSize    = "type wire size"
)

// Parse reads the Circuits sheet of a panel-schedule XLSX into API circuits.
func Parse(content []byte) ([]api.Circuit, error) {
	excelFile, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "opening spreadsheet")
	}
	defer excelFile.Close()

	rows, err := excelFile.GetRows(circuitsSheet)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", circuitsSheet)
	}
	if len(rows) < 2 {
		zap.S().Named("panelxlsx").Warnf("sheet %q has no circuit rows", circuitsSheet)
		return []api.Circuit{}, nil
	}

	columns := mapColumns(rows[0])

	circuits := make([]api.Circuit, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		circuits = append(circuits, parseRow(row, columns))
	}

	zap.S().Named("panelxlsx").Infof("imported %d circuits", len(circuits))
	return circuits, nil
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return columns
}

func parseRow(row []string, columns map[string]int) api.Circuit {
	c := api.Circuit{
		Name:            cell(row, columns, colCircuit),
		Voltage:         number(row, columns, colVoltage),
		ApparentCurrent: number(row, columns, colApparentCurrent),
		CurrentPhaseA:   number(row, columns, colPhaseA),
		CurrentPhaseB:   number(row, columns, colPhaseB),
		CurrentPhaseC:   number(row, columns, colPhaseC),
		PowerFactor:     number(row, columns, colPowerFactor),
		Length:          number(row, columns, colLength),
		CircuitLength:   number(row, columns, colCircuitLength),
		WireSize:        text(row, columns, colWireSize),
		TypeWireSize:    text(row, columns, colTypeWireSize),
	}

	if poles := number(row, columns, colPoles); poles != nil {
		p := int(*poles)
		c.Poles = &p
	}

	return c
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func text(row []string, columns map[string]int, name string) *string {
	v := cell(row, columns, name)
	if v == "" {
		return nil
	}
	return &v
}

func number(row []string, columns map[string]int, name string) *float64 {
	v := cell(row, columns, name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		zap.S().Named("panelxlsx").Debugf("unparsable %s value %q, treating as absent", name, v)
		return nil
	}
	return &f
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
