package mappers

import (
	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
)

func CalculationFromAPI(record api.CalculationRecord) engine.Calculation {
	return engine.Calculation{
		CircuitName:   record.CircuitName,
		Poles:         record.Poles,
		Voltage:       record.Voltage,
		Current:       record.Current,
		PowerFactor:   record.PowerFactor,
		SinPhi:        record.SinPhi,
		Wire:          record.WireSize,
		LengthMeters:  record.LengthMeters,
		LengthFeet:    record.LengthFeet,
		KFactor:       record.KFactor,
		ResistiveTerm: record.ResistiveTerm,
		ReactiveTerm:  record.ReactiveTerm,
		ImpedanceTerm: record.ImpedanceTerm,
		VoltageDrop:   record.VoltageDrop,
		DropPercent:   record.DropPercent,
	}
}

func CalculationListFromAPI(records []api.CalculationRecord) []engine.Calculation {
	calcs := make([]engine.Calculation, 0, len(records))
	for _, r := range records {
		calcs = append(calcs, CalculationFromAPI(r))
	}
	return calcs
}
