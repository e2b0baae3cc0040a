package mappers

import (
	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/store/model"
)

func CalculationToAPI(calc engine.Calculation) api.CalculationRecord {
	return api.CalculationRecord{
		CircuitName:   calc.CircuitName,
		Poles:         calc.Poles,
		Voltage:       calc.Voltage,
		Current:       calc.Current,
		PowerFactor:   calc.PowerFactor,
		SinPhi:        calc.SinPhi,
		WireSize:      calc.Wire,
		LengthMeters:  calc.LengthMeters,
		LengthFeet:    calc.LengthFeet,
		KFactor:       calc.KFactor,
		ResistiveTerm: calc.ResistiveTerm,
		ReactiveTerm:  calc.ReactiveTerm,
		ImpedanceTerm: calc.ImpedanceTerm,
		VoltageDrop:   calc.VoltageDrop,
		DropPercent:   calc.DropPercent,
	}
}

func CalculationListToAPI(calcs []engine.Calculation) []api.CalculationRecord {
	records := make([]api.CalculationRecord, 0, len(calcs))
	for _, c := range calcs {
		records = append(records, CalculationToAPI(c))
	}
	return records
}

func RunToAPI(run *model.CalculationRun) *api.CalculationRun {
	out := &api.CalculationRun{
		Id:        run.ID,
		Name:      run.Name,
		CreatedAt: run.CreatedAt,
	}
	if run.Records != nil {
		out.Records = run.Records.Data
	}
	return out
}

func RunToSummaryAPI(run model.CalculationRun) api.CalculationRunSummary {
	return api.CalculationRunSummary{
		Id:           run.ID,
		Name:         run.Name,
		CreatedAt:    run.CreatedAt,
		Circuits:     run.Circuits,
		Incomputable: run.Incomputable,
	}
}

func RunListToAPI(runs model.CalculationRunList) api.CalculationRunList {
	out := make(api.CalculationRunList, 0, len(runs))
	for _, r := range runs {
		out = append(out, RunToSummaryAPI(r))
	}
	return out
}
