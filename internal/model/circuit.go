package model

import (
	api "github.com/elecreview/voltage-planner/api/v1alpha1"
)

// Parameter identifiers exposed by the host building model. Phase currents
// share the apparent-current prefix with a phase suffix.
const (
	ParamPoles           = "Number of Poles"
	ParamVoltage         = "Voltage"
	ParamPowerFactor     = "Power Factor"
	ParamLength          = "Length"
	ParamCircuitLength   = "Circuit Length"
	ParamApparentCurrent = "Apparent Current"
	ParamCurrentPhaseA   = ParamApparentCurrent + " Phase A"
	ParamCurrentPhaseB   = ParamApparentCurrent + " Phase B"
	ParamCurrentPhaseC   = ParamApparentCurrent + " Phase C"
	ParamWireSize        = "Wire Size"
)

// CircuitSource is the narrow capability interface over the host model's
// parameter lookup. Numeric values are expected in SI units (volts, amps,
// meters); unit conversion is the host adapter's job. Text lookups check
// the circuit instance; TypeText checks the circuit's type.
type CircuitSource interface {
	Name() string
	Number(param string) (float64, bool)
	Text(param string) (string, bool)
	TypeText(param string) (string, bool)
}

// apiCircuit adapts the wire representation to CircuitSource.
type apiCircuit struct {
	c api.Circuit
}

// FromAPI wraps an API circuit payload as a CircuitSource.
func FromAPI(c api.Circuit) CircuitSource {
	return &apiCircuit{c: c}
}

// FromAPIList wraps a batch of API circuits.
func FromAPIList(circuits []api.Circuit) []CircuitSource {
	sources := make([]CircuitSource, 0, len(circuits))
	for _, c := range circuits {
		sources = append(sources, FromAPI(c))
	}
	return sources
}

func (a *apiCircuit) Name() string {
	return a.c.Name
}

func (a *apiCircuit) Number(param string) (float64, bool) {
	switch param {
	case ParamPoles:
		if a.c.Poles == nil {
			return 0, false
		}
		return float64(*a.c.Poles), true
	case ParamVoltage:
		return deref(a.c.Voltage)
	case ParamPowerFactor:
		return deref(a.c.PowerFactor)
	case ParamLength:
		return deref(a.c.Length)
	case ParamCircuitLength:
		return deref(a.c.CircuitLength)
	case ParamApparentCurrent:
		return deref(a.c.ApparentCurrent)
	case ParamCurrentPhaseA:
		return deref(a.c.CurrentPhaseA)
	case ParamCurrentPhaseB:
		return deref(a.c.CurrentPhaseB)
	case ParamCurrentPhaseC:
		return deref(a.c.CurrentPhaseC)
	default:
		return 0, false
	}
}

func (a *apiCircuit) Text(param string) (string, bool) {
	if param == ParamWireSize && a.c.WireSize != nil {
		return *a.c.WireSize, true
	}
	return "", false
}

func (a *apiCircuit) TypeText(param string) (string, bool) {
	if param == ParamWireSize && a.c.TypeWireSize != nil {
		return *a.c.TypeWireSize, true
	}
	return "", false
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
