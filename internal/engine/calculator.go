package engine

import (
	"math"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
)

const (
	feetPerMeter = 3.28084

	// Rc and Xc are catalogued per 1000 feet of conductor.
	impedanceBasis = 1000.0
)

// Calculation is the full per-circuit breakdown. Every derived field is
// either a well-defined physical quantity or exactly Unresolved, never NaN.
// The intermediates are retained for audit display, not just the final
// percentage.
type Calculation struct {
	CircuitName   string
	Voltage       float64
	Poles         int
	Current       float64
	PowerFactor   float64
	SinPhi        float64
	Wire          api.WireSize
	LengthMeters  float64
	LengthFeet    float64
	KFactor       float64
	ResistiveTerm float64
	ReactiveTerm  float64
	ImpedanceTerm float64
	VoltageDrop   float64
	DropPercent   float64
}

// Computable reports whether the voltage drop could be derived.
func (c Calculation) Computable() bool {
	return c.DropPercent != Unresolved
}

// Calculate applies the voltage-drop formula. The power factor is assumed
// already normalized to 0-1 by the resolver. When voltage, current, or
// length is non-positive or the wire size is unresolved, the calculation
// short-circuits to DropPercent=Unresolved with the already-known fields
// left populated for diagnostics.
func Calculate(voltage float64, poles int, current, powerFactor, lengthMeters float64, wire *api.WireSize) Calculation {
	calc := Calculation{
		Voltage:       voltage,
		Poles:         poles,
		Current:       current,
		PowerFactor:   powerFactor,
		LengthMeters:  lengthMeters,
		SinPhi:        Unresolved,
		Wire:          api.WireSize{Rc: Unresolved, Xc: Unresolved},
		LengthFeet:    Unresolved,
		KFactor:       Unresolved,
		ResistiveTerm: Unresolved,
		ReactiveTerm:  Unresolved,
		ImpedanceTerm: Unresolved,
		VoltageDrop:   Unresolved,
		DropPercent:   Unresolved,
	}

	if voltage <= 0 || current <= 0 || lengthMeters <= 0 {
		return calc
	}

	calc.SinPhi = math.Sqrt(math.Max(0, 1-powerFactor*powerFactor))

	if wire == nil {
		return calc
	}
	calc.Wire = *wire

	calc.LengthFeet = lengthMeters * feetPerMeter
	calc.KFactor = KFactor(poles)
	calc.ResistiveTerm = wire.Rc * powerFactor
	calc.ReactiveTerm = wire.Xc * calc.SinPhi
	calc.ImpedanceTerm = calc.ResistiveTerm + calc.ReactiveTerm
	calc.VoltageDrop = (calc.KFactor * current * calc.LengthFeet * calc.ImpedanceTerm) / impedanceBasis
	calc.DropPercent = (calc.VoltageDrop / voltage) * 100

	return calc
}

// KFactor is the topology-dependent multiplier: 2 for the round-trip
// conductor pair of single- and two-pole circuits, sqrt(3) for three-phase,
// 0 for any other pole count (degenerate, yields zero drop rather than an
// undefined state).
func KFactor(poles int) float64 {
	switch poles {
	case 1, 2:
		return 2
	case 3:
		return math.Sqrt(3)
	default:
		return 0
	}
}
