package engine

import (
	"strings"

	"github.com/elecreview/voltage-planner/internal/model"
)

// Unresolved is the uniform sentinel for "value not computable". It is
// propagated through every dependent calculation step instead of aborting
// the per-circuit pass.
const Unresolved = -1.0

// DefaultPowerFactor is the engineering default applied when a circuit
// carries no power-factor parameter. A missing power factor is common and
// must not block the whole calculation.
const DefaultPowerFactor = 0.85

// Resolver resolves single electrical attributes of a circuit from ordered
// candidate parameters, falling back to Unresolved when nothing is present.
type Resolver struct {
	src model.CircuitSource
}

func NewResolver(src model.CircuitSource) *Resolver {
	return &Resolver{src: src}
}

// Number returns the value of the first present parameter among the
// candidates, Unresolved when none exists.
func (r *Resolver) Number(params ...string) float64 {
	for _, p := range params {
		if v, ok := r.src.Number(p); ok {
			return v
		}
	}
	return Unresolved
}

// Poles returns the circuit's pole count, -1 when unknown.
func (r *Resolver) Poles() int {
	if v, ok := r.src.Number(model.ParamPoles); ok {
		return int(v)
	}
	return -1
}

// Voltage returns the circuit's line voltage in volts.
func (r *Resolver) Voltage() float64 {
	return r.Number(model.ParamVoltage)
}

// PowerFactor returns the circuit's power factor normalized to the 0-1
// range. Values stored in percentage form (strictly greater than 1) are
// divided by 100.
func (r *Resolver) PowerFactor() float64 {
	v, ok := r.src.Number(model.ParamPowerFactor)
	if !ok {
		return DefaultPowerFactor
	}
	if v > 1 {
		return v / 100
	}
	return v
}

// RawLength returns the circuit length in meters from the primary length
// parameter, falling back to the secondary named field.
func (r *Resolver) RawLength() float64 {
	return r.Number(model.ParamLength, model.ParamCircuitLength)
}

// WireLabel returns the conductor-size label, checked at the circuit
// instance first and at its type second. Empty string means unresolved.
func (r *Resolver) WireLabel() string {
	if s, ok := r.src.Text(model.ParamWireSize); ok && strings.TrimSpace(s) != "" {
		return s
	}
	if s, ok := r.src.TypeText(model.ParamWireSize); ok {
		return s
	}
	return ""
}
