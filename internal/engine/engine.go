// Package engine implements the circuit-parameter resolution and
// voltage-drop calculation core. Each calculation is a pure function of the
// circuit data and the read-only configuration tables; missing or malformed
// domain data flows through as the -1 sentinel instead of errors.
package engine

import (
	"sort"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/model"
	"go.uber.org/zap"
)

type Engine struct {
	catalog        *WireSizeCatalog
	reservePercent float64
}

func New(settings *api.Settings) *Engine {
	return &Engine{
		catalog:        NewWireSizeCatalog(settings),
		reservePercent: ReservePercent(settings),
	}
}

// CalculateCircuit resolves the circuit's electrical attributes and
// computes its voltage-drop breakdown.
func (e *Engine) CalculateCircuit(src model.CircuitSource) Calculation {
	r := NewResolver(src)

	poles := r.Poles()
	voltage := r.Voltage()
	powerFactor := r.PowerFactor()
	length := AdjustLength(r.RawLength(), e.reservePercent)
	current := NewCurrentEstimator(r).Estimate(poles)
	wire := e.catalog.Lookup(r.WireLabel())

	calc := Calculate(voltage, poles, current, powerFactor, length, &wire)
	calc.CircuitName = src.Name()
	return calc
}

// CalculateAll processes every circuit and returns the records sorted by
// raw circuit name (ordinal, stable). Incomputable circuits are kept in the
// output with the sentinel percent rather than omitted.
func (e *Engine) CalculateAll(sources []model.CircuitSource) []Calculation {
	sorted := make([]model.CircuitSource, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	calcs := make([]Calculation, 0, len(sorted))
	for _, src := range sorted {
		calc := e.CalculateCircuit(src)
		if !calc.Computable() {
			zap.S().Named("engine").Debugf("voltage drop not computable for circuit %q", src.Name())
		}
		calcs = append(calcs, calc)
	}
	return calcs
}
