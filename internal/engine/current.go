package engine

import (
	"math"

	"github.com/elecreview/voltage-planner/internal/model"
)

// phaseBalanceEpsilon is the threshold under which phase currents are
// considered balanced and the apparent reading is trusted.
const phaseBalanceEpsilon = 0.001

// CurrentEstimator derives the design current for a circuit. Phase
// imbalance can make the vector-summed apparent current understate the
// heaviest-loaded conductor, so the estimator returns the worst phase when
// imbalance is real and the phase data is trustworthy.
type CurrentEstimator struct {
	r *Resolver
}

func NewCurrentEstimator(r *Resolver) *CurrentEstimator {
	return &CurrentEstimator{r: r}
}

// Estimate returns the design current in amps for the given pole count,
// Unresolved for pole counts outside {1,2,3}.
func (e *CurrentEstimator) Estimate(poles int) float64 {
	switch poles {
	case 1:
		return e.apparent()
	case 2:
		a := e.r.Number(model.ParamCurrentPhaseA)
		b := e.r.Number(model.ParamCurrentPhaseB)
		if a <= 0 || b <= 0 {
			return e.apparent()
		}
		if math.Abs(a-b) < phaseBalanceEpsilon {
			return e.apparent()
		}
		return math.Max(a, b)
	case 3:
		a := e.r.Number(model.ParamCurrentPhaseA)
		b := e.r.Number(model.ParamCurrentPhaseB)
		c := e.r.Number(model.ParamCurrentPhaseC)
		if a <= 0 || b <= 0 || c <= 0 {
			return e.apparent()
		}
		if math.Abs(a-b) < phaseBalanceEpsilon &&
			math.Abs(b-c) < phaseBalanceEpsilon &&
			math.Abs(a-c) < phaseBalanceEpsilon {
			return e.apparent()
		}
		switch {
		case a > b && a > c:
			return a
		case b > a && b > c:
			return b
		case c > a && c > b:
			return c
		}
		// Two phases tied-high above a third: no single worst phase, keep
		// the apparent reading.
		return e.apparent()
	default:
		return Unresolved
	}
}

func (e *CurrentEstimator) apparent() float64 {
	return e.r.Number(model.ParamApparentCurrent)
}
