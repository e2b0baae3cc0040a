package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/model"
)

func estimatorFor(numbers map[string]float64) *engine.CurrentEstimator {
	src := &fakeCircuit{numbers: numbers}
	return engine.NewCurrentEstimator(engine.NewResolver(src))
}

var _ = Describe("CurrentEstimator", func() {
	Describe("single pole", func() {
		It("returns the apparent current when present", func() {
			e := estimatorFor(map[string]float64{model.ParamApparentCurrent: 16.5})
			Expect(e.Estimate(1)).To(Equal(16.5))
		})

		It("returns the sentinel when the apparent current is absent", func() {
			e := estimatorFor(map[string]float64{})
			Expect(e.Estimate(1)).To(Equal(engine.Unresolved))
		})
	})

	Describe("two poles", func() {
		It("returns the apparent current when the phases are balanced", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 9.8,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   10.0005,
			})
			Expect(e.Estimate(2)).To(Equal(9.8))
		})

		It("returns the larger phase when imbalance is real", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 9.8,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   12.0,
			})
			Expect(e.Estimate(2)).To(Equal(12.0))
		})

		It("falls back to the apparent current when a phase reading is invalid", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 9.8,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   0,
			})
			Expect(e.Estimate(2)).To(Equal(9.8))
		})

		It("falls back to the apparent current when a phase reading is absent", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 9.8,
				model.ParamCurrentPhaseA:   10.0,
			})
			Expect(e.Estimate(2)).To(Equal(9.8))
		})
	})

	Describe("three poles", func() {
		It("returns the apparent current when all phases are balanced", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 10.2,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   10.0004,
				model.ParamCurrentPhaseC:   9.9996,
			})
			Expect(e.Estimate(3)).To(Equal(10.2))
		})

		It("returns the maximum phase when a single phase dominates", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 10.2,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   10.0,
				model.ParamCurrentPhaseC:   12.0,
			})
			Expect(e.Estimate(3)).To(Equal(12.0))
		})

		It("keeps the apparent current when two phases tie above the third", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 10.2,
				model.ParamCurrentPhaseA:   12.0,
				model.ParamCurrentPhaseB:   12.0,
				model.ParamCurrentPhaseC:   9.0,
			})
			Expect(e.Estimate(3)).To(Equal(10.2))
		})

		It("falls back to the apparent current when any phase reading is invalid", func() {
			e := estimatorFor(map[string]float64{
				model.ParamApparentCurrent: 10.2,
				model.ParamCurrentPhaseA:   10.0,
				model.ParamCurrentPhaseB:   -3.0,
				model.ParamCurrentPhaseC:   12.0,
			})
			Expect(e.Estimate(3)).To(Equal(10.2))
		})
	})

	Describe("other pole counts", func() {
		It("returns the sentinel", func() {
			e := estimatorFor(map[string]float64{model.ParamApparentCurrent: 10.0})
			Expect(e.Estimate(4)).To(Equal(engine.Unresolved))
			Expect(e.Estimate(0)).To(Equal(engine.Unresolved))
			Expect(e.Estimate(-1)).To(Equal(engine.Unresolved))
		})
	})
})
