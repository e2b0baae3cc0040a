package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
)

var _ = Describe("KFactor", func() {
	It("uses the round-trip conductor pair for single and two-pole circuits", func() {
		Expect(engine.KFactor(1)).To(Equal(2.0))
		Expect(engine.KFactor(2)).To(Equal(2.0))
	})

	It("uses sqrt(3) for three-phase circuits", func() {
		Expect(engine.KFactor(3)).To(BeNumerically("~", 1.73205, 0.00001))
	})

	It("degenerates to zero for any other pole count", func() {
		Expect(engine.KFactor(5)).To(Equal(0.0))
		Expect(engine.KFactor(-1)).To(Equal(0.0))
	})
})

var _ = Describe("Calculate", func() {
	wire := api.WireSize{ConductorSize: "#14", Rc: 3.1, Xc: 0.073}

	It("computes the full breakdown for a three-phase circuit", func() {
		calc := engine.Calculate(400, 3, 10, 0.85, 50, &wire)

		Expect(calc.SinPhi).To(BeNumerically("~", 0.5268, 0.0001))
		Expect(calc.KFactor).To(BeNumerically("~", 1.73205, 0.00001))
		Expect(calc.LengthFeet).To(BeNumerically("~", 164.04, 0.01))
		Expect(calc.ResistiveTerm).To(BeNumerically("~", 2.635, 0.0001))
		Expect(calc.ReactiveTerm).To(BeNumerically("~", 0.03846, 0.0001))
		Expect(calc.ImpedanceTerm).To(BeNumerically("~", 2.6735, 0.001))
		Expect(calc.VoltageDrop).To(BeNumerically("~", 7.596, 0.001))
		Expect(calc.DropPercent).To(BeNumerically("~", 1.90, 0.005))
		Expect(calc.Computable()).To(BeTrue())
	})

	It("short-circuits when the voltage is not positive", func() {
		calc := engine.Calculate(0, 3, 10, 0.85, 50, &wire)

		Expect(calc.DropPercent).To(Equal(engine.Unresolved))
		Expect(calc.Voltage).To(Equal(0.0))
		Expect(calc.Current).To(Equal(10.0))
		Expect(calc.PowerFactor).To(Equal(0.85))
		Expect(calc.SinPhi).To(Equal(engine.Unresolved))
	})

	It("short-circuits when the current is unresolved", func() {
		calc := engine.Calculate(400, 3, engine.Unresolved, 0.85, 50, &wire)
		Expect(calc.DropPercent).To(Equal(engine.Unresolved))
	})

	It("short-circuits when the length is unresolved", func() {
		calc := engine.Calculate(400, 3, 10, 0.85, engine.Unresolved, &wire)
		Expect(calc.DropPercent).To(Equal(engine.Unresolved))
	})

	It("short-circuits after sin phi when the wire size is unresolved", func() {
		calc := engine.Calculate(400, 3, 10, 0.85, 50, nil)

		Expect(calc.DropPercent).To(Equal(engine.Unresolved))
		Expect(calc.SinPhi).To(BeNumerically("~", 0.5268, 0.0001))
		Expect(calc.Wire.Rc).To(Equal(engine.Unresolved))
	})

	It("produces zero drop deliberately for a degenerate pole count", func() {
		calc := engine.Calculate(400, 7, 10, 0.85, 50, &wire)

		Expect(calc.KFactor).To(Equal(0.0))
		Expect(calc.VoltageDrop).To(Equal(0.0))
		Expect(calc.DropPercent).To(Equal(0.0))
		Expect(calc.Computable()).To(BeTrue())
	})

	It("never yields NaN in any derived field", func() {
		calcs := []engine.Calculation{
			engine.Calculate(400, 3, 10, 1.0, 50, &wire),
			engine.Calculate(400, 3, 10, 0, 50, &wire),
			engine.Calculate(400, 3, 10, 1.5, 50, &wire),
			engine.Calculate(-1, -1, -1, 0.85, -1, nil),
		}
		for _, calc := range calcs {
			for _, v := range []float64{calc.SinPhi, calc.LengthFeet, calc.KFactor,
				calc.ResistiveTerm, calc.ReactiveTerm, calc.ImpedanceTerm,
				calc.VoltageDrop, calc.DropPercent} {
				Expect(math.IsNaN(v)).To(BeFalse())
			}
		}
	})

	It("is idempotent on identical inputs", func() {
		first := engine.Calculate(400, 3, 10, 0.85, 50, &wire)
		second := engine.Calculate(400, 3, 10, 0.85, 50, &wire)
		Expect(first).To(Equal(second))
	})
})
