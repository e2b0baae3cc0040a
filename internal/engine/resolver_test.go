package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/model"
)

var _ = Describe("Resolver", func() {
	Describe("power factor", func() {
		It("normalizes percentage-form values", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{
				model.ParamPowerFactor: 85,
			}})
			Expect(r.PowerFactor()).To(Equal(0.85))
		})

		It("keeps fractional values unchanged", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{
				model.ParamPowerFactor: 0.9,
			}})
			Expect(r.PowerFactor()).To(Equal(0.9))
		})

		It("defaults to 0.85 when absent", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{}})
			Expect(r.PowerFactor()).To(Equal(engine.DefaultPowerFactor))
		})
	})

	Describe("length", func() {
		It("prefers the primary length field", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{
				model.ParamLength:        40,
				model.ParamCircuitLength: 55,
			}})
			Expect(r.RawLength()).To(Equal(40.0))
		})

		It("falls back to the secondary named field", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{
				model.ParamCircuitLength: 55,
			}})
			Expect(r.RawLength()).To(Equal(55.0))
		})

		It("returns the sentinel when neither field exists", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{}})
			Expect(r.RawLength()).To(Equal(engine.Unresolved))
		})
	})

	Describe("wire label", func() {
		It("prefers the circuit-instance field", func() {
			r := engine.NewResolver(&fakeCircuit{
				text:     map[string]string{model.ParamWireSize: "#10"},
				typeText: map[string]string{model.ParamWireSize: "#12"},
			})
			Expect(r.WireLabel()).To(Equal("#10"))
		})

		It("falls back to the circuit-type field when the instance field is blank", func() {
			r := engine.NewResolver(&fakeCircuit{
				text:     map[string]string{model.ParamWireSize: "  "},
				typeText: map[string]string{model.ParamWireSize: "#12"},
			})
			Expect(r.WireLabel()).To(Equal("#12"))
		})

		It("returns empty when neither level has a label", func() {
			r := engine.NewResolver(&fakeCircuit{})
			Expect(r.WireLabel()).To(Equal(""))
		})
	})

	Describe("poles and voltage", func() {
		It("resolves the pole count", func() {
			r := engine.NewResolver(&fakeCircuit{numbers: map[string]float64{
				model.ParamPoles: 3,
			}})
			Expect(r.Poles()).To(Equal(3))
		})

		It("returns -1 for an unknown pole count", func() {
			r := engine.NewResolver(&fakeCircuit{})
			Expect(r.Poles()).To(Equal(-1))
		})

		It("returns the sentinel for a missing voltage", func() {
			r := engine.NewResolver(&fakeCircuit{})
			Expect(r.Voltage()).To(Equal(engine.Unresolved))
		})
	})
})
