package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
	"github.com/elecreview/voltage-planner/internal/model"
)

var _ = Describe("Engine", func() {
	It("computes the documented end-to-end example", func() {
		// 400V three-phase circuit, 10A apparent with phases unavailable,
		// 50m length, no reserve, no catalog: falls back to the default wire.
		src := &fakeCircuit{
			name: "PP-1:3",
			numbers: map[string]float64{
				model.ParamPoles:           3,
				model.ParamVoltage:         400,
				model.ParamApparentCurrent: 10,
				model.ParamPowerFactor:     0.85,
				model.ParamLength:          50,
			},
		}

		calc := engine.New(&api.Settings{}).CalculateCircuit(src)

		Expect(calc.CircuitName).To(Equal("PP-1:3"))
		Expect(calc.Wire).To(Equal(engine.DefaultWireSize))
		Expect(calc.SinPhi).To(BeNumerically("~", 0.5268, 0.0001))
		Expect(calc.VoltageDrop).To(BeNumerically("~", 7.596, 0.001))
		Expect(calc.DropPercent).To(BeNumerically("~", 1.90, 0.005))
	})

	It("applies the reserve margin to the circuit length", func() {
		src := &fakeCircuit{
			numbers: map[string]float64{
				model.ParamPoles:           1,
				model.ParamVoltage:         230,
				model.ParamApparentCurrent: 10,
				model.ParamLength:          100,
			},
		}
		settings := &api.Settings{
			TemplateTables: []api.TemplateTable{{WireReservePercent: 10}},
		}

		calc := engine.New(settings).CalculateCircuit(src)
		Expect(calc.LengthMeters).To(BeNumerically("~", 110, 1e-9))
	})

	It("keeps incomputable circuits in the output", func() {
		sources := []model.CircuitSource{
			&fakeCircuit{name: "A", numbers: map[string]float64{}},
			&fakeCircuit{name: "B", numbers: map[string]float64{
				model.ParamPoles:           1,
				model.ParamVoltage:         230,
				model.ParamApparentCurrent: 10,
				model.ParamLength:          20,
			}},
		}

		calcs := engine.New(&api.Settings{}).CalculateAll(sources)

		Expect(calcs).To(HaveLen(2))
		Expect(calcs[0].DropPercent).To(Equal(engine.Unresolved))
		Expect(calcs[1].DropPercent).To(BeNumerically(">", 0))
	})

	It("sorts circuits by raw name with blank names first", func() {
		sources := []model.CircuitSource{
			&fakeCircuit{name: "LP-2"},
			&fakeCircuit{name: ""},
			&fakeCircuit{name: "LP-1"},
		}

		calcs := engine.New(&api.Settings{}).CalculateAll(sources)

		Expect(calcs[0].CircuitName).To(Equal(""))
		Expect(calcs[1].CircuitName).To(Equal("LP-1"))
		Expect(calcs[2].CircuitName).To(Equal("LP-2"))
	})

	It("preserves the relative input order of circuits with identical names", func() {
		sources := []model.CircuitSource{
			&fakeCircuit{name: "LP-1", numbers: map[string]float64{model.ParamVoltage: 120}},
			&fakeCircuit{name: "LP-1", numbers: map[string]float64{model.ParamVoltage: 230}},
		}

		calcs := engine.New(&api.Settings{}).CalculateAll(sources)

		Expect(calcs[0].Voltage).To(Equal(120.0))
		Expect(calcs[1].Voltage).To(Equal(230.0))
	})
})
