package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/engine"
)

var _ = Describe("WireSizeCatalog", func() {
	settings := &api.Settings{
		WireSizeTables: []api.WireSizeTable{
			{WireSizes: []api.WireSize{
				{ConductorSize: "#12", Rc: 2.0, Xc: 0.068},
				{ConductorSize: "#10", Rc: 1.2, Xc: 0.063},
			}},
			// A second table must never be consulted.
			{WireSizes: []api.WireSize{
				{ConductorSize: "#8", Rc: 0.78, Xc: 0.065},
			}},
		},
	}

	It("matches labels case-insensitively", func() {
		catalog := engine.NewWireSizeCatalog(settings)
		upper := catalog.Lookup("#12")
		lower := catalog.Lookup("#12 ")
		Expect(upper).To(Equal(lower))
		Expect(upper.Rc).To(Equal(2.0))
	})

	It("only consults the first configured table", func() {
		catalog := engine.NewWireSizeCatalog(settings)
		Expect(catalog.Lookup("#8")).To(Equal(engine.DefaultWireSize))
	})

	It("degrades unknown labels to the default wire size", func() {
		catalog := engine.NewWireSizeCatalog(settings)
		w := catalog.Lookup("#999")
		Expect(w.ConductorSize).To(Equal("#14"))
		Expect(w.Rc).To(Equal(3.1))
		Expect(w.Xc).To(Equal(0.073))
	})

	It("degrades blank labels to the default wire size", func() {
		catalog := engine.NewWireSizeCatalog(settings)
		Expect(catalog.Lookup("")).To(Equal(engine.DefaultWireSize))
		Expect(catalog.Lookup("   ")).To(Equal(engine.DefaultWireSize))
	})

	It("degrades to the default wire size when no catalog is configured", func() {
		catalog := engine.NewWireSizeCatalog(&api.Settings{})
		Expect(catalog.Lookup("#12")).To(Equal(engine.DefaultWireSize))
	})
})

var _ = Describe("LengthAdjuster", func() {
	It("applies the reserve margin", func() {
		Expect(engine.AdjustLength(100, 10)).To(BeNumerically("~", 110, 1e-9))
	})

	It("keeps the length unchanged with a zero reserve", func() {
		Expect(engine.AdjustLength(50, 0)).To(Equal(50.0))
	})

	It("returns the sentinel for non-positive lengths", func() {
		Expect(engine.AdjustLength(0, 10)).To(Equal(engine.Unresolved))
		Expect(engine.AdjustLength(engine.Unresolved, 10)).To(Equal(engine.Unresolved))
	})

	It("takes the reserve percent from the first configured template", func() {
		settings := &api.Settings{
			TemplateTables: []api.TemplateTable{
				{WireReservePercent: 15},
				{WireReservePercent: 99},
			},
		}
		Expect(engine.ReservePercent(settings)).To(Equal(15.0))
	})

	It("defaults the reserve percent to zero", func() {
		Expect(engine.ReservePercent(&api.Settings{})).To(Equal(0.0))
		Expect(engine.ReservePercent(nil)).To(Equal(0.0))
	})
})
