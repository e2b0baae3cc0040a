package engine

import (
	"strings"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
)

// DefaultWireSize is the most conservative catalog entry: the smallest,
// highest-impedance conductor. Unmatched or unconfigured labels silently
// degrade to it instead of aborting the calculation.
var DefaultWireSize = api.WireSize{ConductorSize: "#14", Rc: 3.1, Xc: 0.073}

// WireSizeCatalog maps conductor-size labels to per-length impedance. Only
// the first configured wire-size table is authoritative.
type WireSizeCatalog struct {
	table []api.WireSize
}

func NewWireSizeCatalog(settings *api.Settings) *WireSizeCatalog {
	c := &WireSizeCatalog{}
	if settings != nil && len(settings.WireSizeTables) > 0 {
		c.table = settings.WireSizeTables[0].WireSizes
	}
	return c
}

// Lookup never fails: blank labels, missing tables, and unknown labels all
// resolve to DefaultWireSize. Label matching is case-insensitive.
func (c *WireSizeCatalog) Lookup(label string) api.WireSize {
	label = strings.TrimSpace(label)
	if label == "" {
		return DefaultWireSize
	}
	for _, w := range c.table {
		if strings.EqualFold(w.ConductorSize, label) {
			return w
		}
	}
	return DefaultWireSize
}
