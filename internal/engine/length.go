package engine

import (
	api "github.com/elecreview/voltage-planner/api/v1alpha1"
)

// AdjustLength turns a raw circuit length in meters into the effective
// design length by applying the reserve margin. Unresolved or non-positive
// raw lengths stay unresolved.
func AdjustLength(rawMeters, reservePercent float64) float64 {
	if rawMeters <= 0 {
		return Unresolved
	}
	return rawMeters * (1 + reservePercent/100)
}

// ReservePercent returns the wire-reserve percent of the first configured
// template, 0 when no template is configured.
func ReservePercent(settings *api.Settings) float64 {
	if settings == nil || len(settings.TemplateTables) == 0 {
		return 0
	}
	return settings.TemplateTables[0].WireReservePercent
}
