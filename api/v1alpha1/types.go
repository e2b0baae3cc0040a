package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Circuit is the wire representation of a single electrical circuit as
// supplied by the caller. Every electrical attribute is optional; absent
// attributes resolve to sentinels inside the engine instead of failing
// the request.
type Circuit struct {
	Name            string   `json:"name,omitempty"`
	Poles           *int     `json:"poles,omitempty"`
	Voltage         *float64 `json:"voltage,omitempty"`
	ApparentCurrent *float64 `json:"apparentCurrent,omitempty"`
	CurrentPhaseA   *float64 `json:"currentPhaseA,omitempty"`
	CurrentPhaseB   *float64 `json:"currentPhaseB,omitempty"`
	CurrentPhaseC   *float64 `json:"currentPhaseC,omitempty"`
	PowerFactor     *float64 `json:"powerFactor,omitempty"`
	Length          *float64 `json:"length,omitempty"`
	CircuitLength   *float64 `json:"circuitLength,omitempty"`
	WireSize        *string  `json:"wireSize,omitempty"`
	TypeWireSize    *string  `json:"typeWireSize,omitempty"`
}

// WireSize maps a conductor-size label to its per-1000-feet impedance.
type WireSize struct {
	ConductorSize string  `json:"conductorSize"`
	Rc            float64 `json:"rc"`
	Xc            float64 `json:"xc"`
}

// WireSizeTable is an ordered catalog of wire sizes. Only the first table
// of a settings document is consulted.
type WireSizeTable struct {
	WireSizes []WireSize `json:"wireSizes"`
}

// TemplateTable carries the wire-reserve margin applied to circuit lengths.
type TemplateTable struct {
	WireReservePercent float64 `json:"wireReservePercent"`
}

// Settings holds the parsed lookup tables consumed by the engine. The
// engine treats these as read-only for the lifetime of a calculation run.
type Settings struct {
	WireSizeTables []WireSizeTable `json:"wireSizeTables,omitempty"`
	TemplateTables []TemplateTable `json:"templateTables,omitempty"`
}

// CalculationRecord is the full per-circuit breakdown. A value of -1 in
// any derived field means "not computable"; DropPercent -1 marks the whole
// circuit as incomputable while the diagnostic fields stay populated.
type CalculationRecord struct {
	CircuitName   string   `json:"circuitName"`
	Poles         int      `json:"poles"`
	Voltage       float64  `json:"voltage"`
	Current       float64  `json:"current"`
	PowerFactor   float64  `json:"powerFactor"`
	SinPhi        float64  `json:"sinPhi"`
	WireSize      WireSize `json:"wireSize"`
	LengthMeters  float64  `json:"lengthMeters"`
	LengthFeet    float64  `json:"lengthFeet"`
	KFactor       float64  `json:"kFactor"`
	ResistiveTerm float64  `json:"resistiveTerm"`
	ReactiveTerm  float64  `json:"reactiveTerm"`
	ImpedanceTerm float64  `json:"impedanceTerm"`
	VoltageDrop   float64  `json:"voltageDrop"`
	DropPercent   float64  `json:"dropPercent"`
}

// CalculationRunRequest submits a batch of circuits for calculation.
// Settings are optional; when omitted the server-side settings file is used.
type CalculationRunRequest struct {
	Name     string    `json:"name,omitempty" validate:"omitempty,run_name"`
	Settings *Settings `json:"settings,omitempty"`
	Circuits []Circuit `json:"circuits" validate:"required,min=1,dive"`
}

// CalculationRun is a persisted calculation with its records.
type CalculationRun struct {
	Id        uuid.UUID           `json:"id"`
	Name      string              `json:"name,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Records   []CalculationRecord `json:"records,omitempty"`
}

// CalculationRunSummary is the list view of a run.
type CalculationRunSummary struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Circuits     int       `json:"circuits"`
	Incomputable int       `json:"incomputable"`
}

type CalculationRunList []CalculationRunSummary

type Error struct {
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type Info struct {
	VersionName string `json:"versionName"`
	GitCommit   string `json:"gitCommit,omitempty"`
}
