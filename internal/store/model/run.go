package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
)

// JSONField persists an arbitrary value as a JSON column.
type JSONField[T any] struct {
	Data T
}

func MakeJSONField[T any](data T) *JSONField[T] {
	return &JSONField[T]{Data: data}
}

func (j *JSONField[T]) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j.Data)
}

func (j *JSONField[T]) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONField: %T", value)
	}
	return json.Unmarshal(raw, &j.Data)
}

// CalculationRun is one persisted batch calculation with its per-circuit
// breakdown records.
type CalculationRun struct {
	ID           uuid.UUID                           `gorm:"primaryKey;type:VARCHAR(255);"`
	CreatedAt    time.Time                           `gorm:"not null"`
	Name         string                              `gorm:"type:VARCHAR(255);index:calculation_runs_name_idx"`
	Circuits     int                                 `gorm:"not null"`
	Incomputable int                                 `gorm:"not null"`
	Records      *JSONField[[]api.CalculationRecord] `gorm:"type:jsonb;not null"`
}

type CalculationRunList []CalculationRun

func (r CalculationRun) String() string {
	val, _ := json.Marshal(r)
	return string(val)
}
