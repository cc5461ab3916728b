// internal/storage/models/scenario.go
package models

import (
	"time"

	"github.com/agrotools/feedlot-calc/internal/model"
)

// Scenario is a named, persisted parameter set. Id zero means "not saved
// yet"; SaveScenario assigns one.
type Scenario struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Params model.ScenarioParams `json:"params"`
}

// NewScenario wraps a parameter set under a name.
func NewScenario(name string, params model.ScenarioParams) *Scenario {
	return &Scenario{Name: name, Params: params}
}
