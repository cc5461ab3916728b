// internal/storage/storage.go
package storage

import (
	"context"
	"errors"

	"github.com/agrotools/feedlot-calc/internal/storage/models"
)

// ErrNotFound is returned when a scenario id does not exist.
var ErrNotFound = errors.New("scenario not found")

// Storage is the scenario repository. The profitability model never touches
// it; only the UI and CLI do.
type Storage interface {
	SaveScenario(ctx context.Context, scenario *models.Scenario) error
	GetScenario(ctx context.Context, id int64) (*models.Scenario, error)
	ListScenarios(ctx context.Context) ([]*models.Scenario, error)
	DeleteScenario(ctx context.Context, id int64) error

	RunMigrations() error
	Close() error
}
