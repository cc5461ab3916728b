// internal/storage/sqlite/sqlite.go
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/agrotools/feedlot-calc/internal/storage"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const busyRetryWindow = 5 * time.Second

// sqliteStorage implements the storage.Storage interface on an embedded
// SQLite database.
type sqliteStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStorage opens (or creates) the database at path and configures the
// pragmas an interactive single-user tool wants.
func NewStorage(path string, logger *zap.Logger) (storage.Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &sqliteStorage{db: db, logger: logger}, nil
}

// RunMigrations applies all pending embedded migrations.
func (s *sqliteStorage) RunMigrations() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

const scenarioColumns = `name, updated_at,
	purchase_price, sale_price, purchase_weight, exit_weight, price_per_ton,
	feed_conversion_ratio, average_daily_gain, daily_overhead_cost,
	health_cost_per_head, head_count, mortality_pct`

// SaveScenario inserts a new scenario or updates the stored one in place.
// A second writer (another running instance) can briefly lock the database,
// so writes retry on busy errors and give up only after the retry window.
func (s *sqliteStorage) SaveScenario(ctx context.Context, scenario *models.Scenario) error {
	now := time.Now().UTC()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		var err error
		if scenario.ID == 0 {
			err = s.insertScenario(ctx, scenario, now)
		} else {
			err = s.updateScenario(ctx, scenario, now)
		}
		if err != nil && !isBusy(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(busyRetryWindow),
	)
	if err != nil {
		return fmt.Errorf("save scenario %q: %w", scenario.Name, err)
	}

	s.logger.Debug("scenario saved",
		zap.Int64("id", scenario.ID),
		zap.String("name", scenario.Name))
	return nil
}

func (s *sqliteStorage) insertScenario(ctx context.Context, scenario *models.Scenario, now time.Time) error {
	p := scenario.Params
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scenarios (`+scenarioColumns+`, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scenario.Name, now,
		p.PurchasePrice, p.SalePrice, p.PurchaseWeight, p.ExitWeight, p.PricePerTon,
		p.FeedConversionRatio, p.AverageDailyGain, p.DailyOverheadCost,
		p.HealthCostPerHead, p.HeadCount, p.MortalityPct,
		now)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	scenario.ID = id
	scenario.CreatedAt = now
	scenario.UpdatedAt = now
	return nil
}

func (s *sqliteStorage) updateScenario(ctx context.Context, scenario *models.Scenario, now time.Time) error {
	p := scenario.Params
	res, err := s.db.ExecContext(ctx,
		`UPDATE scenarios SET name = ?, updated_at = ?,
			purchase_price = ?, sale_price = ?, purchase_weight = ?, exit_weight = ?,
			price_per_ton = ?, feed_conversion_ratio = ?, average_daily_gain = ?,
			daily_overhead_cost = ?, health_cost_per_head = ?, head_count = ?,
			mortality_pct = ?
		 WHERE id = ?`,
		scenario.Name, now,
		p.PurchasePrice, p.SalePrice, p.PurchaseWeight, p.ExitWeight,
		p.PricePerTon, p.FeedConversionRatio, p.AverageDailyGain,
		p.DailyOverheadCost, p.HealthCostPerHead, p.HeadCount,
		p.MortalityPct,
		scenario.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	scenario.UpdatedAt = now
	return nil
}

func (s *sqliteStorage) GetScenario(ctx context.Context, id int64) (*models.Scenario, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at,
			purchase_price, sale_price, purchase_weight, exit_weight, price_per_ton,
			feed_conversion_ratio, average_daily_gain, daily_overhead_cost,
			health_cost_per_head, head_count, mortality_pct
		 FROM scenarios WHERE id = ?`, id)

	scenario, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %d: %w", id, err)
	}
	return scenario, nil
}

func (s *sqliteStorage) ListScenarios(ctx context.Context) ([]*models.Scenario, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at,
			purchase_price, sale_price, purchase_weight, exit_weight, price_per_ton,
			feed_conversion_ratio, average_daily_gain, daily_overhead_cost,
			health_cost_per_head, head_count, mortality_pct
		 FROM scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*models.Scenario
	for rows.Next() {
		scenario, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, rows.Err()
}

func (s *sqliteStorage) DeleteScenario(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*models.Scenario, error) {
	var sc models.Scenario
	p := &sc.Params
	err := row.Scan(
		&sc.ID, &sc.Name, &sc.CreatedAt, &sc.UpdatedAt,
		&p.PurchasePrice, &p.SalePrice, &p.PurchaseWeight, &p.ExitWeight, &p.PricePerTon,
		&p.FeedConversionRatio, &p.AverageDailyGain, &p.DailyOverheadCost,
		&p.HealthCostPerHead, &p.HeadCount, &p.MortalityPct,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
