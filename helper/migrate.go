package helper

//nolint:revive
import (
	"carehub/config"
	"carehub/infras/postgres"
	"carehub/migrations"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionDrop   = "drop"
	ActionStepUp = "step-up"

	migrationsTableParam = "x-migrations-table"
)

var ErrUnknownAction = errors.New("unknown migration action")

type migration struct {
	run  func(*migrate.Migrate) error
	done string
}

var actions = map[string]migration{
	ActionUp: {
		run:  (*migrate.Migrate).Up,
		done: "Database migrations completed successfully",
	},
	ActionStepUp: {
		run:  func(m *migrate.Migrate) error { return m.Steps(1) },
		done: "Database migrated one step up",
	},
	ActionDown: {
		run:  func(m *migrate.Migrate) error { return m.Steps(-1) },
		done: "Database migration rolled back one step",
	},
	ActionDrop: {
		run:  (*migrate.Migrate).Down,
		done: "Database migrations rolled back completely",
	},
}

// databaseURL is the primary DSN with the migration table name appended.
func databaseURL(cfg *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.WriteDSN(cfg))
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		query := dsn.Query()
		query.Set(migrationsTableParam, table)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String(), nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error loading embedded migrations: %w", err)
	}

	dsn, err := databaseURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one of the Action* commands against the primary database.
func Runner(cfg *config.Config, action string) error {
	step, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	if err = step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg(step.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
