package entrypoint

import (
	"github.com/mrlokans/studygroups/internal/config"
	"github.com/mrlokans/studygroups/internal/database"
	"github.com/mrlokans/studygroups/internal/storage"
	"github.com/mrlokans/studygroups/internal/storage/memory"
)

// Backend is the storage selected by DATABASE_DRIVER. SQL is nil for the
// memory driver.
type Backend struct {
	Driver storage.Driver
	SQL    *database.Database
}

// Pinger returns the health check target of the backend.
func (b Backend) Pinger() interface{ Ping() error } {
	if b.SQL != nil {
		return b.SQL
	}
	return b.Driver.(*memory.Driver)
}

func (b Backend) Close() error {
	if b.SQL != nil {
		return b.SQL.Close()
	}
	return nil
}

// OpenBackend builds the driver without contacting the database; call
// Facade.Setup to connect.
func OpenBackend(cfg config.Database) (Backend, error) {
	if cfg.Driver == config.DriverMemory {
		return Backend{Driver: memory.NewDriver()}, nil
	}

	db, err := database.NewDatabase(database.Options{
		Driver:       cfg.Driver,
		Path:         cfg.Path,
		DSN:          cfg.DSN,
		LogLevel:     cfg.LogLevel,
		ResetOnSetup: cfg.ResetOnSetup,
	})
	if err != nil {
		return Backend{}, err
	}
	return Backend{Driver: db, SQL: db}, nil
}
