package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/studygroups/internal/entities"
	"github.com/mrlokans/studygroups/internal/storage"
)

// Supported values for Options.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Options selects and tunes the SQL backend.
type Options struct {
	Driver   string // sqlite, postgres or mysql
	Path     string // sqlite file path
	DSN      string // postgres/mysql connection string
	LogLevel string // silent, error, warn, info

	// ResetOnSetup drops the entity tables before synchronizing the schema.
	ResetOnSetup bool
}

// Database is the gorm-backed storage driver.
type Database struct {
	DB   *gorm.DB
	opts Options
}

var _ storage.Driver = (*Database)(nil)

// entityTables are the tables Setup synchronizes and ResetOnSetup drops.
var entityTables = []any{&userRow{}, &studyGroupRow{}, &deckRow{}, &flashcardRow{}}

// NewDatabase prepares a connection pool without contacting the server.
// Connectivity is checked by Setup.
func NewDatabase(opts Options) (*Database, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, storage.Connection(err, "Failed to configure database - %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               logger.Default.LogMode(parseLogLevel(opts.LogLevel)),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, storage.Connection(err, "Failed to open %s database - %v", opts.Driver, err)
	}

	return &Database{DB: db, opts: opts}, nil
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite database path is empty")
		}
		return sqlite.Open(sqliteDSN(opts.Path)), nil
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres DSN is empty")
		}
		return postgres.Open(opts.DSN), nil
	case DriverMySQL:
		if opts.DSN == "" {
			return nil, fmt.Errorf("mysql DSN is empty")
		}
		return mysql.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// sqliteDSN enables WAL and a busy timeout so background audit writes do not
// fail with "database is locked" while a request holds the write lock.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_journal=WAL&_busy_timeout=5000"
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Setup confirms the server is reachable and synchronizes the schema.
// Failures are reported as storage.KindConnection errors.
func (d *Database) Setup() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return storage.Connection(err, "Failed to connect to %s database - %v", d.driverName(), err)
	}
	if err := sqlDB.Ping(); err != nil {
		return storage.Connection(err, "Failed to connect to %s database - %v", d.driverName(), err)
	}

	if d.opts.ResetOnSetup {
		log.Printf("Dropping entity tables before schema synchronization")
		if err := d.DB.Migrator().DropTable(entityTables...); err != nil {
			return storage.Connection(err, "Model synchronization failed: %v", err)
		}
	}

	models := append([]any{}, entityTables...)
	models = append(models, &entities.AuditEvent{})
	if err := d.DB.AutoMigrate(models...); err != nil {
		return storage.Connection(err, "Model synchronization failed: %v", err)
	}

	log.Printf("Database initialized successfully (%s)", d.driverName())
	return nil
}

// Ping checks the connection is still usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) driverName() string {
	if d.opts.Driver == "" {
		return DriverSQLite
	}
	return d.opts.Driver
}
