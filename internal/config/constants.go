package config

const (
	DefaultDatabasePath      = "./studygroups.db"
	DefaultTasksDatabasePath = "./studygroups-tasks.db"
	DefaultPort              = 5000
	DefaultAllowedOrigin     = "http://localhost:3000"
)

// Database drivers accepted in DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory" // in-process maps, lost on restart
)
