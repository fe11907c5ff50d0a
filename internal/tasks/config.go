package tasks

import "time"

// Config holds configuration for the background task queue.
type Config struct {
	// DBPath is the SQLite file backlite keeps its queue in. It is separate
	// from the entity database, which may not be SQLite at all.
	DBPath string

	// Workers is the number of concurrent task workers. Default: 1
	Workers int

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often backlite purges finished tasks. Default: 1h
	CleanupInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		DBPath:          "./studygroups-tasks.db",
		Workers:         1,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: time.Hour,
	}
}
