// Package database provides the gorm-backed storage driver.
//
// # Architecture
//
//	database/
//	├── database.go      # Dialect selection, Setup (ping + AutoMigrate), Close
//	├── rows.go          # Table rows and the generic find/insert/delete/update helpers
//	├── users.go         # storage.Driver methods, one file per entity
//	├── groups.go
//	├── decks.go
//	├── flashcards.go
//	└── audit/           # Audit event persistence
//
// # Usage
//
//	db, err := database.NewDatabase(database.Options{Driver: "sqlite", Path: "./app.db"})
//	facade := storage.NewFacade(db)
//	if err := facade.Setup(); err != nil { ... }
//
// # Error Mapping
//
// gorm.ErrRecordNotFound becomes storage.KindNotFound; every other gorm error
// becomes storage.KindInternal with the gorm error wrapped. Setup failures
// are storage.KindConnection.
//
// # Updates
//
// Update methods write only the entity's content column (username,
// group_name, deck_name, answer). IDs, creators, groups, decks and questions
// are fixed once the row is created.
package database
