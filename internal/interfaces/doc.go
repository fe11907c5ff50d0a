// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage
//
//   - storage.Driver: one storage technology (internal/database, internal/storage/memory)
//   - api.Store: what the request handler needs; *storage.Facade implements it
//
// ## HTTP dependencies
//
//   - http.AuditRecorder / http.AuditReader: audit trail (internal/audit)
//   - http.Pinger: health check target
//
// ## Background jobs
//
//   - tasks.AuditPruner: retention target of the cleanup queue
//   - scheduler.Enqueuer: task queue used by cron schedules
//
// # Adding a New Storage Driver
//
//  1. Implement storage.Driver in a new package. Every failure must be a
//     *storage.Error built with storage.NotFound, storage.Internal or
//     storage.Connection:
//
//     type Driver struct { ... }
//
//     func (d *Driver) Setup() error
//     func (d *Driver) GetUser(id uint) (entities.User, error)
//     ...
//
//  2. Add a DATABASE_DRIVER value in internal/config and select it in
//     entrypoint.OpenBackend.
//
//  3. Add a compile-time check to checks.go:
//
//     var _ storage.Driver = (*mydriver.Driver)(nil)
//
// # Adding a New Entity
//
//  1. Add the immutable value type with Serialize() and one With* update in
//     internal/entities.
//  2. Extend storage.Driver, storage.Facade and api.Store with its four operations.
//  3. Describe it with a resource[T] in api.NewHandler.
//  4. Add a controller in internal/http and register its routes in router.go.
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
