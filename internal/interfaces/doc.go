// Package interfaces documents the abstractions that connect the layers of
// the quote server.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - QuoteStore: by-id and random-id reads (internal/services/quote_service.go)
//   - QuoteCounter: stored quote count for health reports (internal/http/health.go)
//   - HealthChecker: store liveness (internal/http/health.go)
//
// ## Presentation Interfaces
//
//   - QuoteReader: the two read operations shared by the JSON API and the
//     HTML page (internal/http/quotes.go)
//
// ## Background Work
//
//   - FileImporter: periodic re-import of a quote file
//     (internal/scheduler/reimport.go)
//
// # Adding a New Quote Source Format
//
//  1. Add a reader in internal/importers/ that returns []entities.Quote and
//     reports unreadable input as an errkind.SourceRead error.
//  2. Feed the records to Importer.Import; per-record handling stays the same.
//
// # Compile-Time Interface Checks
//
// Implementations are checked in checks.go:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
package interfaces
