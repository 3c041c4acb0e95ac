// Package importers loads externally sourced quotes into the store.
//
// # Flow
//
//	JSON file → ReadQuotes → []entities.Quote → Importer.Import → quotes.Repository
//
// Reading is all-or-nothing: a missing file, malformed JSON or a record with a
// missing field fails the whole source with an errkind.SourceRead error before
// anything touches the database.
//
// Loading is per record: each quote gets its own transaction. A record that
// fails validation or is rejected by the database is rolled back, logged and
// reported in Result.Failures; the remaining records are still processed.
// Records whose id is already stored are skipped, so running the same source
// twice leaves the store unchanged.
//
// # Example Usage
//
//	importer := importers.NewImporter(quotes.NewRepository(db.DB))
//	result, err := importer.ImportFile(ctx, "quotes.json")
//	if err != nil {
//		// source unreadable (SourceRead) or ctx cancelled
//	}
//	log.Printf("inserted=%d skipped=%d failed=%d", result.Inserted, result.Skipped, result.Failed)
package importers
