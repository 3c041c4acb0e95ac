// Package database provides the data access layer for the quote server.
//
// # Architecture
//
//	database/
//	├── database.go      # URI parsing, pool setup, migrations
//	├── migrate.go       # Versioned SQL migration runner
//	├── migrations/      # Embedded NNNN_name.sql scripts
//	└── quotes/          # Quote reads and idempotent inserts
//
// # Using Sub-packages
//
//	// Initialize database connection
//	db, err := database.NewDatabase("sqlite:db/quotes.db")
//
//	// Create the quote repository
//	repo := quotes.NewRepository(db.DB)
//
//	quote, err := repo.GetQuoteByID(ctx, 42)
//
// # Errors
//
// Open reports every failure as errkind.StoreInit. Repository reads report a
// missing row as errkind.NotFound and anything else as errkind.StoreIO.
package database
