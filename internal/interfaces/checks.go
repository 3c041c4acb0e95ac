package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/quoteserver/internal/database"
	"github.com/mrlokans/quoteserver/internal/database/quotes"
	"github.com/mrlokans/quoteserver/internal/http"
	"github.com/mrlokans/quoteserver/internal/importers"
	"github.com/mrlokans/quoteserver/internal/scheduler"
	"github.com/mrlokans/quoteserver/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// QuoteStore implementations
var _ services.QuoteStore = (*quotes.Repository)(nil)

// Health report implementations
var _ http.HealthChecker = (*database.Database)(nil)
var _ http.QuoteCounter = (*quotes.Repository)(nil)

// =============================================================================
// Presentation Layer
// =============================================================================

// QuoteReader implementations
var _ http.QuoteReader = (*services.QuoteService)(nil)

// =============================================================================
// Background Work
// =============================================================================

// FileImporter implementations
var _ scheduler.FileImporter = (*importers.Importer)(nil)
