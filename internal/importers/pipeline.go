package importers

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-sqlite3"

	"github.com/mrlokans/quoteserver/internal/database/quotes"
	"github.com/mrlokans/quoteserver/internal/entities"
)

// Failure reasons reported in RecordFailure.Reason.
const (
	ReasonInvalid    = "invalid"
	ReasonConstraint = "constraint"
	ReasonStore      = "store"
)

// Result summarises one import pass. Inserted + Skipped + Failed == Total for
// a pass that ran to completion.
type Result struct {
	Total    int
	Inserted int
	Skipped  int
	Failed   int
	Failures []RecordFailure
}

// RecordFailure describes one record that was rolled back.
type RecordFailure struct {
	Index  int
	ID     int64
	Reason string
	Err    error
}

// Importer loads quotes one transaction at a time.
type Importer struct {
	repo     *quotes.Repository
	validate *validator.Validate
}

// NewImporter creates an importer writing through repo.
func NewImporter(repo *quotes.Repository) *Importer {
	return &Importer{
		repo:     repo,
		validate: validator.New(),
	}
}

// ImportFile reads path and imports its records. An unreadable or malformed
// source fails before any record is attempted.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	records, err := ReadQuotesFile(path)
	if err != nil {
		return Result{}, err
	}
	return i.Import(ctx, records)
}

// Import inserts every record that is not already stored. Per-record failures
// never abort the pass; they are counted and returned in the result. The only
// error returned is ctx's, in which case the result covers the records
// processed so far.
func (i *Importer) Import(ctx context.Context, records []entities.Quote) (Result, error) {
	result := Result{Total: len(records)}

	for idx := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record := records[idx]
		inserted, err := i.importOne(ctx, &record)
		if err != nil {
			log.Printf("Failed to insert quote %d: %v", record.ID, err)
			result.Failed++
			result.Failures = append(result.Failures, RecordFailure{
				Index:  idx,
				ID:     record.ID,
				Reason: failureReason(err),
				Err:    err,
			})
			continue
		}

		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

func (i *Importer) importOne(ctx context.Context, record *entities.Quote) (bool, error) {
	if err := i.validate.Struct(record); err != nil {
		return false, err
	}

	var inserted bool
	err := i.repo.Transaction(ctx, func(tx *quotes.Repository) error {
		var err error
		inserted, err = tx.InsertIfAbsent(ctx, record)
		return err
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func failureReason(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ReasonInvalid
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ReasonConstraint
	}
	return ReasonStore
}
