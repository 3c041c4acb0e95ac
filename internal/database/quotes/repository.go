// Package quotes provides database operations for quotes.
//
// # Usage
//
//	repo := quotes.NewRepository(db.DB)
//	quote, err := repo.GetQuoteByID(ctx, 42)
//	id, err := repo.GetRandomQuoteID(ctx)
//
// Failures come back as *errkind.Error values: NotFound when no row matches,
// StoreIO for everything else.
package quotes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/quoteserver/internal/entities"
	"github.com/mrlokans/quoteserver/internal/errkind"
)

// Repository handles all quote database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new quotes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetQuoteByID looks up exactly one quote by primary key.
func (r *Repository) GetQuoteByID(ctx context.Context, id int64) (*entities.Quote, error) {
	op := fmt.Sprintf("get quote %d", id)

	var quote entities.Quote
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errkind.E(errkind.NotFound, op, err)
	}
	if err != nil {
		return nil, errkind.E(errkind.StoreIO, op, err)
	}
	return &quote, nil
}

// GetRandomQuoteID picks one id uniformly among the current rows.
// ORDER BY RANDOM() scans the whole table, which is fine at the sizes this
// store is meant for.
func (r *Repository) GetRandomQuoteID(ctx context.Context) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&entities.Quote{}).
		Order("RANDOM()").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, errkind.E(errkind.StoreIO, "get random quote id", err)
	}
	if len(ids) == 0 {
		return 0, errkind.E(errkind.NotFound, "get random quote id", nil)
	}
	return ids[0], nil
}

// InsertIfAbsent writes quote unless a row with the same id exists. An
// existing id is not an error: it reports false and leaves the row untouched.
func (r *Repository) InsertIfAbsent(ctx context.Context, quote *entities.Quote) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(quote)
	if result.Error != nil {
		return false, errkind.E(errkind.StoreIO, fmt.Sprintf("insert quote %d", quote.ID), result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Count returns the number of stored quotes.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Quote{}).Count(&count).Error; err != nil {
		return 0, errkind.E(errkind.StoreIO, "count quotes", err)
	}
	return count, nil
}

// Transaction runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}
