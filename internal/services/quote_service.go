package services

import (
	"context"
	"strconv"

	"github.com/mrlokans/quoteserver/internal/entities"
	"github.com/mrlokans/quoteserver/internal/errkind"
	"github.com/mrlokans/quoteserver/internal/metrics"
)

// QuoteStore provides read-only access to quotes.
// Implemented by quotes.Repository.
type QuoteStore interface {
	GetQuoteByID(ctx context.Context, id int64) (*entities.Quote, error)
	GetRandomQuoteID(ctx context.Context) (int64, error)
}

// QuoteService holds the two read operations both presentation surfaces use.
// Errors it returns always carry an errkind.Kind.
type QuoteService struct {
	store QuoteStore
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(store QuoteStore) *QuoteService {
	return &QuoteService{store: store}
}

// GetByID fetches the quote whose id is idText. Text that is not an integer
// cannot match any row and is reported as NotFound.
func (s *QuoteService) GetByID(ctx context.Context, idText string) (*entities.Quote, error) {
	quote, err := s.getByID(ctx, idText)
	metrics.RecordLookup("by_id", err)
	return quote, err
}

func (s *QuoteService) getByID(ctx context.Context, idText string) (*entities.Quote, error) {
	id, err := ParseQuoteID(idText)
	if err != nil {
		return nil, err
	}
	return s.store.GetQuoteByID(ctx, id)
}

// GetRandom picks a random id, then fetches that quote. An empty store is
// NotFound. If the row disappears between the two steps the NotFound from the
// second step is returned as-is; there is no retry.
func (s *QuoteService) GetRandom(ctx context.Context) (*entities.Quote, error) {
	quote, err := s.getRandom(ctx)
	metrics.RecordLookup("random", err)
	return quote, err
}

func (s *QuoteService) getRandom(ctx context.Context) (*entities.Quote, error) {
	id, err := s.store.GetRandomQuoteID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetQuoteByID(ctx, id)
}

// ParseQuoteID converts request text to a quote id.
func ParseQuoteID(idText string) (int64, error) {
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return 0, errkind.E(errkind.NotFound, "parse quote id", err)
	}
	return id, nil
}
