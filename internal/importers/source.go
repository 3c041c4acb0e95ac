package importers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mrlokans/quoteserver/internal/entities"
	"github.com/mrlokans/quoteserver/internal/errkind"
)

// jsonQuote mirrors the on-disk record. Pointers let us tell a missing field
// from an empty one.
type jsonQuote struct {
	ID     *int64  `json:"id"`
	Quote  *string `json:"quote"`
	Author *string `json:"author"`
}

// ReadQuotesFile opens path and parses it with ReadQuotes.
func ReadQuotesFile(path string) ([]entities.Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errkind.E(errkind.SourceRead, "could not find quote file", err)
	}
	defer f.Close()

	return ReadQuotes(f)
}

// ReadQuotes parses a JSON array of {"id", "quote", "author"} objects. All
// three fields are required; unknown fields are ignored.
func ReadQuotes(r io.Reader) ([]entities.Quote, error) {
	const op = "could not read quote data"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errkind.E(errkind.SourceRead, op, err)
	}
	if !utf8.Valid(data) {
		return nil, errkind.E(errkind.SourceRead, op, errors.New("source is not valid UTF-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var raw []jsonQuote
	if err := dec.Decode(&raw); err != nil {
		return nil, errkind.E(errkind.SourceRead, op, err)
	}
	if raw == nil {
		return nil, errkind.E(errkind.SourceRead, op, errors.New("expected a JSON array of quotes"))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errkind.E(errkind.SourceRead, op, errors.New("unexpected data after quote array"))
	}

	quotes := make([]entities.Quote, 0, len(raw))
	for i, q := range raw {
		switch {
		case q.ID == nil:
			return nil, errkind.E(errkind.SourceRead, op, fmt.Errorf("record %d: missing field \"id\"", i))
		case q.Quote == nil:
			return nil, errkind.E(errkind.SourceRead, op, fmt.Errorf("record %d: missing field \"quote\"", i))
		case q.Author == nil:
			return nil, errkind.E(errkind.SourceRead, op, fmt.Errorf("record %d: missing field \"author\"", i))
		}
		quotes = append(quotes, entities.Quote{
			ID:     *q.ID,
			Quote:  *q.Quote,
			Author: *q.Author,
		})
	}

	return quotes, nil
}
