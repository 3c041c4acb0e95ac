// Package errkind holds the closed set of failure kinds shared by the store,
// the importer and both presentation surfaces.
//
// Kinds are assigned once, where the failure is detected, and travel with the
// error as a field. Adapters never look at driver errors directly: they call
// OutcomeOf and render one of two outcomes.
package errkind

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// StoreIO is a connection, I/O or query failure not caused by missing data.
	// It is the zero value so unclassified errors land here.
	StoreIO Kind = iota
	// NotFound means no row matched the key, or the table is empty.
	NotFound
	// SourceRead means the import source could not be read or parsed.
	SourceRead
	// StoreInit means the store could not be opened or migrated. Always fatal.
	StoreInit
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case StoreIO:
		return "store_io"
	case SourceRead:
		return "source_read"
	case StoreInit:
		return "store_init"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error carries a Kind alongside the operation that failed and its cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a classified error. A nil cause is allowed for NotFound.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost classified error in err's chain.
// Errors that were never classified are treated as StoreIO.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StoreIO
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Outcome is what an end user gets to see.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeInternal
)

// OutcomeOf maps an error to the two-way split both surfaces render:
// NotFound becomes "no such resource", every other kind "internal failure".
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if KindOf(err) == NotFound {
		return OutcomeNotFound
	}
	return OutcomeInternal
}
