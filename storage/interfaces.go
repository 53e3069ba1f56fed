package storage

import (
	"context"

	"github.com/poiesic/recipebox/core"
)

// Predicate selects records in Query.
type Predicate func(record core.Record) bool

// Reader provides read access to collections.
type Reader interface {
	// Get retrieves a single record by id.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, c Collection, id string) (core.Record, error)

	// GetAll retrieves every record in a collection.
	// The order carries no meaning.
	GetAll(ctx context.Context, c Collection) ([]core.Record, error)

	// Query retrieves the records of a collection matching the predicate.
	// It is a client-side filter over GetAll, not an indexed lookup.
	Query(ctx context.Context, c Collection, pred Predicate) ([]core.Record, error)
}

// Writer provides write access to collections.
type Writer interface {
	// Set upserts a record by its id and returns it.
	// Returns ErrRecordTypeMismatch if the record's type doesn't belong to the collection.
	Set(ctx context.Context, c Collection, record core.Record) (core.Record, error)

	// Remove deletes a record by id. Removing a missing record is not an error.
	Remove(ctx context.Context, c Collection, id string) error

	// Clear removes every record of a collection.
	Clear(ctx context.Context, c Collection) error
}

// Tx is a unit of work inside a single database transaction.
type Tx interface {
	Reader
	Writer
}

// Gateway is the storage abstraction over the embedded database.
// Every record operation fails with an *Error wrapping ErrInvalidCollection for
// unrecognized collection names and ErrStorageClosed when the database is unavailable.
// Implementations must be safe for concurrent use.
type Gateway interface {
	Tx

	// Initialize creates the collections and migrates the schema to the current version.
	// It is idempotent. Record operations fail with ErrNotInitialized until it has run.
	Initialize(ctx context.Context) error

	// View executes fn within a read-only transaction.
	View(ctx context.Context, fn func(tx Tx) error) error

	// Update executes fn within a read-write transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the gateway. The backend it was opened on is closed separately.
	Close() error
}
