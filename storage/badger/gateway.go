package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// Gateway implements storage.Gateway on top of a Backend.
// Every collection lives under its own key prefix of the same BadgerDB instance.
type Gateway struct {
	backend     *Backend
	logger      *slog.Logger
	initialized atomic.Bool
	closed      atomic.Bool
}

var _ storage.Gateway = (*Gateway)(nil)

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the logger used by the gateway.
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGateway creates a gateway over an open backend.
// Initialize must be called before any record operation.
func NewGateway(backend *Backend, opts ...GatewayOption) (*Gateway, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend is nil", storage.ErrStorageClosed)
	}
	g := &Gateway{
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("component", "gateway")
	return g, nil
}

// Initialize creates the collections and runs pending schema migrations.
func (g *Gateway) Initialize(ctx context.Context) error {
	if err := g.available(ctx, "initialize"); err != nil {
		return err
	}
	err := g.backend.WithTx(func(tx *badger.Txn) error {
		version, err := readSchemaVersion(tx)
		if err != nil {
			return err
		}
		if version > SchemaVersion {
			return fmt.Errorf("database schema version %d is newer than supported version %d", version, SchemaVersion)
		}
		for _, m := range migrations[version:] {
			g.logger.Info("applying migration", "version", m.version, "name", m.name)
			if err := m.apply(tx); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
			}
		}
		if version == SchemaVersion {
			return nil
		}
		if err := tx.Set([]byte(schemaVersionKey), storage.MarshalSchemaVersion(SchemaVersion)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return storage.Wrap("initialize", "", translateError(err))
	}
	g.initialized.Store(true)
	return nil
}

// Close releases the gateway. Subsequent operations fail with ErrStorageClosed.
func (g *Gateway) Close() error {
	g.closed.Store(true)
	return nil
}

// View executes fn within a read-only transaction.
func (g *Gateway) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := g.ready(ctx, "view"); err != nil {
		return err
	}
	err := g.backend.WithTx(func(tx *badger.Txn) error {
		return fn(&txn{tx: tx})
	}, false)
	return storage.Wrap("view", "", translateError(err))
}

// Commit conflicts are retried with a jittered exponential backoff.
const (
	maxConflictRetries = 12
	conflictBaseDelay  = time.Millisecond
	conflictMaxDelay   = 50 * time.Millisecond
)

// Update executes fn within a read-write transaction that commits only if fn succeeds.
// fn is rerun when the commit conflicts with a concurrent transaction, so it must
// not have side effects outside tx.
func (g *Gateway) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := g.ready(ctx, "update"); err != nil {
		return err
	}
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = g.backend.WithTx(func(tx *badger.Txn) error {
			if err := fn(&txn{tx: tx}); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		if !errors.Is(err, badger.ErrConflict) || attempt == maxConflictRetries {
			break
		}
		g.logger.Debug("transaction conflict, retrying", "attempt", attempt)
		if waitErr := sleepCtx(ctx, conflictBackoff(attempt)); waitErr != nil {
			return storage.Wrap("update", "", waitErr)
		}
	}
	return storage.Wrap("update", "", translateError(err))
}

// conflictBackoff returns a random delay in [d/2, d] where d doubles per attempt
// up to conflictMaxDelay.
func conflictBackoff(attempt int) time.Duration {
	d := min(conflictBaseDelay<<(attempt-1), conflictMaxDelay)
	return d/2 + rand.N(d/2+1)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Gateway) Get(ctx context.Context, c storage.Collection, id string) (core.Record, error) {
	var record core.Record
	err := g.View(ctx, func(tx storage.Tx) error {
		var err error
		record, err = tx.Get(ctx, c, id)
		return err
	})
	return record, err
}

func (g *Gateway) GetAll(ctx context.Context, c storage.Collection) ([]core.Record, error) {
	return g.Query(ctx, c, nil)
}

func (g *Gateway) Query(ctx context.Context, c storage.Collection, pred storage.Predicate) ([]core.Record, error) {
	var records []core.Record
	err := g.View(ctx, func(tx storage.Tx) error {
		var err error
		records, err = tx.Query(ctx, c, pred)
		return err
	})
	return records, err
}

func (g *Gateway) Set(ctx context.Context, c storage.Collection, record core.Record) (core.Record, error) {
	var stored core.Record
	err := g.Update(ctx, func(tx storage.Tx) error {
		var err error
		stored, err = tx.Set(ctx, c, record)
		return err
	})
	return stored, err
}

func (g *Gateway) Remove(ctx context.Context, c storage.Collection, id string) error {
	return g.Update(ctx, func(tx storage.Tx) error {
		return tx.Remove(ctx, c, id)
	})
}

func (g *Gateway) Clear(ctx context.Context, c storage.Collection) error {
	err := g.Update(ctx, func(tx storage.Tx) error {
		return tx.Clear(ctx, c)
	})
	if err == nil {
		g.logger.Debug("cleared collection", "collection", c)
	}
	return err
}

// available checks the conditions every operation shares.
func (g *Gateway) available(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return storage.Wrap(op, "", err)
	}
	if g.closed.Load() || g.backend.IsClosed() {
		return storage.Wrap(op, "", storage.ErrStorageClosed)
	}
	return nil
}

// ready is available plus the initialization check.
func (g *Gateway) ready(ctx context.Context, op string) error {
	if err := g.available(ctx, op); err != nil {
		return err
	}
	if !g.initialized.Load() {
		return storage.Wrap(op, "", storage.ErrNotInitialized)
	}
	return nil
}

// txn adapts a BadgerDB transaction to storage.Tx.
type txn struct {
	tx *badger.Txn
}

var _ storage.Tx = (*txn)(nil)

func (t *txn) Get(ctx context.Context, c storage.Collection, id string) (core.Record, error) {
	if err := c.Check(); err != nil {
		return nil, storage.Wrap("get", c, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, storage.Wrap("get", c, err)
	}
	if id == "" {
		return nil, storage.Wrap("get", c, storage.ErrNotFound)
	}
	item, err := t.tx.Get(makeRecordKey(c, id))
	if err != nil {
		return nil, storage.Wrap("get", c, translateError(err))
	}
	var record core.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(c, val)
		return err
	})
	if err != nil {
		return nil, storage.Wrap("get", c, err)
	}
	return record, nil
}

func (t *txn) GetAll(ctx context.Context, c storage.Collection) ([]core.Record, error) {
	return t.Query(ctx, c, nil)
}

func (t *txn) Query(ctx context.Context, c storage.Collection, pred storage.Predicate) ([]core.Record, error) {
	if err := c.Check(); err != nil {
		return nil, storage.Wrap("query", c, err)
	}
	prefix := makeCollectionPrefix(c)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := t.tx.NewIterator(opts)
	defer it.Close()

	records := make([]core.Record, 0)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, storage.Wrap("query", c, err)
		}
		var record core.Record
		err := it.Item().Value(func(val []byte) error {
			var err error
			record, err = storage.UnmarshalRecord(c, val)
			return err
		})
		if err != nil {
			return nil, storage.Wrap("query", c, err)
		}
		if pred == nil || pred(record) {
			records = append(records, record)
		}
	}
	return records, nil
}

func (t *txn) Set(ctx context.Context, c storage.Collection, record core.Record) (core.Record, error) {
	if err := c.Check(); err != nil {
		return nil, storage.Wrap("set", c, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, storage.Wrap("set", c, err)
	}
	data, err := storage.MarshalRecord(c, record)
	if err != nil {
		return nil, storage.Wrap("set", c, err)
	}
	if record.RecordID() == "" {
		return nil, storage.Wrap("set", c, storage.ErrEmptyID)
	}
	if err := t.tx.Set(makeRecordKey(c, record.RecordID()), data); err != nil {
		return nil, storage.Wrap("set", c, translateError(err))
	}
	return record, nil
}

func (t *txn) Remove(ctx context.Context, c storage.Collection, id string) error {
	if err := c.Check(); err != nil {
		return storage.Wrap("remove", c, err)
	}
	if err := ctx.Err(); err != nil {
		return storage.Wrap("remove", c, err)
	}
	if id == "" {
		return nil
	}
	if err := t.tx.Delete(makeRecordKey(c, id)); err != nil {
		return storage.Wrap("remove", c, translateError(err))
	}
	return nil
}

func (t *txn) Clear(ctx context.Context, c storage.Collection) error {
	if err := c.Check(); err != nil {
		return storage.Wrap("clear", c, err)
	}
	prefix := makeCollectionPrefix(c)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := t.tx.NewIterator(opts)

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return storage.Wrap("clear", c, err)
		}
		if err := t.tx.Delete(key); err != nil {
			return storage.Wrap("clear", c, translateError(err))
		}
	}
	return nil
}
