package badger

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recipebox/storage"
)

// SchemaVersion is the schema version this package writes.
const SchemaVersion = 1

type migration struct {
	version int
	name    string
	apply   func(tx *badger.Txn) error
}

// migrations[i] upgrades a database from schema version i to i+1.
var migrations = []migration{
	{version: 1, name: "create collections", apply: createCollections},
}

func createCollections(tx *badger.Txn) error {
	for _, c := range storage.Collections {
		if err := tx.Set(makeCollectionMarkerKey(c), []byte{1}); err != nil {
			return err
		}
	}
	return nil
}

// readSchemaVersion returns 0 for a database that was never initialized.
func readSchemaVersion(tx *badger.Txn) (int, error) {
	item, err := tx.Get([]byte(schemaVersionKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var version int
	err = item.Value(func(val []byte) error {
		var err error
		version, err = storage.UnmarshalSchemaVersion(val)
		return err
	})
	return version, err
}
