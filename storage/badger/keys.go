package badger

import (
	"github.com/poiesic/recipebox/storage"
)

// Key layout:
//
//	<collection>:<id>              record
//	_meta:schema                   schema version
//	_meta:collection:<collection>  collection marker
const (
	keySeparator           = ":"
	schemaVersionKey       = "_meta:schema"
	collectionMarkerPrefix = "_meta:collection"
)

// makeRecordKey generates the key for a record in a collection.
func makeRecordKey(c storage.Collection, id string) []byte {
	prefix := makeCollectionPrefix(c)
	buf := make([]byte, len(prefix)+len(id))
	offset := copy(buf, prefix)
	copy(buf[offset:], id)
	return buf
}

// makeCollectionPrefix generates the prefix shared by all records of a collection.
// The trailing separator keeps collections whose names share a prefix apart.
func makeCollectionPrefix(c storage.Collection) []byte {
	return []byte(string(c) + keySeparator)
}

// makeCollectionMarkerKey generates the key recording that a collection exists.
func makeCollectionMarkerKey(c storage.Collection) []byte {
	return []byte(collectionMarkerPrefix + keySeparator + string(c))
}
