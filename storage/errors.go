// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.



package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCollection indicates a collection name outside the fixed set.
	ErrInvalidCollection = errors.New("invalid collection")

	// ErrStorageClosed indicates that the storage backend is closed or unavailable.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrNotInitialized indicates an operation was attempted before Initialize.
	ErrNotInitialized = errors.New("storage is not initialized")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrRecordTypeMismatch indicates a record stored into a collection of another entity type.
	ErrRecordTypeMismatch = errors.New("record type does not match collection")

	// ErrEmptyID indicates a record without an identifier.
	ErrEmptyID = errors.New("record id is empty")

	// ErrTransactionFailed indicates that a transaction failed.
	ErrTransactionFailed = errors.New("transaction failed")
)

// Error describes a failed gateway operation. It wraps one of the sentinel errors
// above or an error from the underlying database.
type Error struct {
	Op         string
	Collection Collection
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err as an *Error for the given operation. Nil stays nil and errors
// that are already an *Error are returned unchanged.
func Wrap(op string, collection Collection, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Collection: collection, Err: err}
}

// IsNotFound reports whether err signals a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
