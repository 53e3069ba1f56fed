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



// Package storage provides the storage gateway for recipebox.
//
// The gateway exposes a fixed set of named collections (recipes, ingredients,
// steps, videos, categories, tags, shoppingLists, shoppingItems) with
// get/get-all/set/remove/clear/query operations. Records are whole-object
// upserts keyed by their id; there are no partial updates and no foreign keys.
// Referential integrity between collections is maintained by the services
// built on top of the gateway.
//
// # Architecture
//
//   - Gateway: record operations plus Initialize, View, Update and Close
//   - Tx: the record operations available inside a transaction
//   - GetAs/AllAs/QueryAs: typed helpers over any Reader
//   - MarshalRecord/UnmarshalRecord: mus serialization per collection
//
// # Usage
//
// Open a gateway on disk:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	gw, err := badger.NewGateway(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gw.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Use in tests with in-memory storage:
//
//	gw, backend, err := badger.NewMemoryGateway()
//
// # Errors
//
// Every failure is an *Error carrying the operation and collection and wrapping
// a sentinel (ErrNotFound, ErrInvalidCollection, ErrStorageClosed, ...).
// Use errors.Is to test for a sentinel.
//
// # Transactions
//
// Multi-record changes such as cascade deletes should run inside Update so
// they commit or roll back together.
package storage
