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


package badger

import "context"

// NewMemoryGateway creates an initialized in-memory gateway for testing.
// Returns the gateway, its backend, and error.
// Caller must close both gateway and backend when done.
func NewMemoryGateway() (*Gateway, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	gw, err := NewGateway(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	if err := gw.Initialize(context.Background()); err != nil {
		backend.Close()
		return nil, nil, err
	}

	return gw, backend, nil
}
