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


package video

import (
	"errors"

	"github.com/poiesic/recipebox/core"
)

var (
	// ErrGatewayRequired is returned when a storage gateway is not provided.
	ErrGatewayRequired = errors.New("storage gateway required")

	// ErrInvalidVideoURL is returned when no video id can be parsed from a link.
	ErrInvalidVideoURL = core.ErrInvalidVideoURL

	// ErrVideoNotFound is returned when the metadata service knows no video with the id.
	ErrVideoNotFound = errors.New("video not found")

	// ErrAPIKeyRequired is returned when a metadata client is created without an API key.
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
