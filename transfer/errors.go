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


package transfer

import "errors"

var (
	// ErrRecipeServiceRequired is returned when a recipe service is not provided.
	ErrRecipeServiceRequired = errors.New("recipe service required")

	// ErrVideoServiceRequired is returned when a video service is not provided.
	ErrVideoServiceRequired = errors.New("video service required")

	// ErrUnsupportedVersion is returned for recipe books written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported recipe book version")

	// ErrInvalidBatchSize is returned when batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)
