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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecipe indicates a Recipe failed validation.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrInvalidIngredient indicates an Ingredient failed validation.
	ErrInvalidIngredient = errors.New("invalid ingredient")

	// ErrInvalidStep indicates a CookingStep failed validation.
	ErrInvalidStep = errors.New("invalid cooking step")

	// ErrInvalidCategory indicates a Category failed validation.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidTag indicates a Tag failed validation.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidVideo indicates a Video failed validation.
	ErrInvalidVideo = errors.New("invalid video")

	// ErrEmptyTitle indicates the recipe Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyName indicates a Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrMissingRecipeID indicates a child record has no recipe back-reference.
	ErrMissingRecipeID = errors.New("recipe id is required")

	// ErrNegativeDuration indicates a time field is below zero.
	ErrNegativeDuration = errors.New("duration cannot be negative")

	// ErrInvalidServings indicates servings is below one.
	ErrInvalidServings = errors.New("servings must be at least 1")

	// ErrNegativeAmount indicates an ingredient amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidStepNumber indicates a step number below one.
	ErrInvalidStepNumber = errors.New("step number must be at least 1")

	// ErrInvalidVideoURL indicates a URL that does not identify a video.
	ErrInvalidVideoURL = errors.New("invalid video URL")
)
