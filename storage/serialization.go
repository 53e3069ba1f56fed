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
	"fmt"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/recipebox/core"
)

// MarshalRecord serializes a record for the given collection.
// Returns ErrRecordTypeMismatch if the record does not belong to the collection.
func MarshalRecord(c Collection, record core.Record) ([]byte, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	if record == nil || !c.Accepts(record) {
		return nil, fmt.Errorf("%w: %T into %s", ErrRecordTypeMismatch, record, c)
	}

	switch r := record.(type) {
	case *core.Recipe:
		if r == nil {
			break
		}
		buf := make([]byte, core.RecipeMUS.Size(*r))
		core.RecipeMUS.Marshal(*r, buf)
		return buf, nil
	case *core.Ingredient:
		if r == nil {
			break
		}
		buf := make([]byte, core.IngredientMUS.Size(*r))
		core.IngredientMUS.Marshal(*r, buf)
		return buf, nil
	case *core.CookingStep:
		if r == nil {
			break
		}
		buf := make([]byte, core.CookingStepMUS.Size(*r))
		core.CookingStepMUS.Marshal(*r, buf)
		return buf, nil
	case *core.Video:
		if r == nil {
			break
		}
		buf := make([]byte, core.VideoMUS.Size(*r))
		core.VideoMUS.Marshal(*r, buf)
		return buf, nil
	case *core.Category:
		if r == nil {
			break
		}
		buf := make([]byte, core.CategoryMUS.Size(*r))
		core.CategoryMUS.Marshal(*r, buf)
		return buf, nil
	case *core.Tag:
		if r == nil {
			break
		}
		buf := make([]byte, core.TagMUS.Size(*r))
		core.TagMUS.Marshal(*r, buf)
		return buf, nil
	case *core.ShoppingList:
		if r == nil {
			break
		}
		buf := make([]byte, core.ShoppingListMUS.Size(*r))
		core.ShoppingListMUS.Marshal(*r, buf)
		return buf, nil
	case *core.ShoppingItem:
		if r == nil {
			break
		}
		buf := make([]byte, core.ShoppingItemMUS.Size(*r))
		core.ShoppingItemMUS.Marshal(*r, buf)
		return buf, nil
	}
	return nil, fmt.Errorf("%w: nil %T", ErrSerializationFailed, record)
}

// UnmarshalRecord deserializes a record stored in the given collection.
func UnmarshalRecord(c Collection, data []byte) (core.Record, error) {
	var (
		record core.Record
		err    error
	)
	switch c {
	case Recipes:
		var v core.Recipe
		v, _, err = core.RecipeMUS.Unmarshal(data)
		record = &v
	case Ingredients:
		var v core.Ingredient
		v, _, err = core.IngredientMUS.Unmarshal(data)
		record = &v
	case Steps:
		var v core.CookingStep
		v, _, err = core.CookingStepMUS.Unmarshal(data)
		record = &v
	case Videos:
		var v core.Video
		v, _, err = core.VideoMUS.Unmarshal(data)
		record = &v
	case Categories:
		var v core.Category
		v, _, err = core.CategoryMUS.Unmarshal(data)
		record = &v
	case Tags:
		var v core.Tag
		v, _, err = core.TagMUS.Unmarshal(data)
		record = &v
	case ShoppingLists:
		var v core.ShoppingList
		v, _, err = core.ShoppingListMUS.Unmarshal(data)
		record = &v
	case ShoppingItems:
		var v core.ShoppingItem
		v, _, err = core.ShoppingItemMUS.Unmarshal(data)
		record = &v
	default:
		return nil, ErrInvalidCollection
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSerializationFailed, c, err)
	}
	return record, nil
}

// MarshalSchemaVersion serializes the schema version stamp.
func MarshalSchemaVersion(version int) []byte {
	buf := make([]byte, varint.Int.Size(version))
	varint.Int.Marshal(version, buf)
	return buf
}

// UnmarshalSchemaVersion deserializes the schema version stamp.
func UnmarshalSchemaVersion(data []byte) (int, error) {
	version, _, err := varint.Int.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: schema version: %w", ErrSerializationFailed, err)
	}
	return version, nil
}
