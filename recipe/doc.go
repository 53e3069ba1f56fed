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


// Package recipe manages the recipe lifecycle.
//
// The Service owns referential integrity between a recipe and the ingredients,
// cooking steps and videos pointing back at it:
//   - DeleteRecipe cascades to every child record in one transaction
//   - DeleteStep renumbers the remaining steps so numbering stays dense
//   - SaveRecipeWithRelated replaces a recipe's children as a unit
//
// Categories and tags are global vocabulary. Initialize seeds a default set
// into an empty database.
package recipe
