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

// Package search filters recipes by text, ingredient, cook time and combined criteria.
//
// Every call is a full scan of the recipes collection; there is no index, no
// ranking and no pagination. A Criteria filter applies its predicates in a fixed
// order and a recipe must satisfy all of them, so adding a predicate can only
// narrow the result. A FilterMonitor observes how each predicate narrows it.
package search
