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


// Package transfer imports and exports recipe books.
//
// A recipe book is a YAML document holding recipes together with their
// ingredients, steps, video links and the names of their categories and tags.
// Names rather than ids are written so books move between databases.
//
// Import saves recipes in batches and reports progress to an optional writer:
//
//	importer, err := transfer.NewImporter(recipes, videos,
//	    transfer.WithProgress(os.Stderr),
//	    transfer.WithBatchSize(25))
//	result, err := importer.Import(ctx, file)
package transfer
