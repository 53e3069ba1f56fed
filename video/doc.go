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


// Package video resolves, caches and links external cooking videos.
//
// Lookup turns a pasted YouTube link into a core.Video. Metadata comes from the
// videos collection when the same video is already stored, otherwise from the
// YouTube Data API when an API key is configured. A missing key or a failed
// request never fails the lookup; a placeholder built from the id is returned
// instead. LookupAll resolves many links on a bounded worker pool.
package video
