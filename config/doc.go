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


// Package config holds recipebox configuration.
//
// A Config starts from DefaultConfig, is overlaid with RECIPEBOX_* environment
// variables and finally with explicit options, so command line flags win over
// the environment:
//
//	cfg, err := config.Load(config.WithDBPath("/tmp/recipes"))
//
// Recognized variables: RECIPEBOX_DB_PATH, RECIPEBOX_IN_MEMORY,
// RECIPEBOX_LOG_LEVEL, RECIPEBOX_YOUTUBE_API_KEY, RECIPEBOX_YOUTUBE_BASE_URL,
// RECIPEBOX_LOOKUP_TIMEOUT, RECIPEBOX_LOOKUP_RETRIES,
// RECIPEBOX_LOOKUP_RETRY_DELAY and RECIPEBOX_LOOKUP_WORKERS.
package config
