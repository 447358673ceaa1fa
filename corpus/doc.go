// Copyright 2025 Halcyon Forge
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


// Package corpus loads the reference data files into an immutable in-memory
// Snapshot and keeps the derived lookup structures consistent with it.
//
// A corpus directory holds one JSON file per collection (modifiers, effects,
// triggers, event targets, and five data-type catalogs). The Loader reads
// every file named by the fixed manifest, normalizes the two shapes the
// extraction pipeline produces (a flat list of entry objects, or a mapping
// from name to attributes) into core.Entry values, and builds the name and
// scope indexes in a single pass. A missing file yields an empty collection;
// a corrupt file aborts the whole load.
//
// Snapshots are never mutated after construction, so they can be shared by
// any number of concurrent readers without locking. The Source interface
// hands the current snapshot to the query layer; Watcher is a Source that
// rebuilds the whole snapshot when files change and swaps it in atomically.
package corpus
