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


// Package search answers name, category and scope queries over a loaded
// corpus snapshot.
//
// The Engine exposes five operations:
//   - ExactLookup: all entries matching a name case-insensitively
//   - FuzzySearch: entries ranked by name similarity to a query
//   - SearchByCategory: a category (and data-type group) listing, with an
//     optional query filtering on entry name or description
//   - SearchByScope: entries declaring a scope tag
//   - Statistics: per-category counts and corpus totals
//
// Every operation is a bounded, synchronous computation over in-memory
// structures: no I/O, no blocking, no per-call state. Because snapshots are
// immutable, identical calls against the same snapshot always produce
// identical results, and any number of queries may run concurrently.
//
// Similarity scoring is pluggable through the Scorer interface so the
// ranking contract does not depend on one metric's quirks. The default is
// Jaro-Winkler.
package search
