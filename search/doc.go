// Copyright 2025 StudyPort Systems
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


// Package search matches free-form course descriptions against the catalog.
//
// The Searcher type implements a multi-stage pipeline:
//   - LLM segmentation of the text into course-like entries
//   - Embedding of each entry's query text
//   - Brute-force cosine ranking over the full embedded corpus
//
// Each parsed entry gets its own ranked match list; summary fields (general
// title, primary-entry top matches) are derived from the combined results.
// Segmentation failures degrade to a single whole-text entry rather than
// failing the request.
package search
