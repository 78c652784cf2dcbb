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


// Package ai provides abstractions for the AI collaborators of coursematcher.
//
// This package defines interfaces for the two opaque natural-language
// capabilities the search pipeline depends on: text embeddings and course
// segmentation. The core and business logic depend on these abstractions
// rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: generates unit-normalized vector embeddings from text
//   - Segmenter: extracts course-like entries from free user text
//   - AIProvider: aggregates both services for convenient initialization
//
// The Segmenter deliberately models a non-deterministic collaborator: its
// contract covers the shape of its output space (empty, one entry, many
// entries), not its judgment on ambiguous input. Consumers are tested against
// that output space using the mock implementations.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockEmbedder, mock.NewMockSegmenter)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields and methods.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithToken(os.Getenv("OPENAI_API_KEY")))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "Intro to Robotics. Sensors and actuators.")
//	entries, err := provider.Segmenter().SegmentCourses(ctx, "Python basics. Data visualization.")
package ai
