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


// Package storage provides the storage abstraction layer for coursematcher.
//
// This package defines the repository interface that decouples the catalog
// store from business logic, letting different backends (BadgerDB, in-memory)
// be used interchangeably.
//
// # Catalog layout
//
// The catalog is a keyed collection owned by the seeding pipeline:
//
//   - one metadata value per course (MUS-encoded CourseRecord, without vector)
//   - one embedding blob per course (consecutive little-endian float32s)
//   - a single catalog-info value (dimension, model, count, seed time)
//
// Storing the vector as a raw fixed-width blob keeps the similarity corpus
// cheap to decode and makes the layout auditable byte-for-byte.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.CourseRepository interface to
// enforce abstraction and keep backends swappable:
//
//	repo, err := badger.NewCourseRepository(backend)
//
// # Thread Safety
//
// Reads are safe for concurrent use. ReplaceCatalog is an offline maintenance
// operation and must not run concurrently with serving.
package storage
