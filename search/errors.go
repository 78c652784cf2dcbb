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


package search

import (
	"errors"
	"fmt"
)

var (
	// ErrCourseRepositoryRequired is returned when a course repository is not provided.
	ErrCourseRepositoryRequired = errors.New("course repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyQuery is returned when the search text is blank.
	ErrEmptyQuery = errors.New("empty query text")

	// ErrAllEntriesFailed is returned when every parsed entry failed to rank.
	ErrAllEntriesFailed = errors.New("all parsed entries failed")
)

// StageError reports a failure in one stage of the search pipeline for a
// specific parsed entry. Entry is the zero-based index into the parsed
// entries; entries are addressed by position because titles may repeat.
type StageError struct {
	Stage string
	Entry int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("search stage %s failed for entry %d: %v", e.Stage, e.Entry, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
