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


package core

import "fmt"

// ValidateCourseRecord validates a CourseRecord according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Description must not be empty
//   - Credits and all learning-hour counts must not be negative
//
// NOT validated (populated later in the pipeline):
//   - Vector (empty until the seeding pipeline embeds the course)
//   - ID (0 until assigned from content)
func ValidateCourseRecord(record *CourseRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCourse)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyTitle)
	}

	if record.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyDescription)
	}

	if record.Credits < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrNegativeCredits)
	}

	for _, hours := range []int{record.DirectedHours, record.WorkplaceHours, record.SelfDirectedHours, record.TotalHours} {
		if hours < 0 {
			return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrNegativeHours)
		}
	}

	return nil
}

// NormalizeTotalHours enforces the learning-hour invariant: when the source
// total is absent or zero, the total is the sum of directed, workplace and
// self-directed hours. A non-zero source total is authoritative.
func NormalizeTotalHours(record *CourseRecord) {
	if record.TotalHours == 0 {
		record.TotalHours = record.DirectedHours + record.WorkplaceHours + record.SelfDirectedHours
	}
}
