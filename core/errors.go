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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCourse indicates a CourseRecord failed validation.
	ErrInvalidCourse = errors.New("invalid course record")

	// ErrEmptyTitle indicates the course Title field is empty.
	ErrEmptyTitle = errors.New("course title cannot be empty")

	// ErrEmptyDescription indicates the course Description field is empty.
	ErrEmptyDescription = errors.New("course description cannot be empty")

	// ErrNegativeHours indicates a learning-hour count is negative.
	ErrNegativeHours = errors.New("learning hours cannot be negative")

	// ErrNegativeCredits indicates the Credits field is negative.
	ErrNegativeCredits = errors.New("credits cannot be negative")
)
