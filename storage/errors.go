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


package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrNotSeeded indicates that the catalog has never been seeded.
	ErrNotSeeded = errors.New("catalog not seeded")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrVectorDecode indicates a stored embedding blob that cannot be decoded.
	ErrVectorDecode = errors.New("embedding decode failed")
)

// DecodeError reports a stored embedding blob that cannot be decoded into a
// vector of the catalog's dimension. It identifies the offending course.
type DecodeError struct {
	Course string // title of the offending row
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("embedding decode failed for %q: %s", e.Course, e.Reason)
}

// Unwrap allows errors.Is(err, ErrVectorDecode).
func (e *DecodeError) Unwrap() error {
	return ErrVectorDecode
}
