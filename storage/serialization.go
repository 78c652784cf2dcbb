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
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/studyport/coursematcher/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalCourseRecord serializes a CourseRecord's metadata to bytes.
// The embedding vector is not included; see EncodeVector.
func MarshalCourseRecord(record *core.CourseRecord) []byte {
	buf := make([]byte, core.CourseRecordMUS.Size(*record))
	core.CourseRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCourseRecord deserializes a CourseRecord's metadata from bytes.
func UnmarshalCourseRecord(data []byte) (*core.CourseRecord, error) {
	record, _, err := core.CourseRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalCatalogInfo serializes catalog metadata to bytes.
// The seed timestamp is stored with microsecond precision.
func MarshalCatalogInfo(info *CatalogInfo) []byte {
	size := varint.Int.Size(info.Dimension) +
		ord.String.Size(info.Model) +
		varint.Int.Size(info.Courses) +
		varint.Int64.Size(info.SeededAt.UnixMicro())
	buf := make([]byte, size)
	n := varint.Int.Marshal(info.Dimension, buf)
	n += ord.String.Marshal(info.Model, buf[n:])
	n += varint.Int.Marshal(info.Courses, buf[n:])
	varint.Int64.Marshal(info.SeededAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalCatalogInfo deserializes catalog metadata from bytes.
func UnmarshalCatalogInfo(data []byte) (*CatalogInfo, error) {
	var (
		info CatalogInfo
		n, n1 int
		err  error
	)
	if info.Dimension, n, err = varint.Int.Unmarshal(data); err != nil {
		return nil, err
	}
	if info.Model, n1, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, err
	}
	n += n1
	if info.Courses, n1, err = varint.Int.Unmarshal(data[n:]); err != nil {
		return nil, err
	}
	n += n1
	micros, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	info.SeededAt = time.UnixMicro(micros).UTC()
	return &info, nil
}

// EncodeVector serializes a vector to the fixed-width binary layout:
// consecutive little-endian 32-bit floats.
func EncodeVector(vector []float32) []byte {
	buf := make([]byte, 4*len(vector))
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// DecodeVector deserializes a fixed-width little-endian float32 blob.
// When dim > 0 the blob must hold exactly dim components; dim == 0 accepts
// any blob whose length is a multiple of 4.
func DecodeVector(data []byte, dim int) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: blob length %d is not a multiple of 4", ErrVectorDecode, len(data))
	}
	if dim > 0 && len(data) != 4*dim {
		return nil, fmt.Errorf("%w: blob length %d does not match dimension %d", ErrVectorDecode, len(data), dim)
	}
	vector := make([]float32, len(data)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return vector, nil
}
