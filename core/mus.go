package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the catalog types. The catalog schema is a
// single small, stable struct, so the serializers are maintained by hand
// rather than generated. The embedding vector is not part of this encoding;
// it is stored out of band as a fixed-width little-endian blob (see storage).

var (
	// IDMUS serializes IDs.
	IDMUS mus.Serializer[ID] = idMUS{}

	// CourseRecordMUS serializes CourseRecord metadata.
	CourseRecordMUS mus.Serializer[CourseRecord] = courseRecordMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type courseRecordMUS struct{}

func (courseRecordMUS) Marshal(record CourseRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(record.Id, bs)
	n += ord.String.Marshal(record.Title, bs[n:])
	n += ord.String.Marshal(record.Code, bs[n:])
	n += varint.Int.Marshal(record.Year, bs[n:])
	n += varint.Int.Marshal(record.Credits, bs[n:])
	n += varint.Int.Marshal(len(record.Prerequisites), bs[n:])
	for _, prereq := range record.Prerequisites {
		n += ord.String.Marshal(prereq, bs[n:])
	}
	n += varint.Int.Marshal(record.DirectedHours, bs[n:])
	n += varint.Int.Marshal(record.WorkplaceHours, bs[n:])
	n += varint.Int.Marshal(record.SelfDirectedHours, bs[n:])
	n += varint.Int.Marshal(record.TotalHours, bs[n:])
	n += ord.String.Marshal(record.Program, bs[n:])
	n += ord.String.Marshal(record.Description, bs[n:])
	return n
}

func (courseRecordMUS) Unmarshal(bs []byte) (record CourseRecord, n int, err error) {
	var n1 int
	record.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	if record.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.Code, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.Year, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.Credits, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var count int
	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if count > 0 {
		record.Prerequisites = make([]string, count)
		for i := 0; i < count; i++ {
			if record.Prerequisites[i], n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}
	if record.DirectedHours, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.WorkplaceHours, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.SelfDirectedHours, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.TotalHours, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.Program, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if record.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (courseRecordMUS) Size(record CourseRecord) (size int) {
	size = IDMUS.Size(record.Id)
	size += ord.String.Size(record.Title)
	size += ord.String.Size(record.Code)
	size += varint.Int.Size(record.Year)
	size += varint.Int.Size(record.Credits)
	size += varint.Int.Size(len(record.Prerequisites))
	for _, prereq := range record.Prerequisites {
		size += ord.String.Size(prereq)
	}
	size += varint.Int.Size(record.DirectedHours)
	size += varint.Int.Size(record.WorkplaceHours)
	size += varint.Int.Size(record.SelfDirectedHours)
	size += varint.Int.Size(record.TotalHours)
	size += ord.String.Size(record.Program)
	size += ord.String.Size(record.Description)
	return size
}

func (courseRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = CourseRecordMUS.Unmarshal(bs)
	return n, err
}
