package badger

import (
	"fmt"

	"github.com/studyport/coursematcher/core"
)

// Key prefixes for the catalog layout
const (
	courseRecordPrefix = "courec" // MUS-encoded course metadata
	courseVectorPrefix = "couvec" // raw little-endian float32 embedding blob
	catalogInfoKey     = "catinfo"
)

// makeCourseRecordKey generates a key for a course's metadata by ID.
func makeCourseRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", courseRecordPrefix, id))
}

// makeCourseVectorKey generates a key for a course's embedding blob by ID.
func makeCourseVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", courseVectorPrefix, id))
}
