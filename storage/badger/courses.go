package badger

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/studyport/coursematcher/core"
	"github.com/studyport/coursematcher/storage"
)

// CourseRepository implements storage.CourseRepository for BadgerDB.
type CourseRepository struct {
	backend *Backend
}

var _ storage.CourseRepository = (*CourseRepository)(nil)

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(backend *Backend) (storage.CourseRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &CourseRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is closed separately.
func (r *CourseRepository) Close() error {
	return nil
}

// ReplaceCatalog atomically drops the stored catalog and writes the given
// records in its place.
func (r *CourseRepository) ReplaceCatalog(ctx context.Context, records []*core.CourseRecord, model string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	// Dimension of the new catalog, taken from the first embedded record.
	dimension := 0
	for _, record := range records {
		if len(record.Vector) > 0 {
			dimension = len(record.Vector)
			break
		}
	}

	// The catalog holds nothing but course data, so replacement drops the
	// whole keyspace before rewriting.
	if err := r.backend.DropAll(); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.Code + ":" + record.Title)
			}
			if err := tx.Set(makeCourseRecordKey(record.Id), storage.MarshalCourseRecord(record)); err != nil {
				return err
			}
			if len(record.Vector) > 0 {
				if err := tx.Set(makeCourseVectorKey(record.Id), storage.EncodeVector(record.Vector)); err != nil {
					return err
				}
			}
		}

		info := &storage.CatalogInfo{
			Dimension: dimension,
			Model:     model,
			Courses:   len(records),
			SeededAt:  time.Now().UTC(),
		}
		if err := tx.Set([]byte(catalogInfoKey), storage.MarshalCatalogInfo(info)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// LoadCorpus returns every course that carries an embedding, with vectors
// decoded from the stored fixed-width blobs.
func (r *CourseRepository) LoadCorpus(ctx context.Context) ([]*core.CourseRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	info, err := r.Info(ctx)
	if errors.Is(err, storage.ErrNotSeeded) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var corpus []*core.CourseRecord
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(courseRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CourseRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCourseRecord(val)
				return err
			})
			if err != nil {
				return err
			}

			// Rows without an embedding are excluded from the corpus.
			item, err := tx.Get(makeCourseVectorKey(record.Id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			err = item.Value(func(blob []byte) error {
				vector, err := storage.DecodeVector(blob, info.Dimension)
				if err != nil {
					return &storage.DecodeError{Course: record.Title, Reason: err.Error()}
				}
				record.Vector = vector
				return nil
			})
			if err != nil {
				return err
			}

			corpus = append(corpus, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return corpus, nil
}

// ListCourses returns all courses ordered by (year asc, title asc), without vectors.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]*core.CourseRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var courses []*core.CourseRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(courseRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CourseRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCourseRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			courses = append(courses, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(courses, func(a, b *core.CourseRecord) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return strings.Compare(a.Title, b.Title)
	})

	return courses, nil
}

// Info returns catalog metadata.
func (r *CourseRepository) Info(ctx context.Context) (*storage.CatalogInfo, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var info *storage.CatalogInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(catalogInfoKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotSeeded
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			info, err = storage.UnmarshalCatalogInfo(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return info, nil
}
