// Package library owns the ordered book collection and its persisted snapshot.
//
// The collection holds *model.Book so that callers can resolve a record's
// current position by identity (IndexOf) rather than trusting a cached index.
package library

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/store"
)

// SnapshotKey is the blob store key the collection is persisted under.
const SnapshotKey = "library"

var (
	// ErrCorruptSnapshot is returned when the persisted snapshot cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt library snapshot")
	// ErrNilBook is returned when adding a nil record.
	ErrNilBook = errors.New("nil book")
)

// Library is the ordered collection of books plus its persistence.
// It is not safe for concurrent use; callers run it on a single event loop.
type Library struct {
	books  []*model.Book
	blobs  store.Store
	key    string
	strict bool
	logger *slog.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(lib *Library) {
		if l != nil {
			lib.logger = l
		}
	}
}

// WithKey overrides the snapshot key.
func WithKey(key string) Option {
	return func(lib *Library) {
		if key != "" {
			lib.key = key
		}
	}
}

// WithStrictSnapshot makes Load fail on a corrupt snapshot instead of re-seeding.
func WithStrictSnapshot(strict bool) Option {
	return func(lib *Library) { lib.strict = strict }
}

// New returns an empty library persisting to blobs.
func New(blobs store.Store, opts ...Option) *Library {
	lib := &Library{
		blobs:  blobs,
		key:    SnapshotKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Len returns the number of books.
func (l *Library) Len() int { return len(l.books) }

// At returns the book at i, or nil when i is out of range.
func (l *Library) At(i int) *model.Book {
	if !l.inRange(i) {
		return nil
	}
	return l.books[i]
}

// List returns the books in display order. The slice is a copy; the records
// are shared, so identity lookups against the live collection still work.
// Callers must mutate records through the Library only.
func (l *Library) List() []*model.Book {
	return slices.Clone(l.books)
}

// IndexOf returns the current position of b by identity, or -1.
func (l *Library) IndexOf(b *model.Book) int {
	if b == nil {
		return -1
	}
	return slices.Index(l.books, b)
}

// Add appends b and persists.
func (l *Library) Add(b *model.Book) error {
	if b == nil {
		return ErrNilBook
	}
	l.books = append(l.books, b)
	return l.Persist()
}

// RemoveAt deletes the book at i and persists. An out-of-range index is a
// no-op reported as removed=false.
func (l *Library) RemoveAt(i int) (bool, error) {
	if !l.inRange(i) {
		return false, nil
	}
	l.books = slices.Delete(l.books, i, i+1)
	return true, l.Persist()
}

// SetIsRead sets the read flag of the book at i in place and persists.
// An out-of-range index is a no-op reported as ok=false.
func (l *Library) SetIsRead(i int, isRead bool) (bool, error) {
	if !l.inRange(i) {
		return false, nil
	}
	l.books[i].IsRead = isRead
	return true, l.Persist()
}

// Persist overwrites the snapshot with the whole collection.
func (l *Library) Persist() error {
	data, err := encodeSnapshot(l.books)
	if err != nil {
		return err
	}
	if err := l.blobs.Set(l.key, data); err != nil {
		return fmt.Errorf("persist %s: %w", l.key, err)
	}
	return nil
}

func (l *Library) inRange(i int) bool { return i >= 0 && i < len(l.books) }
