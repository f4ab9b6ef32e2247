package library

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/library/internal/model"
)

// LoadResult reports how Load populated the collection.
type LoadResult int

const (
	// LoadedSnapshot means the collection came from the persisted snapshot.
	LoadedSnapshot LoadResult = iota
	// LoadedSeed means no usable snapshot existed and the seed set was installed.
	LoadedSeed
	// RecoveredSeed means the snapshot was corrupt and was replaced by the seed set.
	RecoveredSeed
)

func (r LoadResult) String() string {
	switch r {
	case LoadedSnapshot:
		return "snapshot"
	case LoadedSeed:
		return "seed"
	case RecoveredSeed:
		return "recovered"
	default:
		return fmt.Sprintf("LoadResult(%d)", int(r))
	}
}

// seed is the fixed starting catalog.
var seed = []model.Book{
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Pages: model.PagesOf(304), IsRead: true},
	{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Pages: model.PagesOf(1241), IsRead: true},
	{Title: "No Country for Old Men", Author: "Cormac McCarthy", Pages: model.PagesOf(320), IsRead: true},
	{Title: "Blood Meridian", Author: "Cormac McCarthy", Pages: model.PagesOf(337), IsRead: true},
}

// SeedBooks returns fresh copies of the seed records.
func SeedBooks() []*model.Book {
	out := make([]*model.Book, len(seed))
	for i := range seed {
		b := seed[i]
		out[i] = &b
	}
	return out
}

// InitializeSeed replaces the collection with the seed set and persists it.
func (l *Library) InitializeSeed() error {
	l.books = SeedBooks()
	return l.Persist()
}

// Rehydrate replaces the collection with the persisted snapshot.
//
// It reports false when there is no snapshot or the snapshot holds a
// placeholder (empty, null, {} or []). A snapshot that fails to decode yields
// an error wrapping ErrCorruptSnapshot and leaves the collection untouched.
func (l *Library) Rehydrate() (bool, error) {
	data, ok, err := l.blobs.Get(l.key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", l.key, err)
	}
	if !ok || isPlaceholder([]byte(data)) {
		return false, nil
	}
	books, err := decodeSnapshot(data)
	if err != nil {
		return false, err
	}
	l.books = books
	return true, nil
}

// Load populates the collection at startup: from the snapshot when one
// exists, from the seed set otherwise. A corrupt snapshot is logged and
// replaced by the seed set unless the library is strict.
func (l *Library) Load() (LoadResult, error) {
	ok, err := l.Rehydrate()
	switch {
	case err == nil && ok:
		l.logger.Debug("library rehydrated", "key", l.key, "books", len(l.books))
		return LoadedSnapshot, nil
	case err == nil:
		l.logger.Debug("no snapshot, installing seed", "key", l.key)
		if err := l.InitializeSeed(); err != nil {
			return LoadedSeed, err
		}
		return LoadedSeed, nil
	case errors.Is(err, ErrCorruptSnapshot) && !l.strict:
		l.logger.Warn("discarding corrupt snapshot, installing seed", "key", l.key, "err", err)
		if err := l.InitializeSeed(); err != nil {
			return RecoveredSeed, err
		}
		return RecoveredSeed, nil
	default:
		return LoadedSnapshot, err
	}
}
