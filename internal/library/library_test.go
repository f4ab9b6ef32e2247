package library

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/store"
)

func titles(books []*model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func snapshot(t *testing.T, s store.Store) string {
	t.Helper()
	v, ok, err := s.Get(SnapshotKey)
	require.NoError(t, err)
	require.True(t, ok, "expected a persisted snapshot")
	return v
}

type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(string, string) error        { return f.err }

func TestInitializeSeed_ThenRemove(t *testing.T) {
	blobs := store.NewMemory()
	lib := New(blobs)

	require.NoError(t, lib.InitializeSeed())
	assert.Equal(t, []string{
		"The Hobbit",
		"The Lord of the Rings",
		"No Country for Old Men",
		"Blood Meridian",
	}, titles(lib.List()))
	for _, b := range lib.List() {
		assert.True(t, b.IsRead, "%s should be read", b.Title)
	}

	g := goldie.New(t)
	g.Assert(t, "seed", []byte(snapshot(t, blobs)))

	removed, err := lib.RemoveAt(1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"The Hobbit", "No Country for Old Men", "Blood Meridian"}, titles(lib.List()))
	g.Assert(t, "seed_after_remove", []byte(snapshot(t, blobs)))
}

func TestPersistRehydrate_RoundTrip(t *testing.T) {
	blobs := store.NewMemory()
	lib := New(blobs)
	require.NoError(t, lib.Add(model.NewBook("Dune", "Frank Herbert", model.ParsePages("412"), false)))
	require.NoError(t, lib.Add(model.NewBook("Free Text", "Anon", model.ParsePages("about 90"), true)))
	require.NoError(t, lib.Add(model.NewBook("", "", model.ParsePages(""), false)))

	other := New(blobs)
	ok, err := other.Rehydrate()
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, lib.Len(), other.Len())
	for i := range lib.List() {
		assert.Equal(t, *lib.At(i), *other.At(i), "record %d", i)
	}
}

func TestRehydrate_Placeholders(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "  ", "null", "{}", "[]", `""`, "{ }", "[ ]", "{\n}", " [\t] "} {
		v := v
		t.Run(v, func(t *testing.T) {
			t.Parallel()
			blobs := store.NewMemory()
			require.NoError(t, blobs.Set(SnapshotKey, v))

			lib := New(blobs)
			ok, err := lib.Rehydrate()
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, lib.Len())
		})
	}
}

func TestRehydrate_Corrupt(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"{not json", `{"title":"x"}`, `[null]`, `[{"pages":{}}]`} {
		v := v
		t.Run(v, func(t *testing.T) {
			t.Parallel()
			blobs := store.NewMemory()
			require.NoError(t, blobs.Set(SnapshotKey, v))

			lib := New(blobs)
			ok, err := lib.Rehydrate()
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
			assert.Zero(t, lib.Len())
		})
	}
}

func TestRehydrate_Twice_IsIdempotent(t *testing.T) {
	blobs := store.NewMemory()
	require.NoError(t, New(blobs).Add(model.NewBook("Only", "One", model.ParsePages("1"), false)))

	lib := New(blobs)
	for i := 0; i < 2; i++ {
		res, err := lib.Load()
		require.NoError(t, err)
		assert.Equal(t, LoadedSnapshot, res)
	}
	assert.Equal(t, []string{"Only"}, titles(lib.List()))
}

func TestLoad_SeedsWhenMissing(t *testing.T) {
	blobs := store.NewMemory()
	lib := New(blobs)

	res, err := lib.Load()
	require.NoError(t, err)
	assert.Equal(t, LoadedSeed, res)
	assert.Equal(t, 4, lib.Len())

	// A second start-up finds the persisted seed and does not re-seed.
	require.NoError(t, blobs.Set(SnapshotKey, `[{"title":"Kept","author":"A","pages":1,"isRead":false}]`))
	again := New(blobs)
	res, err = again.Load()
	require.NoError(t, err)
	assert.Equal(t, LoadedSnapshot, res)
	assert.Equal(t, []string{"Kept"}, titles(again.List()))
}

func TestLoad_CorruptFallsBackToSeedWithWarning(t *testing.T) {
	blobs := store.NewMemory()
	require.NoError(t, blobs.Set(SnapshotKey, "{oops"))

	var logs bytes.Buffer
	lib := New(blobs, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	res, err := lib.Load()
	require.NoError(t, err)
	assert.Equal(t, RecoveredSeed, res)
	assert.Equal(t, 4, lib.Len())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "corrupt")

	// The corrupt value was overwritten by the seed.
	_, err = New(blobs).Rehydrate()
	assert.NoError(t, err)
}

func TestLoad_SpacedEmptyValueSeedsQuietly(t *testing.T) {
	blobs := store.NewMemory()
	require.NoError(t, blobs.Set(SnapshotKey, "{ }"))

	var logs bytes.Buffer
	lib := New(blobs, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	res, err := lib.Load()
	require.NoError(t, err)
	assert.Equal(t, LoadedSeed, res)
	assert.Equal(t, 4, lib.Len())
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestPersist_KeepsNumericPagesAsNumbers(t *testing.T) {
	const raw = `[{"title":"A","author":"B","pages":1e3,"isRead":true},{"title":"C","author":"D","pages":304.0,"isRead":false},{"title":"E","author":"F","pages":"about 90","isRead":false}]`
	blobs := store.NewMemory()
	require.NoError(t, blobs.Set(SnapshotKey, raw))

	lib := New(blobs)
	ok, err := lib.Rehydrate()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, lib.Persist())

	assert.Equal(t, raw, snapshot(t, blobs))
}

func TestLoad_StrictReturnsCorruptError(t *testing.T) {
	blobs := store.NewMemory()
	require.NoError(t, blobs.Set(SnapshotKey, "{oops"))

	lib := New(blobs, WithStrictSnapshot(true))
	_, err := lib.Load()
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.Zero(t, lib.Len())
	assert.Equal(t, "{oops", snapshot(t, blobs), "strict load must not overwrite the snapshot")
}

func TestLoad_StorageError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := New(failingStore{err: boom}).Load()
	assert.ErrorIs(t, err, boom)
}

func TestRemoveAt_ShiftsLaterRecords(t *testing.T) {
	t.Parallel()

	for i := 0; i < 4; i++ {
		i := i
		t.Run(titles(SeedBooks())[i], func(t *testing.T) {
			t.Parallel()
			lib := New(store.NewMemory())
			require.NoError(t, lib.InitializeSeed())
			before := lib.List()

			removed, err := lib.RemoveAt(i)
			require.NoError(t, err)
			require.True(t, removed)
			require.Equal(t, 3, lib.Len())

			for orig, b := range before {
				got := lib.IndexOf(b)
				switch {
				case orig < i:
					assert.Equal(t, orig, got)
				case orig == i:
					assert.Equal(t, -1, got)
				default:
					assert.Equal(t, orig-1, got)
				}
			}
		})
	}
}

func TestRemoveAt_OutOfRangeIsNoop(t *testing.T) {
	blobs := store.NewMemory()
	lib := New(blobs)
	require.NoError(t, lib.InitializeSeed())
	before := snapshot(t, blobs)

	for _, i := range []int{-1, 4, 99} {
		removed, err := lib.RemoveAt(i)
		require.NoError(t, err)
		assert.False(t, removed, "index %d", i)
	}
	assert.Equal(t, 4, lib.Len())
	assert.Equal(t, before, snapshot(t, blobs))
}

func TestSetIsRead_FlipsOnlyTarget(t *testing.T) {
	blobs := store.NewMemory()
	lib := New(blobs)
	require.NoError(t, lib.InitializeSeed())

	ok, err := lib.SetIsRead(2, false)
	require.NoError(t, err)
	require.True(t, ok)

	reloaded := New(blobs)
	_, err = reloaded.Rehydrate()
	require.NoError(t, err)
	for i, b := range reloaded.List() {
		assert.Equal(t, i != 2, b.IsRead, "record %d (%s)", i, b.Title)
	}

	ok, err = lib.SetIsRead(7, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdd_AppendsAndRejectsNil(t *testing.T) {
	lib := New(store.NewMemory())
	require.NoError(t, lib.InitializeSeed())

	b := model.NewBook("New", "Author", model.ParsePages("10"), false)
	require.NoError(t, lib.Add(b))
	assert.Equal(t, 4, lib.IndexOf(b))
	assert.Same(t, b, lib.At(4))

	assert.ErrorIs(t, lib.Add(nil), ErrNilBook)
	assert.Equal(t, 5, lib.Len())
}

func TestAdd_PersistError(t *testing.T) {
	boom := errors.New("read-only")
	lib := New(failingStore{err: boom})
	err := lib.Add(model.NewBook("x", "y", model.ParsePages("1"), false))
	assert.ErrorIs(t, err, boom)
}

func TestList_IsACopy(t *testing.T) {
	lib := New(store.NewMemory())
	require.NoError(t, lib.InitializeSeed())

	list := lib.List()
	list[0], list[1] = list[1], list[0]
	assert.Equal(t, "The Hobbit", lib.At(0).Title)
	assert.Same(t, lib.At(0), list[1], "records are shared")
}

func TestIndexOf_UsesIdentity(t *testing.T) {
	lib := New(store.NewMemory())
	require.NoError(t, lib.InitializeSeed())

	twin := *lib.At(0)
	assert.Equal(t, -1, lib.IndexOf(&twin), "an equal but distinct record is not in the library")
	assert.Equal(t, -1, lib.IndexOf(nil))
	assert.Nil(t, lib.At(-1))
}

func TestSeedBooks_ReturnsFreshCopies(t *testing.T) {
	a, b := SeedBooks(), SeedBooks()
	a[0].IsRead = false
	assert.True(t, b[0].IsRead)
}
