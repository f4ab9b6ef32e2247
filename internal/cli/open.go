package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/library/internal/config"
	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/store"
	"github.com/idilsaglam/library/internal/store/jsonstore"
	"github.com/idilsaglam/library/internal/store/sqlitestore"
)

const dbFile = "library.db"

// openStore returns the configured blob backend.
func (o *RootOptions) openStore() (store.Store, error) {
	switch o.cfg.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendSQLite:
		path := dbFile
		if o.cfg.Dir != "" {
			if err := os.MkdirAll(o.cfg.Dir, config.DirPermissions); err != nil {
				return nil, fmt.Errorf("mkdir: %w", err)
			}
			path = filepath.Join(o.cfg.Dir, dbFile)
		}
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, err
		}
		o.closers = append(o.closers, s)
		return s, nil
	default:
		return jsonstore.New(o.cfg.Dir)
	}
}

// openLibrary opens the backend and loads the collection from it.
func (o *RootOptions) openLibrary() (*library.Library, error) {
	blobs, err := o.openStore()
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", o.cfg.Backend, err)
	}
	lib := library.New(blobs,
		library.WithLogger(o.logger),
		library.WithStrictSnapshot(o.cfg.StrictSnapshot),
	)
	res, err := lib.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	o.logger.Debug("library loaded", "backend", o.cfg.Backend, "result", res, "books", lib.Len())
	return lib, nil
}
