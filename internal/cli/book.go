package cli

import (
	"errors"
	"log/slog"

	"github.com/mesh-intelligence/rolodex/internal/shell"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/internal/store"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func (a *app) loadBook() (*types.AddressBook, error) {
	book, err := store.Load(a.bookPath)
	if err != nil {
		return nil, sysError("load book", err)
	}
	slog.Debug("book loaded", "path", a.bookPath, "records", book.Len())
	return book, nil
}

func (a *app) saveBook(book *types.AddressBook) error {
	if err := store.Save(a.bookPath, book); err != nil {
		return sysError("save book", err)
	}
	slog.Debug("book saved", "path", a.bookPath, "records", book.Len())
	return nil
}

// mutate loads the book, applies fn, and saves the book when fn succeeds.
// A failed fn leaves the file untouched.
func (a *app) mutate(fn func(*types.AddressBook) error) error {
	book, err := a.loadBook()
	if err != nil {
		return err
	}
	if err := fn(book); err != nil {
		return err
	}
	return a.saveBook(book)
}

// openFinder returns the configured search engine over book and a function
// releasing it.
func (a *app) openFinder(book *types.AddressBook) (shell.Finder, func(), error) {
	if a.cfg.Index != types.IndexSQLite {
		return shell.NewBookFinder(book), func() {}, nil
	}
	ix, err := sqlite.Open(book)
	if err != nil {
		return nil, nil, sysError("open index", err)
	}
	release := func() {
		if err := ix.Close(); err != nil {
			slog.Warn("close index", "error", err)
		}
	}
	return ix, release, nil
}

// finderError marks index failures as system errors. A phone lookup miss
// passes through as a user error.
func finderError(msg string, err error) error {
	if errors.Is(err, types.ErrPhoneNotFound) {
		return err
	}
	return sysError(msg, err)
}
