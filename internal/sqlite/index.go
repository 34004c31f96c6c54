// Package sqlite answers address book queries with an in-memory SQLite
// database. The book stays the source of truth: the index reloads it before
// every query and maps result names back to the book's records.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// searchSQL lists one row per name match and one per matching phone,
// ordered like AddressBook.Search: by record, name hit first, then phones.
// instr is case sensitive and treats an empty needle as a match.
const searchSQL = `SELECT name FROM (
    SELECT r.position AS rpos, 0 AS kind, 0 AS ppos, r.name AS name
    FROM records r
    WHERE instr(r.name, ?) > 0
    UNION ALL
    SELECT r.position, 1, p.position, r.name
    FROM phones p JOIN records r ON r.position = p.record_position
    WHERE instr(p.number, ?) > 0
) ORDER BY rpos, kind, ppos`

const findByPhoneSQL = `SELECT r.name
FROM phones p JOIN records r ON r.position = p.record_position
WHERE p.number = ?
ORDER BY r.position, p.position
LIMIT 1`

// ErrClosed is returned by queries on a closed Index.
var ErrClosed = errors.New("index is closed")

// Index mirrors an AddressBook in SQLite.
type Index struct {
	db   *sql.DB
	book *types.AddressBook
}

// Open creates an empty in-memory database with the index schema and binds
// it to book.
func Open(book *types.AddressBook) (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Index{db: db, book: book}, nil
}

// Close releases the database. Close is idempotent.
func (ix *Index) Close() error {
	if ix.db == nil {
		return nil
	}
	err := ix.db.Close()
	ix.db = nil
	return err
}

// Search returns the records matching query with the same semantics and
// order as AddressBook.Search, duplicates included.
func (ix *Index) Search(query string) ([]*types.Record, error) {
	if err := ix.refresh(); err != nil {
		return nil, err
	}

	rows, err := ix.db.Query(searchSQL, query, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()

	var found []*types.Record
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		r, ok := ix.book.Find(name)
		if !ok {
			return nil, fmt.Errorf("search: %w: %s", types.ErrRecordNotFound, name)
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search rows: %w", err)
	}
	return found, nil
}

// FindByPhone returns the name of the first record, in book order, with a
// phone exactly equal to raw. Returns types.ErrPhoneNotFound otherwise.
func (ix *Index) FindByPhone(raw string) (string, error) {
	if err := ix.refresh(); err != nil {
		return "", err
	}

	var name string
	err := ix.db.QueryRow(findByPhoneSQL, raw).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", types.ErrPhoneNotFound, raw)
	}
	if err != nil {
		return "", fmt.Errorf("find by phone: %w", err)
	}
	return name, nil
}

// refresh reloads the bound book into the database.
func (ix *Index) refresh() error {
	if ix.db == nil {
		return ErrClosed
	}
	if err := loadBook(ix.db, ix.book); err != nil {
		return fmt.Errorf("refresh index: %w", err)
	}
	slog.Debug("index refreshed", "records", ix.book.Len())
	return nil
}
