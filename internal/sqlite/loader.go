package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// loadBook replaces the index contents with the records of book. Loading
// is transactional: on error the previous contents remain.
func loadBook(db *sql.DB, book *types.AddressBook) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	recordStmt, err := tx.Prepare("INSERT INTO records (position, name, birthday) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer recordStmt.Close()

	phoneStmt, err := tx.Prepare("INSERT INTO phones (record_position, position, number) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing phone insert: %w", err)
	}
	defer phoneStmt.Close()

	for i, r := range book.Records() {
		var birthday sql.NullString
		if bd, ok := r.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}
		if _, err := recordStmt.Exec(i, r.Name(), birthday); err != nil {
			return fmt.Errorf("inserting record %q: %w", r.Name(), err)
		}
		for j, p := range r.Phones() {
			if _, err := phoneStmt.Exec(i, j, p.String()); err != nil {
				return fmt.Errorf("inserting phone of %q: %w", r.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}
