package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Export writes one snapshot per line to path in book order, replacing the
// file atomically. It returns the number of records written.
func Export(path string, book *types.AddressBook) (int, error) {
	var buf bytes.Buffer
	records := book.Records()
	for _, r := range records {
		line, err := json.Marshal(r.Snapshot())
		if err != nil {
			return 0, fmt.Errorf("marshal record %q: %w", r.Name(), err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	return len(records), nil
}

// Import reads snapshots from the JSONL file at path and adds them to book,
// replacing records with the same name. Blank lines are skipped. Every line
// is validated before book is touched, so a bad line leaves book unchanged.
// It returns the number of records added or replaced.
func Import(path string, book *types.AddressBook) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	for _, r := range records {
		book.Add(r)
	}
	return len(records), nil
}

// readJSONL decodes each non-empty line of path into a record.
func readJSONL(path string) ([]*types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []*types.Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		s, err := snapshotFromJSON(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		r, err := s.Record()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}
