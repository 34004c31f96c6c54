// Package store persists an address book as a JSON file and exchanges
// records with JSONL files.
//
// The book file is one JSON object whose keys are record names, in book
// order, and whose values are record snapshots:
//
//	{
//	   "John": {
//	      "name": "John",
//	      "phones": ["1234567890"],
//	      "birthday": "2010-11-10"
//	   }
//	}
//
// Birthday is "not set" when a record has none. Indentation is cosmetic.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// indent matches the three-space layout the book file has always used.
const indent = "   "

// Book file structure errors, wrapped in a LoadError.
var (
	ErrNotObject    = errors.New("book file is not a JSON object")
	ErrMissingField = errors.New("missing field")
	ErrKeyMismatch  = errors.New("key does not match record name")
)

// LoadError reports a book file that exists but cannot be turned into an
// address book. Key is the offending entry, empty for file-level problems.
type LoadError struct {
	Path string
	Key  string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: entry %q: %v", e.Path, e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// entryJSON is a snapshot as read from disk. Pointers tell a missing key
// apart from an empty value.
type entryJSON struct {
	Name     *string   `json:"name"`
	Phones   *[]string `json:"phones"`
	Birthday *string   `json:"birthday"`
}

// Load reads the book file at path. A missing file yields an empty book.
// Entries keep their file order. Any malformed entry aborts the load with a
// *LoadError; no partially loaded book is returned.
func Load(path string) (*types.AddressBook, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read book: %w", err)
	}

	book, err := decodeBook(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return book, nil
}

// Save writes every record of book to path in book order, replacing the
// file atomically.
func Save(path string, book *types.AddressBook) error {
	data, err := encodeBook(book)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

// encodeBook renders the book as an indented JSON object. encoding/json
// sorts map keys, so the object is assembled entry by entry to keep book
// order.
func encodeBook(book *types.AddressBook) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, r := range book.Records() {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(r.Name())
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", r.Name(), err)
		}
		value, err := json.Marshal(r.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("marshal record %q: %w", r.Name(), err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indent book: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// decodeBook walks the top-level object token by token so that entries are
// added in file order.
func decodeBook(data []byte) (*types.AddressBook, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	book := types.NewAddressBook()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &LoadError{Key: key, Err: err}
		}
		r, err := decodeEntry(key, raw)
		if err != nil {
			return nil, &LoadError{Key: key, Err: err}
		}
		book.Add(r)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading end of object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after book object")
	}
	return book, nil
}

// decodeEntry rebuilds one record and checks it against its key.
func decodeEntry(key string, raw json.RawMessage) (*types.Record, error) {
	s, err := snapshotFromJSON(raw)
	if err != nil {
		return nil, err
	}
	if s.Name != key {
		return nil, fmt.Errorf("%w: name %q", ErrKeyMismatch, s.Name)
	}
	return s.Record()
}

// snapshotFromJSON decodes a snapshot, requiring every field to be present.
func snapshotFromJSON(raw json.RawMessage) (types.Snapshot, error) {
	var e entryJSON
	if err := json.Unmarshal(raw, &e); err != nil {
		return types.Snapshot{}, err
	}
	switch {
	case e.Name == nil:
		return types.Snapshot{}, fmt.Errorf("%w: name", ErrMissingField)
	case e.Phones == nil:
		return types.Snapshot{}, fmt.Errorf("%w: phones", ErrMissingField)
	case e.Birthday == nil:
		return types.Snapshot{}, fmt.Errorf("%w: birthday", ErrMissingField)
	}
	return types.Snapshot{Name: *e.Name, Phones: *e.Phones, Birthday: *e.Birthday}, nil
}
