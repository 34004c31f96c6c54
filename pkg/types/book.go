package types

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// AddressBook maps names to records and remembers insertion order, which
// drives listing, searching, pagination, and persistence.
// The zero value is not usable; call NewAddressBook.
type AddressBook struct {
	order   []string
	records map[string]*Record
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add stores r under its name. An existing record with the same name is
// replaced and keeps its position.
func (b *AddressBook) Add(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// FindByPhone returns the name of the first record, in book order, holding
// a phone exactly equal to raw. Substrings do not match.
// Returns ErrPhoneNotFound otherwise.
func (b *AddressBook) FindByPhone(raw string) (string, error) {
	for _, name := range b.order {
		if _, ok := b.records[name].FindPhone(raw); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPhoneNotFound, raw)
}

// Delete removes the record stored under name.
// Returns ErrRecordNotFound if there is none.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// Search returns records whose name contains query, or with a phone that
// contains query. Each record is appended once for a name match and once
// more for every matching phone, so a record can appear several times.
func (b *AddressBook) Search(query string) []*Record {
	var found []*Record
	for _, name := range b.order {
		r := b.records[name]
		if strings.Contains(r.name, query) {
			found = append(found, r)
		}
		for _, p := range r.phones {
			if strings.Contains(p.value, query) {
				found = append(found, r)
			}
		}
	}
	return found
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, name := range b.order {
		out[i] = b.records[name]
	}
	return out
}

// Names returns the record names in insertion order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.order)
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Pages returns the book's records in pages of size records.
// See Paginate.
func (b *AddressBook) Pages(size int) iter.Seq2[int, []*Record] {
	return Paginate(b.Records(), size)
}
