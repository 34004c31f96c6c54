package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Markers used when rendering and persisting records.
const (
	BirthdayNotSet = "not set"
	noPhoneMarker  = "no phone"
)

// Record is one contact: a unique name, an ordered list of phone numbers
// (duplicates allowed), and an optional birthday.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with no phones. An empty birthday means none
// is set.
// Returns ErrInvalidName if name is empty and an error wrapping
// ErrInvalidDate if birthday is malformed.
func NewRecord(name, birthday string) (*Record, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	r := &Record{name: name}
	if birthday != "" {
		if err := r.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the record's name, which is also its key in an AddressBook.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the record's phone numbers in order.
func (r *Record) Phones() []PhoneNumber {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
// Returns ErrPhoneNotFound if no phone matches.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, raw)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping
// its position. Returns ErrPhoneNotFound if oldRaw is absent, or an error
// wrapping ErrInvalidPhone if newRaw is malformed; in both cases the phone
// list is unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldRaw)
	}
	p, err := NewPhoneNumber(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (PhoneNumber, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return PhoneNumber{}, false
	}
	return r.phones[i], true
}

// SetBirthday parses raw and replaces any existing birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// DaysToBirthday returns the days from today until the next birthday.
// Returns ErrNoBirthday if none is set.
func (r *Record) DaysToBirthday(today time.Time) (int, error) {
	if r.birthday == nil {
		return 0, fmt.Errorf("%w for %s", ErrNoBirthday, r.name)
	}
	return r.birthday.DaysUntilNext(today), nil
}

// Snapshot returns the persisted form of the record.
func (r *Record) Snapshot() Snapshot {
	s := Snapshot{
		Name:     r.name,
		Phones:   make([]string, len(r.phones)),
		Birthday: BirthdayNotSet,
	}
	for i, p := range r.phones {
		s.Phones[i] = p.String()
	}
	if r.birthday != nil {
		s.Birthday = r.birthday.String()
	}
	return s
}

// String renders the record on one line:
// "<name> - <phone, phone | no phone>, birthday - <date | not set>".
func (r *Record) String() string {
	phones := noPhoneMarker
	if len(r.phones) > 0 {
		phones = r.joinPhones(", ")
	}
	birthday := BirthdayNotSet
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("%s - %s, birthday - %s", r.name, phones, birthday)
}

func (r *Record) joinPhones(sep string) string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	return strings.Join(values, sep)
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p PhoneNumber) bool {
		return p.value == raw
	})
}
