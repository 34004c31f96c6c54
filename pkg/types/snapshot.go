package types

import "fmt"

// Snapshot is the persisted form of a Record. Birthday holds either a
// YYYY-MM-DD date or BirthdayNotSet.
type Snapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday"`
}

// Record rebuilds a Record from the snapshot: NewRecord, then AddPhone for
// each stored phone in order, then SetBirthday unless it is BirthdayNotSet.
// The first invalid value aborts the rebuild.
func (s Snapshot) Record() (*Record, error) {
	r, err := NewRecord(s.Name, "")
	if err != nil {
		return nil, err
	}
	for i, raw := range s.Phones {
		if err := r.AddPhone(raw); err != nil {
			return nil, fmt.Errorf("phone %d: %w", i, err)
		}
	}
	if s.Birthday != BirthdayNotSet {
		if err := r.SetBirthday(s.Birthday); err != nil {
			return nil, fmt.Errorf("birthday: %w", err)
		}
	}
	return r, nil
}
