package types

import "fmt"

// phoneLength is the exact number of digits in a phone number.
const phoneLength = 10

// PhoneNumber is a validated ten-digit phone number. The zero value is not
// a valid number; construct with NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and returns it as a PhoneNumber.
// Returns an error wrapping ErrInvalidPhone unless raw is exactly ten
// ASCII digits.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if len(raw) != phoneLength {
		return PhoneNumber{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return PhoneNumber{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
		}
	}
	return PhoneNumber{value: raw}, nil
}

// Equal reports whether both numbers hold the same digits.
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.value == other.value
}

func (p PhoneNumber) String() string {
	return p.value
}
