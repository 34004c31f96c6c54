package types

import "errors"

// Validation errors. Operations that return them leave state unchanged.
var (
	ErrInvalidPhone = errors.New("not a valid phone number")
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidName  = errors.New("name must not be empty")
)

// Lookup errors.
var (
	ErrPhoneNotFound  = errors.New("phone not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrNoBirthday     = errors.New("birthday not set")
)

// ErrInvalidPageSize is returned by ValidatePageSize for sizes below one.
var ErrInvalidPageSize = errors.New("page size must be positive")
