// Package types defines the contact model for rolodex: validated phone
// numbers and birthdays, records, the insertion-ordered address book, page
// iteration, persisted snapshots, configuration, and the standard errors
// returned by every operation.
package types
