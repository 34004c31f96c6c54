package sqlite

// Schema DDL. Positions mirror book order and phone order so queries can
// reproduce the in-memory ordering exactly.
const (
	createRecords = `CREATE TABLE records (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT
);`

	createPhones = `CREATE TABLE phones (
    record_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    number TEXT NOT NULL,
    PRIMARY KEY (record_position, position),
    FOREIGN KEY (record_position) REFERENCES records(position) ON DELETE CASCADE
);`
)

// Index DDL for lookups by number.
const (
	idxPhonesNumber = `CREATE INDEX idx_phones_number ON phones(number);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createRecords,
	createPhones,
	idxPhonesNumber,
}
