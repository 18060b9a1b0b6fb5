// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS loans (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	loan_id TEXT NOT NULL,
	event TEXT NOT NULL,
	amount REAL NOT NULL,
	interest REAL NOT NULL,
	capital REAL NOT NULL,
	year INTEGER NOT NULL,
	day INTEGER NOT NULL,
	hour INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	year INTEGER NOT NULL,
	day INTEGER NOT NULL,
	capital REAL NOT NULL,
	savings REAL NOT NULL,
	debt REAL NOT NULL,
	loans INTEGER NOT NULL,
	income REAL NOT NULL,
	costs REAL NOT NULL,
	stress REAL NOT NULL,
	age REAL NOT NULL,
	job TEXT NOT NULL,
	recorded_at DATETIME NOT NULL,
	PRIMARY KEY (year, day)
);

CREATE INDEX IF NOT EXISTS idx_loans_loan_id ON loans(loan_id);
`

const StoreSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL
);
`
