package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is stored in PRAGMA user_version once the schema is created.
const SchemaVersion = 1

// schema holds the item collection and the preference keys. Decimal amounts
// are stored as their exact text form.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id            INTEGER PRIMARY KEY,
    position      INTEGER NOT NULL,
    name          TEXT NOT NULL,
    purchase_date TEXT NOT NULL,
    price         TEXT NOT NULL DEFAULT '0',
    category      TEXT NOT NULL DEFAULT '',
    tags          TEXT NOT NULL DEFAULT '[]',
    status        TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'retired', 'sold')),
    sold_price    TEXT NOT NULL DEFAULT '0',
    notes         TEXT NOT NULL DEFAULT '',
    image         BLOB,
    image_mime    TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates the tables if they don't exist yet. A database written
// by a newer version of the program is refused.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, SchemaVersion)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("setting schema version: %w", err)
	}
	return nil
}
