package sqlite

// dbFileName is the database file created inside the data directory.
const dbFileName = "islab.db"

// createLocalStorage holds the key/value pairs that persist between runs.
const createLocalStorage = `CREATE TABLE IF NOT EXISTS local_storage (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const (
	selectValue = `SELECT value FROM local_storage WHERE key = ?`
	upsertValue = `INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteValue = `DELETE FROM local_storage WHERE key = ?`
	deleteAll   = `DELETE FROM local_storage`
)
