package db

// SchemaSQL is the single source of truth for the benchmark-history
// schema. Tests create in-memory databases from GetSchemaSQL() so they
// cannot drift from what the CLI writes.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	day TEXT NOT NULL,
	mode TEXT NOT NULL,
	iterations INTEGER NOT NULL,
	total_ns INTEGER NOT NULL,
	avg_ns INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_benchmark_runs_day ON benchmark_runs(day);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
