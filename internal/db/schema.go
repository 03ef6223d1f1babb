package db

// SchemaSQL is the complete schema for fresh installs. It mirrors the
// canonical JSON state blob relationally: one tracking_state row plus the
// bounded day_history log. This is the single source of truth for the
// schema; adapter tests build their databases from GetSchemaSQL().
const SchemaSQL = `
-- Singleton tracking state (one row per installation)
CREATE TABLE IF NOT EXISTS tracking_state (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	current_day TEXT NOT NULL,
	steps_today INTEGER NOT NULL DEFAULT 0,
	water_today INTEGER NOT NULL DEFAULT 0,
	water_goal_ml INTEGER NOT NULL DEFAULT 2000,
	baseline_step_count REAL NOT NULL DEFAULT -1,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Archived days (bounded history, chronological by position)
CREATE TABLE IF NOT EXISTS day_history (
	position INTEGER PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	steps INTEGER NOT NULL DEFAULT 0,
	water INTEGER NOT NULL DEFAULT 0
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
