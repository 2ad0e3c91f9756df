// ABOUTME: Database schema definitions
// ABOUTME: SQL for entries, tag vocabularies, link tables, and indexes
package db

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ts TEXT NOT NULL,
    valence INTEGER NOT NULL CHECK (valence BETWEEN -5 AND 5),
    arousal INTEGER NOT NULL CHECK (arousal BETWEEN 0 AND 5),
    energy INTEGER NULL CHECK (energy BETWEEN 0 AND 5),
    social INTEGER NULL CHECK (social BETWEEN 0 AND 5),
    note TEXT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_ts ON entries(ts);

CREATE TABLE IF NOT EXISTS emotions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS factors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS entry_emotions (
    entry_id INTEGER NOT NULL,
    emotion_id INTEGER NOT NULL,
    PRIMARY KEY (entry_id, emotion_id),
    FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE,
    FOREIGN KEY (emotion_id) REFERENCES emotions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entry_emotions_emotion ON entry_emotions(emotion_id);

CREATE TABLE IF NOT EXISTS entry_factors (
    entry_id INTEGER NOT NULL,
    factor_id INTEGER NOT NULL,
    PRIMARY KEY (entry_id, factor_id),
    FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE,
    FOREIGN KEY (factor_id) REFERENCES factors(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entry_factors_factor ON entry_factors(factor_id);
`
