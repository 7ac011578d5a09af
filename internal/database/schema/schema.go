package schema

// SQLiteSchema contains the fight store schema for the embedded SQLite backend.
// It mirrors migrations/00001_create_fights.sql with SQLite types.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS fights (
    fight_id       TEXT PRIMARY KEY,
    secure_id      TEXT    NOT NULL,
    status         TEXT    NOT NULL
        CHECK (status IN ('betting_open', 'in_progress', 'completed', 'failed')),
    timestamp_ms   INTEGER NOT NULL,
    created_at_ms  INTEGER NOT NULL,
    bets_player1   INTEGER NOT NULL DEFAULT 0 CHECK (bets_player1 >= 0),
    bets_player2   INTEGER NOT NULL DEFAULT 0 CHECK (bets_player2 >= 0),
    current_state  TEXT,
    stream_url     TEXT,
    winner         TEXT CHECK (winner IN ('player1', 'player2')),
    failure_reason TEXT,
    version        INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_fights_created_at ON fights (created_at_ms DESC);
CREATE INDEX IF NOT EXISTS idx_fights_status ON fights (status);
`

// FightColumns lists the fight columns in scan order, shared by the SQL backends
const FightColumns = `fight_id, secure_id, status, timestamp_ms, created_at_ms,
	bets_player1, bets_player2, current_state, stream_url, winner, failure_reason, version`
