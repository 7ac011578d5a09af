// Package sqlite is a single-file fight store for local and single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/osse101/FightBet_Go/internal/database/schema"
	"github.com/osse101/FightBet_Go/internal/domain"
)

// Error Messages
const (
	ErrMsgFailedToOpen         = "failed to open sqlite database"
	ErrMsgFailedToApplySchema  = "failed to apply schema"
	ErrMsgFailedToCreateFight  = "failed to create fight"
	ErrMsgFailedToGetFight     = "failed to get fight"
	ErrMsgFailedToUpdateFight  = "failed to update fight"
	ErrMsgFailedToIncrementBet = "failed to increment bet"
	ErrMsgFailedToListFights   = "failed to list fights"
	ErrMsgDuplicateFightID     = "fight id already exists"

	uniqueViolationText = "UNIQUE constraint failed"
)

const (
	queryInsertFight = `INSERT INTO fights (` + schema.FightColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetFight = `SELECT ` + schema.FightColumns + ` FROM fights WHERE fight_id = ?`

	queryUpdateFightIfMatches = `UPDATE fights SET
			status = ?, timestamp_ms = ?, bets_player1 = ?, bets_player2 = ?,
			current_state = ?, stream_url = ?, winner = ?, failure_reason = ?,
			version = version + 1
		WHERE fight_id = ? AND version = ?`

	queryIncrementPlayer1 = `UPDATE fights SET
			bets_player1 = bets_player1 + ?, timestamp_ms = ?, version = version + 1
		WHERE fight_id = ? AND status = 'betting_open'`

	queryIncrementPlayer2 = `UPDATE fights SET
			bets_player2 = bets_player2 + ?, timestamp_ms = ?, version = version + 1
		WHERE fight_id = ? AND status = 'betting_open'`

	queryGetActiveFight = `SELECT ` + schema.FightColumns + ` FROM fights
		WHERE status IN ('betting_open', 'in_progress')
		ORDER BY created_at_ms DESC LIMIT 1`

	queryListFights = `SELECT ` + schema.FightColumns + ` FROM fights
		ORDER BY created_at_ms DESC LIMIT ?`
)

// FightStore implements repository.Fights on SQLite (pure Go, no CGo)
type FightStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(path string) (*FightStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToOpen, path, err)
	}
	// SQLite is single-writer; one connection also serializes the conditional updates
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema.SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToApplySchema, err)
	}

	return &FightStore{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFight(row rowScanner) (*domain.Fight, error) {
	var (
		f                              domain.Fight
		status                         string
		state, stream, winner, failure sql.NullString
	)

	err := row.Scan(&f.ID, &f.SecureID, &status, &f.Timestamp, &f.CreatedAt,
		&f.Bets.Player1, &f.Bets.Player2, &state, &stream, &winner, &failure, &f.Version)
	if err != nil {
		return nil, err
	}

	f.Status = domain.FightStatus(status)
	if state.Valid {
		var cs domain.CurrentState
		if err := json.Unmarshal([]byte(state.String), &cs); err != nil {
			return nil, fmt.Errorf("failed to decode fight state: %w", err)
		}
		f.CurrentState = &cs
	}
	if stream.Valid {
		f.StreamURL = &stream.String
	}
	if winner.Valid {
		side := domain.Side(winner.String)
		f.Winner = &side
	}
	if failure.Valid {
		f.FailureReason = &failure.String
	}
	return &f, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func encodeState(state *domain.CurrentState) (sql.NullString, error) {
	if state == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode fight state: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func winnerString(w *domain.Side) sql.NullString {
	if w == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*w), Valid: true}
}

// CreateFight inserts a new fight record
func (s *FightStore) CreateFight(ctx context.Context, fight *domain.Fight) error {
	state, err := encodeState(fight.CurrentState)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, queryInsertFight,
		fight.ID, fight.SecureID, string(fight.Status), fight.Timestamp, fight.CreatedAt,
		fight.Bets.Player1, fight.Bets.Player2, state, nullString(fight.StreamURL),
		winnerString(fight.Winner), nullString(fight.FailureReason), fight.Version)
	if err != nil {
		if strings.Contains(err.Error(), uniqueViolationText) {
			return fmt.Errorf("%s: %s", ErrMsgDuplicateFightID, fight.ID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateFight, err)
	}
	return nil
}

// GetFight retrieves a fight by ID
func (s *FightStore) GetFight(ctx context.Context, id string) (*domain.Fight, error) {
	f, err := scanFight(s.db.QueryRowContext(ctx, queryGetFight, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFight, err)
	}
	return f, nil
}

// UpdateFightIfMatches writes the fight only if its stored version is expectedVersion
func (s *FightStore) UpdateFightIfMatches(ctx context.Context, fight *domain.Fight, expectedVersion int64) (bool, error) {
	state, err := encodeState(fight.CurrentState)
	if err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, queryUpdateFightIfMatches,
		string(fight.Status), fight.Timestamp, fight.Bets.Player1, fight.Bets.Player2,
		state, nullString(fight.StreamURL), winnerString(fight.Winner), nullString(fight.FailureReason),
		fight.ID, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFight, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFight, err)
	}
	return n == 1, nil
}

// IncrementBet atomically adds to a side's total while betting is open
func (s *FightStore) IncrementBet(ctx context.Context, id string, side domain.Side, amount int64, at int64) (*domain.Fight, error) {
	query := queryIncrementPlayer1
	if side == domain.SidePlayer2 {
		query = queryIncrementPlayer2
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, amount, at, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}

	f, err := scanFight(tx.QueryRowContext(ctx, queryGetFight, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}
	if n == 0 {
		return nil, domain.ErrBettingClosed
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}
	return f, nil
}

// GetActiveFight returns the newest fight that is open for betting or running
func (s *FightStore) GetActiveFight(ctx context.Context) (*domain.Fight, error) {
	f, err := scanFight(s.db.QueryRowContext(ctx, queryGetActiveFight))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFight, err)
	}
	return f, nil
}

// ListFights returns up to limit fights, newest first
func (s *FightStore) ListFights(ctx context.Context, limit int) ([]*domain.Fight, error) {
	rows, err := s.db.QueryContext(ctx, queryListFights, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}
	defer rows.Close()

	var fights []*domain.Fight
	for rows.Next() {
		f, err := scanFight(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
		}
		fights = append(fights, f)
	}
	return fights, rows.Err()
}

// CheckHealth pings the database
func (s *FightStore) CheckHealth(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *FightStore) Close() error {
	return s.db.Close()
}
