package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FightBet_Go/internal/database/generated"
	"github.com/osse101/FightBet_Go/internal/domain"
)

// FightRepository implements repository.Fights for PostgreSQL
type FightRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewFightRepository creates a new FightRepository
func NewFightRepository(db *pgxpool.Pool) *FightRepository {
	return &FightRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateFight inserts a new fight record
func (r *FightRepository) CreateFight(ctx context.Context, fight *domain.Fight) error {
	state, err := encodeState(fight.CurrentState)
	if err != nil {
		return err
	}

	params := generated.CreateFightParams{
		FightID:       fight.ID,
		SecureID:      fight.SecureID,
		Status:        string(fight.Status),
		TimestampMs:   fight.Timestamp,
		CreatedAtMs:   fight.CreatedAt,
		BetsPlayer1:   fight.Bets.Player1,
		BetsPlayer2:   fight.Bets.Player2,
		CurrentState:  state,
		StreamUrl:     fight.StreamURL,
		Winner:        winnerText(fight.Winner),
		FailureReason: fight.FailureReason,
		Version:       fight.Version,
	}

	if err := r.q.CreateFight(ctx, params); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%s: %s", ErrMsgDuplicateFightID, fight.ID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateFight, err)
	}
	return nil
}

// GetFight retrieves a fight by ID
func (r *FightRepository) GetFight(ctx context.Context, id string) (*domain.Fight, error) {
	row, err := r.q.GetFight(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFight, err)
	}
	return mapFight(row)
}

// UpdateFightIfMatches writes the fight only if its stored version is expectedVersion
func (r *FightRepository) UpdateFightIfMatches(ctx context.Context, fight *domain.Fight, expectedVersion int64) (bool, error) {
	state, err := encodeState(fight.CurrentState)
	if err != nil {
		return false, err
	}

	params := generated.UpdateFightIfVersionParams{
		Status:          string(fight.Status),
		TimestampMs:     fight.Timestamp,
		BetsPlayer1:     fight.Bets.Player1,
		BetsPlayer2:     fight.Bets.Player2,
		CurrentState:    state,
		StreamUrl:       fight.StreamURL,
		Winner:          winnerText(fight.Winner),
		FailureReason:   fight.FailureReason,
		FightID:         fight.ID,
		ExpectedVersion: expectedVersion,
	}

	n, err := r.q.UpdateFightIfVersion(ctx, params)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFight, err)
	}
	return n == 1, nil
}

// IncrementBet atomically adds to a side's total while betting is open
func (r *FightRepository) IncrementBet(ctx context.Context, id string, side domain.Side, amount int64, at int64) (*domain.Fight, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)

	var row generated.Fight
	if side == domain.SidePlayer2 {
		row, err = q.IncrementBetPlayer2(ctx, generated.IncrementBetPlayer2Params{Amount: amount, TimestampMs: at, FightID: id})
	} else {
		row, err = q.IncrementBetPlayer1(ctx, generated.IncrementBetPlayer1Params{Amount: amount, TimestampMs: at, FightID: id})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// nothing updated: either the fight is missing or betting has closed
		exists, err := q.FightExists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
		}
		if !exists {
			return nil, nil
		}
		return nil, domain.ErrBettingClosed
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementBet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return mapFight(row)
}

// GetActiveFight returns the newest fight that is open for betting or running
func (r *FightRepository) GetActiveFight(ctx context.Context) (*domain.Fight, error) {
	row, err := r.q.GetActiveFight(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFight, err)
	}
	return mapFight(row)
}

// ListFights returns up to limit fights, newest first
func (r *FightRepository) ListFights(ctx context.Context, limit int) ([]*domain.Fight, error) {
	rows, err := r.q.ListFights(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}

	fights := make([]*domain.Fight, 0, len(rows))
	for _, row := range rows {
		f, err := mapFight(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
		}
		fights = append(fights, f)
	}
	return fights, nil
}

// CheckHealth pings the database
func (r *FightRepository) CheckHealth(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the connection pool
func (r *FightRepository) Close() error {
	r.db.Close()
	return nil
}
