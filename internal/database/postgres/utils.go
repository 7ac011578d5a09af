package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FightBet_Go/internal/database/generated"
	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// mapFight converts a generated row into the domain fight
func mapFight(row generated.Fight) (*domain.Fight, error) {
	f := &domain.Fight{
		ID:            row.FightID,
		SecureID:      row.SecureID,
		Status:        domain.FightStatus(row.Status),
		Timestamp:     row.TimestampMs,
		CreatedAt:     row.CreatedAtMs,
		Bets:          domain.Bets{Player1: row.BetsPlayer1, Player2: row.BetsPlayer2},
		StreamURL:     row.StreamUrl,
		FailureReason: row.FailureReason,
		Version:       row.Version,
	}
	if row.Winner != nil {
		side := domain.Side(*row.Winner)
		f.Winner = &side
	}
	if len(row.CurrentState) > 0 {
		var cs domain.CurrentState
		if err := json.Unmarshal(row.CurrentState, &cs); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeState, err)
		}
		f.CurrentState = &cs
	}
	return f, nil
}

// encodeState marshals the snapshot for the JSONB column, nil stays NULL
func encodeState(state *domain.CurrentState) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}
	return data, nil
}

func winnerText(w *domain.Side) *string {
	if w == nil {
		return nil
	}
	s := string(*w)
	return &s
}

// ---- End Common Helper Functions ----
