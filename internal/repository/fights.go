package repository

import (
	"context"

	"github.com/osse101/FightBet_Go/internal/domain"
)

// Fights defines the persistence capabilities the fight services rely on:
// get, put-if-match and an atomic conditional bet increment.
type Fights interface {
	// CreateFight inserts a new fight. An existing id is an error, never an overwrite.
	CreateFight(ctx context.Context, fight *domain.Fight) error

	// GetFight returns nil, nil when the fight does not exist
	GetFight(ctx context.Context, id string) (*domain.Fight, error)

	// UpdateFightIfMatches writes fight only when the stored version equals expectedVersion.
	// On success the stored version becomes expectedVersion+1 and true is returned.
	UpdateFightIfMatches(ctx context.Context, fight *domain.Fight, expectedVersion int64) (bool, error)

	// IncrementBet adds amount to side in one atomic step guarded by status = betting_open.
	// Returns nil, nil when the fight does not exist and domain.ErrBettingClosed when it
	// exists in any other status.
	IncrementBet(ctx context.Context, id string, side domain.Side, amount int64, at int64) (*domain.Fight, error)

	// GetActiveFight returns the most recent betting_open or in_progress fight, or nil, nil
	GetActiveFight(ctx context.Context) (*domain.Fight, error)

	// ListFights returns up to limit fights, newest first
	ListFights(ctx context.Context, limit int) ([]*domain.Fight, error)

	CheckHealth(ctx context.Context) error
	Close() error
}
