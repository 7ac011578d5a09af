package betting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/repository"
)

// Service defines the betting ledger operations
type Service interface {
	PlaceBet(ctx context.Context, fightID string, side domain.Side, amount int64) (*domain.Fight, error)
	GetTotals(ctx context.Context, fightID string) (domain.Bets, error)
}

type service struct {
	repo     repository.Fights
	registry fight.Service
	bus      event.Bus
	now      func() time.Time
}

// NewService creates a betting ledger. Increments go straight to the store so the
// open-window check and the add happen in one atomic step.
func NewService(repo repository.Fights, registry fight.Service, bus event.Bus) Service {
	return &service{
		repo:     repo,
		registry: registry,
		bus:      bus,
		now:      time.Now,
	}
}

// PlaceBet adds amount to side's pool while the fight is betting_open
func (s *service) PlaceBet(ctx context.Context, fightID string, side domain.Side, amount int64) (*domain.Fight, error) {
	log := logger.FromContext(ctx)

	if !side.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	f, err := s.repo.IncrementBet(ctx, fightID, side, amount, s.now().UnixMilli())
	if err != nil {
		if errors.Is(err, domain.ErrBettingClosed) {
			log.Info(LogMsgBetRejected, logger.AttrKeyFightID, fightID, "side", side, "amount", amount)
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToPlaceBet, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, fightID)
	}

	log.Info(LogMsgBetPlaced, logger.AttrKeyFightID, fightID, "side", side, "amount", amount,
		"player1_total", f.Bets.Player1, "player2_total", f.Bets.Player2)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewBetPlacedEvent(fightID, side, amount, f.Bets)); err != nil {
			log.Warn(LogMsgFailedToPublish, logger.AttrKeyFightID, fightID, "error", err)
		}
	}
	return f, nil
}

// GetTotals returns the per-side pools for a fight
func (s *service) GetTotals(ctx context.Context, fightID string) (domain.Bets, error) {
	f, err := s.registry.GetFight(ctx, fightID)
	if err != nil {
		return domain.Bets{}, fmt.Errorf("%s: %w", ErrContextFailedToGetTotals, err)
	}
	return f.Bets, nil
}
