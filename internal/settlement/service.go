package settlement

import (
	"context"
	"fmt"

	"github.com/osse101/FightBet_Go/internal/betting"
	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/logger"
)

const (
	LogMsgCashoutVerified = "Cash-out verified"
	LogMsgCashoutRejected = "Cash-out rejected"
)

// CashoutResult tells a payout system that a fight can be settled and with which pools
type CashoutResult struct {
	OK       bool        `json:"ok"`
	FightID  string      `json:"fight_id"`
	SecureID string      `json:"secure_id"`
	Winner   domain.Side `json:"winner"`
	Totals   domain.Bets `json:"totals"`
}

// Service guards cash-out on a completed, decided fight
type Service interface {
	VerifyCashout(ctx context.Context, fightID, walletAddress string) (*CashoutResult, error)
}

type service struct {
	registry fight.Service
	ledger   betting.Service
}

// NewService creates the cash-out guard
func NewService(registry fight.Service, ledger betting.Service) Service {
	return &service{registry: registry, ledger: ledger}
}

// VerifyCashout succeeds only for completed fights with a winner. Draws are not
// cashable. walletAddress is only written to the audit log.
func (s *service) VerifyCashout(ctx context.Context, fightID, walletAddress string) (*CashoutResult, error) {
	log := logger.FromContext(ctx)

	f, err := s.registry.GetFight(ctx, fightID)
	if err != nil {
		return nil, err
	}

	if f.Status != domain.FightStatusCompleted {
		log.Info(LogMsgCashoutRejected, logger.AttrKeyFightID, fightID, "status", f.Status, "wallet", walletAddress)
		return nil, fmt.Errorf("%w: status is %s", domain.ErrNotCompleted, f.Status)
	}
	if f.Winner == nil {
		log.Info(LogMsgCashoutRejected, logger.AttrKeyFightID, fightID, "reason", "draw", "wallet", walletAddress)
		return nil, domain.ErrNoWinner
	}

	totals, err := s.ledger.GetTotals(ctx, fightID)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCashoutVerified, logger.AttrKeyFightID, fightID, "winner", *f.Winner,
		"wallet", walletAddress, "pool", totals.Total())

	return &CashoutResult{
		OK:       true,
		FightID:  f.ID,
		SecureID: f.SecureID,
		Winner:   *f.Winner,
		Totals:   totals,
	}, nil
}
