// Package memory is an in-process fight store for tests and local demos.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/FightBet_Go/internal/concurrency"
	"github.com/osse101/FightBet_Go/internal/domain"
)

// ErrDuplicateFightID is returned when a fight id is already stored
var ErrDuplicateFightID = errors.New("fight id already exists")

// FightStore implements repository.Fights with a map guarded by per-fight locks.
// Stored fights are cloned on the way in and out so callers never share memory with the store.
type FightStore struct {
	mu     sync.RWMutex
	fights map[string]*domain.Fight
	locks  *concurrency.LockManager
}

// NewFightStore creates an empty store
func NewFightStore() *FightStore {
	return &FightStore{
		fights: make(map[string]*domain.Fight),
		locks:  concurrency.NewLockManager(),
	}
}

func (s *FightStore) load(id string) *domain.Fight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fights[id]
}

func (s *FightStore) store(f *domain.Fight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fights[f.ID] = f
}

// CreateFight inserts a new fight record
func (s *FightStore) CreateFight(ctx context.Context, fight *domain.Fight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.fights[fight.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFightID, fight.ID)
	}
	s.fights[fight.ID] = fight.Clone()
	return nil
}

// GetFight retrieves a fight by ID
func (s *FightStore) GetFight(ctx context.Context, id string) (*domain.Fight, error) {
	return s.load(id).Clone(), nil
}

// UpdateFightIfMatches writes the fight only if its stored version is expectedVersion
func (s *FightStore) UpdateFightIfMatches(ctx context.Context, fight *domain.Fight, expectedVersion int64) (bool, error) {
	unlock := s.locks.Lock(fight.ID)
	defer unlock()

	current := s.load(fight.ID)
	if current == nil || current.Version != expectedVersion {
		return false, nil
	}

	next := fight.Clone()
	next.SecureID = current.SecureID
	next.CreatedAt = current.CreatedAt
	next.Version = expectedVersion + 1
	s.store(next)
	return true, nil
}

// IncrementBet atomically adds to a side's total while betting is open
func (s *FightStore) IncrementBet(ctx context.Context, id string, side domain.Side, amount int64, at int64) (*domain.Fight, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	current := s.load(id)
	if current == nil {
		return nil, nil
	}
	if current.Status != domain.FightStatusBettingOpen {
		return nil, domain.ErrBettingClosed
	}

	next := current.Clone()
	if side == domain.SidePlayer2 {
		next.Bets.Player2 += amount
	} else {
		next.Bets.Player1 += amount
	}
	next.Timestamp = at
	next.Version++
	s.store(next)
	return next.Clone(), nil
}

func (s *FightStore) sorted() []*domain.Fight {
	s.mu.RLock()
	fights := make([]*domain.Fight, 0, len(s.fights))
	for _, f := range s.fights {
		fights = append(fights, f)
	}
	s.mu.RUnlock()

	sort.Slice(fights, func(i, j int) bool {
		if fights[i].CreatedAt == fights[j].CreatedAt {
			return fights[i].ID > fights[j].ID
		}
		return fights[i].CreatedAt > fights[j].CreatedAt
	})
	return fights
}

// GetActiveFight returns the newest fight that is open for betting or running
func (s *FightStore) GetActiveFight(ctx context.Context) (*domain.Fight, error) {
	for _, f := range s.sorted() {
		if f.Status.IsActive() {
			return f.Clone(), nil
		}
	}
	return nil, nil
}

// ListFights returns up to limit fights, newest first
func (s *FightStore) ListFights(ctx context.Context, limit int) ([]*domain.Fight, error) {
	fights := s.sorted()
	if limit > 0 && len(fights) > limit {
		fights = fights[:limit]
	}
	out := make([]*domain.Fight, len(fights))
	for i, f := range fights {
		out[i] = f.Clone()
	}
	return out, nil
}

// CheckHealth always succeeds
func (s *FightStore) CheckHealth(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *FightStore) Close() error {
	return nil
}
