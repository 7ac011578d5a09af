package fight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/repository"
)

// Service defines the interface for fight registry operations
type Service interface {
	CreateFight(ctx context.Context) (*domain.Fight, error)
	GetFight(ctx context.Context, id string) (*domain.Fight, error)
	GetActiveFight(ctx context.Context) (*domain.Fight, error)
	ListFights(ctx context.Context, limit int) ([]*domain.Fight, error)
	UpdateStatus(ctx context.Context, id, secureID string, status domain.FightStatus, patch domain.FightPatch) (*domain.Fight, error)
	RecordState(ctx context.Context, id, secureID string, state domain.CurrentState) (*domain.Fight, bool, error)
}

type service struct {
	repo  repository.Fights
	bus   event.Bus
	cache *terminalCache
	now   func() time.Time
}

// NewService creates a new fight registry. A nil bus disables event publishing.
func NewService(repo repository.Fights, bus event.Bus, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		bus:   bus,
		cache: newTerminalCache(cacheSize, cacheTTL),
		now:   time.Now,
	}
}

// CreateFight registers a new fight in betting_open with zero bets and the default state
func (s *service) CreateFight(ctx context.Context) (*domain.Fight, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	id, err := newFightID()
	if err != nil {
		return nil, err
	}
	secureID, err := newSecureID(now)
	if err != nil {
		return nil, err
	}

	ms := now.UnixMilli()
	f := &domain.Fight{
		ID:           id,
		SecureID:     secureID,
		Status:       domain.FightStatusBettingOpen,
		Timestamp:    ms,
		CreatedAt:    ms,
		CurrentState: domain.DefaultState(ms),
		Version:      1,
	}

	if err := s.repo.CreateFight(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToCreateFight, err)
	}

	log.Info(LogMsgFightCreated, logger.AttrKeyFightID, f.ID)
	s.publish(ctx, event.NewFightEvent(event.FightCreated, f))
	return f.Clone(), nil
}

// GetFight returns the fight or domain.ErrNotFound
func (s *service) GetFight(ctx context.Context, id string) (*domain.Fight, error) {
	if f, ok := s.cache.Get(id); ok {
		return f, nil
	}
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(f)
	return f, nil
}

// GetActiveFight returns the newest betting_open or in_progress fight
func (s *service) GetActiveFight(ctx context.Context) (*domain.Fight, error) {
	f, err := s.repo.GetActiveFight(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToGetFight, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: no active fight", domain.ErrNotFound)
	}
	return f, nil
}

// ListFights returns the most recent fights first
func (s *service) ListFights(ctx context.Context, limit int) ([]*domain.Fight, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	fights, err := s.repo.ListFights(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToListFights, err)
	}
	return fights, nil
}

// UpdateStatus moves a fight through the state machine. The write is a put-if-match
// on the fight version; on conflict the fight is re-read and every check runs again,
// so a late caller sees the status that won.
func (s *service) UpdateStatus(ctx context.Context, id, secureID string, status domain.FightStatus, patch domain.FightPatch) (*domain.Fight, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < MaxUpdateAttempts; attempt++ {
		current, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if !secureIDMatches(current.SecureID, secureID) {
			log.Warn(LogMsgSecureIDMismatch, logger.AttrKeyFightID, id)
			return nil, domain.ErrUnauthorized
		}
		if !domain.CanTransition(current.Status, status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, status)
		}
		if patch.Winner != nil && status != domain.FightStatusCompleted {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTransition, ErrMsgWinnerNotComplete)
		}
		if patch.Winner != nil && !patch.Winner.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSide, *patch.Winner)
		}

		next := applyPatch(current, status, patch, s.now().UnixMilli())

		ok, err := s.repo.UpdateFightIfMatches(ctx, next, current.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToUpdateFight, err)
		}
		if !ok {
			log.Debug(LogMsgVersionConflict, logger.AttrKeyFightID, id, "attempt", attempt+1)
			continue
		}

		next.Version = current.Version + 1
		s.cache.Set(next)
		log.Info(LogMsgStatusUpdated, logger.AttrKeyFightID, id, "from", current.Status, "to", status)
		s.publish(ctx, event.NewStatusEvent(next))
		return next.Clone(), nil
	}

	return nil, fmt.Errorf("%w: %s: %s", domain.ErrStore, ErrContextFailedToUpdateFight, ErrMsgTooManyConflicts)
}

// RecordState stores a snapshot reported by the running match. Snapshots from a lower
// round than the stored one are dropped and reported with applied = false.
func (s *service) RecordState(ctx context.Context, id, secureID string, state domain.CurrentState) (*domain.Fight, bool, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < MaxUpdateAttempts; attempt++ {
		current, err := s.load(ctx, id)
		if err != nil {
			return nil, false, err
		}
		if !secureIDMatches(current.SecureID, secureID) {
			log.Warn(LogMsgSecureIDMismatch, logger.AttrKeyFightID, id)
			return nil, false, domain.ErrUnauthorized
		}
		if current.Status != domain.FightStatusInProgress {
			return nil, false, fmt.Errorf("%w: %s (%s)", domain.ErrInvalidTransition, ErrMsgNotInProgress, current.Status)
		}
		if current.CurrentState != nil && state.Round < current.CurrentState.Round {
			log.Debug(LogMsgStaleStateDropped, logger.AttrKeyFightID, id,
				"round", state.Round, "stored_round", current.CurrentState.Round)
			return current, false, nil
		}

		now := s.now().UnixMilli()
		if state.Timestamp == 0 {
			state.Timestamp = now
		}
		next := current.Clone()
		next.CurrentState = &state
		next.Timestamp = now

		ok, err := s.repo.UpdateFightIfMatches(ctx, next, current.Version)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToUpdateFight, err)
		}
		if !ok {
			continue
		}

		next.Version = current.Version + 1
		log.Debug(LogMsgStateRecorded, logger.AttrKeyFightID, id,
			"round", state.Round, "p1_health", state.P1Health, "p2_health", state.P2Health)
		s.publish(ctx, event.NewFightEvent(event.FightStateUpdated, next))
		return next.Clone(), true, nil
	}

	return nil, false, fmt.Errorf("%w: %s: %s", domain.ErrStore, ErrContextFailedToUpdateFight, ErrMsgTooManyConflicts)
}

// load reads a fight from the store, mapping absence to domain.ErrNotFound
func (s *service) load(ctx context.Context, id string) (*domain.Fight, error) {
	f, err := s.repo.GetFight(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStore, ErrContextFailedToGetFight, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return f, nil
}

func applyPatch(current *domain.Fight, status domain.FightStatus, patch domain.FightPatch, now int64) *domain.Fight {
	next := current.Clone()
	next.Status = status
	next.Timestamp = now

	if patch.CurrentState != nil {
		if next.CurrentState == nil || patch.CurrentState.Round >= next.CurrentState.Round {
			st := *patch.CurrentState
			if st.Timestamp == 0 {
				st.Timestamp = now
			}
			next.CurrentState = &st
		}
	}
	switch {
	case patch.ClearStream:
		next.StreamURL = nil
	case patch.StreamURL != nil:
		u := *patch.StreamURL
		next.StreamURL = &u
	}
	if patch.Winner != nil {
		w := *patch.Winner
		next.Winner = &w
	} else if patch.InferWinner && status == domain.FightStatusCompleted && next.CurrentState != nil {
		next.Winner = next.CurrentState.Leader()
	}
	if patch.FailureReason != nil {
		r := *patch.FailureReason
		next.FailureReason = &r
	}
	return next
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(ctx).Warn(LogMsgFailedToPublishEvent, "type", evt.Type, "error", err)
	}
}
