package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/process"
)

// BettingWindowWorker closes betting automatically: each new fight is started
// once its betting window has elapsed since creation.
type BettingWindowWorker struct {
	BaseWorker
	registry   fight.Service
	controller process.Controller
	pool       *Pool
	window     time.Duration
}

// NewBettingWindowWorker creates a worker that starts fights window after creation
func NewBettingWindowWorker(registry fight.Service, controller process.Controller, pool *Pool, window time.Duration) *BettingWindowWorker {
	w := &BettingWindowWorker{
		registry:   registry,
		controller: controller,
		pool:       pool,
		window:     window,
	}
	w.init()
	return w
}

// Start schedules the fight that is already open for betting, if any
func (w *BettingWindowWorker) Start(ctx context.Context) {
	log := logger.FromContext(ctx)

	active, err := w.registry.GetActiveFight(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		log.Error(LogMsgFailedToCheckActiveFightOnStartup, "error", err)
		return
	}
	if active.Status == domain.FightStatusBettingOpen {
		w.schedule(active.ID, active.CreatedAt)
	}
}

// Subscribe subscribes the worker to fight creation and terminal events
func (w *BettingWindowWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.FightCreated, w.handleFightCreated)
	bus.Subscribe(event.FightStarted, w.handleFightLeftBetting)
	bus.Subscribe(event.FightFailed, w.handleFightLeftBetting)
}

func (w *BettingWindowWorker) handleFightCreated(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.FightEventPayload](e.Payload)
	if err != nil {
		return err
	}
	w.schedule(p.FightID, p.CreatedAt)
	return nil
}

// handleFightLeftBetting drops the pending start of a fight that was started or failed by hand
func (w *BettingWindowWorker) handleFightLeftBetting(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.FightEventPayload](e.Payload)
	if err != nil {
		return err
	}
	w.stopTimer(p.FightID)
	return nil
}

func (w *BettingWindowWorker) schedule(fightID string, createdAt int64) {
	delay := time.Until(time.UnixMilli(createdAt).Add(w.window))
	if delay < 0 {
		delay = 0
	}
	logger.Info(LogMsgSchedulingFightStart, logger.AttrKeyFightID, fightID, "delay", delay)

	w.scheduleTimer(fightID, delay, func() { w.enqueueStart(fightID) })
}

func (w *BettingWindowWorker) enqueueStart(fightID string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	ok := w.pool.Enqueue(JobFunc(func(ctx context.Context) error {
		defer w.wg.Done()
		return w.startFight(ctx, fightID)
	}))
	if !ok {
		w.wg.Done()
		logger.Warn(LogMsgPoolRejectedJob, logger.AttrKeyFightID, fightID)
	}
}

func (w *BettingWindowWorker) startFight(ctx context.Context, fightID string) error {
	log := logger.FromContext(ctx)

	f, err := w.registry.GetFight(ctx, fightID)
	if err != nil {
		return err
	}
	if f.Status != domain.FightStatusBettingOpen {
		log.Info(LogMsgFightAlreadyStarted, logger.AttrKeyFightID, fightID, "status", f.Status)
		return nil
	}

	log.Info(LogMsgBettingWindowClosed, logger.AttrKeyFightID, fightID)
	_, err = w.controller.StartFight(ctx, f.ID, f.SecureID)
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		log.Info(LogMsgFightAlreadyStarted, logger.AttrKeyFightID, fightID)
		return nil
	case err != nil:
		log.Error(LogMsgFailedToStartFight, logger.AttrKeyFightID, fightID, "error", err)
		return err
	}
	return nil
}

// Pending returns the number of fights waiting for their window to close
func (w *BettingWindowWorker) Pending() int {
	return w.pending()
}

// Shutdown cancels pending starts and waits for in-flight ones
func (w *BettingWindowWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, BettingWindowWorkerName)
}
