package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/FightBet_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage
// one timer per fight
type BaseWorker struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
}

func (w *BaseWorker) stopTimer(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[id]; ok {
		timer.Stop()
		delete(w.timers, id)
	}
}

// scheduleTimer runs fn after delay, replacing any timer pending for id.
// Nothing is scheduled once the worker is shutting down.
func (w *BaseWorker) scheduleTimer(id string, delay time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	if existing, ok := w.timers[id]; ok {
		existing.Stop()
	}
	w.timers[id] = time.AfterFunc(delay, func() {
		w.removeTimer(id)
		fn()
	})
	return true
}

func (w *BaseWorker) removeTimer(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	w.closed = true
	for id, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", logger.AttrKeyFightID, id)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
