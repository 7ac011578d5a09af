package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/domain"
)

// flakyBus records every publish and fails the ones shouldFail picks
type flakyBus struct {
	mu         sync.Mutex
	calls      []Event
	at         []time.Time
	shouldFail func(call int) bool
	delay      time.Duration
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	b.at = append(b.at, time.Now())
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.shouldFail != nil && b.shouldFail(n) {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *flakyBus) times() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.at...)
}

func testFightEvent(id string) Event {
	return NewFightEvent(FightCreated, &domain.Fight{
		ID:     id,
		Status: domain.FightStatusBettingOpen,
	})
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, err := ReadDeadLetters(path, "")
	require.NoError(t, err)
	return entries
}

func TestResilientPublisher_PublishesImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), testFightEvent("f-1")))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.count())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{shouldFail: func(call int) bool { return call == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testFightEvent("f-2"))

	require.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testFightEvent("f-3"))

	// initial attempt plus three retries
	require.Eventually(t, func() bool { return bus.count() >= 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, FightCreated, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Contains(t, entries[0].LastError, "bus unavailable")
}

func TestResilientPublisher_QueueOverflowGoesToDeadLetter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{shouldFail: func(int) bool { return true }, delay: 20 * time.Millisecond}

	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()

	for i := 0; i < 6; i++ {
		rp.PublishWithRetry(context.Background(), testFightEvent("overflow"))
	}

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.NotEmpty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{shouldFail: func(call int) bool { return call < 3 }}
	base := 50 * time.Millisecond

	rp, err := NewResilientPublisher(bus, 5, base, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testFightEvent("f-4"))
	require.Eventually(t, func() bool { return bus.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	at := bus.times()
	assert.GreaterOrEqual(t, at[1].Sub(at[0]), base)
	assert.GreaterOrEqual(t, at[2].Sub(at[1]), 2*base)
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{shouldFail: func(call int) bool { return call <= 3 }}

	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		rp.PublishWithRetry(context.Background(), testFightEvent(id))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// three failed publishes plus one drain attempt each
	assert.Equal(t, 6, bus.count())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				rp.PublishWithRetry(context.Background(), NewBetPlacedEvent("f-5", domain.SidePlayer1, 1, domain.Bets{}))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 50, bus.count())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, CalculateRetryDelay(time.Second, 0))
	assert.Equal(t, time.Second, CalculateRetryDelay(time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(time.Second, 4))
}
