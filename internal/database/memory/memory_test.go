package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/repository"
)

var _ repository.Fights = (*FightStore)(nil)

func newFight(id string, createdAt int64) *domain.Fight {
	return &domain.Fight{
		ID:           id,
		SecureID:     "1",
		Status:       domain.FightStatusBettingOpen,
		Timestamp:    createdAt,
		CreatedAt:    createdAt,
		CurrentState: domain.DefaultState(createdAt),
		Version:      1,
	}
}

func TestFightStore_ClonesOnReadAndWrite(t *testing.T) {
	store := NewFightStore()
	ctx := context.Background()

	f := newFight("f1", 1)
	require.NoError(t, store.CreateFight(ctx, f))
	f.Bets.Player1 = 999

	got, err := store.GetFight(ctx, "f1")
	require.NoError(t, err)
	assert.Zero(t, got.Bets.Player1, "Caller mutation must not reach the store")

	got.CurrentState.Round = 5
	again, _ := store.GetFight(ctx, "f1")
	assert.Equal(t, 0, again.CurrentState.Round)

	assert.ErrorIs(t, store.CreateFight(ctx, newFight("f1", 2)), ErrDuplicateFightID)
}

func TestFightStore_PutIfMatchLinearizes(t *testing.T) {
	store := NewFightStore()
	ctx := context.Background()
	require.NoError(t, store.CreateFight(ctx, newFight("f1", 1)))

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := newFight("f1", 1)
			next.Status = domain.FightStatusInProgress
			ok, err := store.UpdateFightIfMatches(ctx, next, 1)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "Exactly one writer may win a version")
	got, _ := store.GetFight(ctx, "f1")
	assert.Equal(t, int64(2), got.Version)
}

func TestFightStore_IncrementBet(t *testing.T) {
	store := NewFightStore()
	ctx := context.Background()
	require.NoError(t, store.CreateFight(ctx, newFight("f1", 1)))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.IncrementBet(ctx, "f1", domain.SidePlayer2, 1, 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, _ := store.GetFight(ctx, "f1")
	assert.Equal(t, int64(100), got.Bets.Player2)

	got.Status = domain.FightStatusFailed
	ok, err := store.UpdateFightIfMatches(ctx, got, got.Version)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = store.IncrementBet(ctx, "f1", domain.SidePlayer2, 1, 10)
	assert.ErrorIs(t, err, domain.ErrBettingClosed)

	missing, err := store.IncrementBet(ctx, "nope", domain.SidePlayer2, 1, 10)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFightStore_ActiveAndList(t *testing.T) {
	store := NewFightStore()
	ctx := context.Background()

	active, err := store.GetActiveFight(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	failed := newFight("a", 30)
	failed.Status = domain.FightStatusFailed
	require.NoError(t, store.CreateFight(ctx, failed))
	require.NoError(t, store.CreateFight(ctx, newFight("b", 20)))
	require.NoError(t, store.CreateFight(ctx, newFight("c", 10)))

	active, err = store.GetActiveFight(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", active.ID)

	all, err := store.ListFights(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
}
