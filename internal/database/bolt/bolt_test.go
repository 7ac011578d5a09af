package bolt

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/domain"
)

func newStore(t *testing.T) *FightStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "fights.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newFight(id string, createdAt int64) *domain.Fight {
	return &domain.Fight{
		ID:           id,
		SecureID:     "99",
		Status:       domain.FightStatusBettingOpen,
		Timestamp:    createdAt,
		CreatedAt:    createdAt,
		CurrentState: domain.DefaultState(createdAt),
		Version:      1,
	}
}

func TestFightStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	f := newFight("f1", 1000)
	require.NoError(t, store.CreateFight(ctx, f))
	assert.ErrorIs(t, store.CreateFight(ctx, f), ErrDuplicateFightID)

	got, err := store.GetFight(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, f, got, "Secure id and version must survive encoding")

	missing, err := store.GetFight(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFightStore_UpdateFightIfMatches(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateFight(ctx, newFight("f1", 1000)))

	f, err := store.GetFight(ctx, "f1")
	require.NoError(t, err)
	reason := "exit status 1"
	f.Status = domain.FightStatusFailed
	f.FailureReason = &reason

	ok, err := store.UpdateFightIfMatches(ctx, f, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.UpdateFightIfMatches(ctx, f, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.UpdateFightIfMatches(ctx, newFight("ghost", 1), 1)
	require.NoError(t, err)
	assert.False(t, ok, "Missing fight never matches")

	got, err := store.GetFight(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, domain.FightStatusFailed, got.Status)
	assert.Equal(t, reason, *got.FailureReason)
	assert.Equal(t, int64(2), got.Version)
}

func TestFightStore_IncrementBet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateFight(ctx, newFight("f1", 1000)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			side := domain.SidePlayer1
			if i%4 == 0 {
				side = domain.SidePlayer2
			}
			_, err := store.IncrementBet(ctx, "f1", side, 3, 2000)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.GetFight(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(45), got.Bets.Player1)
	assert.Equal(t, int64(15), got.Bets.Player2)
	assert.Equal(t, int64(21), got.Version)

	got.Status = domain.FightStatusInProgress
	ok, err := store.UpdateFightIfMatches(ctx, got, got.Version)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = store.IncrementBet(ctx, "f1", domain.SidePlayer1, 3, 3000)
	assert.ErrorIs(t, err, domain.ErrBettingClosed)

	missing, err := store.IncrementBet(ctx, "nope", domain.SidePlayer1, 3, 3000)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFightStore_ActiveAndList(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	done := newFight("done", 3000)
	done.Status = domain.FightStatusCompleted
	require.NoError(t, store.CreateFight(ctx, done))
	require.NoError(t, store.CreateFight(ctx, newFight("open", 2000)))
	require.NoError(t, store.CreateFight(ctx, newFight("older", 1000)))

	active, err := store.GetActiveFight(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "open", active.ID)

	fights, err := store.ListFights(ctx, 2)
	require.NoError(t, err)
	require.Len(t, fights, 2)
	assert.Equal(t, "done", fights[0].ID)
	assert.Equal(t, "open", fights[1].ID)

	assert.NoError(t, store.CheckHealth(ctx))
}
