package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/database/generated"
	"github.com/osse101/FightBet_Go/internal/domain"
)

func TestMapFight(t *testing.T) {
	winner := "player1"
	url := "https://stream.example/hls/f/output"

	t.Run("full row", func(t *testing.T) {
		f, err := mapFight(generated.Fight{
			FightID:      "f",
			SecureID:     "7",
			Status:       "completed",
			TimestampMs:  2000,
			CreatedAtMs:  1000,
			BetsPlayer1:  40,
			BetsPlayer2:  15,
			CurrentState: []byte(`{"round":3,"p1_health":20,"p2_health":0,"timestamp":1900}`),
			StreamUrl:    &url,
			Winner:       &winner,
			Version:      4,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.FightStatusCompleted, f.Status)
		assert.Equal(t, domain.Bets{Player1: 40, Player2: 15}, f.Bets)
		require.NotNil(t, f.Winner)
		assert.Equal(t, domain.SidePlayer1, *f.Winner)
		assert.Equal(t, 3, f.CurrentState.Round)
		assert.Equal(t, url, *f.StreamURL)
		assert.Equal(t, int64(4), f.Version)
	})

	t.Run("null columns stay nil", func(t *testing.T) {
		f, err := mapFight(generated.Fight{FightID: "f", Status: "betting_open", Version: 1})
		require.NoError(t, err)
		assert.Nil(t, f.CurrentState)
		assert.Nil(t, f.Winner)
		assert.Nil(t, f.StreamURL)
	})

	t.Run("corrupt state", func(t *testing.T) {
		_, err := mapFight(generated.Fight{FightID: "f", CurrentState: []byte("{")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedToDecodeState)
	})
}

func TestEncodeState(t *testing.T) {
	data, err := encodeState(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = encodeState(&domain.CurrentState{Round: 2, P1Health: 10, P2Health: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"round":2,"p1_health":10,"p2_health":5,"timestamp":0}`, string(data))

	assert.Nil(t, winnerText(nil))
	w := domain.SidePlayer2
	assert.Equal(t, "player2", *winnerText(&w))
}
