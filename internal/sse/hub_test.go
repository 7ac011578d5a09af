package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil, "")
	onlyDone := hub.Register([]string{string(event.FightCompleted)}, "")
	waitClients(t, hub, 2)

	hub.Broadcast(string(event.FightBetPlaced), "f1", map[string]int{"amount": 5})
	hub.Broadcast(string(event.FightCompleted), "f1", map[string]string{"winner": "player1"})

	assert.Equal(t, string(event.FightBetPlaced), receive(t, all).Type)
	assert.Equal(t, string(event.FightCompleted), receive(t, all).Type)

	got := receive(t, onlyDone)
	assert.Equal(t, string(event.FightCompleted), got.Type)
	assert.NotEmpty(t, got.ID)
	assert.Greater(t, got.Timestamp, int64(0))
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)

	c := hub.Register(nil, "")
	waitClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "fight.created", Timestamp: 1, Payload: map[string]string{"fight_id": "f1"}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: fight.created\ndata: "))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"fight_id":"f1"`)
}

func TestSubscriber_ForwardsFightEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil, "")
	waitClients(t, hub, 1)

	f := &domain.Fight{ID: "f1", SecureID: "secret", Status: domain.FightStatusCompleted}
	require.NoError(t, bus.Publish(context.Background(), event.NewStatusEvent(f)))

	got := receive(t, c)
	assert.Equal(t, string(event.FightCompleted), got.Type)
	assert.Equal(t, "f1", got.FightID)

	data, err := json.Marshal(got.Payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"fight_id":"f1"`)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=fight.started&fight_id=f1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var eventType string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				eventType = strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
			if line == "\n" {
				return eventType
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEvent())
	waitClients(t, hub, 1)

	hub.Broadcast("fight.bet_placed", "f1", nil)
	hub.Broadcast("fight.started", "f2", map[string]string{"fight_id": "f2"})
	hub.Broadcast("fight.started", "f1", map[string]string{"fight_id": "f1"})
	assert.Equal(t, "fight.started", readEvent())
}

func TestHub_FightScopedClient(t *testing.T) {
	hub := startHub(t)

	one := hub.Register(nil, "f1")
	waitClients(t, hub, 1)

	hub.Broadcast(string(event.FightBetPlaced), "f2", nil)
	hub.Broadcast(string(event.FightBetPlaced), "f1", nil)

	got := receive(t, one)
	assert.Equal(t, "f1", got.FightID)
	select {
	case e := <-one.EventChannel:
		t.Fatalf("unexpected event for %s", e.FightID)
	case <-time.After(50 * time.Millisecond):
	}
}
