package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/database/memory"
	"github.com/osse101/FightBet_Go/internal/domain"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:                     0,
		APIKey:                   "k",
		LogDir:                   filepath.Join(dir, "logs"),
		StoreBackend:             backend,
		SQLitePath:               filepath.Join(dir, "data", "fights.db"),
		BoltPath:                 filepath.Join(dir, "data", "fights.bolt"),
		CacheSize:                8,
		CacheTTL:                 time.Minute,
		StreamBaseURL:            "https://stream.example/hls",
		ProcessProfilePath:       filepath.Join(dir, "missing.yaml"),
		ProcessInactivityTimeout: time.Minute,
		BetRateLimit:             100,
		BetRateBurst:             100,
		EventMaxRetries:          1,
		EventRetryDelay:          10 * time.Millisecond,
		EventDeadLetterPath:      filepath.Join(dir, "logs", "deadletter.jsonl"),
		WorkerPoolSize:           1,
	}
}

func TestOpenStore(t *testing.T) {
	for _, backend := range []string{config.StoreBackendMemory, config.StoreBackendSQLite, config.StoreBackendBolt} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			store, err := OpenStore(ctx, testConfig(t, backend), true)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.CheckHealth(ctx))
			f := &domain.Fight{ID: "f-" + backend, SecureID: "1", Status: domain.FightStatusBettingOpen, Version: 1}
			require.NoError(t, store.CreateFight(ctx, f))

			got, err := store.GetFight(ctx, f.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, domain.FightStatusBettingOpen, got.Status)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := OpenStore(context.Background(), testConfig(t, "mongo"), false)
		assert.ErrorContains(t, err, ErrMsgUnknownStoreBackend)
	})
}

func TestResolveApp(t *testing.T) {
	cfg := testConfig(t, config.StoreBackendMemory)
	app, err := ResolveApp(NewContainer(context.Background(), cfg))
	require.NoError(t, err)

	assert.Same(t, cfg, app.Config)
	assert.IsType(t, &memory.FightStore{}, app.Store)
	assert.NotNil(t, app.Server)

	subs, err := RegisterEventHandlers(app)
	require.NoError(t, err)
	assert.Nil(t, subs.BettingWindow)
	assert.Nil(t, subs.DiscordSession)

	app.Hub.Start()
	app.Pool.Start()

	req := httptest.NewRequest("POST", "/api/v1/fights", nil)
	req.Header.Set("X-API-Key", cfg.APIKey)
	rec := httptest.NewRecorder()
	app.Server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	active, err := app.Fights.GetActiveFight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FightStatusBettingOpen, active.Status)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	GracefulShutdown(ctx, app, subs)
}

func TestResolveApp_BettingWindowEnabled(t *testing.T) {
	cfg := testConfig(t, config.StoreBackendMemory)
	cfg.BettingWindow = time.Hour

	app, err := ResolveApp(NewContainer(context.Background(), cfg))
	require.NoError(t, err)

	subs, err := RegisterEventHandlers(app)
	require.NoError(t, err)
	require.NotNil(t, subs.BettingWindow)

	_, err = app.Fights.CreateFight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, subs.BettingWindow.Pending())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	GracefulShutdown(ctx, app, subs)
	assert.Equal(t, 0, subs.BettingWindow.Pending())
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadletter.jsonl"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2024-01-01_00-00-00")))
	assert.True(t, os.IsNotExist(err), "oldest log removed")
	_, err = os.Stat(filepath.Join(dir, "deadletter.jsonl"))
	assert.NoError(t, err)
}
