package process

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/database/memory"
	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/fight"
)

func TestExecLauncher_PassesFightArguments(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	profile := config.DefaultProcessProfile()
	profile.Executable = "echo"
	profile.Script = ""

	l := NewExecLauncher(profile, "http://localhost:8080")
	proc, err := l.Launch(context.Background(), "fight-1", "4242")
	require.NoError(t, err)

	out, err := io.ReadAll(proc.Stdout())
	require.NoError(t, err)
	require.NoError(t, proc.Wait())

	assert.Contains(t, string(out), "--env MortalKombatII-Genesis")
	assert.Contains(t, string(out), "--fight_id fight-1 --secure_id 4242")
}

func TestExecLauncher_MissingExecutable(t *testing.T) {
	profile := config.DefaultProcessProfile()
	profile.Executable = "/nonexistent/fight-runner"

	l := NewExecLauncher(profile, "http://localhost:8080")
	_, err := l.Launch(context.Background(), "fight-1", "4242")
	assert.Error(t, err)
}

func TestExecLauncher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewExecLauncher(config.DefaultProcessProfile(), "")
	_, err := l.Launch(ctx, "fight-1", "4242")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStderrLogger_SplitsLines(t *testing.T) {
	w := &stderrLogger{fightID: "f"}
	n, err := w.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "sec", string(w.partial))

	_, err = w.Write([]byte("ond\n"))
	require.NoError(t, err)
	assert.Empty(t, w.partial)
}

// writeRunner writes a shell script used as the match script; sh ignores the fight flags
func writeRunner(t *testing.T, body string) *config.ProcessProfile {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "runner.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	profile := config.DefaultProcessProfile()
	profile.Executable = "sh"
	profile.Script = path
	return profile
}

func TestExecLauncher_TimeoutKillsDescendantsHoldingStdout(t *testing.T) {
	profile := writeRunner(t, "sleep 30 &\nsleep 30")

	registry := fight.NewService(memory.NewFightStore(), nil, 0, 0)
	ctrl := NewController(registry, NewExecLauncher(profile, ""), testStreamBase, 100*time.Millisecond)
	ctx := context.Background()

	f, err := registry.CreateFight(ctx)
	require.NoError(t, err)
	_, err = ctrl.StartFight(ctx, f.ID, f.SecureID)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return ctrl.Running() == 0 }, 5*time.Second, 10*time.Millisecond)

	got, err := registry.GetFight(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FightStatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, domain.FailureReasonTimeout, *got.FailureReason)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.NoError(t, ctrl.Shutdown(shutdownCtx))
}

func TestExecLauncher_ShutdownKillsDescendants(t *testing.T) {
	profile := writeRunner(t, "echo 'Round: 1, P1 Health: 120, P2 Health: 100'\nsleep 30 &\nsleep 30")

	registry := fight.NewService(memory.NewFightStore(), nil, 0, 0)
	ctrl := NewController(registry, NewExecLauncher(profile, ""), testStreamBase, time.Minute)
	ctx := context.Background()

	f, err := registry.CreateFight(ctx)
	require.NoError(t, err)
	_, err = ctrl.StartFight(ctx, f.ID, f.SecureID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := registry.GetFight(ctx, f.ID)
		return err == nil && got.CurrentState != nil && got.CurrentState.Round == 1
	}, 5*time.Second, 10*time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, ctrl.Shutdown(shutdownCtx))
	assert.Equal(t, 0, ctrl.Running())
}
