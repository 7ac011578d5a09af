package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// StartResult is returned by a successful StartFight
type StartResult struct {
	Fight     *domain.Fight `json:"fight"`
	StreamURL string        `json:"stream_url"`
}

// Controller launches and supervises match processes
type Controller interface {
	StartFight(ctx context.Context, fightID, secureID string) (*StartResult, error)
	Running() int
	Shutdown(ctx context.Context) error
}

type controller struct {
	registry      fight.Service
	launcher      Launcher
	streamBaseURL string
	inactivity    time.Duration

	mu      sync.Mutex
	running map[string]Process
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewController creates a process controller. inactivity is how long a process may
// stay silent on stdout before it is killed.
func NewController(registry fight.Service, launcher Launcher, streamBaseURL string, inactivity time.Duration) Controller {
	if inactivity <= 0 {
		inactivity = DefaultInactivityTimeout
	}
	return &controller{
		registry:      registry,
		launcher:      launcher,
		streamBaseURL: strings.TrimRight(streamBaseURL, "/"),
		inactivity:    inactivity,
		running:       make(map[string]Process),
		done:          make(chan struct{}),
	}
}

// StreamURL returns the deterministic HLS location for a fight
func StreamURL(base, fightID string) string {
	return strings.TrimRight(base, "/") + "/" + fightID + "/output"
}

// StartFight closes betting and spawns the match. The betting_open -> in_progress
// write is a compare-and-swap, so of several concurrent callers only one launches.
func (c *controller) StartFight(ctx context.Context, fightID, secureID string) (*StartResult, error) {
	log := logger.FromContext(ctx)

	if c.isClosed() {
		return nil, fmt.Errorf("%w: %s", domain.ErrLaunch, ErrMsgControllerShutdown)
	}

	streamURL := StreamURL(c.streamBaseURL, fightID)
	f, err := c.registry.UpdateStatus(ctx, fightID, secureID, domain.FightStatusInProgress,
		domain.FightPatch{StreamURL: &streamURL})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToStart, err)
	}

	log.Info(LogMsgFightStarting, logger.AttrKeyFightID, fightID, "stream_url", streamURL)

	// the process outlives the request
	procCtx := context.WithoutCancel(ctx)

	proc, err := c.launcher.Launch(procCtx, fightID, secureID)
	if err != nil {
		log.Error(LogMsgLaunchFailed, logger.AttrKeyFightID, fightID, "error", err)
		c.failLaunch(procCtx, f)
		return nil, fmt.Errorf("%w: %v", domain.ErrLaunch, err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.kill(procCtx, fightID, proc)
		_ = proc.Wait()
		c.failLaunch(procCtx, f)
		return nil, fmt.Errorf("%w: %s", domain.ErrLaunch, ErrMsgControllerShutdown)
	}
	c.running[fightID] = proc
	c.wg.Add(2)
	c.mu.Unlock()

	lines := make(chan *domain.CurrentState, stateLineBuffer)
	go c.readOutput(procCtx, fightID, proc.Stdout(), lines)
	go c.supervise(procCtx, f, proc, lines)

	log.Info(LogMsgFightLaunched, logger.AttrKeyFightID, fightID)
	return &StartResult{Fight: f, StreamURL: streamURL}, nil
}

// Running returns the number of supervised processes
func (c *controller) Running() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.running)
}

// Shutdown kills every running process and waits for the supervisors to record the exits
func (c *controller) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.done)
	}
	n := len(c.running)
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgShuttingDown, "running", n)

	finished := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *controller) forget(fightID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, fightID)
}

// readOutput parses stdout line by line. A nil entry on lines marks output that
// carried no snapshot; it still counts as activity.
func (c *controller) readOutput(ctx context.Context, fightID string, r io.Reader, lines chan<- *domain.CurrentState) {
	defer c.wg.Done()
	defer close(lines)
	log := logger.FromContext(ctx)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		state, ok := ParseStateLine(line)
		if !ok {
			log.Debug(LogMsgLineIgnored, logger.AttrKeyFightID, fightID, "line", line)
			lines <- nil
			continue
		}
		lines <- &state
	}
	if err := sc.Err(); err != nil {
		log.Debug(LogMsgLineIgnored, logger.AttrKeyFightID, fightID, "error", err)
		drainOutput(r, lines)
	}
}

// drainOutput keeps the pipe empty after the scanner gave up, so the process never
// blocks on a full buffer. Every chunk still counts as activity.
func drainOutput(r io.Reader, lines chan<- *domain.CurrentState) {
	buf := make([]byte, drainChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			lines <- nil
		}
		if err != nil {
			return
		}
	}
}

// supervise owns one process: it records snapshots in order, enforces the
// inactivity timeout and turns the exit into a terminal fight status.
func (c *controller) supervise(ctx context.Context, f *domain.Fight, proc Process, lines <-chan *domain.CurrentState) {
	defer c.wg.Done()
	defer c.forget(f.ID)
	log := logger.FromContext(ctx)

	timer := time.NewTimer(c.inactivity)
	defer timer.Stop()

	var exited chan error
	done := c.done
	timedOut := false

	for {
		select {
		case state, ok := <-lines:
			if !ok {
				lines = nil
				ch := make(chan error, 1)
				exited = ch
				go func() { ch <- proc.Wait() }()
				continue
			}
			if !timedOut {
				resetTimer(timer, c.inactivity)
			}
			if state == nil {
				continue
			}
			if _, _, err := c.registry.RecordState(ctx, f.ID, f.SecureID, *state); err != nil {
				log.Warn(LogMsgStateRecordFailed, logger.AttrKeyFightID, f.ID, "round", state.Round, "error", err)
			}

		case err := <-exited:
			log.Info(LogMsgProcessExited, logger.AttrKeyFightID, f.ID, "error", err, "timed_out", timedOut)
			if !timedOut {
				c.finish(ctx, f, err)
			}
			return

		case <-timer.C:
			timedOut = true
			log.Warn(LogMsgInactivityTimeout, logger.AttrKeyFightID, f.ID, "timeout", c.inactivity)
			c.kill(ctx, f.ID, proc)
			c.markFailed(ctx, f, domain.FailureReasonTimeout, false)

		case <-done:
			done = nil
			c.kill(ctx, f.ID, proc)
		}
	}
}

// finish records the terminal status for a process exit. A fight that already
// left in_progress is left alone.
func (c *controller) finish(ctx context.Context, f *domain.Fight, waitErr error) {
	log := logger.FromContext(ctx)

	current, err := c.registry.GetFight(ctx, f.ID)
	if err != nil {
		log.Error(LogMsgFinishFailed, logger.AttrKeyFightID, f.ID, "error", err)
		return
	}
	if current.Status != domain.FightStatusInProgress {
		log.Info(LogMsgExitIgnored, logger.AttrKeyFightID, f.ID, "status", current.Status)
		return
	}

	if waitErr != nil {
		c.markFailed(ctx, f, exitReason(waitErr), false)
		return
	}

	var winner *domain.Side
	if current.CurrentState != nil {
		winner = current.CurrentState.Leader()
	}
	_, err = c.registry.UpdateStatus(ctx, f.ID, f.SecureID, domain.FightStatusCompleted, domain.FightPatch{Winner: winner})
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		log.Info(LogMsgExitIgnored, logger.AttrKeyFightID, f.ID)
	case err != nil:
		log.Error(LogMsgFinishFailed, logger.AttrKeyFightID, f.ID, "error", err)
	}
}

func (c *controller) failLaunch(ctx context.Context, f *domain.Fight) {
	c.markFailed(ctx, f, domain.FailureReasonLaunchError, true)
}

func (c *controller) markFailed(ctx context.Context, f *domain.Fight, reason string, clearStream bool) {
	_, err := c.registry.UpdateStatus(ctx, f.ID, f.SecureID, domain.FightStatusFailed, domain.FightPatch{
		ClearStream:   clearStream,
		FailureReason: &reason,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		logger.FromContext(ctx).Info(LogMsgExitIgnored, logger.AttrKeyFightID, f.ID, "reason", reason)
	case err != nil:
		logger.FromContext(ctx).Error(ErrContextFailedToMarkFail, logger.AttrKeyFightID, f.ID, "reason", reason, "error", err)
	}
}

func (c *controller) kill(ctx context.Context, fightID string, proc Process) {
	if err := proc.Kill(); err != nil {
		logger.FromContext(ctx).Warn(LogMsgKillFailed, logger.AttrKeyFightID, fightID, "error", err)
	}
}

// exitReason renders a wait error as "exit status N" when the process reported a code
func exitReason(err error) string {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() >= 0 {
		return fmt.Sprintf("exit status %d", coded.ExitCode())
	}
	return err.Error()
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
