package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// Process is a running match process
type Process interface {
	// Stdout streams the process output. It reaches EOF when the process closes it.
	Stdout() io.Reader
	// Wait blocks until the process exits. It must only be called after Stdout hit EOF.
	Wait() error
	// Kill stops the process with everything it spawned and ends the Stdout stream,
	// even when a descendant still holds the write end.
	Kill() error
}

// Launcher spawns match processes
type Launcher interface {
	Launch(ctx context.Context, fightID, secureID string) (Process, error)
}

// ExecLauncher runs the match as an OS process described by a launch profile
type ExecLauncher struct {
	profile *config.ProcessProfile
	hostURL string
}

// NewExecLauncher creates a launcher for profile. hostURL is exported to the process
// as HOST_URL so it can report back over HTTP.
func NewExecLauncher(profile *config.ProcessProfile, hostURL string) *ExecLauncher {
	return &ExecLauncher{profile: profile, hostURL: hostURL}
}

// Launch starts the process. The process is not bound to ctx; use Kill to stop it.
func (l *ExecLauncher) Launch(ctx context.Context, fightID, secureID string) (Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(l.profile.Executable, l.profile.Args(fightID, secureID)...)
	cmd.Dir = l.profile.WorkDir
	cmd.Env = append(os.Environ(), l.profile.Environ(l.hostURL)...)
	cmd.Stderr = &stderrLogger{fightID: fightID}
	setProcessGroup(cmd)
	cmd.WaitDelay = pipeWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd, stdout: stdout}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (p *execProcess) Stdout() io.Reader { return p.stdout }

func (p *execProcess) Wait() error { return p.cmd.Wait() }

func (p *execProcess) Kill() error {
	err := killProcessGroup(p.cmd)
	if errors.Is(err, os.ErrProcessDone) {
		err = nil
	}
	// unblocks the reader; Wait tolerates the pipe being closed already
	if cerr := p.stdout.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}

// stderrLogger forwards process stderr to the debug log line by line
type stderrLogger struct {
	fightID string
	partial []byte
}

func (w *stderrLogger) Write(p []byte) (int, error) {
	w.partial = append(w.partial, p...)
	for {
		i := bytes.IndexByte(w.partial, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(w.partial[:i]), "\r")
		w.partial = w.partial[i+1:]
		if line != "" {
			logger.Debug(LogMsgStderr, logger.AttrKeyFightID, w.fightID, "line", line)
		}
	}
	return len(p), nil
}
