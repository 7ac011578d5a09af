package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitCodeError) ExitCode() int { return e.code }

var errKilled = errors.New("signal: killed")

// fakeProcess is a match process driven by the test through emit and exit
type fakeProcess struct {
	r      *io.PipeReader
	w      *io.PipeWriter
	exitCh chan error
	once   sync.Once
	killed atomic.Bool
}

func newFakeProcess() *fakeProcess {
	r, w := io.Pipe()
	return &fakeProcess{r: r, w: w, exitCh: make(chan error, 1)}
}

func (p *fakeProcess) Stdout() io.Reader { return p.r }

func (p *fakeProcess) Wait() error { return <-p.exitCh }

func (p *fakeProcess) Kill() error {
	p.killed.Store(true)
	p.exit(errKilled)
	return nil
}

func (p *fakeProcess) emit(line string) {
	_, _ = fmt.Fprintln(p.w, line)
}

func (p *fakeProcess) exit(err error) {
	p.once.Do(func() {
		_ = p.w.Close()
		p.exitCh <- err
	})
}

type fakeLauncher struct {
	mu       sync.Mutex
	err      error
	launches int
	procs    map[string]*fakeProcess
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{procs: make(map[string]*fakeProcess)}
}

func (l *fakeLauncher) Launch(_ context.Context, fightID, _ string) (Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launches++
	if l.err != nil {
		return nil, l.err
	}
	p := newFakeProcess()
	l.procs[fightID] = p
	return p, nil
}

func (l *fakeLauncher) proc(fightID string) *fakeProcess {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.procs[fightID]
}

func (l *fakeLauncher) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}
