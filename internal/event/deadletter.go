package event

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/FightBet_Go/internal/logger"
)

// DeadLetterWriter appends fight events that could not be delivered to a JSONL file.
// Each line is one DeadLetterEntry, so the file can be read back with ReadDeadLetters.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// DeadLetterEntry is one undeliverable fight event. FightID and Type are lifted out
// of the event so operators can filter the file without decoding payloads.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	DeadAt        time.Time `json:"dead_at"`
	FightID       string    `json:"fight_id,omitempty"`
	Type          Type      `json:"type"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
	Event         Event     `json:"event"`
}

// NewDeadLetterWriter opens path for appending, creating its directory when needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DeadLetterDirPermissions); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

// Write records evt after attempts failed deliveries
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		FightID:       evt.FightID(),
		Type:          evt.Type,
		Attempts:      attempts,
		Event:         evt,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entry.DeadAt = w.now().UTC()
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeDeadLetter, err)
	}
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return err
	}

	logger.Warn(LogMsgEventDeadLettered,
		logger.AttrKeyFightID, entry.FightID,
		"event_type", entry.Type,
		"attempts", attempts,
		"error", entry.LastError)
	return nil
}

// Close closes the dead-letter file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters returns the entries in path, oldest first. A non-empty fightID keeps
// only that fight's events. A missing file has no entries.
func ReadDeadLetters(path, fightID string) ([]DeadLetterEntry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []DeadLetterEntry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxDeadLetterLine)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("%s %d: %w", ErrMsgDecodeDeadLetter, line, err)
		}
		if fightID != "" && e.FightID != fightID {
			continue
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}
