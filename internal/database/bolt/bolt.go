// Package bolt stores fights as JSON documents in a bbolt bucket.
package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/osse101/FightBet_Go/internal/domain"
)

const (
	FightsBucket = "fights"

	openTimeout = 1 * time.Second
)

var (
	ErrFightsBucketNotFound = errors.New("fights bucket doesn't exist")
	ErrDuplicateFightID     = errors.New("fight id already exists")

	errVersionMismatch = errors.New("version mismatch")
)

// FightStore implements repository.Fights on an embedded bbolt file.
// bbolt allows one writer at a time, so every read-modify-write runs in db.Update.
type FightStore struct {
	db *bolt.DB
}

// Open opens (or creates) the bolt file and its bucket
func Open(path string) (*FightStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database path: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(FightsBucket))
		if err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", FightsBucket, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database buckets: %w", err)
	}

	return &FightStore{db: db}, nil
}

func bucket(tx *bolt.Tx) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(FightsBucket))
	if b == nil {
		return nil, ErrFightsBucketNotFound
	}
	return b, nil
}

func get(b *bolt.Bucket, id string) (*domain.Fight, error) {
	data := b.Get([]byte(id))
	if data == nil {
		return nil, nil
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode fight %s: %w", id, err)
	}
	return rec.fight(), nil
}

func put(b *bolt.Bucket, f *domain.Fight) error {
	data, err := json.Marshal(newRecord(f))
	if err != nil {
		return fmt.Errorf("failed to encode fight %s: %w", f.ID, err)
	}
	return b.Put([]byte(f.ID), data)
}

// record is the stored document. Fight keeps Version out of its JSON.
type record struct {
	domain.Fight
	Version int64 `json:"version"`
}

func newRecord(f *domain.Fight) record {
	return record{Fight: *f, Version: f.Version}
}

func (r record) fight() *domain.Fight {
	f := r.Fight
	f.Version = r.Version
	return &f
}

// CreateFight inserts a new fight record
func (s *FightStore) CreateFight(ctx context.Context, fight *domain.Fight) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		if b.Get([]byte(fight.ID)) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateFightID, fight.ID)
		}
		return put(b, fight)
	})
}

// GetFight retrieves a fight by ID
func (s *FightStore) GetFight(ctx context.Context, id string) (*domain.Fight, error) {
	var f *domain.Fight
	err := s.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		f, err = get(b, id)
		return err
	})
	return f, err
}

// UpdateFightIfMatches writes the fight only if its stored version is expectedVersion
func (s *FightStore) UpdateFightIfMatches(ctx context.Context, fight *domain.Fight, expectedVersion int64) (bool, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		current, err := get(b, fight.ID)
		if err != nil {
			return err
		}
		if current == nil || current.Version != expectedVersion {
			return errVersionMismatch
		}
		next := fight.Clone()
		next.SecureID = current.SecureID
		next.CreatedAt = current.CreatedAt
		next.Version = expectedVersion + 1
		return put(b, next)
	})
	if errors.Is(err, errVersionMismatch) {
		return false, nil
	}
	return err == nil, err
}

// IncrementBet atomically adds to a side's total while betting is open
func (s *FightStore) IncrementBet(ctx context.Context, id string, side domain.Side, amount int64, at int64) (*domain.Fight, error) {
	var f *domain.Fight
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		f, err = get(b, id)
		if err != nil || f == nil {
			return err
		}
		if f.Status != domain.FightStatusBettingOpen {
			f = nil
			return domain.ErrBettingClosed
		}
		if side == domain.SidePlayer2 {
			f.Bets.Player2 += amount
		} else {
			f.Bets.Player1 += amount
		}
		f.Timestamp = at
		f.Version++
		return put(b, f)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// all loads every fight, newest first
func (s *FightStore) all() ([]*domain.Fight, error) {
	var fights []*domain.Fight
	err := s.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode fight %s: %w", k, err)
			}
			fights = append(fights, rec.fight())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(fights, func(i, j int) bool {
		if fights[i].CreatedAt == fights[j].CreatedAt {
			return bytes.Compare([]byte(fights[i].ID), []byte(fights[j].ID)) > 0
		}
		return fights[i].CreatedAt > fights[j].CreatedAt
	})
	return fights, nil
}

// GetActiveFight returns the newest fight that is open for betting or running
func (s *FightStore) GetActiveFight(ctx context.Context) (*domain.Fight, error) {
	fights, err := s.all()
	if err != nil {
		return nil, err
	}
	for _, f := range fights {
		if f.Status.IsActive() {
			return f, nil
		}
	}
	return nil, nil
}

// ListFights returns up to limit fights, newest first
func (s *FightStore) ListFights(ctx context.Context, limit int) ([]*domain.Fight, error) {
	fights, err := s.all()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(fights) > limit {
		fights = fights[:limit]
	}
	return fights, nil
}

// CheckHealth verifies the bucket is readable
func (s *FightStore) CheckHealth(ctx context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		_, err := bucket(tx)
		return err
	})
}

// Close closes the bolt file
func (s *FightStore) Close() error {
	//nolint:wrapcheck
	return s.db.Close()
}
