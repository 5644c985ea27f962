package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
)

// ErrSlotUnavailable is returned when a reservation targets a (date, time)
// pair that is no longer in the open slot list.
var ErrSlotUnavailable = errors.New("time slot is not available")

// Schedule is the authoritative store: a single JSON document on disk.
// All writes land here; the cache only ever holds a projection of it.
type Schedule interface {
	Slots(ctx context.Context) ([]model.TimeSlot, error)
	Reservations(ctx context.Context) ([]model.Reservation, error)
	CreateReservation(ctx context.Context, res model.Reservation) error
	OpenSlot(ctx context.Context, date, timeOfDay string) ([]model.TimeSlot, error)
	CloseSlot(ctx context.Context, date, timeOfDay string) ([]model.TimeSlot, error)
	Reset(ctx context.Context) ([]model.TimeSlot, error)
}

type fileStore struct {
	path string
	cfg  *config.Config

	// Guards every read-modify-write of the document so that availability
	// check, reservation append and slot removal are one critical section.
	mu sync.Mutex
}

func New(cfg *config.Config) Schedule {
	path := cfg.Store.Path

	if strings.HasPrefix(path, os.TempDir()) {
		log.Warn().Str("path", path).Msg("Store document lives under the OS temp dir; reservations will not survive a redeploy")
	}

	return &fileStore{
		path: path,
		cfg:  cfg,
	}
}

func (s *fileStore) Slots(ctx context.Context) ([]model.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return slices.Clone(doc.AvailableSlots), nil
}

func (s *fileStore) Reservations(ctx context.Context) ([]model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return slices.Clone(doc.Reservations), nil
}

// CreateReservation checks availability, appends the reservation and removes
// the consumed slot in one critical section, so two requests for the same
// slot cannot both succeed.
func (s *fileStore) CreateReservation(ctx context.Context, res model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if !model.HasSlot(doc.AvailableSlots, res.Date, res.Time) {
		return ErrSlotUnavailable
	}

	doc.Reservations = append(doc.Reservations, res)
	doc.AvailableSlots = model.CloseSlot(doc.AvailableSlots, res.Date, res.Time)

	return s.save(doc)
}

func (s *fileStore) OpenSlot(ctx context.Context, date, timeOfDay string) ([]model.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	doc.AvailableSlots = model.OpenSlot(doc.AvailableSlots, date, timeOfDay)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return slices.Clone(doc.AvailableSlots), nil
}

func (s *fileStore) CloseSlot(ctx context.Context, date, timeOfDay string) ([]model.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	doc.AvailableSlots = model.CloseSlot(doc.AvailableSlots, date, timeOfDay)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return slices.Clone(doc.AvailableSlots), nil
}

// Reset regenerates the default schedule, keeping the reservation log.
func (s *fileStore) Reset(ctx context.Context) ([]model.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	doc.AvailableSlots = model.DefaultSlots(s.cfg)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return slices.Clone(doc.AvailableSlots), nil
}

// load reads the whole document, seeding the default schedule the first
// time the file does not exist yet. Caller must hold the mutex.
func (s *fileStore) load() (model.Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := model.Document{
			AvailableSlots: model.DefaultSlots(s.cfg),
			Reservations:   []model.Reservation{},
		}

		if err := s.save(doc); err != nil {
			return model.Document{}, err
		}

		log.Info().Str("path", s.path).Int("slots", len(doc.AvailableSlots)).Msg("Seeded store document with default schedule")

		return doc, nil
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read store document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode store document: %w", err)
	}

	return doc, nil
}

// save writes the whole document back. Caller must hold the mutex.
func (s *fileStore) save(doc model.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store document: %w", err)
	}

	return nil
}
