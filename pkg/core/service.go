package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service implements the note operations on top of a Store.
//
// Every operation runs one full load-mutate-store cycle: it re-reads
// the persisted collection, transforms it, and replaces it atomically.
// Nothing is cached between calls, so each call observes the latest
// durable state. Two concurrent writers still race classically (last
// ReplaceAll wins); that is an accepted limitation of the single-tenant
// design, not something this layer papers over.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithIDSource overrides the ID generator.
func WithIDSource(newID func() string) ServiceOption {
	return func(s *Service) { s.newID = newID }
}

// WithServiceLogger sets the logger for the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a new Service.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the draft, assigns identity and timestamps, and
// appends the new note to the collection.
//
// Defaults: category "Personal", not a reminder, not completed.
// CreatedAt and UpdatedAt are set to the same instant.
func (s *Service) Create(ctx context.Context, draft Draft) (Note, error) {
	if draft.Title == "" {
		return Note{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if draft.Content == "" {
		return Note{}, fmt.Errorf("%w: content is required", ErrValidation)
	}

	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	category := draft.Category
	if category == "" {
		category = DefaultCategory
	}

	ts := s.now()
	note := Note{
		ID:           s.freshID(notes),
		Title:        draft.Title,
		Content:      draft.Content,
		Category:     category,
		IsReminder:   draft.IsReminder,
		ReminderDate: draft.ReminderDate,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if err := s.store.ReplaceAll(ctx, append(notes, note)); err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if s.logger != nil {
		s.logger.Debug("note created", "id", note.ID, "category", note.Category)
	}
	return note, nil
}

// Get retrieves a note by its ID. Lookup is a linear scan; the
// collection is small by design and always loaded whole anyway.
func (s *Service) Get(ctx context.Context, id string) (Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Update merges the patch onto the stored note and persists the result.
// Fields absent from the patch keep their stored value; fields present
// overwrite it. UpdatedAt is always refreshed, even for an empty patch.
//
// A present-but-empty value is persisted as given: the engine never
// blanks a field on its own, but it does not second-guess a caller
// that explicitly sends one. Only Create enforces non-empty title
// and content.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	idx := -1
	for i, n := range notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	patch.Apply(&notes[idx])
	notes[idx].UpdatedAt = s.now()

	if err := s.store.ReplaceAll(ctx, notes); err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if s.logger != nil {
		s.logger.Debug("note updated", "id", id)
	}
	return notes[idx], nil
}

// Delete removes a note permanently. There is no soft-delete and no
// tombstone: the record simply leaves the collection.
func (s *Service) Delete(ctx context.Context, id string) error {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	idx := -1
	for i, n := range notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.store.ReplaceAll(ctx, append(notes[:idx], notes[idx+1:]...)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if s.logger != nil {
		s.logger.Debug("note deleted", "id", id)
	}
	return nil
}

// List returns all notes passing the filter, in stored order.
func (s *Service) List(ctx context.Context, filter Filter) ([]Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if filter.Category == nil {
		return notes, nil
	}

	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if filter.Match(n) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// Watch observes changes in the store if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// freshID draws IDs until one does not collide with the collection.
// UUIDs make a collision practically impossible, but the store contract
// promises uniqueness outright, so we check anyway.
func (s *Service) freshID(notes []Note) string {
	for {
		id := s.newID()
		taken := false
		for _, n := range notes {
			if n.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
