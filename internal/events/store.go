// Package events owns the in-memory event collection and its query
// operations. The collection is not persisted: restarts go back to the seed.
package events

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/campusevents/internal/models"
	"github.com/dmitrijs2005/campusevents/internal/notify"
)

// Store holds the ordered event collection. Creation appends; updates keep
// the record's position. Lookups and search are full scans, which is fine at
// this collection size.
type Store struct {
	notifier notify.Notifier

	mu     sync.RWMutex
	events []models.Event
}

// New constructs a Store pre-populated with the given seed events.
// The seed slice is copied; callers keep ownership of theirs.
func New(notifier notify.Notifier, seed []models.Event) *Store {
	s := &Store{notifier: notifier}
	s.events = make([]models.Event, len(seed))
	copy(s.events, seed)
	return s
}

// Create assigns a fresh unique id, appends the event, and returns the
// stored value. The caller supplies CreatedBy.
func (s *Store) Create(ctx context.Context, e models.Event) models.Event {
	e.ID = uuid.NewString()

	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.Message{
		Title:       "Event Created",
		Description: "Your event has been created successfully!",
	})
	return e
}

// Update replaces the stored record with a matching id in place. A missing
// id is a silent no-op: callers must not rely on Update to report absence.
func (s *Store) Update(ctx context.Context, e models.Event) {
	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.Message{
		Title:       "Event Updated",
		Description: "Your event has been updated successfully!",
	})
}

// Delete removes the record with the given id; a no-op when absent.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.Message{
		Title:       "Event Deleted",
		Description: "Your event has been deleted successfully!",
	})
}

// Get returns the event with the given id, if present.
func (s *Store) Get(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// Search returns all events whose title, description, location, organizer,
// or type contains the query, case-insensitively, in collection order. An
// empty query matches everything; blank-query handling is the caller's
// concern.
func (s *Store) Search(query string) []models.Event {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Event, 0)
	for _, e := range s.events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q) ||
			strings.Contains(strings.ToLower(e.Organizer), q) ||
			strings.Contains(strings.ToLower(string(e.Type)), q) {
			result = append(result, e)
		}
	}
	return result
}

// All returns a snapshot of the collection in order.
func (s *Store) All() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the current collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
