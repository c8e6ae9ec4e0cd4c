// Package session owns the current authenticated identity: it restores the
// session from the key-value slot at startup, keeps it in memory, and writes
// every change back through.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/campusevents/internal/common"
	"github.com/dmitrijs2005/campusevents/internal/keyval"
	"github.com/dmitrijs2005/campusevents/internal/logging"
	"github.com/dmitrijs2005/campusevents/internal/models"
	"github.com/dmitrijs2005/campusevents/internal/notify"
)

// slotKey names the key-value slot holding the serialized user.
const slotKey = "user"

// demoUserID is the fixed identifier the mock login hands out. Registration
// generates a real unique id instead.
const demoUserID = "123"

// State is a snapshot of the session. User is non-nil exactly when
// IsAuthenticated is true; IsLoading is true only before Restore completes.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
}

// Service defines the session operations for the view layer.
//
// Contract:
//   - Restore: load a previously persisted session; corruption is treated
//     as absence and never returned to the caller.
//   - Login/Register: mock authentication, accepts any non-empty
//     credentials; returns common.ErrorValidation otherwise and leaves the
//     current state untouched.
//   - Logout: unconditional reset, cannot fail.
type Service interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Logout(ctx context.Context)
	State() State
	CurrentUser() *models.User
	IsAuthenticated() bool
}

type service struct {
	store    keyval.Store
	notifier notify.Notifier
	logger   logging.Logger

	mu    sync.RWMutex
	state State
}

// New constructs a Service bound to the given slot store. The session starts
// in the loading state until Restore runs.
func New(store keyval.Store, notifier notify.Notifier, logger logging.Logger) Service {
	return &service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		state:    State{IsLoading: true},
	}
}

// Restore reads the persisted user from the slot. An absent slot leaves the
// session unauthenticated; an unreadable or malformed slot is cleared and
// likewise treated as absence. The returned error is reserved for storage
// write failures during cleanup and may be ignored by callers.
func (s *service) Restore(ctx context.Context) error {
	data, err := s.store.Get(ctx, slotKey)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "discarding unreadable session slot", "error", err)
			if derr := s.store.Delete(ctx, slotKey); derr != nil {
				s.setState(State{})
				return fmt.Errorf("clearing session slot: %w", derr)
			}
		}
		s.setState(State{})
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		s.logger.Warn(ctx, "discarding malformed session slot", "error", err)
		if derr := s.store.Delete(ctx, slotKey); derr != nil {
			s.setState(State{})
			return fmt.Errorf("clearing session slot: %w", derr)
		}
		s.setState(State{})
		return nil
	}

	s.setState(State{User: &u, IsAuthenticated: true})
	s.logger.Info(ctx, "session restored", "user", u.Username)
	return nil
}

// Login authenticates with the mock backend: any non-empty email/password
// pair is accepted. The resulting user carries the fixed demo id and the
// email's local part as username.
func (s *service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		s.notifier.Notify(ctx, notify.Message{
			Title:       "Login Failed",
			Description: "Email and password are required",
			Variant:     notify.VariantDestructive,
		})
		return nil, fmt.Errorf("email and password are required: %w", common.ErrorValidation)
	}

	u := &models.User{
		ID:       demoUserID,
		Username: localPart(email),
		Email:    email,
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}

	s.setState(State{User: u, IsAuthenticated: true})
	s.notifier.Notify(ctx, notify.Message{Title: "Login Successful", Description: "Welcome back!"})
	return u, nil
}

// Register creates a new account with a freshly generated unique id.
func (s *service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		s.notifier.Notify(ctx, notify.Message{
			Title:       "Registration Failed",
			Description: "All fields are required",
			Variant:     notify.VariantDestructive,
		})
		return nil, fmt.Errorf("all fields are required: %w", common.ErrorValidation)
	}

	u := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}

	s.setState(State{User: u, IsAuthenticated: true})
	s.notifier.Notify(ctx, notify.Message{Title: "Registration Successful", Description: "Your account has been created!"})
	return u, nil
}

// Logout clears the slot and resets the session unconditionally. Slot
// deletion failures are logged, never surfaced.
func (s *service) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, slotKey); err != nil {
		s.logger.Error(ctx, "error clearing session slot", "error", err)
	}
	s.setState(State{})
	s.notifier.Notify(ctx, notify.Message{Title: "Logged Out", Description: "You have been successfully logged out"})
}

func (s *service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *service) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

func (s *service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

func (s *service) persist(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serializing user: %w", err)
	}
	if err := s.store.Set(ctx, slotKey, data); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

func (s *service) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}

// localPart returns the part of an email address before the first '@';
// the whole string when there is none.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
