// Package auth is responsible for handling the user registry and session
// logic: registration, login, logout, and exposing the current user to the
// rest of the application.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
	"github.com/syedOmegaPrime/SolitudeFinalProject/config"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
)

// Service provides authentication-related operations.
//
// State is held in memory and mirrored to two independently keyed blobs:
// the append-only registry of all known users, and the current session.
// Keeping them separate means "logged out" is representable as absence of
// the session blob, independent of the registry contents.
type Service struct {
	store  *localstore.Store
	cfg    config.AuthConfig
	logger *slog.Logger

	// loading reports whether a simulated round trip is in flight, so the
	// UI layer can show a busy state. It is deliberately advisory: the
	// service does not serialize overlapping calls (last write wins).
	loading atomic.Bool

	// mu guards the in-memory state below for Go-level memory safety.
	mu         sync.Mutex
	registered []User
	current    *User
}

// NewService creates an auth Service, loading the registry and any persisted
// session from the store. Dependencies are injected explicitly via
// constructor arguments; the service is never a package-level global.
func NewService(store *localstore.Store, cfg config.AuthConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}

	// A corrupt or absent blob loads as the empty default; the adapter has
	// already logged and discarded anything unreadable.
	if _, err := store.Load(localstore.RegisteredUsersKey, &s.registered); err != nil {
		return nil, err
	}
	var current User
	found, err := store.Load(localstore.CurrentUserKey, &current)
	if err != nil {
		return nil, err
	}
	if found {
		s.current = &current
	}
	return s, nil
}

// Loading reports whether a login or registration round trip is in flight.
func (s *Service) Loading() bool {
	return s.loading.Load()
}

// Register creates a new user.
//
// The request models an asynchronous API round trip: callers observe
// Loading()==true for the configured latency, with ctx as the cancellation
// point. On success the new user is appended to the registry, both the
// registry and the session are persisted, and the user is returned:
// registration signs the new user straight in.
//
// A duplicate email yields a ConflictError and leaves the registry
// unchanged. Matching is exact and case-sensitive. The password is
// accepted and discarded.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := s.simulateRoundTrip(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.registered {
		if u.Email == req.Email {
			return nil, apperror.NewConflictError("an account with this email already exists", nil)
		}
	}

	user := User{
		ID:    ident.New(ident.UserPrefix),
		Email: req.Email,
		Name:  req.Name,
	}
	s.registered = append(s.registered, user)
	if err := s.store.Save(localstore.RegisteredUsersKey, s.registered); err != nil {
		// Roll the in-memory append back so state stays a valid
		// serialization of what is on disk.
		s.registered = s.registered[:len(s.registered)-1]
		return nil, err
	}

	if err := s.setSessionLocked(user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID, "email", user.Email)
	return &user, nil
}

// Login looks up a registered user by exact email match and, on success,
// sets and persists the session. The password is carried but not compared.
// An unknown email yields an AuthError and leaves any existing session
// untouched.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, error) {
	if err := s.simulateRoundTrip(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.registered {
		if u.Email == req.Email {
			if err := s.setSessionLocked(u); err != nil {
				return nil, err
			}
			s.logger.Info("user logged in", "id", u.ID)
			out := u
			return &out, nil
		}
	}
	return nil, apperror.NewAuthError("invalid credentials", nil)
}

// Logout clears the session state and its persisted record. The registry is
// not touched. Logging out while logged out is a no-op.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.store.Remove(localstore.CurrentUserKey)
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Service) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// RegisteredUsers returns a copy of the registry, in registration order.
func (s *Service) RegisteredUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, len(s.registered))
	copy(out, s.registered)
	return out
}

// setSessionLocked stores u as the current session and persists it. If the
// write fails the previous session stays in effect, so memory never claims
// a sign-in the blob on disk does not hold. Callers must hold s.mu.
func (s *Service) setSessionLocked(u User) error {
	prev := s.current
	s.current = &u
	if err := s.store.Save(localstore.CurrentUserKey, u); err != nil {
		s.current = prev
		return err
	}
	return nil
}

// simulateRoundTrip models an artificial network round trip. The loading
// flag is raised for the duration; ctx.Done() is the one
// defined cancellation point for an in-flight auth operation.
func (s *Service) simulateRoundTrip(ctx context.Context) error {
	s.loading.Store(true)
	defer s.loading.Store(false)

	if s.cfg.SimulatedLatency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.cfg.SimulatedLatency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
