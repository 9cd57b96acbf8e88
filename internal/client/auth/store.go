// Package auth holds the process-wide authentication session state: who is
// signed in, whether a lookup is in progress, and the profile document of
// the signed-in user. Screens subscribe and re-render on change.
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/common"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// Session is a read snapshot of the auth state.
type Session struct {
	Authenticated bool
	User          *models.User
	Loading       bool
}

// Store is the singleton auth session record. Loading starts true so screens
// gate on the initial lookup instead of flashing the signed-out state.
//
// An in-flight guard rejects re-entrant Fetch/Logout with common.ErrBusy so
// a double-tap cannot issue two remote calls.
type Store struct {
	client          client.Client
	usersCollection string
	logger          logging.Logger

	mu            sync.Mutex
	authenticated bool
	user          *models.User
	loading       bool
	inflight      bool
	subs          map[int]func()
	nextSub       int
}

// NewStore builds the session store. usersCollection names the profile
// document collection queried by accountID.
func NewStore(c client.Client, usersCollection string, logger logging.Logger) *Store {
	return &Store{
		client:          c,
		usersCollection: usersCollection,
		logger:          logger,
		loading:         true,
		subs:            make(map[int]func()),
	}
}

// Snapshot returns the current session state. The user pointer is a copy.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Session{Authenticated: s.authenticated, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Subscribe registers fn to run after every state change and returns a
// cancel function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) set(authenticated bool, user *models.User, loading bool) {
	s.mu.Lock()
	s.authenticated = authenticated
	s.user = user
	s.loading = loading
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Store) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight {
		return false
	}
	s.inflight = true
	return true
}

func (s *Store) release() {
	s.mu.Lock()
	s.inflight = false
	s.mu.Unlock()
}

// Fetch resolves the current identity: remote account lookup, then the
// profile document keyed by accountID. Any failure lands in the
// unauthenticated state; raw details go to the debug log only.
func (s *Store) Fetch(ctx context.Context) error {
	if !s.acquire() {
		return common.ErrBusy
	}
	defer s.release()

	s.set(s.authenticated, s.user, true)

	acct, err := s.client.GetCurrentAccount(ctx)
	if err != nil || acct == nil {
		if err != nil {
			s.logger.Debug(ctx, "current account lookup failed", "err", err)
		}
		s.set(false, nil, false)
		return nil
	}

	docs, err := s.client.ListDocuments(ctx, s.usersCollection, []client.Filter{
		client.Equal("accountID", acct.ID),
	})
	if err != nil || len(docs) == 0 {
		if err != nil {
			s.logger.Debug(ctx, "profile lookup failed", "err", err)
		}
		s.set(false, nil, false)
		return nil
	}

	user := models.UserFromDocument(docs[0])
	s.set(true, &user, false)
	return nil
}

// Logout terminates the remote session best-effort and unconditionally
// clears local state.
func (s *Store) Logout(ctx context.Context) error {
	if !s.acquire() {
		return common.ErrBusy
	}
	defer s.release()

	if err := s.client.DeleteCurrentSession(ctx); err != nil {
		s.logger.Debug(ctx, "remote session termination failed", "err", err)
	}
	s.set(false, nil, false)
	return nil
}
