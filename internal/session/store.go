package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"parceldash/internal/api"
	"parceldash/internal/domain"
)

// Storage keys. Token and user are always written and cleared together.
const (
	tokenKey    = "token"
	userKey     = "user"
	rememberKey = "remember"
)

var (
	// ErrNoSession is returned when an operation needs a live session and none exists.
	ErrNoSession = errors.New("no active session")
)

// Session is the authenticated identity held in storage.
type Session struct {
	Token      string
	User       domain.User
	Persistent bool
}

// AuthAPI is the slice of the API client the session store depends on.
type AuthAPI interface {
	LoginAdmin(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	RefreshToken(ctx context.Context, token string) (string, error)
}

// Store owns the session lifecycle and is the only writer of session storage.
// Every mutation notifies all subscribers so mounted consumers re-read auth
// state; this is the only cross-component channel in the system.
type Store struct {
	auth       AuthAPI
	persistent Storage
	session    Storage

	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates a session store over the two storage scopes.
func NewStore(auth AuthAPI, persistent, sessionOnly Storage) *Store {
	return &Store{
		auth:       auth,
		persistent: persistent,
		session:    sessionOnly,
		subs:       make(map[int]func()),
	}
}

// Subscribe registers fn to run after every session mutation. The returned
// function unsubscribes; it is safe to call more than once.
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

// notify runs subscribers outside the lock.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Login authenticates and stores the session. With rememberMe the persistent
// scope is used and the session scope cleared; otherwise the reverse.
func (s *Store) Login(ctx context.Context, creds api.Credentials, rememberMe bool) (*Session, error) {
	resp, err := s.auth.LoginAdmin(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.write(resp.Token, resp.User, rememberMe); err != nil {
		return nil, err
	}
	s.notify()

	return &Session{Token: resp.Token, User: resp.User, Persistent: rememberMe}, nil
}

// CompleteOAuthCallback inspects u for OAuth callback markers. On success the
// session is stored non-persistent and the marker parameters are stripped from
// u in place, so a second call with the same URL returns (nil, nil) — the
// callback is consumed exactly once. A callback error parameter is returned as
// an error. A URL without markers returns (nil, nil).
func (s *Store) CompleteOAuthCallback(u *url.URL) (*Session, error) {
	q := u.Query()
	callbackErr := q.Get("error")
	token := q.Get("token")
	rawUser := q.Get("user")

	if callbackErr == "" && token == "" && rawUser == "" {
		return nil, nil
	}

	// Consume the markers regardless of outcome.
	q.Del("error")
	q.Del("token")
	q.Del("user")
	u.RawQuery = q.Encode()

	if callbackErr != "" {
		return nil, fmt.Errorf("oauth login failed: %s", callbackErr)
	}
	if token == "" || rawUser == "" {
		return nil, errors.New("oauth callback missing token or user")
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("oauth callback user blob: %w", err)
	}

	if err := s.write(token, user, false); err != nil {
		return nil, err
	}
	s.notify()

	return &Session{Token: token, User: user, Persistent: false}, nil
}

// Logout invalidates the token remotely on a best-effort basis, then clears
// both scopes. It always succeeds locally.
func (s *Store) Logout(ctx context.Context) {
	if token := s.Token(); token != "" {
		// Remote invalidation failure must not keep the user logged in.
		_ = s.auth.Logout(ctx, token)
	}
	s.clear()
	s.notify()
}

// Clear drops the session from both scopes without a remote call. Intended
// for forced teardown, e.g. after an unauthorized response.
func (s *Store) Clear() {
	s.clear()
	s.notify()
}

// RefreshToken exchanges the current token. On failure the session is cleared
// (forced logout) and the error returned.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	token := s.Token()
	if token == "" {
		return "", ErrNoSession
	}

	fresh, err := s.auth.RefreshToken(ctx, token)
	if err != nil {
		s.clear()
		s.notify()
		return "", err
	}

	scope := s.session
	if _, ok := s.persistent.Get(tokenKey); ok {
		scope = s.persistent
	}
	if err := scope.Set(tokenKey, fresh); err != nil {
		return "", err
	}
	s.notify()
	return fresh, nil
}

// Token returns the stored token, persistent scope first, or "".
func (s *Store) Token() string {
	if v, ok := s.persistent.Get(tokenKey); ok && v != "" {
		return v
	}
	if v, ok := s.session.Get(tokenKey); ok && v != "" {
		return v
	}
	return ""
}

// User returns the stored user profile, persistent scope first, or nil.
func (s *Store) User() *domain.User {
	raw, ok := s.persistent.Get(userKey)
	if !ok || raw == "" {
		raw, ok = s.session.Get(userKey)
	}
	if !ok || raw == "" {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// IsAuthenticated reports whether both a token and a user profile are stored.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != "" && s.User() != nil
}

// write stores token and user together in one scope and clears the other.
func (s *Store) write(token string, user domain.User, persistent bool) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}

	target, other := s.session, s.persistent
	if persistent {
		target, other = s.persistent, s.session
	}

	if err := target.Set(tokenKey, token); err != nil {
		return err
	}
	if err := target.Set(userKey, string(blob)); err != nil {
		return err
	}
	if err := target.Set(rememberKey, fmt.Sprintf("%t", persistent)); err != nil {
		return err
	}

	for _, key := range []string{tokenKey, userKey, rememberKey} {
		if err := other.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// clear removes the session from both scopes.
func (s *Store) clear() {
	for _, scope := range []Storage{s.persistent, s.session} {
		for _, key := range []string{tokenKey, userKey, rememberKey} {
			_ = scope.Delete(key)
		}
	}
}
