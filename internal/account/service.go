// Package account implements the sign-in state machine over the document
// store: at any moment there is either no session or exactly one, mirrored
// into the store's session slot.
package account

import (
	"context"
	"crypto/subtle"
	"time"

	"vitrina.org/internal/ids"
	"vitrina.org/internal/store"
)

// Assigned to accounts created without an explicit profile picture.
const defaultProfilePic = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop"

// Service validates credentials and manages session establishment, sign-up,
// administrator creation, and profile edits.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// Option configures Service behavior.
type Option func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs a Service over the document store.
func NewService(st *store.Store, opts ...Option) *Service {
	svc := &Service{store: st, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// SignIn matches email and password exactly (case-sensitive) against the
// stored accounts. On success the session slot is set to the matched account.
// Passwords are opaque credentials compared verbatim; this is a back-office
// prototype contract, not a security boundary.
func (s *Service) SignIn(ctx context.Context, email, password string) (store.Account, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return store.Account{}, err
	}
	for _, u := range users {
		if u.Email == email && constantTimeEqual(u.Password, password) {
			if err := s.store.SetSession(ctx, u); err != nil {
				return store.Account{}, err
			}
			return u, nil
		}
	}
	return store.Account{}, ErrInvalidCredentials
}

// SignUp creates a new administrator account and establishes its session.
func (s *Service) SignUp(ctx context.Context, email, password, name, profilePic string) (store.Account, error) {
	acc, err := s.createAccount(ctx, email, password, name, profilePic)
	if err != nil {
		return store.Account{}, err
	}
	if err := s.store.SetSession(ctx, acc); err != nil {
		return store.Account{}, err
	}
	return acc, nil
}

// AddAdministrator creates an account with role Admin without touching the
// caller's session. The HTTP boundary gates this behind authentication.
func (s *Service) AddAdministrator(ctx context.Context, email, password, name, profilePic string) (store.Account, error) {
	return s.createAccount(ctx, email, password, name, profilePic)
}

func (s *Service) createAccount(ctx context.Context, email, password, name, profilePic string) (store.Account, error) {
	if email == "" || password == "" || name == "" {
		return store.Account{}, ErrMissingFields
	}
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return store.Account{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return store.Account{}, ErrEmailTaken
		}
	}
	if profilePic == "" {
		profilePic = defaultProfilePic
	}
	acc := store.Account{
		ID:         ids.New(),
		Email:      email,
		Password:   password,
		Name:       name,
		ProfilePic: profilePic,
		Role:       store.RoleAdmin,
		JoinDate:   s.now().UTC().Format("2006-01-02"),
	}
	users = append(users, acc)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return store.Account{}, err
	}
	return acc, nil
}

// SignOut clears the session slot. Signing out while anonymous is a no-op.
func (s *Service) SignOut(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// Current returns the session account, or nil when anonymous.
func (s *Service) Current(ctx context.Context) (*store.Account, error) {
	return s.store.LoadSession(ctx)
}

// ProfileUpdate carries optional profile-edit fields. Empty fields are left
// unchanged.
type ProfileUpdate struct {
	Name       string
	Email      string
	ProfilePic string
	Role       string
}

// UpdateProfile merges the supplied fields into the current session account
// and the matching stored record. The record is matched by the session's
// email, and which account is "current" never changes. Changing the email to
// one already registered is rejected.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) (store.Account, error) {
	current, err := s.store.LoadSession(ctx)
	if err != nil {
		return store.Account{}, err
	}
	if current == nil {
		return store.Account{}, ErrNotAuthenticated
	}
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return store.Account{}, err
	}

	if upd.Email != "" && upd.Email != current.Email {
		for _, u := range users {
			if u.Email == upd.Email {
				return store.Account{}, ErrEmailTaken
			}
		}
	}

	merged := *current
	if upd.Name != "" {
		merged.Name = upd.Name
	}
	if upd.Email != "" {
		merged.Email = upd.Email
	}
	if upd.ProfilePic != "" {
		merged.ProfilePic = upd.ProfilePic
	}
	if upd.Role != "" {
		merged.Role = upd.Role
	}

	found := false
	for i, u := range users {
		if u.Email == current.Email {
			users[i] = merged
			found = true
			break
		}
	}
	if !found {
		return store.Account{}, ErrNotFound
	}

	if err := s.store.SaveUsers(ctx, users); err != nil {
		return store.Account{}, err
	}
	if err := s.store.SetSession(ctx, merged); err != nil {
		return store.Account{}, err
	}
	return merged, nil
}

func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
