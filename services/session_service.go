package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fragrance-store/models"
	"fragrance-store/repositories"
	"fragrance-store/store"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, token string) (*models.User, error)
	AddAddress(ctx context.Context, token string, address models.Address) (*models.User, error)
}

type sessionRecord struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SessionService owns the auth session: login/signup/logout, the cached user
// identity, and the bearer token every protected upstream call carries.
type SessionService struct {
	auth  AuthAPI
	store store.Store
	ttl   time.Duration
}

func NewSessionService(auth AuthAPI, st store.Store, ttl time.Duration) *SessionService {
	return &SessionService{auth: auth, store: st, ttl: ttl}
}

func sessionKey(sid string) string  { return "session:" + sid }
func wishlistKey(sid string) string { return "wishlist:" + sid }

func (s *SessionService) Login(ctx context.Context, sid, email, password string) (*models.User, error) {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sid, result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (s *SessionService) Signup(ctx context.Context, sid string, req models.SignupRequest) (*models.User, error) {
	result, err := s.auth.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sid, result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (s *SessionService) save(ctx context.Context, sid string, result *models.LoginResponse) error {
	user := result.User
	record := sessionRecord{Token: result.Token, User: &user}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionKey(sid), data, s.ttl); err != nil {
		return err
	}

	// Identity changed: whatever wishlist the previous identity cached must
	// never be visible to the new one.
	return s.store.Delete(ctx, wishlistKey(sid))
}

func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if err := s.store.Delete(ctx, sessionKey(sid)); err != nil {
		return err
	}
	return s.store.Delete(ctx, wishlistKey(sid))
}

// Current returns the session's token and cached user. An anonymous session is
// not an error: both return values are zero.
func (s *SessionService) Current(ctx context.Context, sid string) (string, *models.User, error) {
	data, err := s.store.Get(ctx, sessionKey(sid))
	if errors.Is(err, store.ErrNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", nil, err
	}
	return record.Token, record.User, nil
}

// AddAddress appends a shipping address to the user's backend address book and
// refreshes the cached profile with the returned one.
func (s *SessionService) AddAddress(ctx context.Context, sid string, address models.Address) (*models.User, error) {
	token, _, err := s.Current(ctx, sid)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.auth.AddAddress(ctx, token, address)
	if err != nil {
		return nil, err
	}

	record := sessionRecord{Token: token, User: user}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, sessionKey(sid), data, s.ttl); err != nil {
		return nil, err
	}
	return user, nil
}

// Refresh revalidates the cached profile against the backend. A rejected token
// tears the whole session down so a stale credential never lingers.
func (s *SessionService) Refresh(ctx context.Context, sid string) (*models.User, error) {
	token, _, err := s.Current(ctx, sid)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	user, err := s.auth.Me(ctx, token)
	if err != nil {
		var upstream *repositories.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusUnauthorized {
			_ = s.Logout(ctx, sid)
		}
		return nil, err
	}

	record := sessionRecord{Token: token, User: user}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, sessionKey(sid), data, s.ttl); err != nil {
		return nil, err
	}
	return user, nil
}
