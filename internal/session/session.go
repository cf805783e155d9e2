// Package session gates the admin area behind a single persisted session
// record. The credential check is a fixed string comparison and the record
// expires 24 hours after it was issued or last extended.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"propertyHub/internal/models"
	"propertyHub/internal/storage"
)

const (
	// AuthKey is the key the session record is stored under.
	AuthKey = "propertyHub_admin_auth"

	Duration          = 24 * time.Hour
	ExpiryWarning     = time.Hour
	DefaultLoginDelay = time.Second
)

const (
	validUsername = "admin"
	validPassword = "admin123"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type recordState int

const (
	recordAbsent recordState = iota
	recordFound
	recordCorrupt
)

func (s recordState) String() string {
	switch s {
	case recordFound:
		return "found"
	case recordCorrupt:
		return "corrupt"
	default:
		return "absent"
	}
}

// Status is a point-in-time view of the gate, computed from a single read.
type Status struct {
	Authenticated    bool              `json:"authenticated"`
	User             *models.AdminUser `json:"user,omitempty"`
	ExpiringSoon     bool              `json:"expiringSoon"`
	MinutesRemaining int               `json:"minutesRemaining"`
}

type Option func(*Gate)

func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// WithLoginDelay sets the pause taken before a login attempt resolves.
// sleep defaults to time.Sleep when nil.
func WithLoginDelay(delay time.Duration, sleep func(time.Duration)) Option {
	return func(g *Gate) {
		g.loginDelay = delay
		if sleep != nil {
			g.sleep = sleep
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) { g.logger = logger }
}

// Gate owns the admin authentication state. Concurrent writers to the same
// backend are last-write-wins; within one Gate read-modify-write sequences are
// serialized.
type Gate struct {
	store      storage.KeyValue
	now        func() time.Time
	sleep      func(time.Duration)
	loginDelay time.Duration
	logger     *slog.Logger

	mu sync.Mutex
}

func New(store storage.KeyValue, opts ...Option) *Gate {
	g := &Gate{
		store:      store,
		now:        time.Now,
		sleep:      time.Sleep,
		loginDelay: DefaultLoginDelay,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.logger = g.logger.With("component", "session")

	return g
}

// Login checks the credential pair and, on success, replaces any stored
// session with a fresh one. A failed attempt leaves the store untouched.
func (g *Gate) Login(ctx context.Context, username, password string) (models.Session, error) {
	if g.loginDelay > 0 {
		g.sleep(g.loginDelay)
	}

	if username != validUsername || password != validPassword {
		g.logger.Info("Admin login rejected", "username", username)
		return models.Session{}, ErrInvalidCredentials
	}

	now := g.now().UnixMilli()
	session := models.Session{
		User: &models.AdminUser{
			Username:  username,
			Role:      models.AdminRole,
			LoginTime: now,
		},
		Timestamp: now,
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.write(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	g.logger.Info("Admin logged in", "username", username)

	return session, nil
}

func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	_, ok := g.readValid(ctx)
	return ok
}

func (g *Gate) CurrentUser(ctx context.Context) (models.AdminUser, bool) {
	session, ok := g.readValid(ctx)
	if !ok {
		return models.AdminUser{}, false
	}

	return *session.User, true
}

// Logout removes the stored session. Calling it without a session is a no-op.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Delete(ctx, AuthKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	g.logger.Info("Admin logged out")

	return nil
}

// ExtendSession moves the session timestamp to now and keeps the user as is.
// Without a live session nothing is written; an expired record is deleted,
// not revived.
func (g *Gate) ExtendSession(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.validLocked(ctx)
	if !ok {
		return nil
	}

	session.Timestamp = g.now().UnixMilli()

	if err := g.write(ctx, session); err != nil {
		return fmt.Errorf("extend session: %w", err)
	}

	g.logger.Info("Admin session extended", "username", session.User.Username)

	return nil
}

func (g *Gate) IsExpiringSoon(ctx context.Context) bool {
	session, ok := g.readValid(ctx)
	if !ok {
		return false
	}

	return g.remaining(session) < ExpiryWarning
}

func (g *Gate) MinutesRemaining(ctx context.Context) int {
	session, ok := g.readValid(ctx)
	if !ok {
		return 0
	}

	return minutes(g.remaining(session))
}

func (g *Gate) Status(ctx context.Context) Status {
	session, ok := g.readValid(ctx)
	if !ok {
		return Status{}
	}

	remaining := g.remaining(session)
	user := *session.User

	return Status{
		Authenticated:    true,
		User:             &user,
		ExpiringSoon:     remaining < ExpiryWarning,
		MinutesRemaining: minutes(remaining),
	}
}

func (g *Gate) readValid(ctx context.Context) (models.Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.validLocked(ctx)
}

// validLocked returns the stored session if it is live, deleting it when it
// has expired. Callers hold g.mu.
func (g *Gate) validLocked(ctx context.Context) (models.Session, bool) {
	session, state := g.load(ctx)
	if state != recordFound {
		return models.Session{}, false
	}

	if g.remaining(session) <= 0 {
		if err := g.store.Delete(ctx, AuthKey); err != nil {
			g.logger.Warn("Failed to delete expired session", slog.Any("err", err))
		} else {
			g.logger.Info("Expired admin session cleared", "username", session.User.Username)
		}
		return models.Session{}, false
	}

	return session, true
}

// load reads and decodes the record. Corrupt records and backend failures
// never reach callers of the gate; they are only logged.
func (g *Gate) load(ctx context.Context) (models.Session, recordState) {
	raw, err := g.store.Get(ctx, AuthKey)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Session{}, recordAbsent
	}

	if err != nil {
		g.logger.Warn("Session store unreadable", "state", recordCorrupt, slog.Any("err", err))
		return models.Session{}, recordCorrupt
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		g.logger.Warn("Session record unreadable", "state", recordCorrupt, slog.Any("err", err))
		return models.Session{}, recordCorrupt
	}

	if session.User == nil {
		g.logger.Warn("Session record has no user", "state", recordCorrupt)
		return models.Session{}, recordCorrupt
	}

	return session, recordFound
}

func (g *Gate) write(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return g.store.Set(ctx, AuthKey, string(data))
}

func (g *Gate) remaining(session models.Session) time.Duration {
	elapsed := time.Duration(g.now().UnixMilli()-session.Timestamp) * time.Millisecond
	return Duration - elapsed
}

func minutes(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}

	return int(remaining / time.Minute)
}
