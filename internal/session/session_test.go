package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"propertyHub/internal/models"
	"propertyHub/internal/storage"
	"propertyHub/internal/storage/memory"
	"propertyHub/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGate(store storage.KeyValue) (*Gate, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	gate := New(store, WithClock(clock.Now), WithLoginDelay(0, nil))
	return gate, clock
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, clock := newTestGate(store)

	session, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	assert.Equal(t, `admin`, session.User.Username)
	assert.Equal(t, models.AdminRole, session.User.Role)
	assert.Equal(t, clock.now.UnixMilli(), session.User.LoginTime)
	assert.Equal(t, clock.now.UnixMilli(), session.Timestamp)

	assert.True(t, gate.IsAuthenticated(ctx))
	assert.Equal(t, 1440, gate.MinutesRemaining(ctx))
	assert.False(t, gate.IsExpiringSoon(ctx))

	raw, err := store.Get(ctx, AuthKey)
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Contains(t, stored, `user`)
	assert.Contains(t, stored, `timestamp`)
}

func TestLoginInvalidCredentials(t *testing.T) {
	testCases := []struct {
		username string
		password string
	}{
		{username: `admin`, password: `wrong`},
		{username: `Admin`, password: `admin123`},
		{username: `admin`, password: `admin123 `},
		{username: ``, password: ``},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("Test case %d: %q/%q", i, tc.username, tc.password), func(t *testing.T) {
			ctx := context.Background()
			store := mocks.NewKeyValue(t)
			gate, _ := newTestGate(store)

			_, err := gate.Login(ctx, tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			// no Get/Set/Delete expectations: the store must not be touched
			store.AssertNotCalled(t, `Set`, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, clock := newTestGate(store)

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)
	before, _ := store.Get(ctx, AuthKey)

	clock.Advance(2 * time.Hour)

	_, err = gate.Login(ctx, `admin`, `wrong`)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	after, _ := store.Get(ctx, AuthKey)
	assert.Equal(t, before, after)
	assert.True(t, gate.IsAuthenticated(ctx))
}

func TestLoginOverwritesPriorRecord(t *testing.T) {
	ctx := context.Background()
	gate, clock := newTestGate(memory.New())

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	clock.Advance(20 * time.Hour)
	assert.Equal(t, 240, gate.MinutesRemaining(ctx))

	_, err = gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	user, ok := gate.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, clock.now.UnixMilli(), user.LoginTime)
	assert.Equal(t, 1440, gate.MinutesRemaining(ctx))
}

func TestLoginDelay(t *testing.T) {
	var slept []time.Duration
	gate := New(memory.New(), WithLoginDelay(time.Second, func(d time.Duration) { slept = append(slept, d) }))

	_, err := gate.Login(context.Background(), `admin`, `wrong`)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = gate.Login(context.Background(), `admin`, `admin123`)
	assert.NoError(t, err)

	assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, clock := newTestGate(store)

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	clock.Advance(Duration - time.Millisecond)
	assert.True(t, gate.IsAuthenticated(ctx))
	assert.True(t, gate.IsExpiringSoon(ctx))
	assert.Equal(t, 0, gate.MinutesRemaining(ctx))

	clock.Advance(time.Millisecond)
	assert.False(t, gate.IsAuthenticated(ctx))

	// the expired record was cleared by the read
	_, err = store.Get(ctx, AuthKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, ok := gate.CurrentUser(ctx)
	assert.False(t, ok)
	assert.False(t, gate.IsExpiringSoon(ctx))
	assert.Equal(t, 0, gate.MinutesRemaining(ctx))
}

func TestCurrentUserClearsExpiredRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, clock := newTestGate(store)

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)

	_, ok := gate.CurrentUser(ctx)
	assert.False(t, ok)

	_, err = store.Get(ctx, AuthKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExpiringSoon(t *testing.T) {
	testCases := []struct {
		elapsed          time.Duration
		expectedMinutes  int
		expectedExpiring bool
	}{
		{elapsed: 0, expectedMinutes: 1440, expectedExpiring: false},
		{elapsed: 12 * time.Hour, expectedMinutes: 720, expectedExpiring: false},
		{elapsed: 22*time.Hour + 30*time.Minute, expectedMinutes: 90, expectedExpiring: false},
		{elapsed: 23*time.Hour + 30*time.Minute, expectedMinutes: 30, expectedExpiring: true},
		{elapsed: 23*time.Hour + 59*time.Minute, expectedMinutes: 1, expectedExpiring: true},
		{elapsed: 23*time.Hour + 59*time.Minute + 30*time.Second, expectedMinutes: 0, expectedExpiring: true},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("Test case %d: %s", i, tc.elapsed), func(t *testing.T) {
			ctx := context.Background()
			gate, clock := newTestGate(memory.New())

			_, err := gate.Login(ctx, `admin`, `admin123`)
			require.NoError(t, err)

			clock.Advance(tc.elapsed)

			assert.Equal(t, tc.expectedMinutes, gate.MinutesRemaining(ctx))
			assert.Equal(t, tc.expectedExpiring, gate.IsExpiringSoon(ctx))

			status := gate.Status(ctx)
			assert.True(t, status.Authenticated)
			assert.Equal(t, tc.expectedMinutes, status.MinutesRemaining)
			assert.Equal(t, tc.expectedExpiring, status.ExpiringSoon)
		})
	}
}

func TestExtendSession(t *testing.T) {
	ctx := context.Background()
	gate, clock := newTestGate(memory.New())

	session, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	clock.Advance(23*time.Hour + 45*time.Minute)
	assert.True(t, gate.IsExpiringSoon(ctx))

	require.NoError(t, gate.ExtendSession(ctx))

	assert.Equal(t, 1440, gate.MinutesRemaining(ctx))
	assert.False(t, gate.IsExpiringSoon(ctx))

	user, ok := gate.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, *session.User, user)

	// survives past the original expiry
	clock.Advance(2 * time.Hour)
	assert.True(t, gate.IsAuthenticated(ctx))
}

func TestExtendWithoutSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, clock := newTestGate(store)

	require.NoError(t, gate.ExtendSession(ctx))
	_, err := store.Get(ctx, AuthKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	clock.Advance(Duration)
	require.NoError(t, gate.ExtendSession(ctx))

	// an expired record is dropped, not revived
	_, err = store.Get(ctx, AuthKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.False(t, gate.IsAuthenticated(ctx))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	gate, _ := newTestGate(memory.New())

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)

	require.NoError(t, gate.Logout(ctx))
	assert.False(t, gate.IsAuthenticated(ctx))

	require.NoError(t, gate.Logout(ctx))
	assert.False(t, gate.IsAuthenticated(ctx))
	assert.Equal(t, 0, gate.MinutesRemaining(ctx))
	assert.Equal(t, Status{}, gate.Status(ctx))
}

func TestIsAuthenticatedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate, _ := newTestGate(store)

	_, err := gate.Login(ctx, `admin`, `admin123`)
	require.NoError(t, err)
	before, _ := store.Get(ctx, AuthKey)

	for i := 0; i < 5; i++ {
		assert.True(t, gate.IsAuthenticated(ctx))
	}

	after, _ := store.Get(ctx, AuthKey)
	assert.Equal(t, before, after)
}

func TestCorruptRecord(t *testing.T) {
	testCases := []string{
		`not json`,
		`{"user":null,"timestamp":1}`,
		`{"timestamp":"yesterday"}`,
		``,
	}

	for i, raw := range testCases {
		t.Run(fmt.Sprintf("Test case %d: %q", i, raw), func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			gate, _ := newTestGate(store)

			require.NoError(t, store.Set(ctx, AuthKey, raw))

			assert.False(t, gate.IsAuthenticated(ctx))
			_, ok := gate.CurrentUser(ctx)
			assert.False(t, ok)
			assert.False(t, gate.IsExpiringSoon(ctx))
			assert.Equal(t, 0, gate.MinutesRemaining(ctx))

			require.NoError(t, gate.ExtendSession(ctx))

			value, err := store.Get(ctx, AuthKey)
			require.NoError(t, err)
			assert.Equal(t, raw, value)

			_, state := gate.load(ctx)
			assert.Equal(t, recordCorrupt, state)
		})
	}
}

func TestUnreadableStore(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewKeyValue(t)
	gate, _ := newTestGate(store)

	store.On(`Get`, mock.Anything, AuthKey).Return(``, errors.New(`connection refused`))

	assert.False(t, gate.IsAuthenticated(ctx))
	assert.Equal(t, 0, gate.MinutesRemaining(ctx))
	assert.NoError(t, gate.ExtendSession(ctx))
}

func TestLoginStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewKeyValue(t)
	gate, _ := newTestGate(store)

	store.On(`Set`, mock.Anything, AuthKey, mock.Anything).Return(errors.New(`disk full`)).Once()

	_, err := gate.Login(ctx, `admin`, `admin123`)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
