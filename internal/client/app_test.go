package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/tui"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu       sync.Mutex
	startErr error
	started  []models.Identity
	stops    []bool
}

func (f *fakeSession) Start(_ context.Context, identity models.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.started = append(f.started, identity)
	return nil
}

func (f *fakeSession) Stop(logout bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops = append(f.stops, logout)
}

type fakeUI func(ctx context.Context, identity string) error

func (f fakeUI) Run(ctx context.Context, identity string) error {
	return f(ctx, identity)
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":        "uid-1",
		"email":          "rahim@seu.edu.bd",
		"email_verified": true,
		"firebase":       map[string]any{"sign_in_provider": "google.com"},
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, fakeUI(nil), "tok", logger.Nop())
	assert.Error(t, err)

	_, err = newApp(&fakeSession{}, nil, "tok", logger.Nop())
	assert.Error(t, err)

	_, err = newApp(&fakeSession{}, fakeUI(nil), "", logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_LogoutStopsAndClears(t *testing.T) {
	session := &fakeSession{}
	var shownFor string
	ui := fakeUI(func(_ context.Context, identity string) error {
		shownFor = identity
		return nil
	})

	app, err := newApp(session, ui, testToken(t), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))

	assert.Equal(t, "rahim@seu.edu.bd", shownFor)
	require.Len(t, session.started, 1)
	assert.True(t, session.started[0].IsFederated())
	assert.Equal(t, []bool{true}, session.stops)
}

func TestApp_Run_QuitStopsWithoutClearing(t *testing.T) {
	session := &fakeSession{}
	ui := fakeUI(func(context.Context, string) error { return tui.ErrUserQuit })

	app, err := newApp(session, ui, testToken(t), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []bool{false}, session.stops)
}

func TestApp_Run_UIErrorIsReturned(t *testing.T) {
	boom := errors.New("terminal gone")
	session := &fakeSession{}
	ui := fakeUI(func(context.Context, string) error { return boom })

	app, err := newApp(session, ui, testToken(t), logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), boom)
	assert.Equal(t, []bool{false}, session.stops)
}

func TestApp_Run_ContextCancelStopsSession(t *testing.T) {
	session := &fakeSession{}
	ui := fakeUI(func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return ctx.Err()
	})

	app, err := newApp(session, ui, testToken(t), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, app.run(ctx))
	assert.Equal(t, []bool{false}, session.stops)
}

func TestApp_Run_InvalidToken(t *testing.T) {
	session := &fakeSession{}
	app, err := newApp(session, fakeUI(func(context.Context, string) error { return nil }), "not-a-jwt", logger.Nop())
	require.NoError(t, err)

	assert.Error(t, app.run(context.Background()))
	assert.Empty(t, session.started)
	assert.Empty(t, session.stops)
}

func TestApp_Run_StartError(t *testing.T) {
	session := &fakeSession{startErr: errors.New("no email")}
	app, err := newApp(session, fakeUI(func(context.Context, string) error { return nil }), testToken(t), logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, app.run(context.Background()), "no email")
	assert.Empty(t, session.stops)
}
