package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/service"
	"github.com/fahim1105/seu-matrimony/internal/tui"
	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/fahim1105/seu-matrimony/internal/workers"
	"github.com/fahim1105/seu-matrimony/models"
)

// UI is the interactive surface driven by the app. It returns nil when the
// user logged out and any other error when the view closed for another
// reason.
type UI interface {
	Run(ctx context.Context, identity string) error
}

// SessionRunner is the part of *service.Session the app controls.
type SessionRunner interface {
	Start(ctx context.Context, identity models.Identity) error
	Stop(logout bool)
}

type App struct {
	session SessionRunner
	ui      UI
	idToken string

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, idToken string, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("client services are not initialized")
	}
	return newApp(services.Session, ui, idToken, logger)
}

func newApp(session SessionRunner, ui UI, idToken string, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}
	if idToken == "" {
		return nil, errors.New("identity token is empty")
	}
	return &App{session: session, ui: ui, idToken: idToken, logger: logger}, nil
}

// Run blocks until the user quits, logs out or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	identity, err := utils.ParseIdentity(a.idToken)
	if err != nil {
		return fmt.Errorf("parse identity token: %w", err)
	}

	if err = a.session.Start(ctx, identity); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	a.logger.Info().Str("func", "App.run").Str("email", identity.Email).Msg("session started")

	var logout atomic.Bool

	uiWorker := workers.Func(func(ctx context.Context) error {
		err := a.ui.Run(ctx, identity.Email)
		switch {
		case err == nil:
			logout.Store(true)
		case errors.Is(err, tui.ErrUserQuit), ctx.Err() != nil:
		default:
			return err
		}
		return workers.ErrStopGroup
	})

	sessionWorker := workers.Func(func(ctx context.Context) error {
		<-ctx.Done()
		a.session.Stop(logout.Load())
		return nil
	})

	return workers.NewWorkers(a.logger, uiWorker, sessionWorker).Run(ctx)
}
