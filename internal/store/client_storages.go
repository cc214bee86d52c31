package store

import (
	"context"
	"fmt"

	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Medium is the raw key/value medium. It is closed by [ClientStorages.Close].
	Medium Medium
	// Queue is the typed store built on Medium.
	Queue QueueStore
}

// NewClientStorages opens the medium selected by cfg.Driver and wraps it in
// a [QueueStore].
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	medium, err := NewMedium(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Medium: medium,
		Queue:  NewQueueStore(medium, logger),
	}, nil
}

// NewMedium opens the medium for cfg.Driver.
func NewMedium(ctx context.Context, cfg config.Storage, logger *logger.Logger) (Medium, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryMedium(0), nil
	case config.DriverSQLite:
		medium, err := NewSQLiteMedium(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite medium: %w", err)
		}
		return medium, nil
	case config.DriverBolt:
		medium, err := NewBoltMedium(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("bolt medium: %w", err)
		}
		return medium, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close closes the underlying medium.
func (s *ClientStorages) Close() error {
	return s.Medium.Close()
}
