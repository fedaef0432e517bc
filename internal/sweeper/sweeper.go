// Package sweeper periodically reminds confirmers of pending transactions that
// are about to expire and removes the ones that did.
package sweeper

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/debtledger/internal/config"
	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/notify"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

type Repo interface {
	ListToRemind(ctx context.Context, kind domain.Kind, now time.Time, horizon time.Duration) ([]domain.PendingTransaction, error)
	MarkReminded(ctx context.Context, kind domain.Kind, messageID int64) (bool, error)
	ListExpired(ctx context.Context, kind domain.Kind, now time.Time) ([]domain.PendingTransaction, error)
	DeleteExpired(ctx context.Context, kind domain.Kind, messageID int64, now time.Time) (*domain.PendingTransaction, error)
}

type Sweeper struct {
	repo       Repo
	notifier   notify.Notifier
	workerPool WorkerPoolI
	interval   time.Duration
	horizon    time.Duration
	running    atomic.Bool
	now        func() time.Time
}

func New(cfg *config.Config, repo Repo, notifier notify.Notifier) *Sweeper {
	return &Sweeper{
		repo:       repo,
		notifier:   notifier,
		workerPool: NewWorkerPool(cfg.SweepWorkers),
		interval:   cfg.SweepInterval,
		horizon:    cfg.ReminderHorizon,
		now:        time.Now,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	go s.Run(ctx)
}

// Run sweeps once right away and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	zap.L().Info("sweeper started", zap.Duration("interval", s.interval), zap.Duration("horizon", s.horizon))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one reminder and expiry pass over every kind. It reports false
// without doing anything when another sweep is still in flight.
func (s *Sweeper) Sweep(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Debug("previous sweep still running, skipping")
		return false
	}
	defer s.running.Store(false)

	log := zap.L().With(zap.String("run_id", uuid.NewString()))
	now := s.now()

	var g errgroup.Group
	for _, kind := range domain.Kinds {
		kind := kind
		g.Go(func() error {
			return s.sweepKind(ctx, log, kind, now)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("sweep finished with errors", zap.Error(err))
	}
	return true
}

func (s *Sweeper) sweepKind(ctx context.Context, log *zap.Logger, kind domain.Kind, now time.Time) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	log = log.With(zap.String("kind", string(kind)))
	reminded, remindErr := s.remind(ctx, log, &wg, kind, now)
	expired, expireErr := s.expire(ctx, log, &wg, kind, now)

	if reminded > 0 || expired > 0 {
		log.Info("sweep done", zap.Int("reminded", reminded), zap.Int("expired", expired))
	}
	return errors.Join(remindErr, expireErr)
}

// remind claims each row before notifying, so a reminder goes out at most
// once even if two sweeps overlap or the notifier fails.
func (s *Sweeper) remind(ctx context.Context, log *zap.Logger, wg *sync.WaitGroup, kind domain.Kind, now time.Time) (int, error) {
	rows, err := s.repo.ListToRemind(ctx, kind, now, s.horizon)
	if err != nil {
		return 0, err
	}

	var errs []error
	count := 0
	for i := range rows {
		p := rows[i]
		claimed, err := s.repo.MarkReminded(ctx, kind, p.MessageID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !claimed {
			continue
		}
		count++

		err = s.dispatch(ctx, wg, func() error {
			text := notify.ReminderText(&p, notify.ResolveNames(ctx, s.notifier, &p), s.horizon)
			if err := s.notifier.Notify(ctx, p.ChannelID, text); err != nil {
				log.Warn("failed to send reminder", zap.Int64("message_id", p.MessageID), zap.Error(err))
			}
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return count, errors.Join(errs...)
}

// expire deletes rows past their deadline. A row that confirm or deny already
// removed comes back nil and is left alone.
func (s *Sweeper) expire(ctx context.Context, log *zap.Logger, wg *sync.WaitGroup, kind domain.Kind, now time.Time) (int, error) {
	rows, err := s.repo.ListExpired(ctx, kind, now)
	if err != nil {
		return 0, err
	}

	var errs []error
	count := 0
	for _, row := range rows {
		p, err := s.repo.DeleteExpired(ctx, kind, row.MessageID, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if p == nil {
			continue
		}
		count++

		err = s.dispatch(ctx, wg, func() error {
			text := notify.ExpiredText(p, notify.ResolveNames(ctx, s.notifier, p))
			err := s.notifier.EditPrompt(ctx, p.ChannelID, p.MessageID, text)
			switch {
			case err == nil:
			case errors.Is(err, notify.ErrPromptNotFound), errors.Is(err, notify.ErrForbidden):
				log.Debug("expired prompt no longer editable", zap.Int64("message_id", p.MessageID), zap.Error(err))
			default:
				log.Warn("failed to edit expired prompt", zap.Int64("message_id", p.MessageID), zap.Error(err))
			}
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return count, errors.Join(errs...)
}

func (s *Sweeper) dispatch(ctx context.Context, wg *sync.WaitGroup, task Task) error {
	wg.Add(1)
	err := s.workerPool.AddTask(ctx, func() error {
		defer wg.Done()
		return task()
	})
	if err != nil {
		wg.Done()
	}
	return err
}
