package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"drivethru/internal/pkg/config"
	"drivethru/internal/usecase/commands"
)

// PaymentExpirySweeper periodically expires pending payment sessions that passed their deadline,
// so clients learn about it without having to attempt a payment.
type PaymentExpirySweeper struct {
	payments commands.PaymentCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPaymentExpirySweeper(payments commands.PaymentCommands, cfg config.Config, logger *slog.Logger) *PaymentExpirySweeper {
	return &PaymentExpirySweeper{
		payments: payments,
		interval: cfg.Payment.SweepInterval,
		logger:   logger.With("worker", "payment_expiry_sweeper"),
	}
}

func (s *PaymentExpirySweeper) Enabled() bool {
	return s.interval > 0
}

// Start launches the ticker loop. It returns immediately and is a no-op when disabled.
func (s *PaymentExpirySweeper) Start() {
	if !s.Enabled() {
		s.logger.Info("payment expiry sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
	s.logger.Info("payment expiry sweeper started", "interval", s.interval.String())
}

// Stop cancels the loop and waits for an in-flight sweep to finish or ctx to expire.
func (s *PaymentExpirySweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *PaymentExpirySweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single pass and returns the number of sessions it expired.
func (s *PaymentExpirySweeper) SweepOnce(ctx context.Context) int {
	n, err := s.payments.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("payment expiry sweep failed", "error", err)
		return 0
	}
	if n > 0 {
		s.logger.Info("expired overdue payment sessions", "count", n)
	}
	return n
}
