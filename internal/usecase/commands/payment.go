package commands

import (
	"context"
	"log/slog"
	"strings"

	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/pkg/clock"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/pkg/ids"
	"drivethru/internal/usecase/shared"
)

const (
	declinedNotice = "Payment declined. You can try again or pay at window."
	approvedNotice = "✅ Payment approved. Move forward to pickup window."
)

type PaymentCommands interface {
	// Decline is a no-op on sessions that are no longer pending.
	Decline(ctx context.Context, sessionID string) (*DeclineResult, error)
	Pay(ctx context.Context, input PayInput) (*PayResult, error)
	// ExpireOverdue closes every pending session past its deadline and returns how many it closed.
	ExpireOverdue(ctx context.Context) (int, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	ids      ids.Generator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	idGen ids.Generator,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		notifier: notifier,
		ids:      idGen,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *paymentCommandsImpl) Decline(ctx context.Context, sessionID string) (*DeclineResult, error) {
	var (
		result *DeclineResult
		outbox shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		s, err := findSession(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		result = &DeclineResult{PaySessionID: s.ID(), Status: s.Status()}
		if !s.IsPending() {
			return nil
		}

		if err := s.Decline(); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, s); err != nil {
			return errs.Wrap(err, "update payment session")
		}
		if err := uc.settleOrder(ctx, tx, &outbox, s, (*order.Order).MarkPaymentDeclined, declinedNotice); err != nil {
			return err
		}
		result.Status = s.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *paymentCommandsImpl) Pay(ctx context.Context, input PayInput) (*PayResult, error) {
	var (
		result *PayResult
		outbox shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		s, err := findSession(ctx, tx, input.SessionID)
		if err != nil {
			return err
		}
		if !s.IsOwnedBy(strings.TrimSpace(input.CustomerID)) {
			return errs.ErrCustomerMismatch
		}
		if !s.IsPending() {
			result = toPayResult(s)
			return nil
		}
		if s.IsExpiredAt(uc.clock.Now()) {
			if err := uc.expire(ctx, tx, &outbox, s); err != nil {
				return err
			}
			result = toPayResult(s)
			return nil
		}

		method, err := uc.resolveMethod(ctx, tx, s.CustomerID(), input)
		if err != nil {
			return err
		}
		if err := s.Approve(method); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, s); err != nil {
			return errs.Wrap(err, "update payment session")
		}
		if err := uc.settleOrder(ctx, tx, &outbox, s, (*order.Order).MarkPaid, approvedNotice); err != nil {
			return err
		}
		result = toPayResult(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == payment.StatusApproved {
		uc.logger.Info("payment approved", "pay_session_id", result.PaySessionID, "payment_method", *result.PaymentMethod)
	}
	return result, nil
}

func (uc *paymentCommandsImpl) ExpireOverdue(ctx context.Context) (int, error) {
	var (
		expired int
		outbox  shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		overdue, err := tx.Payments().ListPendingExpiredAt(ctx, uc.clock.Now())
		if err != nil {
			return errs.Wrap(err, "list overdue payment sessions")
		}
		for _, s := range overdue {
			if err := uc.expire(ctx, tx, &outbox, s); err != nil {
				return err
			}
		}
		expired = len(overdue)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

// resolveMethod validates the mode payload and returns the method string recorded on approval.
func (uc *paymentCommandsImpl) resolveMethod(ctx context.Context, tx shared.Tx, customerID string, input PayInput) (string, error) {
	mode, err := payment.ParseMode(input.Mode)
	if err != nil {
		return "", err
	}

	switch {
	case mode == payment.ModeSavedCard:
		cards, err := tx.Wallets().Cards(ctx, customerID)
		if err != nil {
			return "", err
		}
		card, ok := payment.FindCard(cards, input.CardID)
		if !ok {
			return "", payment.ErrInvalidSavedCard
		}
		return payment.SavedCardMethod(card), nil

	case mode == payment.ModeNewCard:
		if input.NewCard == nil {
			return "", payment.ErrInvalidNewCard
		}
		card, err := input.NewCard.ToCard(uc.ids.CardID())
		if err != nil {
			return "", err
		}
		if err := tx.Wallets().AddCard(ctx, customerID, card); err != nil {
			return "", errs.Wrap(err, "add card")
		}
		return payment.NewCardMethod(card), nil

	case mode.IsWallet():
		return string(mode), nil
	}
	return "", payment.ErrUnsupportedMode
}

func (uc *paymentCommandsImpl) expire(ctx context.Context, tx shared.Tx, outbox *shared.Outbox, s *payment.Session) error {
	if err := s.Expire(); err != nil {
		return err
	}
	if err := tx.Payments().Update(ctx, s); err != nil {
		return errs.Wrap(err, "update payment session")
	}
	outbox.ToOrder(s.OrderID(), shared.NewPaymentStatusEvent(s.Status().String(), nil))
	uc.logger.Info("payment session expired", "pay_session_id", s.ID(), "order_id", s.OrderID())
	return nil
}

// settleOrder applies a payment outcome to the linked order and queues the relay events.
// The notices are relayed, not added to the order history.
func (uc *paymentCommandsImpl) settleOrder(
	ctx context.Context,
	tx shared.Tx,
	outbox *shared.Outbox,
	s *payment.Session,
	apply func(*order.Order),
	notice string,
) error {
	o, err := tx.Orders().FindByID(ctx, s.OrderID())
	switch {
	case err == nil:
		apply(o)
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Wrap(err, "update order")
		}
		outbox.ToOrder(o.ID(), shared.NewOrderStateEvent(o.Status().String()))
		outbox.ToOrder(o.ID(), shared.NewChatEvent(string(order.SenderSystem), notice))
	case errs.Is(err, errs.ErrNotFound):
		uc.logger.Warn("payment session without order", "pay_session_id", s.ID(), "order_id", s.OrderID())
	default:
		return errs.Wrapf(err, "order %s of payment session %s", s.OrderID(), s.ID())
	}

	outbox.ToOrder(s.OrderID(), shared.NewPaymentStatusEvent(s.Status().String(), s.PaymentMethod()))
	return nil
}

func findSession(ctx context.Context, tx shared.Tx, sessionID string) (*payment.Session, error) {
	s, err := tx.Payments().FindByID(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrPaymentSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func toPayResult(s *payment.Session) *PayResult {
	return &PayResult{PaySessionID: s.ID(), Status: s.Status(), PaymentMethod: s.PaymentMethod()}
}
