package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/pkg/clock"
	"drivethru/internal/pkg/config"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/pkg/ids"
	"drivethru/internal/usecase/shared"
)

type OrderCommands interface {
	// JoinAsCustomer checks that the order exists and belongs to the customer.
	JoinAsCustomer(ctx context.Context, orderID, customerID string) (*OrderAccess, error)
	// JoinAsCashier forces CASHIER_CONNECTED and relays the snapshot to the peers already attached.
	// seat then runs inside the same serialized section with the snapshot and recent history, so no
	// chat is relayed between the replay and the cashier's attachment. seat may be nil.
	JoinAsCashier(ctx context.Context, orderID string, seat func(*CashierJoinResult)) (*CashierJoinResult, error)
	PostChat(ctx context.Context, orderID string, from order.Sender, text string) error
	ConfirmTotal(ctx context.Context, orderID, itemsText string, totalCents int64) (*ConfirmTotalResult, error)
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	notifier   shared.Notifier
	ids        ids.Generator
	clock      clock.Clock
	sessionTTL time.Duration
	currency   string
	merchant   string
	logger     *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	idGen ids.Generator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		notifier:   notifier,
		ids:        idGen,
		clock:      clk,
		sessionTTL: cfg.Payment.SessionTTL,
		currency:   cfg.Payment.Currency,
		merchant:   cfg.Payment.MerchantName,
		logger:     logger,
	}
}

func (uc *orderCommandsImpl) JoinAsCustomer(ctx context.Context, orderID, customerID string) (*OrderAccess, error) {
	var access *OrderAccess
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := findOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(customerID) {
			return errs.ErrCustomerMismatch
		}
		access = &OrderAccess{OrderID: o.ID(), Status: o.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return access, nil
}

func (uc *orderCommandsImpl) JoinAsCashier(ctx context.Context, orderID string, seat func(*CashierJoinResult)) (*CashierJoinResult, error) {
	var (
		result *CashierJoinResult
		outbox shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		o, err := findOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		o.MarkCashierConnected()
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Wrap(err, "update order")
		}

		snapshot := snapshotOf(o)
		outbox.ToOrder(o.ID(), snapshot)
		joined := &CashierJoinResult{
			OrderID:  o.ID(),
			Status:   o.Status(),
			Snapshot: snapshot,
			History:  toChatLines(o.RecentMessages(order.HistoryReplayLimit)),
		}
		if seat != nil {
			// registered after the outbox, so it runs once the snapshot is out
			tx.AfterCommit(func() { seat(joined) })
		}
		result = joined
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cashier joined order", "order_id", result.OrderID, "history", len(result.History))
	return result, nil
}

func (uc *orderCommandsImpl) PostChat(ctx context.Context, orderID string, from order.Sender, text string) error {
	var outbox shared.Outbox
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		o, err := findOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		msg, err := o.AppendMessage(from, text, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Wrap(err, "update order")
		}
		outbox.ToOrder(o.ID(), shared.NewChatEvent(string(msg.From()), msg.Text()))
		return nil
	})
}

func (uc *orderCommandsImpl) ConfirmTotal(ctx context.Context, orderID, itemsText string, totalCents int64) (*ConfirmTotalResult, error) {
	var (
		result *ConfirmTotalResult
		outbox shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		o, err := findOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		total, err := order.NewTotal(totalCents)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		o.ConfirmTotal(itemsText, total)
		outbox.ToOrder(o.ID(), snapshotOf(o))
		// relayed only; the order history keeps what people typed
		outbox.ToOrder(o.ID(), shared.NewChatEvent(string(order.SenderCashier),
			fmt.Sprintf("Total confirmed: $%s. Please pay in the app.", total.Dollars())))

		session, err := payment.NewSession(
			uc.ids.PaymentSessionID(), o.ID(), o.CustomerID(),
			total.Cents(), uc.currency, uc.merchant, now.Add(uc.sessionTTL),
		)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, session); err != nil {
			return errs.Wrap(err, "create payment session")
		}
		o.AttachPaymentSession(session.ID())
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Wrap(err, "update order")
		}

		outbox.ToCustomer(o.CustomerID(), shared.PaymentRequestEvent{
			Type:         shared.EventPaymentRequest,
			PaySessionID: session.ID(),
			OrderID:      o.ID(),
			MerchantName: session.MerchantName(),
			AmountCents:  session.AmountCents(),
			Currency:     session.Currency(),
		})
		result = &ConfirmTotalResult{OrderID: o.ID(), PaySessionID: session.ID(), Status: StatusPaymentRequested}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("total confirmed", "order_id", result.OrderID, "pay_session_id", result.PaySessionID, "total_cents", totalCents)
	return result, nil
}

func findOrder(ctx context.Context, tx shared.Tx, orderID string) (*order.Order, error) {
	o, err := tx.Orders().FindByID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func snapshotOf(o *order.Order) shared.OrderSnapshotEvent {
	return shared.NewOrderSnapshotEvent(o.Status().String(), o.ItemsText(), o.TotalCents())
}

func toChatLines(msgs []order.Message) []ChatLine {
	lines := make([]ChatLine, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, ChatLine{From: m.From(), Text: m.Text()})
	}
	return lines
}
