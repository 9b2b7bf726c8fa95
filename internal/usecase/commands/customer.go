package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/pkg/clock"
	"drivethru/internal/pkg/config"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/pkg/ids"
	"drivethru/internal/usecase/shared"
)

const HomeGreeting = "Connected. Step 1: Tap ‘I’m Here’."

type CustomerCommands interface {
	CheckIn(ctx context.Context, customerID, laneID string) (*CheckInResult, error)
	// Connect verifies the lane code, opens an order and rotates the code in one unit of work.
	Connect(ctx context.Context, customerID, laneID, code string) (*ConnectResult, error)
	// OpenHome prepares a customer's push channel session (wallet seeding).
	OpenHome(ctx context.Context, customerID string) error
}

type customerCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	ids      ids.Generator
	clock    clock.Clock
	registry *laneRegistry
	logger   *slog.Logger
}

func NewCustomerCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	idGen ids.Generator,
	gen lane.CodeGenerator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CustomerCommands {
	return &customerCommandsImpl{
		uow:      uow,
		notifier: notifier,
		ids:      idGen,
		clock:    clk,
		registry: newLaneRegistry(gen, clk, cfg.Lane),
		logger:   logger,
	}
}

func (uc *customerCommandsImpl) CheckIn(ctx context.Context, customerID, laneID string) (*CheckInResult, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, checkin.ErrCustomerRequired
	}
	lid, err := lane.ParseID(laneID)
	if err != nil {
		return nil, err
	}
	ci, err := checkin.New(customerID, lid, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var outbox shared.Outbox
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		if derr := tx.CheckIns().Save(ctx, ci); derr != nil {
			return errs.Wrap(derr, "save check-in")
		}
		outbox.ToCustomer(ci.CustomerID(), shared.NewInfoEvent(
			fmt.Sprintf("Checked in to %s. Enter station code to connect.", lid)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckInResult{CustomerID: ci.CustomerID(), LaneID: lid, Status: checkin.StatusCheckedIn}, nil
}

func (uc *customerCommandsImpl) Connect(ctx context.Context, customerID, laneID, code string) (*ConnectResult, error) {
	cid := strings.TrimSpace(customerID)
	lid, laneErr := lane.ParseID(laneID)
	submitted, codeErr := lane.ParseCode(code)
	if cid == "" || laneErr != nil || codeErr != nil {
		return nil, errs.ErrConnectFieldsRequired
	}

	var (
		created   *order.Order
		verifyErr error
		outbox    shared.Outbox
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outbox.DeliverOnCommit(tx, uc.notifier)
		ci, derr := tx.CheckIns().Find(ctx, cid)
		if derr != nil && !errs.Is(derr, errs.ErrNotFound) {
			return derr
		}
		if ci == nil || !ci.IsFor(lid) {
			verifyErr = errs.ErrNotCheckedIn
			return nil
		}

		current, derr := uc.registry.current(ctx, tx, lid)
		if derr != nil {
			return derr
		}
		// a rejected code must not discard a lazy rotation done just above
		if verifyErr = current.Verify(submitted, uc.clock.Now()); verifyErr != nil {
			return nil
		}

		created = order.New(uc.ids.OrderID(), cid, lid, uc.clock.Now())
		if derr = tx.Orders().Create(ctx, created); derr != nil {
			return errs.Wrap(derr, "create order")
		}
		if _, derr = uc.registry.rotateFrom(ctx, tx, lid, submitted); derr != nil {
			return derr
		}

		outbox.ToCustomer(cid, shared.NewInfoEvent(
			fmt.Sprintf("Connected. Order %s created. Start ordering.", created.ID())))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if verifyErr != nil {
		uc.logger.Info("lane connect rejected", "customer_id", cid, "lane_id", lid, "reason", verifyErr.Error())
		return nil, verifyErr
	}

	uc.logger.Info("order opened", "order_id", created.ID(), "customer_id", cid, "lane_id", lid)
	return &ConnectResult{OrderID: created.ID(), Status: created.Status()}, nil
}

func (uc *customerCommandsImpl) OpenHome(ctx context.Context, customerID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Wallets().Cards(ctx, customerID)
		return err
	})
}
