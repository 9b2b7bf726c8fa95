package storetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/infra/memstore"
	"drivethru/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Fixture is a fresh in-memory store plus its unit of work.
type Fixture struct {
	Store *memstore.Store
	UoW   shared.UnitOfWork
}

func NewFixture() *Fixture {
	store := memstore.NewStore(DiscardLogger())
	return &Fixture{Store: store, UoW: memstore.NewUnitOfWork(store)}
}

func (f *Fixture) within(t *testing.T, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, f.UoW.Within(context.Background(), fn))
}

func (f *Fixture) SeedOrder(t *testing.T, o *order.Order) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, o)
	})
}

func (f *Fixture) SeedSession(t *testing.T, s *payment.Session) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Create(ctx, s)
	})
}

func (f *Fixture) SeedCheckIn(t *testing.T, ci *checkin.CheckIn) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.CheckIns().Save(ctx, ci)
	})
}

func (f *Fixture) SeedLaneCode(t *testing.T, code *lane.LaneCode) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.LaneCodes().Save(ctx, code)
	})
}

func (f *Fixture) Order(t *testing.T, orderID string) *order.Order {
	t.Helper()
	var o *order.Order
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		o, err = tx.Orders().FindByID(ctx, orderID)
		return err
	})
	return o
}

func (f *Fixture) Session(t *testing.T, sessionID string) *payment.Session {
	t.Helper()
	var s *payment.Session
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		s, err = tx.Payments().FindByID(ctx, sessionID)
		return err
	})
	return s
}

func (f *Fixture) LaneCode(t *testing.T, laneID lane.ID) *lane.LaneCode {
	t.Helper()
	var c *lane.LaneCode
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		c, err = tx.LaneCodes().Find(ctx, laneID)
		return err
	})
	return c
}

func (f *Fixture) Cards(t *testing.T, customerID string) []payment.Card {
	t.Helper()
	var cards []payment.Card
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cards, err = tx.Wallets().Cards(ctx, customerID)
		return err
	})
	return cards
}
