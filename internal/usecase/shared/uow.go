package shared

import (
	"context"
	"time"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
)

type UnitOfWork interface {
	// Within: serialized read-modify-write; writes become visible only if fn returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	LaneCodes() LaneCodeRepository
	CheckIns() CheckInRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Wallets() WalletRepository
	// AfterCommit runs fn once the writes are applied, still inside the serialized section.
	// Hooks must not block and must not open another unit of work.
	AfterCommit(fn func())
}

// Repositories return errors marked with errs.ErrNotFound for missing records.

type LaneCodeRepository interface {
	Find(ctx context.Context, laneID lane.ID) (*lane.LaneCode, error)
	Save(ctx context.Context, code *lane.LaneCode) error
}

type CheckInRepository interface {
	Find(ctx context.Context, customerID string) (*checkin.CheckIn, error)
	Save(ctx context.Context, ci *checkin.CheckIn) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, orderID string) (*order.Order, error)
	Update(ctx context.Context, o *order.Order) error
}

type PaymentRepository interface {
	Create(ctx context.Context, s *payment.Session) error
	FindByID(ctx context.Context, sessionID string) (*payment.Session, error)
	Update(ctx context.Context, s *payment.Session) error
	ListPendingExpiredAt(ctx context.Context, now time.Time) ([]*payment.Session, error)
}

type WalletRepository interface {
	// Cards seeds the demo cards the first time a customer's wallet is touched.
	Cards(ctx context.Context, customerID string) ([]payment.Card, error)
	AddCard(ctx context.Context, customerID string, card payment.Card) error
}
