package memstore

import (
	"context"
	"time"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/infra"
)

// Every lookup checks the tx's staged writes first, then committed state.

func lookup[T any](staged, committed map[string]T, key string) (T, bool) {
	if v, ok := staged[key]; ok {
		return v, true
	}
	v, ok := committed[key]
	return v, ok
}

type laneCodeRepository struct {
	tx *memTx
}

func (r *laneCodeRepository) Find(_ context.Context, laneID lane.ID) (*lane.LaneCode, error) {
	rec, ok := lookup(r.tx.laneCodes, r.tx.store.laneCodes, laneID.String())
	if !ok {
		return nil, infra.NotFound("lane code " + laneID.String())
	}
	return rec.toDomain(), nil
}

func (r *laneCodeRepository) Save(_ context.Context, code *lane.LaneCode) error {
	r.tx.laneCodes[code.LaneID().String()] = toLaneCodeRecord(code)
	return nil
}

type checkInRepository struct {
	tx *memTx
}

func (r *checkInRepository) Find(_ context.Context, customerID string) (*checkin.CheckIn, error) {
	rec, ok := lookup(r.tx.checkIns, r.tx.store.checkIns, customerID)
	if !ok {
		return nil, infra.NotFound("check-in for " + customerID)
	}
	return rec.toDomain(), nil
}

func (r *checkInRepository) Save(_ context.Context, ci *checkin.CheckIn) error {
	r.tx.checkIns[ci.CustomerID()] = toCheckInRecord(ci)
	return nil
}

type orderRepository struct {
	tx *memTx
}

func (r *orderRepository) Create(_ context.Context, o *order.Order) error {
	if _, exists := lookup(r.tx.orders, r.tx.store.orders, o.ID()); exists {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "order "+o.ID()+" already exists", nil)
	}
	r.tx.orders[o.ID()] = toOrderRecord(o)
	return nil
}

func (r *orderRepository) FindByID(_ context.Context, orderID string) (*order.Order, error) {
	rec, ok := lookup(r.tx.orders, r.tx.store.orders, orderID)
	if !ok {
		return nil, infra.NotFound("order " + orderID)
	}
	return rec.toDomain(), nil
}

func (r *orderRepository) Update(_ context.Context, o *order.Order) error {
	if _, exists := lookup(r.tx.orders, r.tx.store.orders, o.ID()); !exists {
		return infra.NotFound("order " + o.ID())
	}
	r.tx.orders[o.ID()] = toOrderRecord(o)
	return nil
}

type paymentRepository struct {
	tx *memTx
}

func (r *paymentRepository) Create(_ context.Context, s *payment.Session) error {
	if _, exists := lookup(r.tx.payments, r.tx.store.payments, s.ID()); exists {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "payment session "+s.ID()+" already exists", nil)
	}
	r.tx.payments[s.ID()] = toPaymentRecord(s)
	return nil
}

func (r *paymentRepository) FindByID(_ context.Context, sessionID string) (*payment.Session, error) {
	rec, ok := lookup(r.tx.payments, r.tx.store.payments, sessionID)
	if !ok {
		return nil, infra.NotFound("payment session " + sessionID)
	}
	return rec.toDomain(), nil
}

func (r *paymentRepository) Update(_ context.Context, s *payment.Session) error {
	if _, exists := lookup(r.tx.payments, r.tx.store.payments, s.ID()); !exists {
		return infra.NotFound("payment session " + s.ID())
	}
	r.tx.payments[s.ID()] = toPaymentRecord(s)
	return nil
}

func (r *paymentRepository) ListPendingExpiredAt(_ context.Context, now time.Time) ([]*payment.Session, error) {
	cutoff := toNanos(now)
	var out []*payment.Session
	seen := make(map[string]bool, len(r.tx.payments))
	collect := func(id string, rec paymentRecord) {
		if seen[id] {
			return
		}
		seen[id] = true
		if rec.Status == payment.StatusPending.String() && cutoff > rec.ExpiresAt {
			out = append(out, rec.toDomain())
		}
	}
	for id, rec := range r.tx.payments {
		collect(id, rec)
	}
	for id, rec := range r.tx.store.payments {
		collect(id, rec)
	}
	return out, nil
}

type walletRepository struct {
	tx *memTx
}

func (r *walletRepository) Cards(_ context.Context, customerID string) ([]payment.Card, error) {
	recs, ok := lookup(r.tx.wallets, r.tx.store.wallets, customerID)
	if !ok {
		recs = r.tx.store.seedWallet()
		r.tx.wallets[customerID] = recs
	}
	cards := make([]payment.Card, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, rec.toDomain())
	}
	return cards, nil
}

func (r *walletRepository) AddCard(ctx context.Context, customerID string, card payment.Card) error {
	cards, err := r.Cards(ctx, customerID)
	if err != nil {
		return err
	}
	recs := make([]cardRecord, 0, len(cards)+1)
	for _, c := range cards {
		recs = append(recs, toCardRecord(c))
	}
	r.tx.wallets[customerID] = append(recs, toCardRecord(card))
	return nil
}
