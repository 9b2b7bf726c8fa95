package memstore

import (
	"context"

	"drivethru/internal/usecase/shared"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within holds the store's write lock for the whole callback, so a read-check-write sequence
// (for example verifying a lane code and rotating it) cannot interleave with another one.
// Writes are staged on the tx and applied only when fn returns nil; AfterCommit hooks then run
// in registration order before the lock is released.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := newMemTx(u.store)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	for _, hook := range tx.afterCommit {
		hook()
	}
	return nil
}

type memTx struct {
	store     *Store
	laneCodes map[string]laneCodeRecord
	checkIns  map[string]checkInRecord
	orders    map[string]orderRecord
	payments  map[string]paymentRecord
	wallets   map[string][]cardRecord

	afterCommit []func()
}

func newMemTx(store *Store) *memTx {
	return &memTx{
		store:     store,
		laneCodes: make(map[string]laneCodeRecord),
		checkIns:  make(map[string]checkInRecord),
		orders:    make(map[string]orderRecord),
		payments:  make(map[string]paymentRecord),
		wallets:   make(map[string][]cardRecord),
	}
}

func (t *memTx) LaneCodes() shared.LaneCodeRepository { return &laneCodeRepository{tx: t} }
func (t *memTx) CheckIns() shared.CheckInRepository   { return &checkInRepository{tx: t} }
func (t *memTx) Orders() shared.OrderRepository       { return &orderRepository{tx: t} }
func (t *memTx) Payments() shared.PaymentRepository   { return &paymentRepository{tx: t} }
func (t *memTx) Wallets() shared.WalletRepository     { return &walletRepository{tx: t} }

func (t *memTx) AfterCommit(fn func()) {
	t.afterCommit = append(t.afterCommit, fn)
}

// caller holds store.mu
func (t *memTx) commit() {
	s := t.store
	for k, v := range t.laneCodes {
		s.laneCodes[k] = v
	}
	for k, v := range t.checkIns {
		s.checkIns[k] = v
	}
	for k, v := range t.orders {
		s.orders[k] = v
	}
	for k, v := range t.payments {
		s.payments[k] = v
	}
	for k, v := range t.wallets {
		s.wallets[k] = v
	}
}
