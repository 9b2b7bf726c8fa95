package memstore

import (
	"context"

	"drivethru/internal/infra"
	"drivethru/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReadStore struct {
	store *Store
}

func NewReadStore(store *Store) *ReadStore {
	return &ReadStore{store: store}
}

func (r *ReadStore) ListOrders(_ context.Context) ([]queries.OrderListItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]queries.OrderListItem, 0, len(r.store.orders))
	for _, rec := range r.store.orders {
		var item queries.OrderListItem
		if err := copier.Copy(&item, &rec); err != nil {
			return nil, infra.WrapRepoErr(r.store.logger, infra.KindInvalidRecord, "copy order "+rec.OrderID, err)
		}
		if rec.TotalCents != nil {
			item.TotalCents = *rec.TotalCents
		}
		items = append(items, item)
	}
	return items, nil
}

// Cards takes the write lock because a first read seeds the wallet.
func (r *ReadStore) Cards(_ context.Context, customerID string) ([]queries.CardView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, ok := r.store.wallets[customerID]
	if !ok {
		recs = r.store.seedWallet()
		r.store.wallets[customerID] = recs
	}

	views := make([]queries.CardView, 0, len(recs))
	if err := copier.Copy(&views, &recs); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindInvalidRecord, "copy wallet of "+customerID, err)
	}
	return views, nil
}
