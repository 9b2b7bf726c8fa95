package queries

import (
	"context"
	"sort"
)

type OrderReadStore interface {
	ListOrders(ctx context.Context) ([]OrderListItem, error)
}

type OrderQueries interface {
	ListForCashier(ctx context.Context) ([]OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// ListForCashier returns every order, newest id first (plain string order on order_id).
func (q *orderQueriesImpl) ListForCashier(ctx context.Context) ([]OrderListItem, error) {
	items, err := q.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].OrderID > items[j].OrderID
	})
	if items == nil {
		items = []OrderListItem{}
	}
	return items, nil
}
