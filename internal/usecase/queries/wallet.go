package queries

import (
	"context"
	"strings"

	"drivethru/internal/pkg/errs"
)

var ErrCustomerRequired = errs.New("customer_id required")

type WalletReadStore interface {
	// Cards seeds the demo wallet on first access, same as the write side.
	Cards(ctx context.Context, customerID string) ([]CardView, error)
}

type WalletQueries interface {
	ListCards(ctx context.Context, customerID string) ([]CardView, error)
}

type walletQueriesImpl struct {
	repo WalletReadStore
}

func NewWalletQueries(repo WalletReadStore) WalletQueries {
	return &walletQueriesImpl{repo: repo}
}

func (q *walletQueriesImpl) ListCards(ctx context.Context, customerID string) ([]CardView, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrCustomerRequired
	}
	cards, err := q.repo.Cards(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "list wallet cards")
	}
	return cards, nil
}
