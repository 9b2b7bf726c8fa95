package memstore_test

import (
	"context"
	"testing"

	"drivethru/internal/domain/order"
	"drivethru/internal/infra/memstore"
	"drivethru/internal/usecase/queries"
	"drivethru/tests/common/builder"
	"drivethru/tests/common/storetest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestReadStoreListOrders(t *testing.T) {
	fx := storetest.NewFixture()
	rs := memstore.NewReadStore(fx.Store)

	empty, err := rs.ListOrders(context.Background())
	require.NoError(t, err)
	require.Empty(t, empty)

	waiting := builder.NewOrderBuilder().WithID("ord_0001")
	confirmed := builder.NewOrderBuilder().WithID("ord_0002").
		WithStatus(order.StatusTotalConfirmedWaitingPayment).WithTotal("1x Burger", 1384)
	fx.SeedOrder(t, waiting.BuildDomain())
	fx.SeedOrder(t, confirmed.BuildDomain())

	items, err := rs.ListOrders(context.Background())
	require.NoError(t, err)

	want := []queries.OrderListItem{waiting.BuildListItem(), confirmed.BuildListItem()}
	sortByID := cmpopts.SortSlices(func(a, b queries.OrderListItem) bool { return a.OrderID < b.OrderID })
	if diff := cmp.Diff(want, items, sortByID); diff != "" {
		t.Errorf("order list mismatch (-want +got):\n%s", diff)
	}
}

func TestReadStoreCards(t *testing.T) {
	fx := storetest.NewFixture()
	rs := memstore.NewReadStore(fx.Store)

	views, err := rs.Cards(context.Background(), "cust_1")
	require.NoError(t, err)

	want := []queries.CardView{
		{CardID: "card_demo_1", Brand: "VISA", Last4: "4242", Exp: "12/29"},
		{CardID: "card_demo_2", Brand: "MASTERCARD", Last4: "4444", Exp: "08/28"},
	}
	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	// the seeded wallet is shared with the write side
	require.Len(t, fx.Cards(t, "cust_1"), 2)
}
