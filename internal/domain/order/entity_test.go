package order_test

import (
	"fmt"
	"testing"
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newOrder() *order.Order {
	return order.New("ord_0001", "cust_1", lane.L1, now)
}

func TestOrder(t *testing.T) {
	t.Run("new order waits for a cashier", func(t *testing.T) {
		o := newOrder()
		assert.Equal(t, order.StatusConnectedWaitingCashier, o.Status())
		assert.Nil(t, o.TotalCents())
		assert.Nil(t, o.PaySessionID())
		assert.Empty(t, o.Messages())
		assert.True(t, o.IsOwnedBy("cust_1"))
		assert.False(t, o.IsOwnedBy("cust_2"))
	})

	t.Run("cashier connect applies from any status", func(t *testing.T) {
		o := newOrder()
		o.MarkPaid()
		o.MarkCashierConnected()
		assert.Equal(t, order.StatusCashierConnected, o.Status())
	})

	t.Run("confirm total supersedes the previous one", func(t *testing.T) {
		o := newOrder()
		first, _ := order.NewTotal(500)
		second, _ := order.NewTotal(1384)

		o.ConfirmTotal("1x Fries", first)
		o.ConfirmTotal("  1x Burger, 1x Fries  ", second)

		assert.Equal(t, order.StatusTotalConfirmedWaitingPayment, o.Status())
		assert.Equal(t, "1x Burger, 1x Fries", o.ItemsText())
		require.NotNil(t, o.TotalCents())
		assert.Equal(t, int64(1384), *o.TotalCents())
	})

	t.Run("payment outcomes", func(t *testing.T) {
		o := newOrder()
		o.AttachPaymentSession("pay_0001")
		require.NotNil(t, o.PaySessionID())
		assert.Equal(t, "pay_0001", *o.PaySessionID())

		o.MarkPaymentDeclined()
		assert.Equal(t, order.StatusPaymentDeclined, o.Status())
		o.MarkPaid()
		assert.Equal(t, order.StatusPaidReadyForPickup, o.Status())
	})
}

func TestOrderMessages(t *testing.T) {
	t.Run("append trims and validates", func(t *testing.T) {
		o := newOrder()
		msg, err := o.AppendMessage(order.SenderCustomer, "  one burger please ", now)
		require.NoError(t, err)
		assert.Equal(t, "one burger please", msg.Text())

		_, err = o.AppendMessage(order.SenderCashier, "   ", now)
		assert.ErrorIs(t, err, order.ErrEmptyMessage)
		_, err = o.AppendMessage(order.Sender("MANAGER"), "hi", now)
		assert.ErrorIs(t, err, order.ErrInvalidSender)

		assert.Len(t, o.Messages(), 1)
	})

	t.Run("recent messages keeps the newest, oldest first", func(t *testing.T) {
		o := newOrder()
		for i := 1; i <= 30; i++ {
			_, err := o.AppendMessage(order.SenderCustomer, fmt.Sprintf("m%d", i), now)
			require.NoError(t, err)
		}

		recent := o.RecentMessages(order.HistoryReplayLimit)
		require.Len(t, recent, 25)
		assert.Equal(t, "m6", recent[0].Text())
		assert.Equal(t, "m30", recent[24].Text())

		assert.Len(t, o.RecentMessages(100), 30)
		assert.Nil(t, o.RecentMessages(0))
	})

	t.Run("messages returns a copy", func(t *testing.T) {
		o := newOrder()
		_, _ = o.AppendMessage(order.SenderCustomer, "hello", now)
		msgs := o.Messages()
		msgs[0] = order.ReconstructMessage(order.SenderSystem, "tampered", now)

		got := []string{}
		for _, m := range o.Messages() {
			got = append(got, m.Text())
		}
		if diff := cmp.Diff([]string{"hello"}, got); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTotal(t *testing.T) {
	tests := []struct {
		cents   int64
		dollars string
		errIs   error
	}{
		{cents: 1384, dollars: "13.84"},
		{cents: 5, dollars: "0.05"},
		{cents: 100, dollars: "1.00"},
		{cents: 0, errIs: order.ErrInvalidTotal},
		{cents: -1, errIs: order.ErrInvalidTotal},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.cents), func(t *testing.T) {
			total, err := order.NewTotal(tt.cents)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dollars, total.Dollars())
		})
	}

	assert.Equal(t, "-2.50", order.FormatCents(-250))
}
