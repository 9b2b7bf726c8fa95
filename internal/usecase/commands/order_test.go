package commands_test

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/usecase/commands"
)

func (s *CommandsTestSuite) TestJoinAsCustomer() {
	orderID := s.connect("cust_1", lane.L1)

	access, err := s.orders.JoinAsCustomer(s.ctx, orderID, "cust_1")
	s.Require().NoError(err)
	s.Equal(&commands.OrderAccess{OrderID: orderID, Status: order.StatusConnectedWaitingCashier}, access)

	_, err = s.orders.JoinAsCustomer(s.ctx, orderID, "cust_2")
	s.ErrorIs(err, errs.ErrCustomerMismatch)
	_, err = s.orders.JoinAsCustomer(s.ctx, "ord_nope", "cust_1")
	s.ErrorIs(err, errs.ErrOrderNotFound)
}

func (s *CommandsTestSuite) TestJoinAsCashier() {
	s.Run("marks the order and broadcasts a snapshot", func() {
		orderID := s.connect("cust_1", lane.L1)
		s.notifier.Reset()

		res, err := s.orders.JoinAsCashier(s.ctx, orderID, nil)
		s.Require().NoError(err)
		s.Equal(order.StatusCashierConnected, res.Status)
		s.Empty(res.History)
		s.Equal(order.StatusCashierConnected, s.fx.Order(s.T(), orderID).Status())

		s.Equal([]map[string]any{
			frame("type", "order_state", "status", "CASHIER_CONNECTED", "items_text", "", "total_cents", nil),
		}, s.notifier.ToOrder(orderID))
	})

	s.Run("replays the last 25 messages", func() {
		orderID := s.connect("cust_2", lane.L2)
		for i := 1; i <= 30; i++ {
			from := order.SenderCustomer
			if i%2 == 0 {
				from = order.SenderCashier
			}
			s.Require().NoError(s.orders.PostChat(s.ctx, orderID, from, fmt.Sprintf("line %d", i)))
		}

		res, err := s.orders.JoinAsCashier(s.ctx, orderID, nil)
		s.Require().NoError(err)
		s.Require().Len(res.History, order.HistoryReplayLimit)
		s.Equal(commands.ChatLine{From: order.SenderCashier, Text: "line 6"}, res.History[0])
		s.Equal(commands.ChatLine{From: order.SenderCashier, Text: "line 30"}, res.History[24])
	})

	s.Run("rejoin after payment forces cashier connected", func() {
		orderID, sessionID := s.confirmed("cust_3")
		_, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_3", Mode: "paypal"})
		s.Require().NoError(err)

		res, err := s.orders.JoinAsCashier(s.ctx, orderID, nil)
		s.Require().NoError(err)
		s.Equal(order.StatusCashierConnected, res.Status)
	})

	s.Run("unknown order", func() {
		_, err := s.orders.JoinAsCashier(s.ctx, "ord_nope", nil)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}

func (s *CommandsTestSuite) TestJoinAsCashierSeat() {
	s.Run("seat receives the snapshot and history after the broadcast", func() {
		orderID := s.connect("cust_1", lane.L1)
		s.Require().NoError(s.orders.PostChat(s.ctx, orderID, order.SenderCustomer, "one burger"))
		s.notifier.Reset()

		var seated *commands.CashierJoinResult
		res, err := s.orders.JoinAsCashier(s.ctx, "  "+orderID+" ", func(joined *commands.CashierJoinResult) {
			s.Len(s.notifier.ToOrder(orderID), 1, "the snapshot is out before the seat runs")
			seated = joined
		})
		s.Require().NoError(err)
		s.Same(res, seated)
		s.Equal(orderID, res.OrderID, "the stored id is returned for padded input")
		s.Equal("CASHIER_CONNECTED", res.Snapshot.Status)
		s.Equal([]commands.ChatLine{{From: order.SenderCustomer, Text: "one burger"}}, res.History)
	})

	s.Run("chat posted while seating is relayed afterwards and not replayed", func() {
		orderID := s.connect("cust_2", lane.L2)
		s.notifier.Reset()

		posted := make(chan error, 1)
		res, err := s.orders.JoinAsCashier(s.ctx, orderID, func(*commands.CashierJoinResult) {
			go func() { posted <- s.orders.PostChat(s.ctx, orderID, order.SenderCustomer, "hello?") }()
			s.Never(func() bool { return len(s.notifier.ToOrder(orderID)) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
		})
		s.Require().NoError(err)
		s.Require().NoError(<-posted)

		s.Empty(res.History)
		s.Equal([]map[string]any{
			frame("type", "order_state", "status", "CASHIER_CONNECTED", "items_text", "", "total_cents", nil),
			frame("type", "chat", "from", "CUSTOMER", "text", "hello?"),
		}, s.notifier.ToOrder(orderID))
	})

	s.Run("seat is skipped for an unknown order", func() {
		_, err := s.orders.JoinAsCashier(s.ctx, "ord_nope", func(*commands.CashierJoinResult) {
			s.Fail("seat must not run")
		})
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}

func (s *CommandsTestSuite) TestPostChatRelaysInCommitOrder() {
	orderID := s.connect("cust_1", lane.L1)
	s.notifier.Reset()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.NoError(s.orders.PostChat(s.ctx, orderID, order.SenderCustomer, fmt.Sprintf("line %d", i)))
		}(i)
	}
	wg.Wait()

	var relayed []string
	for _, f := range s.notifier.ToOrder(orderID) {
		relayed = append(relayed, f["text"].(string))
	}
	var stored []string
	for _, m := range s.fx.Order(s.T(), orderID).Messages() {
		stored = append(stored, m.Text())
	}
	s.Require().Len(stored, writers)
	s.Equal(strings.Join(stored, "|"), strings.Join(relayed, "|"))
}

func (s *CommandsTestSuite) TestPostChat() {
	orderID := s.connect("cust_1", lane.L1)
	s.notifier.Reset()

	s.Require().NoError(s.orders.PostChat(s.ctx, orderID, order.SenderCustomer, "  One burger please "))
	s.Require().NoError(s.orders.PostChat(s.ctx, orderID, order.SenderCashier, "Anything else?"))

	s.Equal([]map[string]any{
		frame("type", "chat", "from", "CUSTOMER", "text", "One burger please"),
		frame("type", "chat", "from", "CASHIER", "text", "Anything else?"),
	}, s.notifier.ToOrder(orderID))

	msgs := s.fx.Order(s.T(), orderID).Messages()
	s.Require().Len(msgs, 2)
	s.Equal(s.clock.Now(), msgs[0].SentAt())

	s.ErrorIs(s.orders.PostChat(s.ctx, orderID, order.SenderCustomer, " "), order.ErrEmptyMessage)
	s.ErrorIs(s.orders.PostChat(s.ctx, "ord_nope", order.SenderCustomer, "hi"), errs.ErrOrderNotFound)
}

func (s *CommandsTestSuite) TestConfirmTotal() {
	s.Run("confirms, opens a payment session and asks the customer to pay", func() {
		orderID := s.connect("cust_1", lane.L1)
		s.notifier.Reset()

		res, err := s.orders.ConfirmTotal(s.ctx, orderID, " 1x Burger, 1x Fries ", 1384)
		s.Require().NoError(err)
		s.Equal(&commands.ConfirmTotalResult{
			OrderID:      orderID,
			PaySessionID: "pay_0001",
			Status:       commands.StatusPaymentRequested,
		}, res)

		stored := s.fx.Order(s.T(), orderID)
		s.Equal(order.StatusTotalConfirmedWaitingPayment, stored.Status())
		s.Equal("1x Burger, 1x Fries", stored.ItemsText())
		s.Equal("pay_0001", *stored.PaySessionID())
		s.Empty(stored.Messages(), "the confirmation line is relayed, not stored")

		session := s.fx.Session(s.T(), "pay_0001")
		s.Equal(payment.StatusPending, session.Status())
		s.Equal(int64(1384), session.AmountCents())
		s.Equal("USD", session.Currency())
		s.Equal("DriveThru Demo", session.MerchantName())
		s.Equal(s.clock.Now().Add(5*time.Minute), session.ExpiresAt())

		s.Equal([]map[string]any{
			frame("type", "order_state", "status", "TOTAL_CONFIRMED_WAITING_PAYMENT",
				"items_text", "1x Burger, 1x Fries", "total_cents", float64(1384)),
			frame("type", "chat", "from", "CASHIER", "text", "Total confirmed: $13.84. Please pay in the app."),
		}, s.notifier.ToOrder(orderID))
		s.Equal([]map[string]any{
			frame("type", "payment_request", "pay_session_id", "pay_0001", "order_id", orderID,
				"merchant_name", "DriveThru Demo", "amount_cents", float64(1384), "currency", "USD"),
		}, s.notifier.ToCustomer("cust_1"))
	})

	s.Run("a second confirmation opens a new session", func() {
		orderID := s.connect("cust_2", lane.L2)
		first, err := s.orders.ConfirmTotal(s.ctx, orderID, "1x Shake", 500)
		s.Require().NoError(err)
		second, err := s.orders.ConfirmTotal(s.ctx, orderID, "2x Shake", 1000)
		s.Require().NoError(err)

		s.NotEqual(first.PaySessionID, second.PaySessionID)
		stored := s.fx.Order(s.T(), orderID)
		s.Equal(second.PaySessionID, *stored.PaySessionID())
		s.Equal(int64(1000), *stored.TotalCents())
	})

	s.Run("non-positive totals change nothing", func() {
		orderID := s.connect("cust_3", lane.L1)
		s.notifier.Reset()

		for _, cents := range []int64{0, -100} {
			_, err := s.orders.ConfirmTotal(s.ctx, orderID, "1x Burger", cents)
			s.ErrorIs(err, order.ErrInvalidTotal)
		}
		stored := s.fx.Order(s.T(), orderID)
		s.Equal(order.StatusConnectedWaitingCashier, stored.Status())
		s.Nil(stored.PaySessionID())
		s.Empty(s.notifier.All())
	})

	s.Run("unknown order wins over a bad total", func() {
		_, err := s.orders.ConfirmTotal(s.ctx, "ord_nope", "", 0)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}
