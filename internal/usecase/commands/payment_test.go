package commands_test

import (
	"time"

	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/usecase/commands"
	"drivethru/tests/common/builder"
)

const (
	approvedText = "✅ Payment approved. Move forward to pickup window."
	declinedText = "Payment declined. You can try again or pay at window."
)

func (s *CommandsTestSuite) TestPay() {
	s.Run("saved card", func() {
		orderID, sessionID := s.confirmed("cust_1")

		res, err := s.payments.Pay(s.ctx, commands.PayInput{
			SessionID: sessionID, CustomerID: "cust_1", Mode: "saved_card", CardID: "card_demo_1",
		})
		s.Require().NoError(err)
		s.Equal(payment.StatusApproved, res.Status)
		s.Require().NotNil(res.PaymentMethod)
		s.Equal("saved_card:VISA:4242", *res.PaymentMethod)

		s.Equal(order.StatusPaidReadyForPickup, s.fx.Order(s.T(), orderID).Status())
		s.Equal([]map[string]any{
			frame("type", "order_state", "status", "PAID_READY_FOR_PICKUP"),
			frame("type", "chat", "from", "SYSTEM", "text", approvedText),
			frame("type", "payment_status", "status", "APPROVED", "payment_method", "saved_card:VISA:4242"),
		}, s.notifier.ToOrder(orderID))
		s.Empty(s.fx.Order(s.T(), orderID).Messages())
	})

	s.Run("new card is saved to the wallet", func() {
		_, sessionID := s.confirmed("cust_2")

		res, err := s.payments.Pay(s.ctx, commands.PayInput{
			SessionID:  sessionID,
			CustomerID: "cust_2",
			Mode:       "new_card",
			NewCard:    &payment.NewCardInput{Number: "4111 1111 1111 1234", Exp: "01/30", CVV: "123"},
		})
		s.Require().NoError(err)
		s.Equal(payment.StatusApproved, res.Status)
		s.Equal("new_card:VISA:1234", *res.PaymentMethod)

		cards := s.fx.Cards(s.T(), "cust_2")
		s.Require().Len(cards, 3)
		s.Equal(payment.Card{ID: "card_0001", Brand: "VISA", Last4: "1234", Exp: "01/30"}, cards[2])
	})

	s.Run("wallet modes need no card data", func() {
		for _, mode := range []payment.Mode{payment.ModeGooglePay, payment.ModePayPal, payment.ModeOtherWallet} {
			_, sessionID := s.confirmed("cust_wallet")
			res, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_wallet", Mode: string(mode)})
			s.Require().NoError(err)
			s.Equal(payment.StatusApproved, res.Status)
			s.Equal(string(mode), *res.PaymentMethod)
		}
	})

	s.Run("another customer is forbidden and nothing changes", func() {
		orderID, sessionID := s.confirmed("cust_3")

		_, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_x", Mode: "paypal"})
		s.ErrorIs(err, errs.ErrCustomerMismatch)

		s.Equal(payment.StatusPending, s.fx.Session(s.T(), sessionID).Status())
		s.Equal(order.StatusTotalConfirmedWaitingPayment, s.fx.Order(s.T(), orderID).Status())
		s.Empty(s.notifier.All())
	})

	s.Run("invalid payloads keep the session pending", func() {
		_, sessionID := s.confirmed("cust_4")
		cases := []struct {
			input commands.PayInput
			errIs error
		}{
			{input: commands.PayInput{Mode: "saved_card", CardID: "card_nope"}, errIs: payment.ErrInvalidSavedCard},
			{input: commands.PayInput{Mode: "new_card"}, errIs: payment.ErrInvalidNewCard},
			{input: commands.PayInput{Mode: "new_card", NewCard: &payment.NewCardInput{Number: "4111", Exp: "01/30", CVV: "1"}}, errIs: payment.ErrInvalidNewCard},
			{input: commands.PayInput{Mode: "cash"}, errIs: payment.ErrUnsupportedMode},
		}
		for _, c := range cases {
			c.input.SessionID = sessionID
			c.input.CustomerID = "cust_4"
			_, err := s.payments.Pay(s.ctx, c.input)
			s.ErrorIs(err, c.errIs)
		}
		s.Equal(payment.StatusPending, s.fx.Session(s.T(), sessionID).Status())
		s.Len(s.fx.Cards(s.T(), "cust_4"), 2)
	})

	s.Run("unknown session", func() {
		_, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: "pay_nope", CustomerID: "cust_1", Mode: "paypal"})
		s.ErrorIs(err, errs.ErrPaymentSessionNotFound)
	})
}

func (s *CommandsTestSuite) TestPaySettledSessionIsANoOp() {
	orderID, sessionID := s.confirmed("cust_1")
	first, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_1", Mode: "paypal"})
	s.Require().NoError(err)
	s.notifier.Reset()

	again, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_1", Mode: "google_pay"})
	s.Require().NoError(err)
	s.Equal(first, again)

	declined, err := s.payments.Decline(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(payment.StatusApproved, declined.Status)

	s.Equal(order.StatusPaidReadyForPickup, s.fx.Order(s.T(), orderID).Status())
	s.Empty(s.notifier.All())
}

func (s *CommandsTestSuite) TestPayAfterExpiry() {
	s.Run("still payable at the deadline", func() {
		_, sessionID := s.confirmed("cust_1")
		s.clock.Set(s.fx.Session(s.T(), sessionID).ExpiresAt())

		res, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_1", Mode: "paypal"})
		s.Require().NoError(err)
		s.Equal(payment.StatusApproved, res.Status)
	})

	s.Run("expires instead of approving, whatever the payload", func() {
		orderID, sessionID := s.confirmed("cust_2")
		s.clock.Set(s.fx.Session(s.T(), sessionID).ExpiresAt().Add(time.Second))

		res, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_2", Mode: "cash"})
		s.Require().NoError(err)
		s.Equal(&commands.PayResult{PaySessionID: sessionID, Status: payment.StatusExpired}, res)

		s.Equal(payment.StatusExpired, s.fx.Session(s.T(), sessionID).Status())
		s.Equal(order.StatusTotalConfirmedWaitingPayment, s.fx.Order(s.T(), orderID).Status())
		s.Equal([]map[string]any{
			frame("type", "payment_status", "status", "EXPIRED", "payment_method", nil),
		}, s.notifier.ToOrder(orderID))

		again, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_2", Mode: "paypal"})
		s.Require().NoError(err)
		s.Equal(payment.StatusExpired, again.Status)
	})
}

func (s *CommandsTestSuite) TestDecline() {
	s.Run("declines the session and the order", func() {
		orderID, sessionID := s.confirmed("cust_1")

		res, err := s.payments.Decline(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(&commands.DeclineResult{PaySessionID: sessionID, Status: payment.StatusDeclined}, res)

		s.Equal(order.StatusPaymentDeclined, s.fx.Order(s.T(), orderID).Status())
		s.Equal([]map[string]any{
			frame("type", "order_state", "status", "PAYMENT_DECLINED"),
			frame("type", "chat", "from", "SYSTEM", "text", declinedText),
			frame("type", "payment_status", "status", "DECLINED", "payment_method", nil),
		}, s.notifier.ToOrder(orderID))
	})

	s.Run("second decline changes nothing", func() {
		_, sessionID := s.confirmed("cust_2")
		_, err := s.payments.Decline(s.ctx, sessionID)
		s.Require().NoError(err)
		s.notifier.Reset()

		res, err := s.payments.Decline(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(payment.StatusDeclined, res.Status)
		s.Empty(s.notifier.All())

		// a declined session cannot be paid afterwards
		paid, err := s.payments.Pay(s.ctx, commands.PayInput{SessionID: sessionID, CustomerID: "cust_2", Mode: "paypal"})
		s.Require().NoError(err)
		s.Equal(payment.StatusDeclined, paid.Status)
		s.Nil(paid.PaymentMethod)
	})

	s.Run("session without an order still reports its status", func() {
		orphan := builder.NewPaymentSessionBuilder().With(func(b *builder.PaymentSessionBuilder) {
			b.ID = "pay_orphan"
			b.OrderID = "ord_gone"
			b.ExpiresAt = s.clock.Now().Add(time.Minute)
		}).BuildDomain()
		s.fx.SeedSession(s.T(), orphan)
		s.notifier.Reset()

		res, err := s.payments.Decline(s.ctx, "pay_orphan")
		s.Require().NoError(err)
		s.Equal(payment.StatusDeclined, res.Status)
		s.Equal([]map[string]any{
			frame("type", "payment_status", "status", "DECLINED", "payment_method", nil),
		}, s.notifier.ToOrder("ord_gone"))
	})

	s.Run("unknown session", func() {
		_, err := s.payments.Decline(s.ctx, "pay_nope")
		s.ErrorIs(err, errs.ErrPaymentSessionNotFound)
	})
}

func (s *CommandsTestSuite) TestExpireOverdue() {
	_, overdue := s.confirmed("cust_1")
	s.clock.Add(4 * time.Minute)
	_, fresh := s.confirmed("cust_2")
	s.clock.Add(time.Minute + time.Second)

	n, err := s.payments.ExpireOverdue(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(payment.StatusExpired, s.fx.Session(s.T(), overdue).Status())
	s.Equal(payment.StatusPending, s.fx.Session(s.T(), fresh).Status())

	n, err = s.payments.ExpireOverdue(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}
