package commands_test

import (
	"sync"
	"time"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/infra/memstore"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/pkg/ids"
	"drivethru/internal/usecase/commands"
	"drivethru/tests/common/storetest"
	"drivethru/tests/common/testutil"
)

func (s *CommandsTestSuite) TestCheckIn() {
	s.Run("records the lane and greets the customer", func() {
		res, err := s.customers.CheckIn(s.ctx, " cust_1 ", "l1")
		s.Require().NoError(err)
		s.Equal("cust_1", res.CustomerID)
		s.Equal(lane.L1, res.LaneID)
		s.Equal(checkin.StatusCheckedIn, res.Status)

		s.Equal([]map[string]any{
			frame("type", "info", "text", "Checked in to L1. Enter station code to connect."),
		}, s.notifier.ToCustomer("cust_1"))
	})

	s.Run("validation", func() {
		s.notifier.Reset()

		_, err := s.customers.CheckIn(s.ctx, "  ", "L1")
		s.ErrorIs(err, checkin.ErrCustomerRequired)
		_, err = s.customers.CheckIn(s.ctx, "cust_1", "L7")
		s.ErrorIs(err, lane.ErrInvalidLane)

		s.Empty(s.notifier.All())
	})
}

func (s *CommandsTestSuite) TestConnect() {
	s.Run("opens an order and rotates the code", func() {
		_, err := s.customers.CheckIn(s.ctx, "cust_1", "L1")
		s.Require().NoError(err)
		code, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)
		s.notifier.Reset()

		res, err := s.customers.Connect(s.ctx, "cust_1", "L1", " "+code.Code+" ")
		s.Require().NoError(err)
		s.Equal("ord_0001", res.OrderID)
		s.Equal(order.StatusConnectedWaitingCashier, res.Status)

		stored := s.fx.Order(s.T(), "ord_0001")
		s.Equal("cust_1", stored.CustomerID())
		s.Equal(lane.L1, stored.LaneID())

		s.NotEqual(code.Code, s.fx.LaneCode(s.T(), lane.L1).Code().String())
		s.Equal([]map[string]any{
			frame("type", "info", "text", "Connected. Order ord_0001 created. Start ordering."),
		}, s.notifier.ToCustomer("cust_1"))
	})

	s.Run("a used code cannot be replayed", func() {
		_, err := s.customers.CheckIn(s.ctx, "cust_2", "L2")
		s.Require().NoError(err)
		code, err := s.lanes.CurrentCode(s.ctx, "L2")
		s.Require().NoError(err)

		_, err = s.customers.Connect(s.ctx, "cust_2", "L2", code.Code)
		s.Require().NoError(err)
		_, err = s.customers.Connect(s.ctx, "cust_2", "L2", code.Code)
		s.ErrorIs(err, lane.ErrInvalidCode)
	})

	s.Run("missing fields", func() {
		cases := [][3]string{
			{"", "L1", "1000"},
			{"cust_1", "", "1000"},
			{"cust_1", "L9", "1000"},
			{"cust_1", "L1", "  "},
		}
		for _, c := range cases {
			_, err := s.customers.Connect(s.ctx, c[0], c[1], c[2])
			s.ErrorIs(err, errs.ErrConnectFieldsRequired, "%v", c)
		}
	})

	s.Run("requires a check-in for the same lane", func() {
		_, err := s.customers.Connect(s.ctx, "cust_never", "L1", "1000")
		s.ErrorIs(err, errs.ErrNotCheckedIn)

		_, err = s.customers.CheckIn(s.ctx, "cust_3", "L1")
		s.Require().NoError(err)
		_, err = s.customers.CheckIn(s.ctx, "cust_3", "L2")
		s.Require().NoError(err)
		code, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)
		_, err = s.customers.Connect(s.ctx, "cust_3", "L1", code.Code)
		s.ErrorIs(err, errs.ErrNotCheckedIn)
	})

	s.Run("wrong code leaves no order behind", func() {
		_, err := s.customers.CheckIn(s.ctx, "cust_4", "L1")
		s.Require().NoError(err)
		s.notifier.Reset()

		_, err = s.customers.Connect(s.ctx, "cust_4", "L1", "0000")
		s.ErrorIs(err, lane.ErrInvalidCode)
		s.Empty(s.notifier.All())
	})
}

func (s *CommandsTestSuite) TestConnectAfterExpiry() {
	_, err := s.customers.CheckIn(s.ctx, "cust_1", "L1")
	s.Require().NoError(err)
	stale, err := s.lanes.CurrentCode(s.ctx, "L1")
	s.Require().NoError(err)

	s.clock.Add(10 * time.Minute)
	_, err = s.customers.Connect(s.ctx, "cust_1", "L1", stale.Code)
	s.ErrorIs(err, lane.ErrInvalidCode)

	// the lazy rotation done while verifying survives the rejection
	fresh := s.fx.LaneCode(s.T(), lane.L1)
	s.NotEqual(stale.Code, fresh.Code().String())
	s.True(fresh.IsActiveAt(s.clock.Now()))

	res, err := s.customers.Connect(s.ctx, "cust_1", "L1", fresh.Code().String())
	s.Require().NoError(err)
	s.NotEmpty(res.OrderID)
}

func (s *CommandsTestSuite) TestConnectNeverReissuesTheUsedCode() {
	s.wire(testutil.NewCodeSequence("4321", "4321", "4321", "8765"))

	_, err := s.customers.CheckIn(s.ctx, "cust_1", "L1")
	s.Require().NoError(err)
	code, err := s.lanes.CurrentCode(s.ctx, "L1")
	s.Require().NoError(err)
	s.Require().Equal("4321", code.Code)

	_, err = s.customers.Connect(s.ctx, "cust_1", "L1", code.Code)
	s.Require().NoError(err)
	s.Equal("8765", s.fx.LaneCode(s.T(), lane.L1).Code().String())
}

func (s *CommandsTestSuite) TestConcurrentConnectsAdmitOneOrder() {
	const customers = 8
	for i := 0; i < customers; i++ {
		_, err := s.customers.CheckIn(s.ctx, customerN(i), "L2")
		s.Require().NoError(err)
	}
	code, err := s.lanes.CurrentCode(s.ctx, "L2")
	s.Require().NoError(err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		opened   int
		rejected int
	)
	for i := 0; i < customers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := s.customers.Connect(s.ctx, id, "L2", code.Code)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				opened++
			} else if errs.Is(err, lane.ErrInvalidCode) {
				rejected++
			}
		}(customerN(i))
	}
	wg.Wait()

	s.Equal(1, opened)
	s.Equal(customers-1, rejected)
}

func (s *CommandsTestSuite) TestOpenHomeSeedsWallet() {
	seeded := 0
	store := memstore.NewStore(storetest.DiscardLogger(), memstore.WithSeedCards(func() []payment.Card {
		seeded++
		return payment.DemoCards()
	}))
	customers := commands.NewCustomerCommands(memstore.NewUnitOfWork(store), s.notifier, ids.NewSequenceGenerator(),
		testutil.NewCodeSequence("1000"), s.clock, s.cfg, storetest.DiscardLogger())

	s.Require().NoError(customers.OpenHome(s.ctx, "cust_home"))
	s.Require().NoError(customers.OpenHome(s.ctx, "cust_home"))
	s.Equal(1, seeded)

	cards, err := memstore.NewReadStore(store).Cards(s.ctx, "cust_home")
	s.Require().NoError(err)
	s.Len(cards, 2)
	s.Equal(1, seeded)
}

func customerN(i int) string {
	return "cust_" + string(rune('a'+i))
}
