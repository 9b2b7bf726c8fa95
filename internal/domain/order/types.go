package order

import "drivethru/internal/pkg/errs"

var (
	ErrInvalidTotal  = errs.New("total_cents must be > 0")
	ErrEmptyMessage  = errs.New("message text is empty")
	ErrInvalidSender = errs.New("invalid message sender")
)

type Status string

const (
	StatusConnectedWaitingCashier      Status = "CONNECTED_WAITING_CASHIER"
	StatusCashierConnected             Status = "CASHIER_CONNECTED"
	StatusTotalConfirmedWaitingPayment Status = "TOTAL_CONFIRMED_WAITING_PAYMENT"
	StatusPaidReadyForPickup           Status = "PAID_READY_FOR_PICKUP"
	StatusPaymentDeclined              Status = "PAYMENT_DECLINED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConnectedWaitingCashier, StatusCashierConnected, StatusTotalConfirmedWaitingPayment,
		StatusPaidReadyForPickup, StatusPaymentDeclined:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

type Sender string

const (
	SenderCustomer Sender = "CUSTOMER"
	SenderCashier  Sender = "CASHIER"
	SenderSystem   Sender = "SYSTEM"
)

func (s Sender) IsValid() bool {
	switch s {
	case SenderCustomer, SenderCashier, SenderSystem:
		return true
	default:
		return false
	}
}

// HistoryReplayLimit is how many messages a (re)joining cashier receives.
const HistoryReplayLimit = 25
