package order

import (
	"strings"
	"time"

	"drivethru/internal/domain/lane"
)

type Order struct {
	id           string
	customerID   string
	laneID       lane.ID
	status       Status
	messages     []Message
	itemsText    string
	totalCents   *int64
	paySessionID *string
	createdAt    time.Time
}

// New opens an order right after a successful lane connect.
func New(id, customerID string, laneID lane.ID, now time.Time) *Order {
	return &Order{
		id:         id,
		customerID: customerID,
		laneID:     laneID,
		status:     StatusConnectedWaitingCashier,
		createdAt:  now,
	}
}

func Reconstruct(
	id, customerID string,
	laneID lane.ID,
	status Status,
	messages []Message,
	itemsText string,
	totalCents *int64,
	paySessionID *string,
	createdAt time.Time,
) *Order {
	return &Order{
		id:           id,
		customerID:   customerID,
		laneID:       laneID,
		status:       status,
		messages:     messages,
		itemsText:    itemsText,
		totalCents:   totalCents,
		paySessionID: paySessionID,
		createdAt:    createdAt,
	}
}

func (o *Order) ID() string            { return o.id }
func (o *Order) CustomerID() string    { return o.customerID }
func (o *Order) LaneID() lane.ID       { return o.laneID }
func (o *Order) Status() Status        { return o.status }
func (o *Order) ItemsText() string     { return o.itemsText }
func (o *Order) TotalCents() *int64    { return o.totalCents }
func (o *Order) PaySessionID() *string { return o.paySessionID }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) Messages() []Message   { return append([]Message(nil), o.messages...) }

func (o *Order) IsOwnedBy(customerID string) bool {
	return o.customerID == customerID
}

// MarkCashierConnected applies regardless of the current status; a cashier may rejoin at any point.
func (o *Order) MarkCashierConnected() {
	o.status = StatusCashierConnected
}

// ConfirmTotal may be repeated; each call supersedes the previous total.
func (o *Order) ConfirmTotal(itemsText string, total Total) {
	cents := total.Cents()
	o.itemsText = strings.TrimSpace(itemsText)
	o.totalCents = &cents
	o.status = StatusTotalConfirmedWaitingPayment
}

func (o *Order) AttachPaymentSession(paySessionID string) {
	o.paySessionID = &paySessionID
}

func (o *Order) MarkPaid() {
	o.status = StatusPaidReadyForPickup
}

func (o *Order) MarkPaymentDeclined() {
	o.status = StatusPaymentDeclined
}

func (o *Order) AppendMessage(from Sender, text string, now time.Time) (Message, error) {
	msg, err := NewMessage(from, text, now)
	if err != nil {
		return Message{}, err
	}
	o.messages = append(o.messages, msg)
	return msg, nil
}

// RecentMessages returns at most n of the latest messages, oldest first.
func (o *Order) RecentMessages(n int) []Message {
	if n <= 0 {
		return nil
	}
	start := 0
	if len(o.messages) > n {
		start = len(o.messages) - n
	}
	return append([]Message(nil), o.messages[start:]...)
}
