package builder

import (
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/usecase/queries"
)

var BaseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type OrderBuilder struct {
	ID           string
	CustomerID   string
	LaneID       lane.ID
	Status       order.Status
	Messages     []order.Message
	ItemsText    string
	TotalCents   *int64
	PaySessionID *string
	CreatedAt    time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:         "ord_0001",
		CustomerID: "cust_1",
		LaneID:     lane.L1,
		Status:     order.StatusConnectedWaitingCashier,
		CreatedAt:  BaseTime,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithID(id string) *OrderBuilder {
	b.ID = id
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithTotal(itemsText string, cents int64) *OrderBuilder {
	b.ItemsText = itemsText
	b.TotalCents = &cents
	return b
}

// WithChat appends alternating customer/cashier lines.
func (b *OrderBuilder) WithChat(lines ...string) *OrderBuilder {
	for i, text := range lines {
		from := order.SenderCustomer
		if i%2 == 1 {
			from = order.SenderCashier
		}
		b.Messages = append(b.Messages, order.ReconstructMessage(from, text, b.CreatedAt.Add(time.Duration(i)*time.Second)))
	}
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *order.Order {
	return order.Reconstruct(
		b.ID,
		b.CustomerID,
		b.LaneID,
		b.Status,
		append([]order.Message(nil), b.Messages...),
		b.ItemsText,
		b.TotalCents,
		b.PaySessionID,
		b.CreatedAt,
	)
}

func (b *OrderBuilder) BuildListItem() queries.OrderListItem {
	item := queries.OrderListItem{
		OrderID: b.ID,
		LaneID:  b.LaneID.String(),
		Status:  b.Status.String(),
	}
	if b.TotalCents != nil {
		item.TotalCents = *b.TotalCents
	}
	return item
}
