package memstore

import (
	"time"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
)

// Records are the storage shape: exported plain fields only, so they can be deep-copied.
// Timestamps are kept as UTC unix nanoseconds for the same reason.

type laneCodeRecord struct {
	LaneID    string
	Code      string
	IssuedAt  int64
	ExpiresAt int64
}

type checkInRecord struct {
	CustomerID  string
	LaneID      string
	CheckedInAt int64
}

type messageRecord struct {
	From   string
	Text   string
	SentAt int64
}

type orderRecord struct {
	OrderID      string
	CustomerID   string
	LaneID       string
	Status       string
	Messages     []messageRecord
	ItemsText    string
	TotalCents   *int64
	PaySessionID *string
	CreatedAt    int64
}

type paymentRecord struct {
	PaySessionID  string
	OrderID       string
	CustomerID    string
	AmountCents   int64
	Currency      string
	MerchantName  string
	Status        string
	PaymentMethod *string
	ExpiresAt     int64
}

type cardRecord struct {
	CardID string
	Brand  string
	Last4  string
	Exp    string
}

func toLaneCodeRecord(c *lane.LaneCode) laneCodeRecord {
	return laneCodeRecord{
		LaneID:    c.LaneID().String(),
		Code:      c.Code().String(),
		IssuedAt:  toNanos(c.IssuedAt()),
		ExpiresAt: toNanos(c.ExpiresAt()),
	}
}

func (r laneCodeRecord) toDomain() *lane.LaneCode {
	return lane.ReconstructLaneCode(lane.ID(r.LaneID), r.Code, fromNanos(r.IssuedAt), fromNanos(r.ExpiresAt))
}

func toCheckInRecord(c *checkin.CheckIn) checkInRecord {
	return checkInRecord{
		CustomerID:  c.CustomerID(),
		LaneID:      c.LaneID().String(),
		CheckedInAt: toNanos(c.CheckedInAt()),
	}
}

func (r checkInRecord) toDomain() *checkin.CheckIn {
	return checkin.Reconstruct(r.CustomerID, lane.ID(r.LaneID), fromNanos(r.CheckedInAt))
}

func toOrderRecord(o *order.Order) orderRecord {
	msgs := o.Messages()
	records := make([]messageRecord, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, messageRecord{From: string(m.From()), Text: m.Text(), SentAt: toNanos(m.SentAt())})
	}
	return clone(orderRecord{
		OrderID:      o.ID(),
		CustomerID:   o.CustomerID(),
		LaneID:       o.LaneID().String(),
		Status:       o.Status().String(),
		Messages:     records,
		ItemsText:    o.ItemsText(),
		TotalCents:   o.TotalCents(),
		PaySessionID: o.PaySessionID(),
		CreatedAt:    toNanos(o.CreatedAt()),
	})
}

func (r orderRecord) toDomain() *order.Order {
	r = clone(r)
	msgs := make([]order.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		msgs = append(msgs, order.ReconstructMessage(order.Sender(m.From), m.Text, fromNanos(m.SentAt)))
	}
	return order.Reconstruct(
		r.OrderID,
		r.CustomerID,
		lane.ID(r.LaneID),
		order.Status(r.Status),
		msgs,
		r.ItemsText,
		r.TotalCents,
		r.PaySessionID,
		fromNanos(r.CreatedAt),
	)
}

func toPaymentRecord(s *payment.Session) paymentRecord {
	return clone(paymentRecord{
		PaySessionID:  s.ID(),
		OrderID:       s.OrderID(),
		CustomerID:    s.CustomerID(),
		AmountCents:   s.AmountCents(),
		Currency:      s.Currency(),
		MerchantName:  s.MerchantName(),
		Status:        s.Status().String(),
		PaymentMethod: s.PaymentMethod(),
		ExpiresAt:     toNanos(s.ExpiresAt()),
	})
}

func (r paymentRecord) toDomain() *payment.Session {
	r = clone(r)
	return payment.ReconstructSession(
		r.PaySessionID,
		r.OrderID,
		r.CustomerID,
		r.AmountCents,
		r.Currency,
		r.MerchantName,
		payment.Status(r.Status),
		r.PaymentMethod,
		fromNanos(r.ExpiresAt),
	)
}

func toCardRecord(c payment.Card) cardRecord {
	return cardRecord{CardID: c.ID, Brand: c.Brand, Last4: c.Last4, Exp: c.Exp}
}

func (r cardRecord) toDomain() payment.Card {
	return payment.Card{ID: r.CardID, Brand: r.Brand, Last4: r.Last4, Exp: r.Exp}
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
