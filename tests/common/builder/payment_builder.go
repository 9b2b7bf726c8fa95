package builder

import (
	"time"

	"drivethru/internal/domain/payment"
	reqdto "drivethru/internal/handler/dto/request"
)

type PaymentSessionBuilder struct {
	ID            string
	OrderID       string
	CustomerID    string
	AmountCents   int64
	Currency      string
	MerchantName  string
	Status        payment.Status
	PaymentMethod *string
	ExpiresAt     time.Time
}

func NewPaymentSessionBuilder() *PaymentSessionBuilder {
	return &PaymentSessionBuilder{
		ID:           "pay_0001",
		OrderID:      "ord_0001",
		CustomerID:   "cust_1",
		AmountCents:  1384,
		Currency:     "USD",
		MerchantName: "DriveThru Demo",
		Status:       payment.StatusPending,
		ExpiresAt:    BaseTime.Add(5 * time.Minute),
	}
}

func (b *PaymentSessionBuilder) With(mutate func(*PaymentSessionBuilder)) *PaymentSessionBuilder {
	mutate(b)
	return b
}

func (b *PaymentSessionBuilder) WithStatus(s payment.Status) *PaymentSessionBuilder {
	b.Status = s
	return b
}

func (b *PaymentSessionBuilder) BuildDomain() *payment.Session {
	return payment.ReconstructSession(
		b.ID,
		b.OrderID,
		b.CustomerID,
		b.AmountCents,
		b.Currency,
		b.MerchantName,
		b.Status,
		b.PaymentMethod,
		b.ExpiresAt,
	)
}

type PayRequestBuilder struct {
	req reqdto.PayRequest
}

func NewPayRequestBuilder() *PayRequestBuilder {
	return &PayRequestBuilder{req: reqdto.PayRequest{
		CustomerID: "cust_1",
		Mode:       string(payment.ModeSavedCard),
		CardID:     "card_demo_1",
	}}
}

func (b *PayRequestBuilder) WithCustomer(customerID string) *PayRequestBuilder {
	b.req.CustomerID = customerID
	return b
}

func (b *PayRequestBuilder) WithNewCard(number, exp, cvv string) *PayRequestBuilder {
	b.req.Mode = string(payment.ModeNewCard)
	b.req.CardID = ""
	b.req.NewCard = &reqdto.NewCardRequest{Number: number, Exp: exp, CVV: cvv}
	return b
}

func (b *PayRequestBuilder) WithMode(mode payment.Mode) *PayRequestBuilder {
	b.req.Mode = string(mode)
	if mode != payment.ModeSavedCard {
		b.req.CardID = ""
	}
	return b
}

func (b *PayRequestBuilder) WithCardID(cardID string) *PayRequestBuilder {
	b.req.CardID = cardID
	return b
}

func (b *PayRequestBuilder) BuildRequestDTO() reqdto.PayRequest {
	return b.req
}
