package payment

import "time"

// Session is one time-boxed attempt to collect payment for a confirmed order total.
// Status moves PENDING -> APPROVED | DECLINED | EXPIRED once and is frozen afterwards.
type Session struct {
	id            string
	orderID       string
	customerID    string
	amountCents   int64
	currency      string
	merchantName  string
	status        Status
	paymentMethod *string
	expiresAt     time.Time
}

func NewSession(id, orderID, customerID string, amountCents int64, currency, merchantName string, expiresAt time.Time) (*Session, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Session{
		id:           id,
		orderID:      orderID,
		customerID:   customerID,
		amountCents:  amountCents,
		currency:     currency,
		merchantName: merchantName,
		status:       StatusPending,
		expiresAt:    expiresAt,
	}, nil
}

func ReconstructSession(
	id, orderID, customerID string,
	amountCents int64,
	currency, merchantName string,
	status Status,
	paymentMethod *string,
	expiresAt time.Time,
) *Session {
	return &Session{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		amountCents:   amountCents,
		currency:      currency,
		merchantName:  merchantName,
		status:        status,
		paymentMethod: paymentMethod,
		expiresAt:     expiresAt,
	}
}

func (s *Session) ID() string             { return s.id }
func (s *Session) OrderID() string        { return s.orderID }
func (s *Session) CustomerID() string     { return s.customerID }
func (s *Session) AmountCents() int64     { return s.amountCents }
func (s *Session) Currency() string       { return s.currency }
func (s *Session) MerchantName() string   { return s.merchantName }
func (s *Session) Status() Status         { return s.status }
func (s *Session) PaymentMethod() *string { return s.paymentMethod }
func (s *Session) ExpiresAt() time.Time   { return s.expiresAt }

func (s *Session) IsOwnedBy(customerID string) bool {
	return s.customerID == customerID
}

func (s *Session) IsPending() bool {
	return s.status == StatusPending
}

// IsExpiredAt is strict: a session is still payable at exactly expires_at.
func (s *Session) IsExpiredAt(now time.Time) bool {
	return now.After(s.expiresAt)
}

func (s *Session) Approve(method string) error {
	if !s.IsPending() {
		return ErrSessionClosed
	}
	s.status = StatusApproved
	s.paymentMethod = &method
	return nil
}

func (s *Session) Decline() error {
	if !s.IsPending() {
		return ErrSessionClosed
	}
	s.status = StatusDeclined
	return nil
}

func (s *Session) Expire() error {
	if !s.IsPending() {
		return ErrSessionClosed
	}
	s.status = StatusExpired
	return nil
}
