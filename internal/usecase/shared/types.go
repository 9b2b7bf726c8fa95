package shared

// Notifier delivers events to whatever channels are attached right now. Nothing is queued for
// absent peers.
type Notifier interface {
	PushCustomer(customerID string, event any) bool
	BroadcastOrder(orderID string, event any)
}

// Event payloads as they appear on the wire.

const (
	EventInfo           = "info"
	EventChat           = "chat"
	EventOrderState     = "order_state"
	EventPaymentRequest = "payment_request"
	EventPaymentStatus  = "payment_status"
)

type InfoEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewInfoEvent(text string) InfoEvent {
	return InfoEvent{Type: EventInfo, Text: text}
}

type ChatEvent struct {
	Type string `json:"type"`
	From string `json:"from"`
	Text string `json:"text"`
}

func NewChatEvent(from, text string) ChatEvent {
	return ChatEvent{Type: EventChat, From: from, Text: text}
}

type OrderStateEvent struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

func NewOrderStateEvent(status string) OrderStateEvent {
	return OrderStateEvent{Type: EventOrderState, Status: status}
}

// OrderSnapshotEvent carries items and total; total_cents is null until confirmed.
type OrderSnapshotEvent struct {
	Type       string `json:"type"`
	Status     string `json:"status"`
	ItemsText  string `json:"items_text"`
	TotalCents *int64 `json:"total_cents"`
}

func NewOrderSnapshotEvent(status, itemsText string, totalCents *int64) OrderSnapshotEvent {
	return OrderSnapshotEvent{Type: EventOrderState, Status: status, ItemsText: itemsText, TotalCents: totalCents}
}

type PaymentRequestEvent struct {
	Type         string `json:"type"`
	PaySessionID string `json:"pay_session_id"`
	OrderID      string `json:"order_id"`
	MerchantName string `json:"merchant_name"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
}

type PaymentStatusEvent struct {
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method"`
}

func NewPaymentStatusEvent(status string, method *string) PaymentStatusEvent {
	return PaymentStatusEvent{Type: EventPaymentStatus, Status: status, PaymentMethod: method}
}
