package commands

import (
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/usecase/shared"
)

// Write-side results; handlers map them onto response DTOs.

type LaneCodeResult struct {
	LaneID    lane.ID
	Code      string
	ExpiresAt time.Time
}

type CheckInResult struct {
	CustomerID string
	LaneID     lane.ID
	Status     string
}

type ConnectResult struct {
	OrderID string
	Status  order.Status
}

type OrderAccess struct {
	OrderID string
	Status  order.Status
}

type ChatLine struct {
	From order.Sender
	Text string
}

type CashierJoinResult struct {
	OrderID  string
	Status   order.Status
	Snapshot shared.OrderSnapshotEvent
	History  []ChatLine
}

type ConfirmTotalResult struct {
	OrderID      string
	PaySessionID string
	Status       string
}

type DeclineResult struct {
	PaySessionID string
	Status       payment.Status
}

type PayInput struct {
	SessionID  string
	CustomerID string
	Mode       string
	CardID     string
	NewCard    *payment.NewCardInput
}

type PayResult struct {
	PaySessionID  string
	Status        payment.Status
	PaymentMethod *string
}

const StatusPaymentRequested = "PAYMENT_REQUESTED"
