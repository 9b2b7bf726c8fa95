package response

import (
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/queries"
)

type CheckInResponse struct {
	CustomerID string `json:"customer_id"`
	LaneID     string `json:"lane_id"`
	Status     string `json:"status"`
}

type ConnectResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type CardsResponse struct {
	CustomerID string             `json:"customer_id"`
	Cards      []queries.CardView `json:"cards"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		CustomerID: r.CustomerID,
		LaneID:     r.LaneID.String(),
		Status:     r.Status,
	}
}

func FromConnectResult(r *commands.ConnectResult) *ConnectResponse {
	return &ConnectResponse{OrderID: r.OrderID, Status: r.Status.String()}
}

func FromCardViews(customerID string, cards []queries.CardView) *CardsResponse {
	if cards == nil {
		cards = []queries.CardView{}
	}
	return &CardsResponse{CustomerID: customerID, Cards: cards}
}
