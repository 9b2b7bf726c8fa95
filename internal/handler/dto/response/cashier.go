package response

import (
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/queries"
)

type OrderListResponse struct {
	Orders []queries.OrderListItem `json:"orders"`
}

type ConfirmTotalResponse struct {
	OrderID      string `json:"order_id"`
	PaySessionID string `json:"pay_session_id"`
	Status       string `json:"status"`
}

func FromOrderListItems(items []queries.OrderListItem) *OrderListResponse {
	if items == nil {
		items = []queries.OrderListItem{}
	}
	return &OrderListResponse{Orders: items}
}

func FromConfirmTotalResult(r *commands.ConfirmTotalResult) *ConfirmTotalResponse {
	return &ConfirmTotalResponse{
		OrderID:      r.OrderID,
		PaySessionID: r.PaySessionID,
		Status:       r.Status,
	}
}
