package queries

// OrderListItem is one row of the cashier board. TotalCents is 0 until a total is confirmed.
type OrderListItem struct {
	OrderID    string `json:"order_id"`
	LaneID     string `json:"lane_id"`
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents" copier:"-"`
}

// CardView is a saved wallet card as shown to its owner.
type CardView struct {
	CardID string `json:"card_id"`
	Brand  string `json:"brand"`
	Last4  string `json:"last4"`
	Exp    string `json:"exp"`
}
