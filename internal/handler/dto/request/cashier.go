package request

type ConfirmTotalRequest struct {
	ItemsText  string `json:"items_text" example:"1x Burger"`
	TotalCents int64  `json:"total_cents" example:"1384"`
}
