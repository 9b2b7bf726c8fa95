package request

// Fields are validated by the commands so every violation gets its own message.

type CheckInRequest struct {
	CustomerID string `json:"customer_id" example:"cust_1"`
	LaneID     string `json:"lane_id" example:"L1"`
}

type ConnectRequest struct {
	CustomerID string `json:"customer_id" example:"cust_1"`
	LaneID     string `json:"lane_id" example:"L1"`
	Code       string `json:"code" example:"0427"`
}
