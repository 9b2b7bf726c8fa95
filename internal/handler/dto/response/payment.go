package response

import "drivethru/internal/usecase/commands"

type DeclineResponse struct {
	PaySessionID string `json:"pay_session_id"`
	Status       string `json:"status"`
}

// PayResponse always carries payment_method, null unless approved.
type PayResponse struct {
	PaySessionID  string  `json:"pay_session_id"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method"`
}

func FromDeclineResult(r *commands.DeclineResult) *DeclineResponse {
	return &DeclineResponse{PaySessionID: r.PaySessionID, Status: r.Status.String()}
}

func FromPayResult(r *commands.PayResult) *PayResponse {
	return &PayResponse{
		PaySessionID:  r.PaySessionID,
		Status:        r.Status.String(),
		PaymentMethod: r.PaymentMethod,
	}
}
