package request

import (
	"drivethru/internal/domain/payment"
	"drivethru/internal/usecase/commands"
)

type NewCardRequest struct {
	Number string `json:"number" example:"4242424242424242"`
	Exp    string `json:"exp" example:"12/29"`
	CVV    string `json:"cvv" example:"123"`
}

type PayRequest struct {
	CustomerID string          `json:"customer_id" example:"cust_1"`
	Mode       string          `json:"mode" example:"saved_card"`
	CardID     string          `json:"card_id,omitempty" example:"card_demo_1"`
	NewCard    *NewCardRequest `json:"new_card,omitempty"`
}

func (r PayRequest) ToInput(sessionID string) commands.PayInput {
	in := commands.PayInput{
		SessionID:  sessionID,
		CustomerID: r.CustomerID,
		Mode:       r.Mode,
		CardID:     r.CardID,
	}
	if r.NewCard != nil {
		in.NewCard = &payment.NewCardInput{
			Number: r.NewCard.Number,
			Exp:    r.NewCard.Exp,
			CVV:    r.NewCard.CVV,
		}
	}
	return in
}
