package payment

import "strings"

const minCardNumberLength = 12

// Card is a saved wallet entry. Only the last four digits are ever kept.
type Card struct {
	ID    string
	Brand string
	Last4 string
	Exp   string
}

func DemoCards() []Card {
	return []Card{
		{ID: "card_demo_1", Brand: BrandVisa, Last4: "4242", Exp: "12/29"},
		{ID: "card_demo_2", Brand: BrandMastercard, Last4: "4444", Exp: "08/28"},
	}
}

func FindCard(cards []Card, cardID string) (Card, bool) {
	id := strings.TrimSpace(cardID)
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

type NewCardInput struct {
	Number string
	Exp    string
	CVV    string
}

// ToCard validates the raw input and derives the card to save. The CVV is checked, never stored.
func (in NewCardInput) ToCard(id string) (Card, error) {
	number := strings.ReplaceAll(in.Number, " ", "")
	exp := strings.TrimSpace(in.Exp)
	cvv := strings.TrimSpace(in.CVV)
	if len(number) < minCardNumberLength || exp == "" || cvv == "" {
		return Card{}, ErrInvalidNewCard
	}
	return Card{
		ID:    id,
		Brand: BrandOf(number),
		Last4: number[len(number)-4:],
		Exp:   exp,
	}, nil
}

func BrandOf(number string) string {
	if strings.HasPrefix(number, "4") {
		return BrandVisa
	}
	return BrandGeneric
}

// Method strings as reported back to clients, e.g. "saved_card:VISA:4242".
func SavedCardMethod(c Card) string {
	return string(ModeSavedCard) + ":" + c.Brand + ":" + c.Last4
}

func NewCardMethod(c Card) string {
	return string(ModeNewCard) + ":" + c.Brand + ":" + c.Last4
}
