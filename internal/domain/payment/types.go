package payment

import (
	"strings"

	"drivethru/internal/pkg/errs"
)

var (
	ErrSessionClosed    = errs.New("payment session is no longer pending")
	ErrInvalidAmount    = errs.New("amount_cents must be > 0")
	ErrUnsupportedMode  = errs.New("unsupported mode")
	ErrInvalidSavedCard = errs.New("invalid saved card")
	ErrInvalidNewCard   = errs.New("new_card requires number, exp, cvv")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
	StatusExpired  Status = "EXPIRED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDeclined || s == StatusExpired
}

func (s Status) String() string {
	return string(s)
}

type Mode string

const (
	ModeSavedCard   Mode = "saved_card"
	ModeNewCard     Mode = "new_card"
	ModeGooglePay   Mode = "google_pay"
	ModePayPal      Mode = "paypal"
	ModeOtherWallet Mode = "other_wallet"
)

func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.TrimSpace(raw))
	switch m {
	case ModeSavedCard, ModeNewCard, ModeGooglePay, ModePayPal, ModeOtherWallet:
		return m, nil
	default:
		return "", ErrUnsupportedMode
	}
}

// IsWallet reports modes that need no card data.
func (m Mode) IsWallet() bool {
	return m == ModeGooglePay || m == ModePayPal || m == ModeOtherWallet
}

const (
	BrandVisa       = "VISA"
	BrandMastercard = "MASTERCARD"
	BrandGeneric    = "CARD"
)
