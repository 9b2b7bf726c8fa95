package lane

import (
	"strings"

	"drivethru/internal/pkg/errs"
)

var (
	ErrInvalidLane  = errs.New("lane_id must be L1 or L2")
	ErrCodeExpired  = errs.New("code expired")
	ErrInvalidCode  = errs.New("invalid code")
	ErrCodeRequired = errs.New("code required")
)

type ID string

const (
	L1 ID = "L1"
	L2 ID = "L2"
)

func IDs() []ID {
	return []ID{L1, L2}
}

// ParseID trims and upper-cases raw input before validating it.
func ParseID(raw string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(raw)))
	if !id.IsValid() {
		return "", ErrInvalidLane
	}
	return id, nil
}

func (id ID) IsValid() bool {
	switch id {
	case L1, L2:
		return true
	default:
		return false
	}
}

func (id ID) String() string {
	return string(id)
}
