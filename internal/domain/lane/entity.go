package lane

import "time"

// LaneCode is the active pairing code of one lane. It is replaced wholesale on rotation.
type LaneCode struct {
	laneID    ID
	code      Code
	issuedAt  time.Time
	expiresAt time.Time
}

func Issue(laneID ID, gen CodeGenerator, now time.Time, ttl time.Duration) (*LaneCode, error) {
	if !laneID.IsValid() {
		return nil, ErrInvalidLane
	}
	return &LaneCode{
		laneID:    laneID,
		code:      gen.Generate(),
		issuedAt:  now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructLaneCode(laneID ID, code string, issuedAt, expiresAt time.Time) *LaneCode {
	return &LaneCode{
		laneID:    laneID,
		code:      Code{value: code},
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
	}
}

func (c *LaneCode) LaneID() ID           { return c.laneID }
func (c *LaneCode) Code() Code           { return c.code }
func (c *LaneCode) IssuedAt() time.Time  { return c.issuedAt }
func (c *LaneCode) ExpiresAt() time.Time { return c.expiresAt }

// IsActiveAt reports now < expires_at.
func (c *LaneCode) IsActiveAt(now time.Time) bool {
	return now.Before(c.expiresAt)
}

// Verify checks expiry first, then the exact code.
func (c *LaneCode) Verify(submitted Code, now time.Time) error {
	if !c.IsActiveAt(now) {
		return ErrCodeExpired
	}
	if !c.code.Equal(submitted) {
		return ErrInvalidCode
	}
	return nil
}
