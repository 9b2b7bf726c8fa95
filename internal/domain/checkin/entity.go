package checkin

import (
	"strings"
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/pkg/errs"
)

var ErrCustomerRequired = errs.New("customer_id required")

const StatusCheckedIn = "CHECKED_IN"

// CheckIn records that a customer is physically at a lane. One per customer, last write wins.
type CheckIn struct {
	customerID  string
	laneID      lane.ID
	checkedInAt time.Time
}

func New(customerID string, laneID lane.ID, now time.Time) (*CheckIn, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return nil, ErrCustomerRequired
	}
	if !laneID.IsValid() {
		return nil, lane.ErrInvalidLane
	}
	return &CheckIn{customerID: id, laneID: laneID, checkedInAt: now}, nil
}

func Reconstruct(customerID string, laneID lane.ID, checkedInAt time.Time) *CheckIn {
	return &CheckIn{customerID: customerID, laneID: laneID, checkedInAt: checkedInAt}
}

func (c *CheckIn) CustomerID() string     { return c.customerID }
func (c *CheckIn) LaneID() lane.ID        { return c.laneID }
func (c *CheckIn) CheckedInAt() time.Time { return c.checkedInAt }

func (c *CheckIn) IsFor(laneID lane.ID) bool {
	return c.laneID == laneID
}
