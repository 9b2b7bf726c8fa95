package response

import (
	"time"

	"drivethru/internal/usecase/commands"
)

type LaneCodeResponse struct {
	LaneID    string `json:"lane_id"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"`
}

// FormatExpiry renders an ISO-8601 UTC instant with a trailing Z.
func FormatExpiry(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FromLaneCodeResult(r *commands.LaneCodeResult) *LaneCodeResponse {
	return &LaneCodeResponse{
		LaneID:    r.LaneID.String(),
		Code:      r.Code,
		ExpiresAt: FormatExpiry(r.ExpiresAt),
	}
}
