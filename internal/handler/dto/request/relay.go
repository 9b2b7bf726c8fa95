package request

import (
	"encoding/json"
	"strings"
)

// ChatFrame is an inbound frame on an order channel. Other frame types are ignored.
type ChatFrame struct {
	Type string          `json:"type"`
	Text json.RawMessage `json:"text"`
}

func (f ChatFrame) IsChat() bool {
	return f.Type == "chat"
}

// Message is the trimmed chat text. Non-string values are relayed as their JSON text
// (42 becomes "42"); a missing or null text is empty.
func (f ChatFrame) Message() string {
	raw := strings.TrimSpace(string(f.Text))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(f.Text, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return raw
}
