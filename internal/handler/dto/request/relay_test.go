package request_test

import (
	"encoding/json"
	"testing"

	"drivethru/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatFrameMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string is trimmed", raw: `{"type":"chat","text":"  one burger "}`, want: "one burger"},
		{name: "number", raw: `{"type":"chat","text":42}`, want: "42"},
		{name: "bool", raw: `{"type":"chat","text":true}`, want: "true"},
		{name: "null", raw: `{"type":"chat","text":null}`, want: ""},
		{name: "missing", raw: `{"type":"chat"}`, want: ""},
		{name: "blank", raw: `{"type":"chat","text":"   "}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var frame request.ChatFrame
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &frame))
			assert.True(t, frame.IsChat())
			assert.Equal(t, tt.want, frame.Message())
		})
	}
}
