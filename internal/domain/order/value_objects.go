package order

import (
	"fmt"
	"strings"
	"time"
)

type Message struct {
	from   Sender
	text   string
	sentAt time.Time
}

func NewMessage(from Sender, text string, now time.Time) (Message, error) {
	if !from.IsValid() {
		return Message{}, ErrInvalidSender
	}
	t := strings.TrimSpace(text)
	if t == "" {
		return Message{}, ErrEmptyMessage
	}
	return Message{from: from, text: t, sentAt: now}, nil
}

func ReconstructMessage(from Sender, text string, sentAt time.Time) Message {
	return Message{from: from, text: text, sentAt: sentAt}
}

func (m Message) From() Sender      { return m.from }
func (m Message) Text() string      { return m.text }
func (m Message) SentAt() time.Time { return m.sentAt }

type Total struct {
	cents int64
}

func NewTotal(cents int64) (Total, error) {
	if cents <= 0 {
		return Total{}, ErrInvalidTotal
	}
	return Total{cents: cents}, nil
}

func (t Total) Cents() int64 { return t.cents }

// Dollars renders 1384 as "13.84".
func (t Total) Dollars() string {
	return FormatCents(t.cents)
}

func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
