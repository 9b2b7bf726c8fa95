package relaytest

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Delivery is one event handed to the notifier, already encoded as it would go on the wire.
type Delivery struct {
	CustomerID string
	OrderID    string
	Frame      map[string]any
}

// RecordingNotifier captures deliveries instead of sending them.
type RecordingNotifier struct {
	t          *testing.T
	mu         sync.Mutex
	deliveries []Delivery
}

func NewRecordingNotifier(t *testing.T) *RecordingNotifier {
	return &RecordingNotifier{t: t}
}

func (n *RecordingNotifier) PushCustomer(customerID string, event any) bool {
	n.record(Delivery{CustomerID: customerID, Frame: toFrame(n.t, event)})
	return true
}

func (n *RecordingNotifier) BroadcastOrder(orderID string, event any) {
	n.record(Delivery{OrderID: orderID, Frame: toFrame(n.t, event)})
}

func (n *RecordingNotifier) record(d Delivery) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deliveries = append(n.deliveries, d)
}

func (n *RecordingNotifier) All() []Delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Delivery(nil), n.deliveries...)
}

func (n *RecordingNotifier) ToCustomer(customerID string) []map[string]any {
	var frames []map[string]any
	for _, d := range n.All() {
		if d.CustomerID == customerID {
			frames = append(frames, d.Frame)
		}
	}
	return frames
}

func (n *RecordingNotifier) ToOrder(orderID string) []map[string]any {
	var frames []map[string]any
	for _, d := range n.All() {
		if d.OrderID == orderID {
			frames = append(frames, d.Frame)
		}
	}
	return frames
}

func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deliveries = nil
}

// toFrame round-trips through JSON so assertions see exactly what a client would.
func toFrame(t *testing.T, event any) map[string]any {
	t.Helper()
	b, err := json.Marshal(event)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}
