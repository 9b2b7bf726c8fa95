package relay

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleCashier  Role = "cashier"
)

func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch r {
	case RoleCustomer, RoleCashier:
		return r, true
	default:
		return "", false
	}
}

func (r Role) Opposite() Role {
	if r == RoleCustomer {
		return RoleCashier
	}
	return RoleCustomer
}

// Hub keeps three directories of live channels: customer push, order chat and call signaling.
// Every key holds one peer; a new attach replaces the old one and the replaced peer stays open
// but unreachable.
type Hub struct {
	mu        sync.RWMutex
	customers map[string]Peer
	orders    map[string]map[Role]Peer
	calls     map[string]map[Role]Peer
	logger    *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		customers: make(map[string]Peer),
		orders:    make(map[string]map[Role]Peer),
		calls:     make(map[string]map[Role]Peer),
		logger:    logger,
	}
}

func (h *Hub) AttachCustomer(customerID string, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.customers[customerID] = p
}

// DetachCustomer is a no-op when a newer peer has taken the slot.
func (h *Hub) DetachCustomer(customerID string, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.customers[customerID] == p {
		delete(h.customers, customerID)
	}
}

func (h *Hub) AttachOrder(orderID string, role Role, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	attach(h.orders, orderID, role, p)
}

func (h *Hub) DetachOrder(orderID string, role Role, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	detach(h.orders, orderID, role, p)
}

func (h *Hub) AttachCall(orderID string, role Role, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	attach(h.calls, orderID, role, p)
}

// DetachCall drops the whole order entry once both roles have left.
func (h *Hub) DetachCall(orderID string, role Role, p Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	detach(h.calls, orderID, role, p)
}

// PushCustomer reports whether the customer had a push channel attached.
func (h *Hub) PushCustomer(customerID string, event any) bool {
	payload, ok := h.encode(event)
	if !ok {
		return false
	}

	h.mu.RLock()
	p, attached := h.customers[customerID]
	h.mu.RUnlock()
	if !attached {
		return false
	}
	return p.Send(payload)
}

// BroadcastOrder sends to both chat peers of the order, customer first.
func (h *Hub) BroadcastOrder(orderID string, event any) {
	payload, ok := h.encode(event)
	if !ok {
		return
	}

	h.mu.RLock()
	slots := h.orders[orderID]
	peers := make([]Peer, 0, 2)
	for _, role := range []Role{RoleCustomer, RoleCashier} {
		if p, attached := slots[role]; attached {
			peers = append(peers, p)
		}
	}
	h.mu.RUnlock()

	for _, p := range peers {
		p.Send(payload)
	}
}

// RelayCall forwards a signaling frame untouched to the other role of the call.
func (h *Hub) RelayCall(orderID string, from Role, payload []byte) bool {
	h.mu.RLock()
	p, attached := h.calls[orderID][from.Opposite()]
	h.mu.RUnlock()
	if !attached {
		return false
	}
	return p.Send(payload)
}

// Close disconnects every attached peer and empties all directories.
func (h *Hub) Close() {
	h.mu.Lock()
	peers := make([]Peer, 0, len(h.customers))
	for _, p := range h.customers {
		peers = append(peers, p)
	}
	for _, dir := range []map[string]map[Role]Peer{h.orders, h.calls} {
		for _, slots := range dir {
			for _, p := range slots {
				peers = append(peers, p)
			}
		}
	}
	h.customers = make(map[string]Peer)
	h.orders = make(map[string]map[Role]Peer)
	h.calls = make(map[string]map[Role]Peer)
	h.mu.Unlock()

	for _, p := range peers {
		p.Close()
	}
	h.logger.Info("relay hub closed", "peers", len(peers))
}

func (h *Hub) encode(event any) ([]byte, bool) {
	if raw, ok := event.([]byte); ok {
		return raw, true
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode relay event", "error", err)
		return nil, false
	}
	return payload, true
}

func attach(dir map[string]map[Role]Peer, key string, role Role, p Peer) {
	slots, ok := dir[key]
	if !ok {
		slots = make(map[Role]Peer, 2)
		dir[key] = slots
	}
	slots[role] = p
}

func detach(dir map[string]map[Role]Peer, key string, role Role, p Peer) {
	slots, ok := dir[key]
	if !ok || slots[role] != p {
		return
	}
	delete(slots, role)
	if len(slots) == 0 {
		delete(dir, key)
	}
}
