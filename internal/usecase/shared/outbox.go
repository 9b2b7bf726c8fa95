package shared

// Outbox collects events produced inside a unit of work so they are delivered only after it
// commits. Delivering from the commit hook keeps relay order equal to commit order.
type Outbox struct {
	msgs []outboundMessage
}

type outboundMessage struct {
	customerID string
	orderID    string
	event      any
}

func (o *Outbox) ToCustomer(customerID string, event any) {
	o.msgs = append(o.msgs, outboundMessage{customerID: customerID, event: event})
}

func (o *Outbox) ToOrder(orderID string, event any) {
	o.msgs = append(o.msgs, outboundMessage{orderID: orderID, event: event})
}

func (o *Outbox) Len() int {
	return len(o.msgs)
}

// DeliverOnCommit flushes the outbox to n once tx commits. Nothing is sent on rollback.
func (o *Outbox) DeliverOnCommit(tx Tx, n Notifier) {
	tx.AfterCommit(func() { o.Flush(n) })
}

// Flush delivers in insertion order and empties the outbox.
func (o *Outbox) Flush(n Notifier) {
	for _, m := range o.msgs {
		if m.customerID != "" {
			n.PushCustomer(m.customerID, m.event)
			continue
		}
		n.BroadcastOrder(m.orderID, m.event)
	}
	o.msgs = nil
}
