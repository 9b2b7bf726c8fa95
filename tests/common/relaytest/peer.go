package relaytest

import "sync"

// FakePeer collects sent frames in memory. Full makes every Send report a drop.
type FakePeer struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
	Full   bool
}

func NewFakePeer() *FakePeer {
	return &FakePeer{}
}

func (p *FakePeer) Send(payload []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.Full {
		return false
	}
	p.frames = append(p.frames, payload)
	return true
}

func (p *FakePeer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *FakePeer) Frames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.frames))
	for _, f := range p.frames {
		out = append(out, string(f))
	}
	return out
}

func (p *FakePeer) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
