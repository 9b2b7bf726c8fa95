package memstore

import (
	"log/slog"
	"sync"

	"drivethru/internal/domain/payment"

	"github.com/jinzhu/copier"
)

// Store holds all process state in typed maps. It is built once at startup and injected;
// nothing survives a restart.
type Store struct {
	mu        sync.RWMutex
	laneCodes map[string]laneCodeRecord
	checkIns  map[string]checkInRecord
	orders    map[string]orderRecord
	payments  map[string]paymentRecord
	wallets   map[string][]cardRecord
	seedCards func() []payment.Card
	logger    *slog.Logger
}

type Option func(*Store)

// WithSeedCards overrides the cards a fresh wallet starts with.
func WithSeedCards(seed func() []payment.Card) Option {
	return func(s *Store) { s.seedCards = seed }
}

func NewStore(logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		laneCodes: make(map[string]laneCodeRecord),
		checkIns:  make(map[string]checkInRecord),
		orders:    make(map[string]orderRecord),
		payments:  make(map[string]paymentRecord),
		wallets:   make(map[string][]cardRecord),
		seedCards: payment.DemoCards,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) seedWallet() []cardRecord {
	cards := s.seedCards()
	out := make([]cardRecord, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardRecord(c))
	}
	return out
}

// clone deep-copies a record so callers never alias slices or pointers held by the store.
func clone[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// records are plain data; a failure here is a programming error
		panic("memstore: clone failed: " + err.Error())
	}
	return dst
}
