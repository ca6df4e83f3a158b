// Package store is the stateful side of the cart: it owns the current
// state.State, applies reducer actions to it and mirrors every committed
// state to persistence.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/state"
	logx "github.com/Vehicle-Shield/storefront/pkg/logger"
)

// Persister saves and restores cart lines. Neither call reports failure;
// *repo.Persistence is the production implementation.
type Persister interface {
	Save(ctx context.Context, items []model.Line)
	Load(ctx context.Context) []model.Line
}

// Listener receives every committed state, in commit order.
type Listener func(state.State)

// Store is the cart of one client session. Construct one per session and
// pass it to whatever renders or drives the cart.
type Store struct {
	// writeMu serializes mutations, their storage writes and listener calls.
	writeMu sync.Mutex

	mu    sync.RWMutex
	state state.State

	persister Persister
	ids       *state.IDSource

	subsMu    sync.Mutex
	listeners map[int]Listener
	nextSub   int
}

type Option func(*Store)

// WithIDSource replaces the clock-based line id generator.
func WithIDSource(ids *state.IDSource) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// New builds a store and restores whatever the persister holds.
func New(ctx context.Context, persister Persister, opts ...Option) *Store {
	s := &Store{
		state:     state.Empty(),
		persister: persister,
		ids:       state.NewIDSource(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	restored := state.Reduce(s.state, state.Restore{Items: persister.Load(ctx)})
	for _, line := range restored.Items() {
		s.ids.Observe(line.ID)
	}
	s.state = restored

	logx.Debug().Int("lines", restored.Len()).Int("itemCount", restored.ItemCount()).Msg("cart restored")
	return s
}

// AddItem adds quantity units of product, merging into an existing line for the same product.
func (s *Store) AddItem(ctx context.Context, product model.Product, quantity int) state.State {
	return s.dispatch(ctx, state.AddItem{Product: product, Quantity: quantity, LineID: s.ids.Next()})
}

// RemoveItem drops the line for productID, if any.
func (s *Store) RemoveItem(ctx context.Context, productID int64) state.State {
	return s.dispatch(ctx, state.RemoveItem{ProductID: productID})
}

// UpdateQuantity sets the absolute quantity for productID; quantity <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) state.State {
	return s.dispatch(ctx, state.UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) state.State {
	return s.dispatch(ctx, state.Clear{})
}

func (s *Store) dispatch(ctx context.Context, a state.Action) state.State {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := state.Reduce(s.state, a)
	s.state = next
	s.mu.Unlock()

	s.persister.Save(ctx, next.Items())
	s.notify(next)
	return next
}

func (s *Store) State() state.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Items() []model.Line {
	return s.State().Items()
}

func (s *Store) Total() decimal.Decimal {
	return s.State().Total()
}

func (s *Store) ItemCount() int {
	return s.State().ItemCount()
}

// Subscribe registers fn for every future commit. Listeners run on the
// mutating goroutine and must not mutate the store themselves.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.listeners, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *Store) notify(st state.State) {
	s.subsMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
