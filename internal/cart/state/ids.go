package state

import (
	"sync"
	"time"
)

// IDSource hands out synthetic line ids: wall-clock milliseconds, bumped
// so that every id is strictly greater than the previous one.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// Next returns a fresh id.
func (g *IDSource) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id already in use (e.g. from a restored cart) so Next never repeats it.
func (g *IDSource) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
