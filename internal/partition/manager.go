package partition

import (
	"go.uber.org/zap"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/world"
)

// Source answers raw range queries. world.State implements it.
type Source interface {
	ObjectsInRange(dst []*world.Object, center world.Coord, radius float64, scratch []ecs.EntityID) ([]*world.Object, []ecs.EntityID)
}

// DefaultPoolSize is used when the configured size is not positive.
const DefaultPoolSize = 16

// Manager hands out iterators from a fixed-capacity pool. Single goroutine.
type Manager struct {
	src    Source
	free   []*Iterator
	inUse  int
	strict bool
	log    *zap.Logger
}

func NewManager(src Source, poolSize int, strict bool, log *zap.Logger) *Manager {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	m := &Manager{
		src:    src,
		free:   make([]*Iterator, 0, poolSize),
		strict: strict,
		log:    log,
	}
	for i := 0; i < poolSize; i++ {
		m.free = append(m.free, &Iterator{m: m, pooled: true})
	}
	return m
}

// InUse is the number of pooled iterators not yet closed.
func (m *Manager) InUse() int { return m.inUse }

// IterateInRange returns a fresh iterator over objects within radius of
// center that pass chain. Filters run lazily in Next. The caller must
// Close the iterator. When the pool is empty a strict manager panics and
// a lenient one logs and returns an iterator with no matches.
func (m *Manager) IterateInRange(center world.Coord, radius float64, chain Chain) *Iterator {
	n := len(m.free)
	if n == 0 {
		if m.strict {
			panic("partition: iterator pool exhausted")
		}
		m.log.Error("iterator pool exhausted, returning empty result",
			zap.Int("in_use", m.inUse))
		return &Iterator{closed: true}
	}
	it := m.free[n-1]
	m.free = m.free[:n-1]
	m.inUse++

	it.closed = false
	it.chain = chain
	it.pos = 0
	it.objs, it.scratch = m.src.ObjectsInRange(it.objs[:0], center, radius, it.scratch)
	return it
}

// Closest returns the nearest object passing chain, lowest id on ties.
func (m *Manager) Closest(center world.Coord, radius float64, chain Chain) *world.Object {
	it := m.IterateInRange(center, radius, chain)
	defer it.Close()

	var best *world.Object
	bestDist := 0.0
	for o := it.Next(); o != nil; o = it.Next() {
		d := o.Position().DistanceTo(center)
		if best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

func (m *Manager) release(it *Iterator) {
	m.inUse--
	m.free = append(m.free, it)
}

// Iterator walks one query's matches. Not safe to share.
type Iterator struct {
	m       *Manager
	chain   Chain
	objs    []*world.Object
	scratch []ecs.EntityID
	pos     int
	pooled  bool
	closed  bool
}

// Next returns the next match or nil when exhausted.
func (it *Iterator) Next() *world.Object {
	if it.closed {
		return nil
	}
	for it.pos < len(it.objs) {
		o := it.objs[it.pos]
		it.pos++
		if it.chain.Allow(o) {
			return o
		}
	}
	return nil
}

// Close returns the iterator to its pool. Closing twice is a no-op.
func (it *Iterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	clear(it.objs)
	it.objs = it.objs[:0]
	it.chain = nil
	if it.pooled {
		it.m.release(it)
	}
}
