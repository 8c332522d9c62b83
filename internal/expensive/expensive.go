// Package expensive provides a payload whose copies are deliberately costly
// and observable. Every construct, copy, move and destroy is logged with a
// monotonically increasing instance id and counted per event kind.
package expensive

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

const payloadSize = 1000

type Event string

const (
	Constructed Event = "Constructed"
	Copied      Event = "Copy constructed"
	Moved       Event = "Moved"
	Destroyed   Event = "Destroyed"
)

// Factory creates payloads and keeps the instance counter and event counts.
// It is not safe for concurrent use.
type Factory struct {
	log    *zap.Logger
	lastID int
	counts map[Event]int
	live   map[int]struct{}
}

func NewFactory(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{
		log:    log,
		counts: make(map[Event]int),
		live:   make(map[int]struct{}),
	}
}

// Count returns how many times ev happened.
func (f *Factory) Count(ev Event) int {
	return f.counts[ev]
}

// Instances returns the number of ids handed out.
func (f *Factory) Instances() int {
	return f.lastID
}

// Live returns the number of instances not yet destroyed.
func (f *Factory) Live() int {
	return len(f.live)
}

// ReleaseAll destroys every live instance in id order.
func (f *Factory) ReleaseAll() {
	for _, id := range slices.Sorted(maps.Keys(f.live)) {
		f.release(id)
	}
}

func (f *Factory) release(id int) {
	if _, ok := f.live[id]; !ok {
		return
	}
	delete(f.live, id)
	f.trace(id, Destroyed)
}

func (f *Factory) trace(id int, ev Event) {
	f.counts[ev]++
	f.log.Info(fmt.Sprintf("ExpensiveToCopy[%d]: %s ...", id, ev),
		zap.Int("id", id), zap.String("event", string(ev)))
}

func (f *Factory) nextID() int {
	f.lastID++
	f.live[f.lastID] = struct{}{}
	return f.lastID
}

// Expensive owns a large buffer. Passing it by value shares the buffer; only
// Clone duplicates it.
type Expensive struct {
	id      int
	data    []int
	factory *Factory
}

func (f *Factory) New() Expensive {
	e := Expensive{
		id:      f.nextID(),
		data:    make([]int, payloadSize),
		factory: f,
	}
	f.trace(e.id, Constructed)
	return e
}

func (e Expensive) ID() int {
	return e.id
}

// Data exposes the backing buffer; it is nil once moved from or closed.
func (e Expensive) Data() []int {
	return e.data
}

// Clone is a deep copy with a new id. The zero Expensive has no factory and
// clones to another zero value without tracing.
func (e Expensive) Clone() Expensive {
	if e.factory == nil {
		return Expensive{}
	}
	c := Expensive{
		id:      e.factory.nextID(),
		data:    make([]int, len(e.data)),
		factory: e.factory,
	}
	copy(c.data, e.data)
	e.factory.trace(c.id, Copied)
	return c
}

// Move hands the buffer to a new instance and leaves e empty. Moving the
// zero Expensive yields a zero value.
func (e *Expensive) Move() Expensive {
	if e.factory == nil {
		return Expensive{}
	}
	m := Expensive{
		id:      e.factory.nextID(),
		data:    e.data,
		factory: e.factory,
	}
	e.data = nil
	e.factory.trace(m.id, Moved)
	return m
}

// Close releases the buffer. Closing an instance that is already destroyed,
// through any copy of the value, is a no-op.
func (e *Expensive) Close() {
	if e.factory == nil {
		return
	}
	e.factory.release(e.id)
	e.data = nil
}

func (e Expensive) String() string {
	return fmt.Sprintf("ExpensiveToCopy[%d]", e.id)
}
