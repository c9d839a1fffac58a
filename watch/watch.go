/*
Package watch publishes tree snapshots to concurrent readers.

The wbtree engine itself is single-writer: a mutation takes a root and
returns a new root, leaving the old one valid. Publisher packages the
serialization this requires, one lock around "read current root, compute
new root, publish new root", and broadcasts every published snapshot to
subscribers, so readers can follow tree versions without polling.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/wbtree"
)

// Publisher guards the current root of a tree. Any number of goroutines may
// read snapshots with Root; writers are serialized through Update.
type Publisher[K any] struct {
	mu   sync.Mutex
	root wbtree.Node[K]
	cast *caster.Caster
}

// NewPublisher starts publication at the given root, which may be nil for
// an empty tree.
func NewPublisher[K any](root wbtree.Node[K]) *Publisher[K] {
	return &Publisher[K]{
		root: root,
		cast: caster.New(nil), // we will broadcast every published snapshot
	}
}

// Root returns the current snapshot. The returned root never changes;
// subsequent updates publish new roots instead.
func (p *Publisher[K]) Root() wbtree.Node[K] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.root
}

// Update runs fn on the current root under the writer lock and publishes
// the root fn returns. When fn fails, the current snapshot stays in place.
func (p *Publisher[K]) Update(fn func(root wbtree.Node[K]) (wbtree.Node[K], error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	root, err := fn(p.root)
	if err != nil {
		return err
	}
	p.root = root
	p.cast.TryPub(root)
	return nil
}

// Subscribe returns a channel receiving every snapshot published after the
// call, with the given buffer capacity. The second return value is false
// when the publisher is already closed. Publication to a subscriber with a
// full buffer is dropped; laggards can always resynchronize through Root.
func (p *Publisher[K]) Subscribe(capacity uint) (chan interface{}, bool) {
	return p.cast.Sub(nil, capacity)
}

// Unsubscribe detaches a channel obtained from Subscribe.
func (p *Publisher[K]) Unsubscribe(ch chan interface{}) {
	p.cast.Unsub(ch)
}

// Close shuts down broadcasting and closes all subscriber channels.
func (p *Publisher[K]) Close() {
	p.cast.Close()
}
