// Package trie implements the byte-radix trie container: a generic
// key/value map over fixed-width keys, organized as a fan-out-256 trie
// where each level disambiguates on one byte of the key, backed by two
// arena pools (entries, nodes) addressed by stable index rather than
// pointer.
package trie

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/cprime/bytetrie/common"
	"github.com/cprime/bytetrie/internal/pool"
)

const (
	defaultEntryPoolCapacity = 256
	defaultNodePoolCapacity  = 16
	defaultEntryPoolGrowth   = fanOut
	defaultNodePoolGrowth    = 1
)

// Comparator decides whether two serialized keys are equal. A Trie built by
// New uses byte-for-byte equality; a caller may override it (e.g. for a
// case-insensitive comparison over hashed string keys) via WithComparator.
type Comparator func(a, b []byte) bool

func bytewiseEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Trie is a byte-radix trie mapping keys of type K to values of type V.
// The zero value is not usable; construct one with New.
type Trie[K any, V any] struct {
	entries    *pool.Pool[entry[K, V]]
	nodes      *pool.Pool[node]
	serializer common.Serializer[K]
	cmp        Comparator
	size       uint64
	keyLen     int
}

// options accumulates constructor configuration, passed as tuning knobs
// rather than a config file.
type options struct {
	entryCapacity uint64
	nodeCapacity  uint64
	entryGrowth   uint64
	nodeGrowth    uint64
	cmp           Comparator
}

// Option configures a Trie at construction time.
type Option func(*options)

// WithInitialCapacities overrides the entry and node pool's starting
// capacity (defaults: 256 entries, 16 nodes).
func WithInitialCapacities(entries, nodes uint64) Option {
	return func(o *options) {
		o.entryCapacity = entries
		o.nodeCapacity = nodes
	}
}

// WithEntryPoolGrowth overrides the entry pool's minimum geometric growth
// step.
func WithEntryPoolGrowth(step uint64) Option {
	return func(o *options) { o.entryGrowth = step }
}

// WithNodePoolGrowth overrides the node pool's minimum geometric growth
// step.
func WithNodePoolGrowth(step uint64) Option {
	return func(o *options) { o.nodeGrowth = step }
}

// WithComparator overrides the default byte-for-byte key equality, letting
// a caller plug a custom equality function over serialized key bytes.
func WithComparator(cmp Comparator) Option {
	return func(o *options) { o.cmp = cmp }
}

// New constructs an empty Trie: an entry pool of initial capacity 256, a
// node pool of initial capacity 16, and an initialized root node at
// nodes[0].
func New[K any, V any](serializer common.Serializer[K], opts ...Option) (*Trie[K, V], error) {
	if serializer == nil {
		return nil, fmt.Errorf("trie: serializer must not be nil")
	}
	if serializer.Size() <= 0 {
		return nil, fmt.Errorf("trie: serializer.Size() must be positive, got %d", serializer.Size())
	}

	o := options{
		entryCapacity: defaultEntryPoolCapacity,
		nodeCapacity:  defaultNodePoolCapacity,
		entryGrowth:   defaultEntryPoolGrowth,
		nodeGrowth:    defaultNodePoolGrowth,
		cmp:           bytewiseEqual,
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Trie[K, V]{
		entries:    pool.New[entry[K, V]](o.entryCapacity, o.entryGrowth),
		nodes:      pool.New[node](o.nodeCapacity, o.nodeGrowth),
		serializer: serializer,
		cmp:        o.cmp,
		keyLen:     serializer.Size(),
	}
	root, _ := t.nodes.Add()
	*root = newNode()
	return t, nil
}

// Copy returns a deep, independent copy of src: both pools reallocated and
// element-wise copied, size copied.
func Copy[K any, V any](src *Trie[K, V]) *Trie[K, V] {
	return &Trie[K, V]{
		entries:    src.entries.Clone(),
		nodes:      src.nodes.Clone(),
		serializer: src.serializer,
		cmp:        src.cmp,
		size:       src.size,
		keyLen:     src.keyLen,
	}
}

// CopyFrom replaces the receiver's contents with a deep copy of src's.
// Self-assignment (t == src) is a no-op.
func (t *Trie[K, V]) CopyFrom(src *Trie[K, V]) {
	if t == src {
		return
	}
	t.entries.CopyFrom(src.entries)
	t.nodes.CopyFrom(src.nodes)
	t.serializer = src.serializer
	t.cmp = src.cmp
	t.size = src.size
	t.keyLen = src.keyLen
}

// Get returns a copy of the value stored at key, and whether key is
// present.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	v, ok := t.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *v, true
}

// Lookup returns a pointer to the value stored at key, or (nil, false) if
// key is absent. The returned pointer is valid only until the next
// mutating operation on this Trie.
func (t *Trie[K, V]) Lookup(key K) (*V, bool) {
	kb := t.serializer.ToBytes(key)
	nodeIdx := uint64(0)
	level := 0
	for {
		n := t.nodes.Get(nodeIdx)
		s := n.slots[kb[level]]
		switch s.tag {
		case tagTAB:
			nodeIdx = s.payload
			level++
		case tagVAL:
			e := t.entries.Get(s.payload)
			if t.cmp(kb, t.serializer.ToBytes(e.key)) {
				return &e.value, true
			}
			return nil, false
		default: // tagNIL, tagFREE
			return nil, false
		}
	}
}

// MustLookup returns a pointer to the value at key, asserting presence.
// Behavior is undefined (a nil-pointer dereference) if key is absent —
// callers must only use this when presence is already established.
func (t *Trie[K, V]) MustLookup(key K) *V {
	v, _ := t.Lookup(key)
	return v
}

// Insert returns a pointer to the value stored at key, creating a
// zero-valued entry if key is not already present. Newly created values
// hold V's zero value; the caller assigns through the returned pointer.
func (t *Trie[K, V]) Insert(key K) *V {
	kb := t.serializer.ToBytes(key)
	nodeIdx := uint64(0)
	level := 0
	for {
		n := t.nodes.Get(nodeIdx)
		s := n.slots[kb[level]]
		switch s.tag {
		case tagTAB:
			nodeIdx = s.payload
			level++
		case tagVAL:
			e := t.entries.Get(s.payload)
			if t.cmp(kb, t.serializer.ToBytes(e.key)) {
				return &e.value
			}
			return t.alloc(nodeIdx, key, kb, level)
		default: // tagNIL, tagFREE
			return t.alloc(nodeIdx, key, kb, level)
		}
	}
}

// alloc installs key at slots[kb[level]] of nodes[nodeIdx], resolving a
// collision by splitting into a fresh child node if the slot is already
// occupied by a different key.
func (t *Trie[K, V]) alloc(nodeIdx uint64, key K, kb []byte, level int) *V {
	for {
		n := t.nodes.Get(nodeIdx)
		s := n.slots[kb[level]]

		if s.tag == tagVAL {
			if level+1 >= t.keyLen {
				// Unreachable for distinct fixed-width keys: a VAL collision
				// at the final level implies the stored key and kb agree on
				// every byte, i.e. they are equal, which Insert already
				// special-cased before calling alloc. Guard rather than
				// read past the key regardless.
				panic("trie: alloc collision at final key byte, keys not actually distinct")
			}
			existing := t.entries.Get(s.payload)
			existingBytes := t.serializer.ToBytes(existing.key)

			child := newNode()
			child.slots[existingBytes[level+1]] = s
			child.refs = 1
			childPtr, childIdx := t.nodes.Add()
			*childPtr = child

			// Re-fetch: Add may have reallocated the node pool's backing
			// buffer, invalidating n.
			n = t.nodes.Get(nodeIdx)
			n.slots[kb[level]] = slot{tag: tagTAB, payload: childIdx}
			n.refs--

			nodeIdx = childIdx
			level++
			continue
		}

		// tagNIL or tagFREE: install a VAL slot, allocating a fresh entry
		// only for tagNIL (tagFREE reuses the entry index the slot still
		// remembers from before it was vacated).
		var entryIdx uint64
		if s.tag == tagNIL {
			e, idx := t.entries.Add()
			e.key = key
			entryIdx = idx
		} else {
			entryIdx = s.payload
			reused := t.entries.Get(entryIdx)
			reused.key = key
			var zero V
			reused.value = zero
		}
		e := t.entries.Get(entryIdx)
		e.refs = 1
		n.slots[kb[level]] = slot{tag: tagVAL, payload: entryIdx}
		n.refs++
		t.size++
		return &e.value
	}
}

// Remove deletes key if present; it is a no-op if key is absent or already
// removed. The entry's storage is not released: its slot is marked
// reusable (tagFREE) so a later insert at the same byte path can reuse it.
func (t *Trie[K, V]) Remove(key K) {
	kb := t.serializer.ToBytes(key)
	nodeIdx := uint64(0)
	level := 0
	for {
		n := t.nodes.Get(nodeIdx)
		s := &n.slots[kb[level]]
		switch s.tag {
		case tagVAL:
			e := t.entries.Get(s.payload)
			if t.cmp(kb, t.serializer.ToBytes(e.key)) {
				e.refs = 0
				s.tag = tagFREE
				n.refs--
				t.size--
			}
			return
		case tagTAB:
			nodeIdx = s.payload
			level++
		default:
			return
		}
	}
}

// ProfLookup reports the trie depth visited to resolve key: it ignores the
// entry-compare step and returns level+1 at the first non-TAB slot.
func (t *Trie[K, V]) ProfLookup(key K) uint64 {
	kb := t.serializer.ToBytes(key)
	nodeIdx := uint64(0)
	level := 0
	for {
		n := t.nodes.Get(nodeIdx)
		s := n.slots[kb[level]]
		if s.tag == tagTAB {
			nodeIdx = s.payload
			level++
			continue
		}
		return uint64(level + 1)
	}
}

// Size returns the number of live entries.
func (t *Trie[K, V]) Size() uint64 { return t.size }

// NodeCount returns the number of nodes currently allocated.
func (t *Trie[K, V]) NodeCount() uint64 { return t.nodes.Size() }

func entrySize[K any, V any]() uintptr { return unsafe.Sizeof(entry[K, V]{}) }
func nodeSize() uintptr               { return unsafe.Sizeof(node{}) }

// AllocatedBytes returns the pool capacity cost: entry pool capacity times
// entry size, plus node pool capacity times node size.
func (t *Trie[K, V]) AllocatedBytes() uint64 {
	return t.entries.Capacity()*uint64(entrySize[K, V]()) + t.nodes.Capacity()*uint64(nodeSize())
}

// UsedBytes approximates the live cost: size times entry size, plus node
// size for every node whose refs is greater than 0. A node populated only
// with TAB children (refs == 0) is counted as unused, which under-reports
// deep but sparse subtrees; this is an approximation, not an exact byte
// count.
func (t *Trie[K, V]) UsedBytes() uint64 {
	liveNodes := uint64(0)
	t.nodes.ForEach(func(_ uint64, n *node) {
		if n.refs > 0 {
			liveNodes++
		}
	})
	return t.size*uint64(entrySize[K, V]()) + liveNodes*uint64(nodeSize())
}

// MemoryFootprint reports AllocatedBytes/UsedBytes as a labeled tree
// broken down by entry pool and node pool, rather than a single opaque
// number.
func (t *Trie[K, V]) MemoryFootprint() *common.MemoryFootprint {
	entriesFootprint := common.NewMemoryFootprint(uintptr(t.entries.Capacity() * uint64(entrySize[K, V]())))
	entriesFootprint.SetNote(fmt.Sprintf("(live: %d, capacity: %d)", t.size, t.entries.Capacity()))

	nodesFootprint := common.NewMemoryFootprint(uintptr(t.nodes.Capacity() * uint64(nodeSize())))
	nodesFootprint.SetNote(fmt.Sprintf("(allocated: %d)", t.nodes.Size()))

	mf := common.NewMemoryFootprint(0)
	mf.AddChild("entries", entriesFootprint)
	mf.AddChild("nodes", nodesFootprint)
	mf.SetNote(fmt.Sprintf("(size: %d)", t.size))
	return mf
}
