package common

import (
	"fmt"
	"strings"

	"github.com/pbnjay/memory"
)

// MemoryFootprint describes the memory consumption of a component as a
// labeled tree. The trie uses it to express allocated/used bytes as a
// breakdown between the entry pool and the node pool rather than a single
// opaque number.
type MemoryFootprint struct {
	self     uintptr
	note     string
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a footprint node accounting for self bytes,
// exclusive of any children later attached to it.
func NewMemoryFootprint(self uintptr) *MemoryFootprint {
	return &MemoryFootprint{self: self}
}

// AddChild attaches a labeled sub-footprint, such as the entry pool or the
// node pool of a trie.
func (m *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if m.children == nil {
		m.children = map[string]*MemoryFootprint{}
	}
	m.children[name] = child
}

// SetNote attaches a human-readable annotation, e.g. an element count.
func (m *MemoryFootprint) SetNote(note string) {
	m.note = note
}

// Total returns the total bytes accounted for by this node and all of its
// children.
func (m *MemoryFootprint) Total() uintptr {
	total := m.self
	for _, c := range m.children {
		total += c.Total()
	}
	return total
}

// Report renders the footprint tree together with its size relative to the
// total system memory.
func (m *MemoryFootprint) Report() string {
	var b strings.Builder
	m.write(&b, 0)
	total := memory.TotalMemory()
	if total > 0 {
		fmt.Fprintf(&b, "(%.4f%% of %d bytes total system memory)\n", 100*float64(m.Total())/float64(total), total)
	}
	return b.String()
}

func (m *MemoryFootprint) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%d bytes", indent, m.self)
	if m.note != "" {
		fmt.Fprintf(b, " %s", m.note)
	}
	fmt.Fprintln(b)
	for name, c := range m.children {
		fmt.Fprintf(b, "%s- %s: ", indent, name)
		c.write(b, depth+1)
	}
}
