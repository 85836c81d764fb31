package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode_AllSlotsNilAndZeroRefs(t *testing.T) {
	n := newNode()
	require.Equal(t, uint32(0), n.refs)
	for i := 0; i < fanOut; i++ {
		require.Equal(t, tagNIL, n.slots[i].tag)
	}
}
