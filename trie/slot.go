package trie

// tag discriminates the role of a slot within a node.
type tag uint8

const (
	// tagNIL marks a slot that has never been populated.
	tagNIL tag = iota
	// tagFREE marks a slot that was VAL and has since been vacated by a
	// remove; its payload still identifies the freed entry so a later
	// insert at the same byte path can reuse that entry's storage.
	tagFREE
	// tagVAL marks a slot terminating in a stored key/value entry.
	tagVAL
	// tagTAB marks a slot descending into a child node.
	tagTAB
)

// slot is a tagged index: its payload means an entry-pool index when tag is
// tagVAL, a node-pool index when tag is tagTAB, and is meaningless (but,
// for tagFREE, remembered) otherwise.
type slot struct {
	tag     tag
	payload uint64
}
