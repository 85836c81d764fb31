// Package keyhash adapts variable-length byte buffers — notably
// zero-terminated character sequences — into fixed-width 64-bit digest keys
// usable with the trie, by FNV-1a-hashing the buffer.
package keyhash

import "github.com/cprime/bytetrie/common"

// FromBytes hashes buf with h (a fresh FNV-1a 64-bit hasher when h is nil)
// and returns the digest as an 8-byte key, suitable for use with trie.New
// and common.Key8Serializer.
func FromBytes(h common.Hasher, buf []byte) common.Key8 {
	if h == nil {
		h = common.NewFNV1a64()
	}
	hashed := h.With(buf)
	return common.Key8Serializer.FromBytes(common.Uint64Serializer{}.ToBytes(hashed.Sum64()))
}

// FromCString hashes a zero-terminated byte sequence, stopping at (and
// excluding) the first 0x00 byte.
func FromCString(h common.Hasher, cstr []byte) common.Key8 {
	n := 0
	for n < len(cstr) && cstr[n] != 0 {
		n++
	}
	return FromBytes(h, cstr[:n])
}

// FromString is a convenience wrapper over FromBytes for Go strings, which
// are not zero-terminated and therefore hashed in full.
func FromString(h common.Hasher, s string) common.Key8 {
	return FromBytes(h, []byte(s))
}
