// Package common holds small types shared by the trie
// container and its supporting packages: the byte-view abstraction over key
// types, the FNV-1a hasher, and the memory-footprint accounting tree.
package common

// Serializer converts values of type T to and from their fixed-width byte
// representation. The trie never inspects a key's memory directly (there is
// no unsafe reinterpretation) — instead every container is constructed with
// a Serializer for its key type, and equality between keys is defined as
// byte-equality between their serialized forms.
//
// Size must return the same constant for every value of T; the trie uses it
// to bound recursion depth and to index into a key's byte representation.
type Serializer[T any] interface {
	ToBytes(T) []byte
	FromBytes([]byte) T
	Size() int
}

// Uint64Serializer is a Serializer for plain uint64 keys, stored big-endian
// so that lexicographic byte order matches numeric order.
type Uint64Serializer struct{}

func (Uint64Serializer) Size() int { return 8 }

func (Uint64Serializer) ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v >> (8 * i))
	}
	return b
}

func (Uint64Serializer) FromBytes(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8 && i < len(b); i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// ByteArraySerializer implements Serializer for the concrete array type A,
// whose length is fixed at size bytes. Used where the key type is already a
// byte array and no conversion beyond a slice view is needed.
type ByteArraySerializer[A comparable] struct {
	size int
	to   func(A) []byte
	from func([]byte) A
}

// NewByteArraySerializer builds a Serializer for an array-like key type A,
// given the fixed width and the two conversion functions. This indirection
// exists because Go generics cannot express "the array length matching the
// type parameter" directly; callers supply the conversion once per key type.
func NewByteArraySerializer[A comparable](size int, to func(A) []byte, from func([]byte) A) ByteArraySerializer[A] {
	return ByteArraySerializer[A]{size: size, to: to, from: from}
}

func (s ByteArraySerializer[A]) Size() int          { return s.size }
func (s ByteArraySerializer[A]) ToBytes(a A) []byte { return s.to(a) }
func (s ByteArraySerializer[A]) FromBytes(b []byte) A {
	return s.from(b)
}
