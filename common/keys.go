package common

// Key8 is a convenience 8-byte fixed-width key, usable directly with the
// trie — integer-like keys can be used as-is without a separate hashing
// step.
type Key8 [8]byte

// Key20 and Key32 are convenience fixed-width keys sized for common digest
// and address use cases (20-byte addresses, 32-byte hashes).
type Key20 [20]byte
type Key32 [32]byte

// Key8Serializer, Key20Serializer, Key32Serializer are the ByteArraySerializer
// instances for the convenience key types above.
var (
	Key8Serializer  = NewByteArraySerializer[Key8](8, key8ToBytes, bytesToKey8)
	Key20Serializer = NewByteArraySerializer[Key20](20, key20ToBytes, bytesToKey20)
	Key32Serializer = NewByteArraySerializer[Key32](32, key32ToBytes, bytesToKey32)
)

func key8ToBytes(k Key8) []byte  { b := make([]byte, 8); copy(b, k[:]); return b }
func bytesToKey8(b []byte) Key8  { var k Key8; copy(k[:], b); return k }
func key20ToBytes(k Key20) []byte { b := make([]byte, 20); copy(b, k[:]); return b }
func bytesToKey20(b []byte) Key20 { var k Key20; copy(k[:], b); return k }
func key32ToBytes(k Key32) []byte { b := make([]byte, 32); copy(b, k[:]); return b }
func bytesToKey32(b []byte) Key32 { var k Key32; copy(k[:], b); return k }
