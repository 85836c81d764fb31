package keyhash

import (
	"testing"

	"github.com/cprime/bytetrie/common"
	"github.com/stretchr/testify/require"
)

func TestFromBytes_IsDeterministic(t *testing.T) {
	a := FromBytes(nil, []byte("hello"))
	b := FromBytes(nil, []byte("hello"))
	require.Equal(t, a, b)
}

func TestFromBytes_DifferentInputsDiffer(t *testing.T) {
	a := FromBytes(nil, []byte("hello"))
	b := FromBytes(nil, []byte("world"))
	require.NotEqual(t, a, b)
}

func TestFromBytes_MatchesDirectHasherDigest(t *testing.T) {
	h := common.NewFNV1a64()
	h.Write([]byte("payload"))
	want := common.Key8Serializer.FromBytes(common.Uint64Serializer{}.ToBytes(h.Sum64()))

	got := FromBytes(nil, []byte("payload"))
	require.Equal(t, want, got)
}

func TestFromCString_StopsAtNulByte(t *testing.T) {
	withTrailingGarbage := append([]byte("name\x00"), "garbage"...)
	a := FromCString(nil, withTrailingGarbage)
	b := FromBytes(nil, []byte("name"))
	require.Equal(t, b, a)
}

func TestFromString_HashesFullString(t *testing.T) {
	a := FromString(nil, "hello")
	b := FromBytes(nil, []byte("hello"))
	require.Equal(t, b, a)
}
