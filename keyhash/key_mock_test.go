package keyhash

import (
	"testing"

	"github.com/cprime/bytetrie/common"
	"github.com/cprime/bytetrie/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFromBytes_DelegatesToProvidedHasher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := mocks.NewMockHasher(ctrl)
	stubResult := mocks.NewMockHasher(ctrl)
	stub.EXPECT().With([]byte("payload")).Return(stubResult)
	stubResult.EXPECT().Sum64().Return(uint64(0x1122334455667788))

	got := FromBytes(stub, []byte("payload"))
	want := common.Key8Serializer.FromBytes(common.Uint64Serializer{}.ToBytes(0x1122334455667788))
	require.Equal(t, want, got)
}
