package codec

import (
	"testing"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_EncodeDecodeUint(t *testing.T) {
	cases := []struct {
		decoded uint64
		encoded []byte
	}{
		{
			decoded: 0,
			encoded: []byte{0},
		},
		{
			decoded: 1,
			encoded: []byte{1},
		},
		{
			decoded: 127,
			encoded: []byte{127},
		},
		{
			decoded: 128,
			encoded: []byte{129, 0},
		},
		{
			decoded: 12345,
			encoded: []byte{224, 57},
		},
		{
			decoded: 12345678,
			encoded: []byte{133, 241, 194, 78},
		},
	}

	for _, tc := range cases {
		enc := newEncoder()
		enc.EncodeUint(tc.decoded)
		require.Equal(t, tc.encoded, enc.Bytes())
	}

	for _, tc := range cases {
		actual, err := newDecoder(tc.encoded).decodeUint()
		require.Nil(t, err)
		require.Equal(t, tc.decoded, actual)
	}
}

func Test_EncodeInt(t *testing.T) {
	cases := []struct {
		decoded int
		encoded []byte
	}{
		{decoded: 0, encoded: []byte{0}},
		{decoded: -1, encoded: []byte{1}},
		{decoded: 1, encoded: []byte{2}},
		{decoded: -64, encoded: []byte{127}},
		{decoded: 64, encoded: []byte{129, 0}},
	}

	for _, tc := range cases {
		enc := newEncoder()
		enc.EncodeInt(tc.decoded)
		require.Equal(t, tc.encoded, enc.Bytes())

		actual, err := newDecoder(tc.encoded).decodeInt()
		require.Nil(t, err)
		require.Equal(t, tc.decoded, actual)
	}
}

func Test_EncodeChain(t *testing.T) {
	head := chain.FromSlice([]int{45, -1, 21, 5, 1 << 40})

	decoded, err := Decode(Encode(head))
	require.Nil(t, err)
	require.Equal(t, []int{45, -1, 21, 5, 1 << 40}, chain.Values(decoded))

	require.Equal(t, []byte{0}, Encode(nil))
	decoded, err = Decode([]byte{0})
	require.Nil(t, err)
	require.Nil(t, decoded)
}

func Test_DecodeTruncated(t *testing.T) {
	blob := Encode(chain.FromSlice([]int{1, 200}))

	for i := 0; i < len(blob); i++ {
		_, err := Decode(blob[:i])
		require.True(t, errors.Is(err, ErrTruncated), "length %d", i)
	}
}
