package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/internal/core"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]core.Posting{
		nil,
		{{ChunkID: 0, TF: 1}},
		{{ChunkID: 5, TF: 3}, {ChunkID: 9, TF: 1}, {ChunkID: 1000, TF: 42}},
		{{ChunkID: 1, TF: 1}, {ChunkID: 2, TF: 1}, {ChunkID: 3, TF: 1}},
	}

	for _, xs := range cases {
		encoded := Encode(xs)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		if len(xs) == 0 {
			assert.Empty(t, decoded)
		} else {
			assert.Equal(t, xs, decoded)
		}
	}
}

func TestEncodeLargeChunkIDs(t *testing.T) {
	xs := []core.Posting{
		{ChunkID: 1 << 40, TF: 1},
		{ChunkID: (1 << 40) + 7, TF: 100},
	}
	decoded, err := Decode(Encode(xs))
	require.NoError(t, err)
	assert.Equal(t, xs, decoded)
}

func TestDecodeTruncatedVarint(t *testing.T) {
	_, err := Decode([]byte{0x80, 0x80})
	assert.ErrorIs(t, err, core.ErrInvalidPostings)
}

func TestDecodeEmptyIsEmpty(t *testing.T) {
	decoded, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestEncodedSizeBounds(t *testing.T) {
	xs := []core.Posting{{ChunkID: 5, TF: 2}, {ChunkID: 12, TF: 9}}
	encoded := Encode(xs)
	assert.GreaterOrEqual(t, len(encoded), 2*len(xs))
	assert.LessOrEqual(t, len(encoded), 20*len(xs))
}
