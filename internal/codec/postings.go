// Package codec implements the variable-byte encoding used for postings
// lists: a sequence of (chunk_id, tf) pairs sorted ascending by chunk_id,
// stored as delta-encoded, interleaved varints.
package codec

import (
	"fmt"

	"biblio/internal/core"
)

// Encode writes postings as delta-encoded varints: the first entry's
// chunk_id is a delta from 0, every later entry's chunk_id is a delta from
// the previous entry's chunk_id, each followed by its tf. postings must
// already be sorted ascending by ChunkID with no duplicates — Encode does
// not re-sort or validate.
func Encode(postings []core.Posting) []byte {
	buf := make([]byte, 0, len(postings)*4)
	var prev uint64
	for _, p := range postings {
		delta := p.ChunkID - prev
		buf = appendVarint(buf, delta)
		buf = appendVarint(buf, uint64(p.TF))
		prev = p.ChunkID
	}
	return buf
}

// Decode is the inverse of Encode. Any byte sequence not produced by Encode
// on valid input — an odd varint, a truncated trailing byte, a tf of zero,
// a repeated chunk_id — is rejected with core.ErrInvalidPostings.
func Decode(data []byte) ([]core.Posting, error) {
	var postings []core.Posting
	var chunkID uint64
	i := 0
	for i < len(data) {
		delta, n, err := readVarint(data[i:])
		if err != nil {
			return nil, err
		}
		i += n

		tf, n, err := readVarint(data[i:])
		if err != nil {
			return nil, err
		}
		i += n

		if tf == 0 || tf > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: tf out of range", core.ErrInvalidPostings)
		}

		if len(postings) > 0 && delta == 0 {
			return nil, fmt.Errorf("%w: chunk ids not strictly increasing", core.ErrInvalidPostings)
		}

		chunkID += delta
		postings = append(postings, core.Posting{ChunkID: chunkID, TF: uint32(tf)})
	}
	return postings, nil
}

func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readVarint reads one 7-bits-per-byte, MSB-continuation varint from the
// front of data, returning the value and the number of bytes consumed.
func readVarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < len(data); i++ {
		b := data[i]
		if shift >= 64 {
			return 0, 0, fmt.Errorf("%w: varint too long", core.ErrInvalidPostings)
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("%w: truncated varint", core.ErrInvalidPostings)
}
