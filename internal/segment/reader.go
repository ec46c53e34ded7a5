package segment

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	mmap "github.com/blevesearch/mmap-go"

	"biblio/internal/codec"
	"biblio/internal/core"
)

// Reader opens a segment directory by memory-mapping its terms, postings,
// and chunks files. It is immutable and safe for unlimited concurrent use
// by many search goroutines once constructed.
type Reader struct {
	dir string

	termsFh    *os.File
	postingsFh *os.File
	chunksFh   *os.File

	terms    mmap.MMap
	postings mmap.MMap
	chunks   mmap.MMap

	termCount  uint32
	chunkCount uint32

	stats core.SegmentStats
}

// Open opens the segment at dir. It fails with core.ErrInvalidManifest-
// adjacent semantics if the COMMIT sentinel is absent: an uncommitted
// segment must never be read by a searcher.
func Open(dir string) (*Reader, error) {
	if _, err := os.Stat(filepath.Join(dir, commitFile)); err != nil {
		return nil, fmt.Errorf("%w: segment %s missing COMMIT sentinel", core.ErrIO, dir)
	}

	r := &Reader{dir: dir}

	statsBytes, err := os.ReadFile(filepath.Join(dir, statsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: read stats: %v", core.ErrIO, err)
	}
	if len(statsBytes) != statsSize {
		return nil, fmt.Errorf("%w: stats file has wrong size", core.ErrIO)
	}
	r.stats = core.SegmentStats{
		ChunkCount:  binary.LittleEndian.Uint64(statsBytes[0:8]),
		TotalLength: binary.LittleEndian.Uint64(statsBytes[8:16]),
		BaseChunkID: binary.LittleEndian.Uint64(statsBytes[16:24]),
	}

	if r.termsFh, r.terms, err = openMapped(filepath.Join(dir, termsFile)); err != nil {
		return nil, err
	}
	if len(r.terms) >= 4 {
		r.termCount = binary.LittleEndian.Uint32(r.terms[0:4])
	}

	if r.postingsFh, r.postings, err = openMapped(filepath.Join(dir, postingsFile)); err != nil {
		r.Close()
		return nil, err
	}

	if r.chunksFh, r.chunks, err = openMapped(filepath.Join(dir, chunksFile)); err != nil {
		r.Close()
		return nil, err
	}
	if len(r.chunks) >= 4 {
		r.chunkCount = binary.LittleEndian.Uint32(r.chunks[0:4])
	}

	return r, nil
}

func openMapped(path string) (*os.File, mmap.MMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: stat %s: %v", core.ErrIO, path, err)
	}
	if fi.Size() == 0 {
		// mmap-go rejects zero-length mappings; an empty segment file is
		// legal (e.g. a batch with no postings at all).
		return f, mmap.MMap{}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: mmap %s: %v", core.ErrIO, path, err)
	}
	return f, m, nil
}

// Stats returns the segment's chunk_count, total_length, and base_chunk_id.
func (r *Reader) Stats() core.SegmentStats { return r.stats }

// Lookup binary-searches the term dictionary. ok is false if the term does
// not occur in this segment.
func (r *Reader) Lookup(term string) (postings []core.Posting, df uint64, ok bool, err error) {
	if r.termCount == 0 {
		return nil, 0, false, nil
	}
	target := []byte(term)
	blobStart := 4 + int(r.termCount)*termRecordSize

	idx := sort.Search(int(r.termCount), func(i int) bool {
		return bytes.Compare(r.termBytes(i, blobStart), target) >= 0
	})
	if idx >= int(r.termCount) || !bytes.Equal(r.termBytes(idx, blobStart), target) {
		return nil, 0, false, nil
	}

	rec := r.termRecord(idx)
	df = binary.LittleEndian.Uint64(rec[6:14])
	pOffset := binary.LittleEndian.Uint64(rec[14:22])
	pLength := binary.LittleEndian.Uint64(rec[22:30])

	if pOffset+pLength > uint64(len(r.postings)) {
		return nil, 0, false, fmt.Errorf("%w: postings slice out of range for term %q", core.ErrInvalidPostings, term)
	}
	postings, err = codec.Decode(r.postings[pOffset : pOffset+pLength])
	if err != nil {
		return nil, 0, false, err
	}
	return postings, df, true, nil
}

func (r *Reader) termRecord(i int) []byte {
	start := 4 + i*termRecordSize
	return r.terms[start : start+termRecordSize]
}

func (r *Reader) termBytes(i, blobStart int) []byte {
	rec := r.termRecord(i)
	offset := binary.LittleEndian.Uint32(rec[0:4])
	length := binary.LittleEndian.Uint16(rec[4:6])
	start := blobStart + int(offset)
	return r.terms[start : start+int(length)]
}

// Chunk returns the (book_id, length) entry for a local chunk ordinal.
func (r *Reader) Chunk(localID uint32) (core.ChunkEntry, error) {
	if localID >= r.chunkCount {
		return core.ChunkEntry{}, fmt.Errorf("%w: local chunk id %d out of range (count %d)", core.ErrIO, localID, r.chunkCount)
	}
	blobStart := 4 + int(r.chunkCount)*chunkRecordSize
	start := 4 + int(localID)*chunkRecordSize
	rec := r.chunks[start : start+chunkRecordSize]

	offset := binary.LittleEndian.Uint32(rec[0:4])
	idLen := binary.LittleEndian.Uint16(rec[4:6])
	length := binary.LittleEndian.Uint32(rec[6:10])

	idStart := blobStart + int(offset)
	bookID := string(r.chunks[idStart : idStart+int(idLen)])
	return core.ChunkEntry{BookID: bookID, Length: length}, nil
}

// Dir returns the segment's directory path, mostly for logging/doctor use.
func (r *Reader) Dir() string { return r.dir }

// TermCount returns the number of distinct terms in this segment's term
// dictionary. Used by the doctor command to walk every term for invariant
// checking; the search path never needs it.
func (r *Reader) TermCount() int { return int(r.termCount) }

// TermAt returns the term dictionary's i'th term in sorted order, for
// i in [0, TermCount()).
func (r *Reader) TermAt(i int) string {
	blobStart := 4 + int(r.termCount)*termRecordSize
	return string(r.termBytes(i, blobStart))
}

// Close unmaps and closes every file backing the reader. Safe to call once
// all searches using this reader have finished.
func (r *Reader) Close() error {
	var firstErr error
	unmap := func(m mmap.MMap, f *os.File) {
		if m != nil && len(m) > 0 {
			if err := m.Unmap(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if f != nil {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	unmap(r.terms, r.termsFh)
	unmap(r.postings, r.postingsFh)
	unmap(r.chunks, r.chunksFh)
	return firstErr
}
