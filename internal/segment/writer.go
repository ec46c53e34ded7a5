package segment

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"biblio/internal/analyzer"
	"biblio/internal/codec"
	"biblio/internal/core"
)

// ChunkInput is one (book_id, chunk_text) pair handed to the writer. Local
// chunk ids are assigned by position in the slice: inputs[i] becomes local
// chunk i, global chunk_id = baseChunkID + i.
type ChunkInput struct {
	BookID string
	Text   string
}

// Write builds one immutable segment from a batch of chunks and persists it
// under dir (which must not yet exist). It runs the Analyzer over every
// chunk, accumulates term→postings entirely in memory, then serializes the
// term dictionary, postings blob, chunk table and stats, finishing with a
// COMMIT sentinel so the segment becomes visible to readers only once
// every other file is durably on disk.
func Write(dir string, baseChunkID uint64, inputs []ChunkInput, an *analyzer.Analyzer) (core.SegmentStats, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return core.SegmentStats{}, fmt.Errorf("%w: mkdir segment dir: %v", core.ErrIO, err)
	}

	chunkEntries := make([]core.ChunkEntry, len(inputs))
	termPostings := make(map[string][]core.Posting)

	for local, in := range inputs {
		terms := an.Analyze(in.Text)
		freq := make(map[string]uint32, len(terms))
		for _, t := range terms {
			freq[t]++
		}
		chunkEntries[local] = core.ChunkEntry{BookID: in.BookID, Length: uint32(len(terms))}
		for term, tf := range freq {
			termPostings[term] = append(termPostings[term], core.Posting{ChunkID: uint64(local), TF: tf})
		}
	}

	sortedTerms := make([]string, 0, len(termPostings))
	for t := range termPostings {
		sortedTerms = append(sortedTerms, t)
	}
	sort.Strings(sortedTerms)

	postingsBlob := make([]byte, 0)
	entries := make([]core.TermEntry, 0, len(sortedTerms))
	for _, term := range sortedTerms {
		local := termPostings[term]
		globalPostings := make([]core.Posting, len(local))
		for i, p := range local {
			globalPostings[i] = core.Posting{ChunkID: baseChunkID + p.ChunkID, TF: p.TF}
		}
		encoded := codec.Encode(globalPostings)
		entries = append(entries, core.TermEntry{
			Term:   term,
			DF:     uint64(len(globalPostings)),
			Offset: uint64(len(postingsBlob)),
			Length: uint64(len(encoded)),
		})
		postingsBlob = append(postingsBlob, encoded...)
	}

	if err := writeFileSynced(filepath.Join(dir, postingsFile), postingsBlob); err != nil {
		return core.SegmentStats{}, err
	}
	if err := writeTermsFile(filepath.Join(dir, termsFile), entries); err != nil {
		return core.SegmentStats{}, err
	}
	if err := writeChunksFile(filepath.Join(dir, chunksFile), chunkEntries); err != nil {
		return core.SegmentStats{}, err
	}

	var totalLength uint64
	for _, c := range chunkEntries {
		totalLength += uint64(c.Length)
	}
	stats := core.SegmentStats{
		ChunkCount:  uint64(len(chunkEntries)),
		TotalLength: totalLength,
		BaseChunkID: baseChunkID,
	}
	if err := writeStatsFile(filepath.Join(dir, statsFile), stats); err != nil {
		return core.SegmentStats{}, err
	}

	// COMMIT last, and only after everything above is durably flushed: the
	// sentinel's presence is the sole signal that this segment is complete.
	if err := writeFileSynced(filepath.Join(dir, commitFile), nil); err != nil {
		return core.SegmentStats{}, err
	}
	if err := syncDir(dir); err != nil {
		return core.SegmentStats{}, err
	}

	return stats, nil
}

func writeTermsFile(path string, entries []core.TermEntry) error {
	var blob []byte
	records := make([]byte, 0, len(entries)*termRecordSize)
	for _, e := range entries {
		termBytes := []byte(e.Term)
		rec := make([]byte, termRecordSize)
		binary.LittleEndian.PutUint32(rec[0:4], uint32(len(blob)))
		binary.LittleEndian.PutUint16(rec[4:6], uint16(len(termBytes)))
		binary.LittleEndian.PutUint64(rec[6:14], e.DF)
		binary.LittleEndian.PutUint64(rec[14:22], e.Offset)
		binary.LittleEndian.PutUint64(rec[22:30], e.Length)
		records = append(records, rec...)
		blob = append(blob, termBytes...)
	}

	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(len(entries)))

	out := make([]byte, 0, len(header)+len(records)+len(blob))
	out = append(out, header...)
	out = append(out, records...)
	out = append(out, blob...)
	return writeFileSynced(path, out)
}

func writeChunksFile(path string, chunks []core.ChunkEntry) error {
	var blob []byte
	records := make([]byte, 0, len(chunks)*chunkRecordSize)
	for _, c := range chunks {
		idBytes := []byte(c.BookID)
		rec := make([]byte, chunkRecordSize)
		binary.LittleEndian.PutUint32(rec[0:4], uint32(len(blob)))
		binary.LittleEndian.PutUint16(rec[4:6], uint16(len(idBytes)))
		binary.LittleEndian.PutUint32(rec[6:10], c.Length)
		records = append(records, rec...)
		blob = append(blob, idBytes...)
	}

	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(len(chunks)))

	out := make([]byte, 0, len(header)+len(records)+len(blob))
	out = append(out, header...)
	out = append(out, records...)
	out = append(out, blob...)
	return writeFileSynced(path, out)
}

func writeStatsFile(path string, stats core.SegmentStats) error {
	buf := make([]byte, statsSize)
	binary.LittleEndian.PutUint64(buf[0:8], stats.ChunkCount)
	binary.LittleEndian.PutUint64(buf[8:16], stats.TotalLength)
	binary.LittleEndian.PutUint64(buf[16:24], stats.BaseChunkID)
	return writeFileSynced(path, buf)
}

func writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %v", core.ErrIO, path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", core.ErrIO, path, err)
	}
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: open dir %s: %v", core.ErrIO, dir, err)
	}
	defer f.Close()
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync dir %s: %v", core.ErrIO, dir, err)
	}
	return nil
}
