// Package nrt implements the optional near-real-time indexer: a
// write-ahead log plus an in-RAM inverted index that makes newly added
// documents searchable immediately, without rewriting any on-disk segment
// (spec.md §4.9).
package nrt

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"biblio/internal/core"
)

// walRecord is one (raw text, raw metadata) pair as framed on disk:
//
//	uint32 textLen | text | uint32 metaLen | metadata | uint32 crc32(text||metadata)
//
// The trailing checksum is what lets replay tell a genuine crash-mid-append
// (a truncated final record — discarded silently) apart from a record that
// was completely framed but whose bytes were corrupted in place (surfaced
// as core.ErrWalCorrupt, since uncorrupted records may follow it).
type walRecord struct {
	text     string
	metadata []byte
}

// WAL is an append-only, fsync-on-write log of NRT documents.
type WAL struct {
	path string
	f    *os.File
}

// OpenWAL opens (creating if absent) the WAL file at path for appending.
func OpenWAL(path string) (*WAL, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: open wal %s: %v", core.ErrIO, path, err)
	}
	return &WAL{path: path, f: f}, nil
}

// Append writes one record and fsyncs before returning, per spec.md §4.9:
// add_document must not return until the WAL append is durable.
func (w *WAL) Append(text string, metadata []byte) error {
	buf := encodeRecord(walRecord{text: text, metadata: metadata})
	if _, err := w.f.Write(buf); err != nil {
		return fmt.Errorf("%w: append wal record: %v", core.ErrIO, err)
	}
	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("%w: sync wal: %v", core.ErrIO, err)
	}
	return nil
}

// Truncate empties the WAL, used by flush().
func (w *WAL) Truncate() error {
	if err := w.f.Truncate(0); err != nil {
		return fmt.Errorf("%w: truncate wal: %v", core.ErrIO, err)
	}
	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek wal: %v", core.ErrIO, err)
	}
	return w.f.Sync()
}

// Close closes the underlying file handle.
func (w *WAL) Close() error { return w.f.Close() }

func encodeRecord(r walRecord) []byte {
	text := []byte(r.text)
	sum := crc32.ChecksumIEEE(append(append([]byte{}, text...), r.metadata...))

	buf := make([]byte, 0, 4+len(text)+4+len(r.metadata)+4)
	var lenBuf [4]byte

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(text)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, text...)

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(r.metadata)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, r.metadata...)

	binary.LittleEndian.PutUint32(lenBuf[:], sum)
	buf = append(buf, lenBuf[:]...)
	return buf
}

// ReplayWAL reads every complete, well-formed record in the WAL at path and
// invokes fn for each in append order. A missing file replays zero records.
//
// A record truncated by a crash mid-append (the file ends before its
// declared length is satisfied) is discarded silently — this can only ever
// be the final record, since io.ReadFull only returns a short read at true
// end-of-file. A record that reads completely but fails its checksum is a
// different failure: bytes were corrupted after framing, and records may
// follow it, so replay refuses to guess and returns core.ErrWalCorrupt.
func ReplayWAL(path string, fn func(text string, metadata []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: open wal %s: %v", core.ErrIO, path, err)
	}
	defer f.Close()

	for {
		rec, truncated, err := readRecord(f)
		if err != nil {
			return err
		}
		if truncated {
			return nil
		}
		if rec == nil {
			return nil
		}
		if err := fn(rec.text, rec.metadata); err != nil {
			return err
		}
	}
}

// readRecord reads one record from f. truncated=true means end-of-file was
// reached mid-record (a clean crash-mid-append signal, not an error).
// rec == nil, truncated == false, err == nil means a clean end of stream.
func readRecord(f *os.File) (rec *walRecord, truncated bool, err error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(f, lenBuf[:]); err != nil {
		if err == io.EOF {
			return nil, false, nil
		}
		return nil, true, nil
	}
	textLen := binary.LittleEndian.Uint32(lenBuf[:])

	text := make([]byte, textLen)
	if _, err := io.ReadFull(f, text); err != nil {
		return nil, true, nil
	}

	if _, err := io.ReadFull(f, lenBuf[:]); err != nil {
		return nil, true, nil
	}
	metaLen := binary.LittleEndian.Uint32(lenBuf[:])

	meta := make([]byte, metaLen)
	if _, err := io.ReadFull(f, meta); err != nil {
		return nil, true, nil
	}

	if _, err := io.ReadFull(f, lenBuf[:]); err != nil {
		return nil, true, nil
	}
	wantSum := binary.LittleEndian.Uint32(lenBuf[:])
	gotSum := crc32.ChecksumIEEE(append(append([]byte{}, text...), meta...))
	if wantSum != gotSum {
		return nil, false, fmt.Errorf("%w: checksum mismatch in wal record", core.ErrWalCorrupt)
	}

	return &walRecord{text: string(text), metadata: meta}, false, nil
}
