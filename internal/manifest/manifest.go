// Package manifest implements the top-level, atomically-published record of
// an index's segments and corpus-wide statistics.
package manifest

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"biblio/internal/constants"
	"biblio/internal/core"
)

// Manifest lists every segment in an index plus corpus-level stats used by
// BM25 scoring (total_docs = sum of chunks across segments, avgdl = total
// chunk length ÷ total_docs).
type Manifest struct {
	Version     uint16
	TotalDocs   uint64
	TotalLength uint64
	K1          float64
	B           float64
	Segments    []string
}

// New returns an empty manifest for a fresh index, using the given ranking
// constants.
func New(k1, b float64) *Manifest {
	return &Manifest{
		Version: constants.ManifestFormatVersion,
		K1:      k1,
		B:       b,
	}
}

// AvgDL is the manifest's average chunk length, per spec: total_length /
// max(1, total_docs).
func (m *Manifest) AvgDL() float64 {
	denom := m.TotalDocs
	if denom == 0 {
		denom = 1
	}
	return float64(m.TotalLength) / float64(denom)
}

// NextBaseChunkID returns the global chunk id the next segment should start
// at: the running total of chunks already committed.
func (m *Manifest) NextBaseChunkID() uint64 {
	return m.TotalDocs
}

// WithSegment returns a copy of m with segment appended and its stats
// folded into the corpus totals. It does not mutate m.
func (m *Manifest) WithSegment(segmentName string, stats core.SegmentStats) *Manifest {
	next := *m
	next.Segments = append(append([]string{}, m.Segments...), segmentName)
	next.TotalDocs = m.TotalDocs + stats.ChunkCount
	next.TotalLength = m.TotalLength + stats.TotalLength
	return &next
}

// Marshal renders the manifest in the line-oriented textual format
// described in spec.md §6.
func (m *Manifest) Marshal() []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "version: %d\n", m.Version)
	fmt.Fprintf(&sb, "total_docs: %d\n", m.TotalDocs)
	fmt.Fprintf(&sb, "total_length: %d\n", m.TotalLength)
	fmt.Fprintf(&sb, "avgdl: %s\n", strconv.FormatFloat(m.AvgDL(), 'g', -1, 64))
	fmt.Fprintf(&sb, "k1: %s\n", strconv.FormatFloat(m.K1, 'g', -1, 64))
	fmt.Fprintf(&sb, "b: %s\n", strconv.FormatFloat(m.B, 'g', -1, 64))
	fmt.Fprintf(&sb, "segments: %s\n", strings.Join(m.Segments, ","))
	return []byte(sb.String())
}

// Unmarshal parses the textual format written by Marshal. avgdl is parsed
// but not trusted — it is always recomputed from total_length/total_docs.
func Unmarshal(data []byte) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	seen := map[string]bool{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: malformed manifest line %q", core.ErrInvalidManifest, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		seen[key] = true

		var err error
		switch key {
		case "version":
			var v uint64
			v, err = strconv.ParseUint(value, 10, 16)
			m.Version = uint16(v)
		case "total_docs":
			m.TotalDocs, err = strconv.ParseUint(value, 10, 64)
		case "total_length":
			m.TotalLength, err = strconv.ParseUint(value, 10, 64)
		case "avgdl":
			// Recomputed from TotalLength/TotalDocs; parsed only to
			// validate the line isn't garbage.
			_, err = strconv.ParseFloat(value, 64)
		case "k1":
			m.K1, err = strconv.ParseFloat(value, 64)
		case "b":
			m.B, err = strconv.ParseFloat(value, 64)
		case "segments":
			if value != "" {
				m.Segments = strings.Split(value, ",")
			}
		default:
			return nil, fmt.Errorf("%w: unknown manifest key %q", core.ErrInvalidManifest, key)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: bad value for %q: %v", core.ErrInvalidManifest, key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidManifest, err)
	}

	for _, required := range []string{"version", "total_docs", "total_length", "k1", "b", "segments"} {
		if !seen[required] {
			return nil, fmt.Errorf("%w: manifest missing %q", core.ErrInvalidManifest, required)
		}
	}
	if m.Version != constants.ManifestFormatVersion {
		return nil, fmt.Errorf("%w: unsupported manifest version %d", core.ErrInvalidManifest, m.Version)
	}
	return m, nil
}
