package nrt

import (
	"container/heap"
	"sort"

	"biblio/internal/core"
)

// hitHeap is a size-bounded min-heap of core.Hit, ordered so the weakest
// surviving hit sits at the root: lowest score first, and among equal
// scores, highest chunk_id first — the mirror image of the final
// score-desc, chunk_id-asc output order (spec.md §4.7, §4.8).
type hitHeap []core.Hit

func (h hitHeap) Len() int { return len(h) }
func (h hitHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ChunkID > h[j].ChunkID
}
func (h hitHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *hitHeap) Push(x any)        { *h = append(*h, x.(core.Hit)) }
func (h *hitHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topKOf reduces hits to the k strongest, in descending-score,
// chunk_id-ascending order.
func topKOf(hits []core.Hit, k int) []core.Hit {
	if k <= 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ChunkID < hits[j].ChunkID
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// mergeTopK merges two already-top-K'd hit lists (disk and in-RAM) into one
// global top-K, ties broken chunk_id ascending.
func mergeTopK(a, b []core.Hit, k int) []core.Hit {
	if k <= 0 {
		return nil
	}
	h := &hitHeap{}
	heap.Init(h)
	offer := func(hit core.Hit) {
		if h.Len() < k {
			heap.Push(h, hit)
			return
		}
		weakest := (*h)[0]
		if hit.Score > weakest.Score || (hit.Score == weakest.Score && hit.ChunkID < weakest.ChunkID) {
			heap.Pop(h)
			heap.Push(h, hit)
		}
	}
	for _, hit := range a {
		offer(hit)
	}
	for _, hit := range b {
		offer(hit)
	}

	out := make([]core.Hit, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(core.Hit)
	}
	return out
}
