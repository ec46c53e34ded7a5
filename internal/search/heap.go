package search

import "container/heap"

// scoredHeap is a size-bounded min-heap of core.Hit ordered so the root is
// always the weakest surviving hit: lowest score first, and among equal
// scores, highest chunk_id first (so ties are broken chunk_id-ascending in
// the final, descending-score output — spec.md §4.7).
type scoredHeap []hit

type hit struct {
	bookID  string
	score   float64
	chunkID uint64
}

func (h scoredHeap) Len() int { return len(h) }
func (h scoredHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].chunkID > h[j].chunkID
}
func (h scoredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoredHeap) Push(x any) { *h = append(*h, x.(hit)) }

func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topK keeps the K strongest hits seen via offer, returned in descending
// score order with chunk_id-ascending tie-breaking.
type topK struct {
	k int
	h scoredHeap
}

func newTopK(k int) *topK {
	h := make(scoredHeap, 0, k)
	heap.Init(&h)
	return &topK{k: k, h: h}
}

func (t *topK) offer(bookID string, score float64, chunkID uint64) {
	if t.k <= 0 {
		return
	}
	cand := hit{bookID: bookID, score: score, chunkID: chunkID}
	if t.h.Len() < t.k {
		heap.Push(&t.h, cand)
		return
	}
	weakest := t.h[0]
	if cand.score > weakest.score || (cand.score == weakest.score && cand.chunkID < weakest.chunkID) {
		heap.Pop(&t.h)
		heap.Push(&t.h, cand)
	}
}

// results drains the heap into descending-score, chunk_id-ascending order.
func (t *topK) results() []hit {
	n := t.h.Len()
	out := make([]hit, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(hit)
	}
	return out
}
