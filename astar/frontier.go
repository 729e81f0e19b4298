package astar

// entry is one frontier record: a node in the arena and its priority.
type entry struct {
	f    int    // g + h of the node at push time
	seq  uint64 // insertion sequence; breaks f ties first-in first-out
	node int32  // arena index
}

// frontier is a min-heap of entries ordered by (f, seq) ascending.
// We use the "lazy-decrease-key" approach: when a cheaper route to a pending
// cell is found, a new entry is pushed. The outdated entry remains and is
// discarded when popped (checked via the reachability index).
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push with an entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
