package crucible

import "container/heap"

// frontierItem is a pending state with its tentative cost.
// parent indexes runner.trail, or is -1 when no trail is kept.
type frontierItem struct {
	state  State
	cost   int64
	parent int
}

// frontier is a min-heap of frontierItem ordered by cost.
// We use the “lazy” strategy: a state may be pushed several times and the
// stale copies are discarded by the ledger when popped.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority. Ties are
// broken arbitrarily; Dijkstra only needs a non-decreasing pop order.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum there.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

func (f *frontier) push(s State, cost int64, parent int) {
	heap.Push(f, frontierItem{state: s, cost: cost, parent: parent})
}

// popMin removes the cheapest item; ok is false when the frontier is empty.
func (f *frontier) popMin() (item frontierItem, ok bool) {
	if f.Len() == 0 {
		return frontierItem{}, false
	}

	return heap.Pop(f).(frontierItem), true
}
