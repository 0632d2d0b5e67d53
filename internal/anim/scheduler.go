package anim

import "sort"

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameFunc receives the host timestamp in milliseconds.
type FrameFunc func(timestamp float64)

// Scheduler is the host's "request next frame" capability.
// RequestFrame must not invoke fn synchronously.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a manual Scheduler. Callbacks run only when the owner calls
// Fire, which makes frame delivery fully deterministic.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]FrameFunc
	// Cancelled callbacks are kept around so tests can fire them anyway and
	// prove that late delivery is harmless.
	cancelled map[FrameID]FrameFunc
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		pending:   make(map[FrameID]FrameFunc),
		cancelled: make(map[FrameID]FrameFunc),
	}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	if fn, ok := q.pending[id]; ok {
		q.cancelled[id] = fn
		delete(q.pending, id)
	}
}

// Pending reports the number of outstanding requests.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Fire runs every request that was pending when it was called, in request
// order. Requests made by the callbacks themselves wait for the next Fire.
// It returns the number of callbacks run.
func (q *FrameQueue) Fire(timestamp float64) int {
	ids := sortedIDs(q.pending)
	fns := make([]FrameFunc, len(ids))
	for i, id := range ids {
		fns[i] = q.pending[id]
		delete(q.pending, id)
	}
	for _, fn := range fns {
		fn(timestamp)
	}
	return len(fns)
}

// FireCancelled delivers callbacks that were cancelled, simulating a host
// that raced the cancellation.
func (q *FrameQueue) FireCancelled(timestamp float64) int {
	ids := sortedIDs(q.cancelled)
	for _, id := range ids {
		fn := q.cancelled[id]
		delete(q.cancelled, id)
		fn(timestamp)
	}
	return len(ids)
}

func sortedIDs(m map[FrameID]FrameFunc) []FrameID {
	ids := make([]FrameID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
