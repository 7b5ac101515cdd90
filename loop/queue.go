package loop

// Queue is a Scheduler whose callbacks run when the host calls Fire,
// typically from a ticker or from a game engine update hook.
type Queue struct {
	pending []func()
	spare   []func()
}

// Next queues fn for the next Fire.
func (q *Queue) Next(fn func()) {
	q.pending = append(q.pending, fn)
}

// Fire runs the callbacks queued before the call.
// Callbacks scheduled while firing wait for the next Fire.
func (q *Queue) Fire() {
	run := q.pending
	q.pending = q.spare[:0]
	for i, fn := range run {
		fn()
		run[i] = nil
	}
	q.spare = run[:0]
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}
