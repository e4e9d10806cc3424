package core

// Message is an application-level message emitted by a widget's event
// handler, e.g. "selection changed" or "kill this process". The core never
// interprets messages; it only preserves emission order.
type Message any

// Queue is the outbound message queue event handlers append to. At most one
// message is emitted per input event, and Drain returns messages in the
// order they were pushed.
type Queue struct {
	messages []Message
}

// NewQueue returns an empty message queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends a message. Nil messages are dropped so handlers can push the
// result of an optional callback unconditionally.
func (q *Queue) Push(m Message) {
	if m == nil {
		return
	}
	q.messages = append(q.messages, m)
}

// Drain removes and returns all queued messages in emission order.
func (q *Queue) Drain() []Message {
	out := q.messages
	q.messages = nil
	return out
}

// Len returns the number of queued messages.
func (q *Queue) Len() int { return len(q.messages) }
