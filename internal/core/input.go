package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionUp           // W, Up arrow - towards the start lane
	ActionDown         // S, Down arrow - towards the finish lane
	ActionQuit         // Q - end the current session
)

// IsMove returns true for the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame is the input consumed by a single simulation tick.
// A tick applies at most one action.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. The first action set wins.
func (f *InputFrame) Set(a Action) {
	if f.Action == ActionNone {
		f.Action = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Empty returns true if no input is pending for this frame.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
}

// DefaultQueueSize bounds how many key presses may wait for future ticks.
const DefaultQueueSize = 8

// InputQueue buffers key presses between ticks. Each tick polls at most one
// action, so a burst of presses is spread over consecutive ticks.
type InputQueue struct {
	pending []Action
	limit   int
}

// NewInputQueue creates a queue holding at most limit actions.
// Non-positive limits fall back to DefaultQueueSize.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &InputQueue{
		pending: make([]Action, 0, limit),
		limit:   limit,
	}
}

// Push enqueues an action. ActionNone is ignored and presses beyond the
// limit are dropped. Returns false when the action was not queued.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone || len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Poll removes and returns the oldest action as a frame.
// Returns an empty frame when nothing is pending.
func (q *InputQueue) Poll() InputFrame {
	var frame InputFrame
	if len(q.pending) == 0 {
		return frame
	}
	frame.Set(q.pending[0])
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return frame
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Reset drops every queued action.
func (q *InputQueue) Reset() {
	q.pending = q.pending[:0]
}
