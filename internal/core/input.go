package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap impulse; also confirms on menus
	ActionConfirm        // Enter - confirm on menus
	ActionQuit           // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DefaultQueueSize is the capacity used by NewEventQueue when size <= 0.
const DefaultQueueSize = 32

// EventQueue buffers discrete input actions between simulation steps.
// Producers Push as input arrives; the simulation calls DrainAll exactly
// once per step. It is not safe for concurrent use: the platform pushes
// and drains from the same goroutine.
type EventQueue struct {
	events []Action
	limit  int
}

// NewEventQueue creates a queue holding at most size pending actions.
func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &EventQueue{
		events: make([]Action, 0, size),
		limit:  size,
	}
}

// Push appends an action. Returns false when the queue is full and the
// action was not recorded.
func (q *EventQueue) Push(a Action) bool {
	if len(q.events) >= q.limit {
		return false
	}
	q.events = append(q.events, a)
	return true
}

// DrainAll returns all pending actions in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) DrainAll() []Action {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Action, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending actions.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// InputFrame is the collapsed view of one step's drained actions.
// Multiple actions of the same kind in one step read as a single presence.
type InputFrame struct {
	actions map[Action]bool
}

// NewInputFrame collapses a drained action list into a frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.actions[a] = true
	}
	return f
}

// Has returns true if the given action was triggered this step.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}
