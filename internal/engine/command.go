package engine

// Command is a discrete player intent. Commands are queued by the input
// boundary and consumed once, in FIFO order, on the next tick.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdRotate
	CmdSoftDrop
	CmdHardDrop
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdRotate:
		return "Rotate"
	case CmdSoftDrop:
		return "SoftDrop"
	case CmdHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// commandQueue buffers commands between ticks. The input side appends,
// the controller drains; both happen on the same goroutine so no locking
// is needed.
type commandQueue struct {
	pending []Command
}

// push appends a command. Never blocks.
func (q *commandQueue) push(c Command) {
	q.pending = append(q.pending, c)
}

// drain returns all buffered commands in arrival order and empties the
// queue. The returned slice is only valid until the next push.
func (q *commandQueue) drain() []Command {
	cmds := q.pending
	q.pending = q.pending[:0]
	return cmds
}
