package vtcore

// KeyboardOutput is the collaborator the core calls to emit DA and DSR
// replies (§6). Implementations forward the bytes to the PTY.
type KeyboardOutput interface {
	Send(data []byte)
}

// NoopKeyboardOutput discards every reply. Useful in tests and for
// constructing a Terminal that never needs to answer DA/DSR queries.
type NoopKeyboardOutput struct{}

func (NoopKeyboardOutput) Send(data []byte) {}

// ResizeNotifier is invoked at the end of a resize so the transport can tell
// the PTY about the new dimensions (§6).
type ResizeNotifier interface {
	Notify(rows, cols int)
}

// NoopResizeNotifier ignores resize notifications.
type NoopResizeNotifier struct{}

func (NoopResizeNotifier) Notify(rows, cols int) {}

var _ KeyboardOutput = NoopKeyboardOutput{}
var _ ResizeNotifier = NoopResizeNotifier{}
