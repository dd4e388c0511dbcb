package frame

// System is a per-frame behavior. Systems read the game through the frame
// and queue every change on frame.Commands; nothing is applied until all
// systems of the frame have run.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
