package loop

// System is one step of a frame. Implementations can declare Singleton fields,
// which the Scheduler wires to its resources on registration, and keep any
// other state they need between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
