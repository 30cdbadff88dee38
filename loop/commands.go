package loop

// Commands buffers work that must run after every system of a frame has
// executed, such as drawing the state the systems settled on.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed. Deferred functions run in
// the order they were queued.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len reports how many functions are queued.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and empties the buffer. Functions queued
// while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
