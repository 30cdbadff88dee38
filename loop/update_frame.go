package loop

import "time"

type UpdateFrame struct {
	// Index counts frames from zero.
	Index     uint64
	Now       time.Duration
	DeltaTime time.Duration
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(index uint64, now, dt time.Duration, commands *Commands, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		Index:     index,
		Now:       now,
		DeltaTime: dt,
		Commands:  commands,
		Resources: resources,
	}
}
