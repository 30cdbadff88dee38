package debugui

import (
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// Install adds the standard panels for engine and registers the system that
// renders them, after the engine's own systems.
func Install(engine *game.Engine) *ImguiSystem {
	resources := engine.Scheduler().Resources()

	items := loop.GetResource[ImguiItems](resources)
	if items == nil {
		items = loop.AddResource(resources, ImguiItems{})
	}
	if loop.GetResource[ImguiInputState](resources) == nil {
		loop.AddResource(resources, ImguiInputState{})
	}

	items.Add("Performance Stats", NewPerformanceStats(engine.Scheduler(), 120).Render)
	items.Add("Session", NewSessionInspector(engine).Render)

	sys := &ImguiSystem{}
	engine.Scheduler().Register(sys)
	return sys
}

// WantsKeyboard reports whether an installed overlay is consuming keyboard
// input this frame.
func WantsKeyboard(resources *loop.Resources) bool {
	state := loop.GetResource[ImguiInputState](resources)
	return state != nil && state.WantCaptureKeyboard
}
