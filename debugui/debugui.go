// Package debugui draws Dear ImGui diagnostic panels over a running game.
// Panels are registered as ImguiItems in the loop's resources and rendered
// by ImguiSystem after every other system of the frame has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiItems is the resource listing every panel to draw each frame.
type ImguiItems struct {
	Items []ImguiItem
}

// Add appends a panel.
func (l *ImguiItems) Add(name string, render func()) {
	l.Items = append(l.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every panel's render function to the end of the frame
// and records whether ImGui wants the keyboard.
type ImguiSystem struct {
	Items      loop.Singleton[ImguiItems]
	InputState loop.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}
