// Package debugui renders the Dear ImGui overlay through ECS components: an
// ImguiItem component per window, an ImguiSystem that defers their render
// functions to the end of the frame, and an input-capture singleton the
// keyboard handler consults before acting on keys.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invaders/ecs"
)

// ImguiItem is a component holding a Dear ImGui render function. Spawn one
// entity per overlay window.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring ImGui's input capture flags. While
// either flag is set the game should ignore the corresponding device.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queues all ImguiItem render functions for execution between the
// backend's BeginFrame and EndFrame, and refreshes the capture singleton.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]

	// Enabled gates the whole overlay; nil means always on. While the
	// overlay is hidden no windows render and input capture is released.
	Enabled func() bool
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()

	if i.Enabled != nil && !i.Enabled() {
		state.WantCaptureMouse = false
		state.WantCaptureKeyboard = false
		return
	}

	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}
