// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame at the top of the game's Update, EndFrame after the frame's
// systems have run, and Draw last in the game's Draw.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the ImGui context for a window of the given size.
// Window layout is not persisted between runs.
func NewImguiBackend(title string, width, height int) (*ImguiBackend, error) {
	eb := ebitenbackend.NewEbitenBackend()
	if _, err := backend.CreateBackend(eb); err != nil {
		return nil, fmt.Errorf("create imgui backend: %w", err)
	}
	eb.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: eb}, nil
}
