package canvas

import (
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/game"
)

// Bindings maps ebiten keys to actions.
type Bindings struct {
	keys *intmap.Map[ebiten.Key, game.Action]
}

func NewBindings() *Bindings {
	return &Bindings{keys: intmap.New[ebiten.Key, game.Action](24)}
}

// DefaultBindings are the arrow keys plus WASD.
func DefaultBindings() *Bindings {
	b := NewBindings()
	b.Bind(game.ActionMoveLeft, ebiten.KeyArrowLeft, ebiten.KeyA)
	b.Bind(game.ActionMoveRight, ebiten.KeyArrowRight, ebiten.KeyD)
	b.Bind(game.ActionSoftDrop, ebiten.KeyArrowDown, ebiten.KeyS)
	b.Bind(game.ActionRotate, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX)
	b.Bind(game.ActionTogglePause, ebiten.KeySpace, ebiten.KeyP)
	b.Bind(game.ActionReset, ebiten.KeyR, ebiten.KeyEnter)
	b.Bind(game.ActionQuit, ebiten.KeyEscape, ebiten.KeyQ)
	return b
}

// Bind maps every key in keys to a, replacing earlier bindings.
func (b *Bindings) Bind(a game.Action, keys ...ebiten.Key) {
	for _, k := range keys {
		b.keys.Put(k, a)
	}
}

func (b *Bindings) Unbind(k ebiten.Key) {
	b.keys.Del(k)
}

func (b *Bindings) Lookup(k ebiten.Key) (game.Action, bool) {
	return b.keys.Get(k)
}

// Actions yields the bound action of each key in pressed, skipping unbound
// keys.
func (b *Bindings) Actions(pressed []ebiten.Key) iter.Seq[game.Action] {
	return func(yield func(game.Action) bool) {
		for _, k := range pressed {
			a, ok := b.keys.Get(k)
			if !ok {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

func (b *Bindings) Len() int {
	return b.keys.Len()
}
