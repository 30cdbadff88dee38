package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/game"
)

// Bindings maps terminal key events to actions. Special keys and printable
// runes live in separate tables; runes are matched case-insensitively.
type Bindings struct {
	keys  *intmap.Map[tcell.Key, game.Action]
	runes *intmap.Map[rune, game.Action]
}

func NewBindings() *Bindings {
	return &Bindings{
		keys:  intmap.New[tcell.Key, game.Action](16),
		runes: intmap.New[rune, game.Action](32),
	}
}

// DefaultBindings are the arrow keys plus vi and WASD letters.
func DefaultBindings() *Bindings {
	b := NewBindings()

	b.BindKey(tcell.KeyLeft, game.ActionMoveLeft)
	b.BindKey(tcell.KeyRight, game.ActionMoveRight)
	b.BindKey(tcell.KeyDown, game.ActionSoftDrop)
	b.BindKey(tcell.KeyUp, game.ActionRotate)
	b.BindKey(tcell.KeyEnter, game.ActionReset)
	b.BindKey(tcell.KeyEscape, game.ActionQuit)
	b.BindKey(tcell.KeyCtrlC, game.ActionQuit)

	for _, r := range "ah" {
		b.BindRune(r, game.ActionMoveLeft)
	}
	for _, r := range "dl" {
		b.BindRune(r, game.ActionMoveRight)
	}
	for _, r := range "sj" {
		b.BindRune(r, game.ActionSoftDrop)
	}
	for _, r := range "wkx" {
		b.BindRune(r, game.ActionRotate)
	}
	b.BindRune(' ', game.ActionTogglePause)
	b.BindRune('p', game.ActionTogglePause)
	b.BindRune('r', game.ActionReset)
	b.BindRune('q', game.ActionQuit)

	return b
}

func (b *Bindings) BindKey(k tcell.Key, a game.Action) {
	b.keys.Put(k, a)
}

func (b *Bindings) BindRune(r rune, a game.Action) {
	b.runes.Put(unicode.ToLower(r), a)
}

// Unbind removes the binding for r.
func (b *Bindings) Unbind(r rune) {
	b.runes.Del(unicode.ToLower(r))
}

// Lookup returns the action bound to ev.
func (b *Bindings) Lookup(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		return b.runes.Get(unicode.ToLower(ev.Rune()))
	}
	return b.keys.Get(ev.Key())
}

// Len reports the number of bound keys and runes.
func (b *Bindings) Len() int {
	return b.keys.Len() + b.runes.Len()
}
