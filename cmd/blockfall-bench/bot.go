package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var botMoves = []game.Action{
	game.ActionMoveLeft,
	game.ActionMoveRight,
	game.ActionSoftDrop,
	game.ActionSoftDrop,
	game.ActionRotate,
}

// BotSystem feeds random moves into the input queue and restarts the game
// once it is over. It runs before the engine's input system, so its actions
// apply in the same frame.
type BotSystem struct {
	Input loop.Singleton[game.InputQueue]
	Play  loop.Singleton[game.Play]

	// ActionsPerFrame caps how many moves are queued each frame.
	ActionsPerFrame int

	rng *rand.Rand
}

func NewBotSystem(seed uint64, actionsPerFrame int) *BotSystem {
	return &BotSystem{
		ActionsPerFrame: max(actionsPerFrame, 0),
		rng:             rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (b *BotSystem) Execute(frame *loop.UpdateFrame) {
	input := b.Input.Get()
	play := b.Play.Get()

	if play.Session.State() == tetris.StateGameOver {
		input.Push(game.ActionReset)
		return
	}

	for range b.rng.IntN(b.ActionsPerFrame + 1) {
		input.Push(botMoves[b.rng.IntN(len(botMoves))])
	}
}
