/*
Package gamebase is a reusable engine for turn-based games.

It drives the game/round/turn loop, resolves each turn as a chain of
input-collecting actions with retry and undo, rotates the seat that opens
each round, and records every turn in a branching history tree usable for
undo and replay. Game rules, input collection and presentation belong to the
host; the engine only provides the structural loop.

# Concept

A host supplies three things:

  - Players, each able to start a turn with its first TurnAction.
  - TurnActions, the steps of a turn. Each step answers Success, Retry, Back
    or Failure after talking to the player's input handle.
  - Rules, which apply a resolved turn to the game state and decide when a
    round and the game are over.

The engine notifies GameStateListeners around the game, every round and every
turn. The player order manager is one such listener; metrics and logging
listeners can be added next to it.

# Usage

	rules := newMyRules()
	eng, err := gamebase.New(players, rules,
		gamebase.WithLogger(logger),
		gamebase.WithMaxIllegalTurns(5),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := eng.RunGame(context.Background()); err != nil {
		log.Fatal(err)
	}

	for _, t := range eng.Turns() {
		fmt.Println(t)
	}
*/
package gamebase
