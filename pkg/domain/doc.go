/*
Package domain contains the core domain models shared by every part of the
gamebase engine.

It defines the capabilities the engine consumes from a host game (Player,
TurnAction), the closed set of action results, the lifecycle listener
contract and the error kinds reported by the engine. This package is kept
pure and free of I/O.

# Key Entities

  - Player: a seat at the table with a stable ID, a name, an input handle and
    the first action of every turn it takes.
  - TurnAction: one input-collecting step of a turn. Actions are linked into
    a chain through Next; a nil Next is the terminal state.
  - ActionResult: the outcome of a single action invocation (Success, Retry,
    Back, Failure).
  - GameStateListener: synchronous observer of the game/round/turn lifecycle.
*/
package domain
