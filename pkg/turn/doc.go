/*
Package turn resolves one player's turn by running its action chain.

A Turn starts at the player's initial action and keeps invoking the current
action until the chain reaches its terminal state. Each invocation result
moves a cursor through the chain:

  - Success stores the action under its tag and advances to its next action.
  - Retry runs the same action again.
  - Back discards the action's data and reopens the previous action.
  - Failure ends the turn as unsuccessful.

Once terminal, a Turn is frozen: Execute returns the same outcome again
without invoking any action.
*/
package turn
