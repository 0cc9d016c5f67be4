/*
Package runner collects player input for action chains.

A TurnAction receives its player's InputMethod untouched, so games usually
store a Prompter there and type-assert it inside Do. Two implementations are
provided:

  - TextPrompter: asks questions on a writer and reads answers line by line.
  - ScriptedPrompter: replays canned answers, for tests and bots.

# Usage

	p := runner.NewTextPrompter(os.Stdin, os.Stdout)
	player := &domain.BasicPlayer{PlayerName: "Ann", InputHandle: p, Initial: chain.Start}
*/
package runner
