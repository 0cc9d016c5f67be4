/*
Package dsl provides a Go DSL for assembling turn action chains.

Games usually describe a turn as a handful of named steps ("pick a card",
"pick a target", "confirm"). The builder links such steps by tag and
produces a Chain; every call to Chain.Start yields a fresh set of
domain.TurnAction values, ready to be returned from Player.InitialAction.

Example usage:

	b := dsl.New()

	b.Add("pick").
		Do(askForCard).
		Go("confirm")

	b.Add("confirm").
		Do(askYesNo).
		Terminal()

	chain, err := b.Build("pick")
	if err != nil {
		log.Fatal(err)
	}

	player := &domain.BasicPlayer{
		PlayerID:    "p1",
		PlayerName:  "Alice",
		InputHandle: prompter,
		Initial:     chain.Start,
	}
*/
package dsl
