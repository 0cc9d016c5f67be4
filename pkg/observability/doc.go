/*
Package observability provides lifecycle listeners for monitoring a game.

Metrics counts games, rounds and turn attempts in a prometheus registry.
Comparing turn attempts with recorded turns gives the number of illegal
attempts without any extra hook in the engine.

Audit writes one slog record per lifecycle event, tagged with the round
and, around turns, the acting player.
*/
package observability
