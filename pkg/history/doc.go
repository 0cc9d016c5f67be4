/*
Package history records the turns of a game as a branching tree.

Normal play appends turns in a straight line. Rewinding moves the cursor
back towards the root; adding a different turn from a rewound position
starts a new branch next to the old one, so every line of play that was
ever taken stays reachable for replay.

Nodes live in an arena and are addressed by NodeID. Node 0 is the root
sentinel and holds no turn.
*/
package history
