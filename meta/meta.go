// meta/meta.go
package meta

// GO_ROUTINES defines the number of games searched in parallel.
const GO_ROUTINES = 8

// GAMES defines the number of random games per experiment.
const GAMES = 100

// SEED defines the seed of the first random game.
const SEED = 1

// TREE_DEPTH defines the depth of random games in plies.
const TREE_DEPTH = 6

// BRANCHING defines the maximum number of actions per state.
const BRANCHING = 4

// CUTOFF defines the plies searched exactly by alpha-beta-cutoff.
const CUTOFF = 3
