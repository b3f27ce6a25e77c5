// meta/meta.go
package meta

// DEPTH defines the number of plies the AI searches.
const DEPTH = 3

// GO_ROUTINES defines the number of goroutines searching root columns.
const GO_ROUTINES = 1

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments/records"

// MODE defines what main runs.
const MODE = "play"
