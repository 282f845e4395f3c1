// Command retrograde solves a small finite game by retrograde analysis and
// reports the value and remoteness of a starting position.
package main

import (
	"flag"
	"log"

	"github.com/hailam/retrograde/internal/games/krk"
	"github.com/hailam/retrograde/internal/retrograde"
	"github.com/hailam/retrograde/internal/solverdb"
)

var (
	fen        = flag.String("fen", "8/8/4k3/8/8/4R3/8/4K3 w - - 0 1", "FEN of the King+Rook-vs-King position to evaluate")
	debug      = flag.Bool("debug", false, "log phase 1/phase 2 progress every 50k/10k positions")
	remMax     = flag.Int("remoteness-max", int(retrograde.DefaultRemotenessMax), "saturation cap for remoteness")
	parallel   = flag.Bool("parallel", false, "build the krk parent index across GOMAXPROCS workers instead of serially")
	dbDir      = flag.String("db", "", "directory for the persisted solved database; empty disables persistence")
	gameKey    = flag.String("key", "krk", "key the solved database is stored/loaded under")
	forceSolve = flag.Bool("force", false, "ignore any persisted snapshot and resolve from scratch")
)

func main() {
	flag.Parse()

	pl, err := krk.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN %q: %v", *fen, err)
	}

	var game *krk.Game
	if *parallel {
		game = krk.NewGameParallel()
	} else {
		game = krk.NewGame()
	}

	opts := []retrograde.Option{
		retrograde.WithDebug(*debug),
		retrograde.WithRemotenessMax(retrograde.Remoteness(*remMax)),
	}
	if *debug {
		opts = append(opts, retrograde.WithLogger(log.Default()))
	}
	solver := retrograde.NewSolver[krk.Move](game, retrograde.NoGoAgain, opts...)

	var store *solverdb.DB
	if *dbDir != "" {
		store, err = solverdb.Open(*dbDir)
		if err != nil {
			log.Fatalf("opening solver database: %v", err)
		}
		defer store.Close()

		if !*forceSolve {
			if values, remoteness, found, err := store.Load(*gameKey); err != nil {
				log.Fatalf("loading snapshot %q: %v", *gameKey, err)
			} else if found {
				solver.LoadSnapshot(values, remoteness)
				log.Printf("loaded persisted snapshot for %q (%d positions)", *gameKey, len(values))
			}
		}
	}

	id, ok := game.IDFromPlacement(pl)
	if !ok {
		log.Fatalf("position %q is not a legal King+Rook-vs-King placement", *fen)
	}

	value, err := solver.DetermineValue(id)
	if err != nil {
		log.Fatal(err)
	}

	if store != nil && !solver.Solved() {
		// Unreachable in practice: DetermineValue always leaves the solver
		// Solved() on success, but guard against persisting a half-solved
		// database if that contract is ever violated.
		log.Fatal("solver did not reach a solved state")
	}
	if store != nil {
		values, remoteness := solver.Snapshot()
		if err := store.Save(*gameKey, values, remoteness); err != nil {
			log.Fatalf("saving snapshot %q: %v", *gameKey, err)
		}
	}

	remoteness := solver.Remoteness(id)
	log.Printf("%s => %s in %d", *fen, value, remoteness)

	if value == retrograde.Win || value == retrograde.Lose {
		reportBestMoves(game, solver, pl, id)
	}
}

// reportBestMoves prints every move from id whose resulting remoteness
// matches the position's own value and remoteness, i.e. the set of moves
// that realize the position's game-theoretic value.
func reportBestMoves(game *krk.Game, solver *retrograde.Solver[krk.Move], pl krk.Placement, id int) {
	value := solver.Value(id)
	want := solver.Remoteness(id)

	for _, m := range game.GenerateMoves(id) {
		child := game.DoMove(id, m)
		childValue := solver.Value(child)
		childRemoteness := solver.Remoteness(child)

		switch value {
		case retrograde.Win:
			if childValue == retrograde.Lose && childRemoteness+1 == want {
				log.Printf("  best move: %s", m.ToSAN(pl))
			}
		case retrograde.Lose:
			if childValue == retrograde.Win && childRemoteness+1 == want {
				log.Printf("  forced move: %s", m.ToSAN(pl))
			}
		}
	}
}
