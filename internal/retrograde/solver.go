package retrograde

// Solver threads a game's oracles, its position database, its child-count
// table, and its configuration through every operation. Unlike the
// original C solver — which kept the child-count table and the active
// propagator's function pointer as module-level globals — a Solver value
// carries no process-wide state, so multiple games (or multiple solves of
// the same game under different configs) can run independently, including
// concurrently in separate goroutines.
type Solver[M any] struct {
	game   Game[M]
	db     *PositionDB
	counts *childCountTable // nil in GoAgain mode
	mode   Mode
	cfg    Config
	solved bool
}

// NewSolver builds a Solver for game, running in mode. Construction does
// not solve anything; call DetermineValue to run Phases 1-3.
func NewSolver[M any](game Game[M], mode Mode, opts ...Option) *Solver[M] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	n := game.NumPositions()
	s := &Solver[M]{
		game: game,
		db:   NewPositionDB(n),
		mode: mode,
		cfg:  cfg,
	}
	if mode == NoGoAgain {
		s.counts = newChildCountTable(n)
	}
	return s
}

// DetermineValue runs the full solve on first call — Phase 1 (seed
// primitives), Phase 2 (propagate from primitives), Phase 3 (resolve
// remaining undecided positions to Draw) — and returns the value of
// start. Subsequent calls reuse the already-solved database and do not
// re-run the phases, matching "the database retains all positions for
// subsequent queries by the surrounding game driver" (spec §6).
//
// A contract violation by the game module (GenerateParents yielding an id
// outside [0, N)) is fatal per spec §7: DetermineValue recovers the
// resulting panic and returns it as an error instead of crashing the
// process, identifying the bad id and N.
func (s *Solver[M]) DetermineValue(start int) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *ContractViolationError:
				err = e
			case *AllocationError:
				err = e
			default:
				panic(r)
			}
		}
	}()

	if !s.solved {
		s.seedPrimitives()
		s.drive()
		s.cleanup()
		s.solved = true
	}

	if start < 0 || start >= s.db.N() {
		return Undecided, &ContractViolationError{ID: start, N: s.db.N()}
	}
	return s.db.GetValue(start), nil
}

// Solved reports whether the solver has already run Phases 1-3.
func (s *Solver[M]) Solved() bool { return s.solved }

// Value returns the value stored for id. It is only meaningful after
// DetermineValue has run at least once.
func (s *Solver[M]) Value(id int) Value { return s.db.GetValue(id) }

// Remoteness returns the remoteness stored for id. It is only meaningful
// after DetermineValue has run at least once.
func (s *Solver[M]) Remoteness(id int) Remoteness { return s.db.GetRemoteness(id) }

// NumPositions returns the size of the underlying position database.
func (s *Solver[M]) NumPositions() int { return s.db.N() }

// Snapshot returns the raw (value, remoteness) pair for every position, in
// id order, for callers that want to persist or inspect the whole solved
// database (see internal/solverdb).
func (s *Solver[M]) Snapshot() (values []Value, remoteness []Remoteness) {
	n := s.db.N()
	values = make([]Value, n)
	remoteness = make([]Remoteness, n)
	for id := 0; id < n; id++ {
		values[id] = s.db.GetValue(id)
		remoteness[id] = s.db.GetRemoteness(id)
	}
	return values, remoteness
}

// LoadSnapshot seeds the Solver's database from a previously computed
// (values, remoteness) pair — e.g. one loaded from internal/solverdb — and
// marks the solve as already complete. This realizes the "monotonic
// refinement" testable property from spec §8: replaying from an
// already-populated database reaches the same fixed point with no writes,
// because there is nothing left to propagate.
func (s *Solver[M]) LoadSnapshot(values []Value, remoteness []Remoteness) {
	n := s.db.N()
	for id := 0; id < n && id < len(values) && id < len(remoteness); id++ {
		s.db.SetValue(id, values[id])
		s.db.SetRemoteness(id, remoteness[id])
	}
	s.solved = true
}
