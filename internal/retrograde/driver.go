package retrograde

// drive is Phase 2: scan every position in ascending id order; for each
// terminal, inform every parent that this child's value is now known, and
// run the active propagator to a local fixed point before moving to the
// next id. Per spec §5, scan order is observable (ascending by id) but
// propagation order is not — only the final fixed point matters, so
// draining per terminal rather than batching across the whole scan is a
// valid, simple choice.
func (s *Solver[M]) drive() {
	n := s.db.N()
	for id := 0; id < n; id++ {
		if s.db.Visited(id) {
			value := s.db.GetValue(id)
			parents := s.game.GenerateParents(id)
			switch s.mode {
			case NoGoAgain:
				stack := make([]workItem, 0, len(parents))
				for _, p := range parents {
					if p < 0 || p >= n {
						panic(&ContractViolationError{ID: p, N: n})
					}
					stack = append(stack, workItem{id: p, callerValue: value, callerRemoteness: 0})
				}
				s.runNoGoAgain(stack)
			case GoAgain:
				stack := make([]int, 0, len(parents))
				for _, p := range parents {
					if p < 0 || p >= n {
						panic(&ContractViolationError{ID: p, N: n})
					}
					stack = append(stack, p)
				}
				s.runGoAgain(stack)
			}
		}
		if s.cfg.Debug && id%10000 == 0 {
			s.cfg.Logger.Printf("phase 2: %.1f%% complete", 100*float64(id)/float64(n))
		}
	}
}

// cleanup is Phase 3: unmark every visited flag and resolve any position
// still Undecided to Draw with remoteness RemotenessMax. These are
// positions whose value depends only on an unresolved cycle — by
// definition drawn.
func (s *Solver[M]) cleanup() {
	n := s.db.N()
	for id := 0; id < n; id++ {
		s.db.UnmarkVisited(id)
		if s.db.GetValue(id) == Undecided {
			s.db.SetValue(id, Draw)
			s.db.SetRemoteness(id, s.cfg.RemotenessMax)
		}
	}
}
