package retrograde

// seedPrimitives is Phase 1: scan every position once, mark terminals with
// their primitive value, and (no-go-again mode only) initialize the
// child-count table's lazy sentinel. Ported from the original's
// loopyup_DeterminePrimitives, including its progress-print cadence.
func (s *Solver[M]) seedPrimitives() {
	n := s.db.N()
	for id := 0; id < n; id++ {
		v := s.game.Primitive(id)
		if v != Undecided {
			s.db.SetValue(id, v)
			s.db.MarkVisited(id)
			if s.counts != nil {
				s.counts.setCount(id, 0)
			}
		} else {
			s.db.UnmarkVisited(id)
			if s.counts != nil {
				s.counts.reset(id)
			}
		}
		if s.cfg.Debug && id%50000 == 0 {
			s.cfg.Logger.Printf("phase 1: %.1f%% complete", 100*float64(id)/float64(n))
		}
	}
}
