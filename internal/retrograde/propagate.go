package retrograde

// workItem is one pending instruction to the no-go-again propagator: "child
// of id was just assigned (or improved to) (callerValue, callerRemoteness);
// updateOnly means the child's value was already known and only its
// remoteness changed, so do not decrement id's child counter."
//
// Using an explicit slice as a LIFO stack (rather than native recursion
// through GenerateParents, as the original solver does) bounds stack depth
// to available heap instead of goroutine stack, per spec §5/§9: the worst
// case recursion depth is the longest simple path in the game graph, which
// can exceed default stack limits for large games.
type workItem struct {
	id               int
	callerValue      Value
	callerRemoteness Remoteness
	updateOnly       bool
}

// satInc increments r by one, saturating at max so that a value at or past
// max-1 is returned unchanged rather than overflowing past the cap. Spec
// §4.5: "Remoteness arithmetic saturates: if caller_remoteness >=
// REMOTENESS_MAX-1, use caller_remoteness instead of +1."
func satInc(r, max Remoteness) Remoteness {
	if r < max-1 {
		return r + 1
	}
	return r
}

// runNoGoAgain drains a LIFO stack of pending propagations using the
// no-go-again propagator (spec §4.5), pushing each position's parents back
// onto the stack whenever that position's value or remoteness changes.
func (s *Solver[M]) runNoGoAgain(stack []workItem) {
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = s.stepNoGoAgain(item, stack)
	}
}

func (s *Solver[M]) pushParents(id int, v Value, r Remoteness, updateOnly bool, stack []workItem) []workItem {
	n := s.db.N()
	for _, p := range s.game.GenerateParents(id) {
		if p < 0 || p >= n {
			panic(&ContractViolationError{ID: p, N: n})
		}
		stack = append(stack, workItem{id: p, callerValue: v, callerRemoteness: r, updateOnly: updateOnly})
	}
	return stack
}

// stepNoGoAgain processes a single propagation instruction against
// position item.id, by cases on the child's value as seen by item.id
// (spec §4.5 (a)-(c)).
func (s *Solver[M]) stepNoGoAgain(item workItem, stack []workItem) []workItem {
	db := s.db
	id := item.id

	// The database itself breaks cycles: a primitive's value is fixed by
	// Phase 1 and never revisited here (spec §9 "Cyclic propagation graph").
	if db.Visited(id) {
		return stack
	}

	remMax := s.cfg.RemotenessMax
	myValue := db.GetValue(id)
	myRemoteness := db.GetRemoteness(id)
	cv, cr := item.callerValue, item.callerRemoteness

	switch {
	case cv == Lose:
		// (a) child is LOSE: a move from id wins.
		if myValue == Win {
			newRem := satInc(cr, remMax)
			if newRem < myRemoteness {
				db.SetRemoteness(id, newRem)
				stack = s.pushParents(id, Win, newRem, true, stack)
			}
			return stack
		}
		newRem := satInc(cr, remMax)
		db.SetValue(id, Win)
		db.SetRemoteness(id, newRem)
		return s.pushParents(id, Win, newRem, false, stack)

	case cv == Tie && cr < remMax && myValue != Win:
		// (b) child is TIE with finite remoteness, and id is not already WIN.
		if myValue == Tie {
			newRem := satInc(cr, remMax)
			if newRem < myRemoteness {
				db.SetRemoteness(id, newRem)
				stack = s.pushParents(id, Tie, newRem, true, stack)
			}
			return stack
		}
		newRem := satInc(cr, remMax)
		db.SetValue(id, Tie)
		db.SetRemoteness(id, newRem)
		return s.pushParents(id, Tie, newRem, false, stack)

	default:
		// (c) child is WIN or DRAW (or a TIE at/beyond remMax, treated as a
		// DRAW child per spec §9's Open Question resolution): a losing or
		// drawing move for id.
		if myValue == Win || myValue == Tie {
			// Already decided WIN or TIE: nothing new can be learned.
			return stack
		}
		if myValue == Lose && !item.updateOnly {
			// A LOSE position is only revisited when a child's remoteness
			// changed, to refresh its own remoteness.
			return stack
		}
		if s.counts.count(id) == Uncounted {
			s.countChildren(id)
		}
		if !item.updateOnly {
			s.counts.decrement(id)
		}
		if s.counts.count(id) != 0 {
			return stack
		}

		// Every move now leads to a winning position for the opponent.
		var winRemoteness Remoteness = -1
		for _, m := range s.game.GenerateMoves(id) {
			child := s.game.DoMove(id, m)
			if child < 0 || child >= db.N() {
				panic(&ContractViolationError{ID: child, N: db.N()})
			}
			if r := db.GetRemoteness(child); r > winRemoteness {
				winRemoteness = r
			}
		}
		newRem := satInc(winRemoteness, remMax)
		if myValue == Lose {
			if newRem != myRemoteness {
				db.SetRemoteness(id, newRem)
				stack = s.pushParents(id, Lose, newRem, true, stack)
			}
			return stack
		}
		db.SetValue(id, Lose)
		db.SetRemoteness(id, newRem)
		return s.pushParents(id, Lose, newRem, false, stack)
	}
}

func (s *Solver[M]) countChildren(id int) {
	s.counts.setCount(id, len(s.game.GenerateMoves(id)))
}

// runGoAgain drains a LIFO stack of "some descendant of id changed" signals
// using the go-again propagator (spec §4.6), which ignores the signal's
// payload and recomputes id's value from all of its children every time.
func (s *Solver[M]) runGoAgain(stack []int) {
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = s.stepGoAgain(id, stack)
	}
}

func (s *Solver[M]) stepGoAgain(id int, stack []int) []int {
	db := s.db
	if db.Visited(id) {
		return stack
	}

	remMax := s.cfg.RemotenessMax
	oldValue := db.GetValue(id)
	oldRemoteness := db.GetRemoteness(id)

	var foundLose, foundTie, foundWin, foundUndecidedOrDraw bool
	loseRemoteness, tieRemoteness := remMax, remMax
	var winRemoteness Remoteness

	moves := s.game.GenerateMoves(id)
	for _, m := range moves {
		child := s.game.DoMove(id, m)
		if child < 0 || child >= db.N() {
			panic(&ContractViolationError{ID: child, N: db.N()})
		}
		cv := db.GetValue(child)
		cr := db.GetRemoteness(child)
		if s.game.GoAgain(id, m) {
			cv = cv.Invert()
		}

		switch {
		case cv == Lose:
			foundLose = true
			if cr < loseRemoteness {
				loseRemoteness = cr
			}
		case cv == Tie && cr < remMax:
			foundTie = true
			if cr < tieRemoteness {
				tieRemoteness = cr
			}
		case cv == Win:
			foundWin = true
			if cr > winRemoteness {
				winRemoteness = cr
			}
		default:
			foundUndecidedOrDraw = true
		}
	}

	var newValue Value
	var newRemoteness Remoteness
	switch {
	case foundLose:
		newValue, newRemoteness = Win, loseRemoteness
	case foundTie:
		newValue, newRemoteness = Tie, tieRemoteness
	case foundUndecidedOrDraw:
		// id may still end up DRAW; Phase 3 resolves it if nothing else does.
		return stack
	case foundWin:
		newValue, newRemoteness = Lose, winRemoteness
	default:
		// No moves at all: a terminal position would have been Visited
		// and returned above, so a consistent oracle never reaches this.
		return stack
	}

	newRemoteness = satInc(newRemoteness, remMax)

	if newValue != oldValue {
		db.SetValue(id, newValue)
		db.SetRemoteness(id, newRemoteness)
		return s.pushParentIDs(id, stack)
	}
	if newRemoteness != oldRemoteness {
		db.SetRemoteness(id, newRemoteness)
		return s.pushParentIDs(id, stack)
	}
	return stack
}

func (s *Solver[M]) pushParentIDs(id int, stack []int) []int {
	n := s.db.N()
	for _, p := range s.game.GenerateParents(id) {
		if p < 0 || p >= n {
			panic(&ContractViolationError{ID: p, N: n})
		}
		stack = append(stack, p)
	}
	return stack
}
