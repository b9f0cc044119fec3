package twosat

// prune removes clauses that are forced true because some variable occurs
// with only one polarity anywhere in the instance: such a variable can be
// assigned so that every clause containing it holds, so those clauses drop
// out. Deleting clauses can orphan further literals, so sweeps repeat until
// one deletes nothing. Each sweep deletes at least one clause or ends the
// loop, so at most len(clauses) sweeps run.
//
// The surviving clauses are returned in their original order; the input is
// not modified.
func prune(clauses [][2]int) [][2]int {
	live := make([]bool, len(clauses))
	for i := range live {
		live[i] = true
	}
	for {
		// The literal-occurrence set and the variable→clause index are
		// rebuilt from the survivors before every sweep.
		lits := make(map[int]bool)
		byVar := make(map[int][]int)
		for i, cls := range clauses {
			if !live[i] {
				continue
			}
			lits[cls[0]] = true
			lits[cls[1]] = true
			byVar[abs(cls[0])] = append(byVar[abs(cls[0])], i)
			if abs(cls[1]) != abs(cls[0]) {
				byVar[abs(cls[1])] = append(byVar[abs(cls[1])], i)
			}
		}
		deleted := false
		for l := range lits {
			if lits[-l] {
				continue
			}
			for _, i := range byVar[abs(l)] {
				if live[i] {
					live[i] = false
					deleted = true
				}
			}
		}
		if !deleted {
			break
		}
	}
	var kept [][2]int
	for i, cls := range clauses {
		if live[i] {
			kept = append(kept, cls)
		}
	}
	return kept
}
