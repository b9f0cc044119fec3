package twosat

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kr/pretty"
)

// A variable is one boolean of the reduced instance. The walk mutates value
// freely.
type variable struct {
	label int
	value bool
}

// A clause is the disjunction of two literals over the walker's private
// variable set. sat caches the truth value computed by the last eval.
type clause struct {
	vars  [2]*variable
	signs [2]bool // true = unnegated
	sat   bool
}

// eval recomputes and caches the clause's truth value under the current
// assignment.
func (c *clause) eval() bool {
	c.sat = c.vars[0].value == c.signs[0] || c.vars[1].value == c.signs[1]
	return c.sat
}

// A Walker decides a 2-SAT instance probabilistically with Papadimitriou's
// random-walk algorithm. It owns a private copy of the pruned instance;
// nothing is shared with the caller and nothing persists across instances.
type Walker struct {
	vars      []*variable
	clauses   []*clause
	falsified []*clause

	rng   *rand.Rand
	debug bool
}

// NewWalker prunes pb's clauses of single-polarity variables and builds the
// working variable set with a uniform random initial assignment.
func NewWalker(pb *Problem, opts Options) *Walker {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &Walker{rng: rng, debug: opts.Debug}
	kept := prune(pb.Clauses)
	byLabel := make(map[int]*variable)
	for _, cls := range kept {
		c := &clause{}
		for i, l := range cls {
			label := abs(l)
			v, ok := byLabel[label]
			if !ok {
				v = &variable{label: label, value: rng.Intn(2) == 1}
				byLabel[label] = v
				w.vars = append(w.vars, v)
			}
			c.vars[i] = v
			c.signs[i] = l > 0
		}
		w.clauses = append(w.clauses, c)
	}
	if w.debug {
		fmt.Printf("pruning kept %d of %d clauses over %d variables\n",
			len(w.clauses), len(pb.Clauses), len(w.vars))
		assn := make(map[int]bool, len(w.vars))
		for _, v := range w.vars {
			assn[v.label] = v.value
		}
		pretty.Println(assn)
	}
	return w
}

// Search runs the random walk. The outer counter doubles from 1 while it is
// at most n (the variable count after pruning), re-randomizing the whole
// assignment at the start of every round after the first; each round
// performs up to 2n² flips, checking for global satisfaction around every
// flip. The flip target is a uniform random variable of a uniform random
// falsified clause. The iteration arithmetic is the algorithm's correctness
// contract, not a tunable.
//
// A true result is definitive. A false result means no satisfying
// assignment was found within the budget; for a satisfiable instance this
// happens with only small probability.
func (w *Walker) Search() bool {
	if len(w.clauses) == 0 {
		// Pruning satisfied everything (or the instance was empty).
		return true
	}
	n := len(w.vars)
	for i := 1; i <= n; i *= 2 {
		if i > 1 {
			for _, v := range w.vars {
				v.value = w.rng.Intn(2) == 1
			}
		}
		if w.debug {
			fmt.Printf("walk round i=%d\n", i)
		}
		for j := 0; j < 2*n*n; j++ {
			if w.satisfied() {
				return true
			}
			c := w.falsified[w.rng.Intn(len(w.falsified))]
			v := c.vars[w.rng.Intn(2)]
			v.value = !v.value
			if w.debug {
				fmt.Printf("flipped %d to %t (%d falsified)\n", v.label, v.value, len(w.falsified))
			}
		}
		if w.satisfied() {
			// The final flip of the round paid off.
			return true
		}
	}
	return false
}

// satisfied reports whether every clause holds under the current
// assignment, rebuilding the falsified-clause list as it goes.
func (w *Walker) satisfied() bool {
	w.falsified = w.falsified[:0]
	for _, c := range w.clauses {
		if !c.eval() {
			w.falsified = append(w.falsified, c)
		}
	}
	return len(w.falsified) == 0
}
