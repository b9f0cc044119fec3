// Package twosat decides satisfiability of 2-CNF boolean formulas.
//
// Two independent decision procedures are provided. Solve reduces the
// formula to strongly connected component detection on its implication
// graph (Aspvall, Plass & Tarjan 1979) and is exact and linear-time.
// Search runs Papadimitriou's randomized local walk; it proves
// satisfiability when it finds an assignment but its unsatisfiable verdict
// is only correct with high probability.
//
// Neither procedure produces a satisfying assignment; both only decide.
package twosat

import "math/rand"

// A Problem is a 2-CNF formula. Each clause is a pair of signed integers
// denoting a disjunction; a negative value is the negation of the variable
// with that magnitude. Variable indices need not be contiguous and zero is
// not a valid literal.
type Problem struct {
	Vars    int
	Clauses [][2]int
}

// Options configures a solver. The zero value disables tracing and uses a
// time-seeded random source.
type Options struct {
	// Debug turns on verbose trace printing of vertex, edge, component
	// and assignment state.
	Debug bool
	// Rand supplies the randomness for the walk engine's initial
	// assignments and flip choices. If nil, a source seeded from the
	// current time is used.
	Rand *rand.Rand
}

// Solve reports whether pb is satisfiable. The answer is exact.
func Solve(pb *Problem) bool {
	return NewSolver(pb, Options{}).Solve()
}

// Search reports whether pb is satisfiable using the random walk. A true
// result is definitive; a false result may, with small probability, be
// wrong.
func Search(pb *Problem) bool {
	return NewWalker(pb, Options{}).Search()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
