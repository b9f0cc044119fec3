package twosat

import "fmt"

func ExampleSolve() {
	// Problem: (x1 ∨ x2) ∧ (¬x1 ∨ x3) ∧ (¬x2 ∨ ¬x3)
	pb := &Problem{
		Vars:    3,
		Clauses: [][2]int{{1, 2}, {-1, 3}, {-2, -3}},
	}
	if Solve(pb) {
		fmt.Println("SATISFIABLE")
	} else {
		fmt.Println("UNSATISFIABLE")
	}
	// Output: SATISFIABLE
}

func ExampleSearch() {
	// Forcing x1 both true and false leaves nothing to find.
	pb := &Problem{
		Vars:    1,
		Clauses: [][2]int{{1, 1}, {-1, -1}},
	}
	if Search(pb) {
		fmt.Println("SATISFIABLE")
	} else {
		fmt.Println("UNSATISFIABLE")
	}
	// Output: UNSATISFIABLE
}
