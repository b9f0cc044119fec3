package twosat

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFixtures(t *testing.T) {
	filenames, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(filenames) == 0 {
		t.Fatal("no fixtures found")
	}
	for _, filename := range filenames {
		var sat bool
		switch {
		case strings.HasSuffix(filename, ".sat.txt"):
			sat = true
		case strings.HasSuffix(filename, ".unsat.txt"):
		default:
			t.Fatalf("bad testdata filename: %q", filename)
		}
		t.Run(filepath.Base(filename), func(t *testing.T) {
			f, err := os.Open(filename)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			pb, err := Parse(f)
			if err != nil {
				t.Fatalf("bad fixture: %s", err)
			}
			if got := Solve(pb); got != sat {
				t.Errorf("Solve = %t; want %t", got, sat)
			}
			if sat {
				if !searchSeeded(pb, 10) {
					t.Errorf("walk never found a satisfying assignment")
				}
			} else {
				w := NewWalker(pb, Options{Rand: rand.New(rand.NewSource(0))})
				if w.Search() {
					t.Errorf("walk claims an unsatisfiable instance is satisfiable")
				}
			}
		})
	}
}

// The two engines must agree on satisfiable instances: the SCC reduction is
// exact and the walk is given enough seeded attempts that missing a planted
// assignment would indicate a bug rather than bad luck.
func TestEnginesAgreeRandomized(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{2, 4, 50},
		{4, 8, 100},
		{8, 20, 100},
	} {
		name := fmt.Sprintf("vars=%d,clauses=%d", tt.numVars, tt.numClauses)
		t.Run(name, func(t *testing.T) {
			for seed := 0; seed < tt.numSeeds; seed++ {
				pb := makeRandom2SAT(int64(seed), tt.numVars, tt.numClauses)
				var b strings.Builder
				if err := Write(&b, pb); err != nil {
					panic(err)
				}
				if !Solve(pb) {
					t.Fatalf("[seed=%d] Solve reports UNSAT for a planted-satisfiable instance:\n\n%s",
						seed, b.String())
				}
				if !searchSeeded(pb, 10) {
					t.Fatalf("[seed=%d] walk never found the planted assignment:\n\n%s",
						seed, b.String())
				}
			}
		})
	}
}

func TestEnginesAgreeUnsatisfiable(t *testing.T) {
	for seed := 0; seed < 100; seed++ {
		pb := makeRandom2SAT(int64(seed), 6, 12)
		// Force a contradiction on variable 1 on top of the satisfiable
		// base instance.
		pb.Clauses = append(pb.Clauses, [2]int{1, 1}, [2]int{-1, -1})
		if Solve(pb) {
			t.Fatalf("[seed=%d] Solve reports SAT despite a forced contradiction", seed)
		}
		w := NewWalker(pb, Options{Rand: rand.New(rand.NewSource(int64(seed)))})
		if w.Search() {
			t.Fatalf("[seed=%d] walk reports SAT despite a forced contradiction", seed)
		}
	}
}

// makeRandom2SAT builds a random instance over numVars ≥ 2 variables that
// is satisfiable by construction: one literal of every clause is planted to
// agree with a hidden assignment.
func makeRandom2SAT(seed int64, numVars, numClauses int) *Problem {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		if rng.Intn(2) == 1 {
			assignment[v] = true
		}
	}
	pb := &Problem{Vars: numVars}
	for i := 0; i < numClauses; i++ {
		v1 := rng.Intn(numVars)
		v2 := rng.Intn(numVars - 1)
		if v2 >= v1 {
			v2++
		}
		var cls [2]int
		fixed := rng.Intn(2) // the literal planted to match the assignment
		for j, v := range [2]int{v1, v2} {
			lit := v + 1
			if j == fixed {
				if !assignment[v] {
					lit = -lit
				}
			} else if rng.Intn(2) == 1 {
				lit = -lit
			}
			cls[j] = lit
		}
		pb.Clauses = append(pb.Clauses, cls)
	}
	return pb
}
