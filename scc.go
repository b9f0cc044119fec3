package twosat

import (
	"fmt"
	"sort"

	"github.com/kr/pretty"
)

// A Solver decides a 2-SAT instance exactly. It partitions the implication
// graph into strongly connected components with Kosaraju's two-pass
// algorithm and then checks whether any component contains both a literal
// and its complement.
type Solver struct {
	g     *graph
	debug bool
}

// NewSolver builds the implication graph for pb.
func NewSolver(pb *Problem, opts Options) *Solver {
	s := &Solver{g: newGraph(pb.Clauses), debug: opts.Debug}
	if s.debug {
		fmt.Printf("implication graph: %d vertices, %d edges, labels in [%d, %d]\n",
			len(s.g.verts), len(s.g.edges), s.g.min, s.g.max)
		adj := make(map[int][]int, len(s.g.verts))
		for _, v := range s.g.verts {
			adj[v.label] = nil
			for _, e := range v.out {
				adj[v.label] = append(adj[v.label], e.to.label)
			}
		}
		pretty.Println(adj)
	}
	return s
}

// A component is one strongly connected component of the implication graph,
// keyed by stable vertex label.
type component map[int]*vertex

func (c component) labels() []int {
	labels := make([]int, 0, len(c))
	for l := range c {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	return labels
}

// A traversal carries the mutable state of one DFS pass: the global
// post-order finishing-time counter and the direction of travel.
type traversal struct {
	t       int
	reverse bool
}

// Solve reports whether the formula is satisfiable: it is if and only if no
// strongly connected component contains a variable together with its
// negation. An empty formula is trivially satisfiable.
func (s *Solver) Solve() bool {
	for _, comp := range s.components() {
		for _, v := range comp {
			if _, ok := comp[-v.label]; ok {
				if s.debug {
					fmt.Printf("conflict: %d and %d share component %v\n",
						v.label, -v.label, comp.labels())
				}
				return false
			}
		}
	}
	return true
}

// components partitions the graph's vertices into strongly connected
// components.
func (s *Solver) components() []component {
	g := s.g

	// Pass 1: number every vertex in post-order of a DFS over the
	// transpose graph, scanning labels from the largest down to the
	// smallest.
	rev := &traversal{reverse: true}
	for _, v := range g.verts {
		v.explored = false
	}
	for i := g.max; i >= g.min; i-- {
		v, ok := g.byLabel[i]
		if !ok || v.explored {
			continue
		}
		g.dfs(v, rev, nil)
	}

	// Relabel: the working label becomes the finishing time. Finishing
	// times are contiguous in [1, rev.t] even when the input labels are
	// not, and rev.t (the number of vertices actually numbered) is the
	// authoritative upper bound for the second scan.
	byOrder := make(map[int]*vertex, len(g.verts))
	for _, v := range g.verts {
		v.order = v.finish
		byOrder[v.order] = v
	}
	if s.debug {
		for _, v := range g.verts {
			fmt.Printf("f(%d) = %d\n", v.label, v.order)
		}
	}

	// Pass 2: DFS over the original graph in decreasing finishing-time
	// order; the vertices reached by one DFS invocation form one
	// component. The stable labels were never touched, so no restore
	// step is needed before the conflict check.
	fwd := &traversal{}
	for _, v := range g.verts {
		v.explored = false
	}
	var comps []component
	for i := rev.t; i >= 1; i-- {
		v, ok := byOrder[i]
		if !ok || v.explored {
			continue
		}
		comp := component{}
		g.dfs(v, fwd, comp)
		comps = append(comps, comp)
	}
	if s.debug {
		fmt.Printf("%d components\n", len(comps))
		for _, comp := range comps {
			fmt.Println(comp.labels())
		}
	}
	return comps
}

// dfs walks the graph from root, following incoming edges when tr.reverse
// is set and outgoing edges otherwise, and assigns each vertex the next
// finishing time once all of its neighbors in the chosen direction have
// been fully processed (true post-order). The work stack is explicit so
// that dense graphs cannot exhaust the call stack. When comp is non-nil,
// every vertex reached is added to it.
func (g *graph) dfs(root *vertex, tr *traversal, comp component) {
	root.explored = true
	root.cursor = 0
	if comp != nil {
		comp[root.label] = root
	}
	stack := []*vertex{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		var next *vertex
		for next == nil {
			var w *vertex
			if tr.reverse {
				if v.cursor >= len(v.in) {
					break
				}
				w = v.in[v.cursor].from
			} else {
				if v.cursor >= len(v.out) {
					break
				}
				w = v.out[v.cursor].to
			}
			v.cursor++
			if !w.explored {
				next = w
			}
		}
		if next == nil {
			stack = stack[:len(stack)-1]
			tr.t++
			v.finish = tr.t
			continue
		}
		next.explored = true
		next.cursor = 0
		if comp != nil {
			comp[next.label] = next
		}
		stack = append(stack, next)
	}
}
