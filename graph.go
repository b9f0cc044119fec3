package twosat

// A vertex is one literal of the implication graph. label is the signed
// literal value and never changes once the vertex is created; order is the
// working label that drives the second Kosaraju pass, holding the vertex's
// pass-1 finishing time after relabeling.
type vertex struct {
	label  int
	order  int
	finish int

	out []*edge
	in  []*edge

	explored bool
	cursor   int // next neighbor to try in the DFS currently underway
}

// An edge is a directed implication between two literals.
type edge struct {
	from *vertex
	to   *vertex
}

// A graph is the implication graph of a 2-CNF formula: a vertex for every
// literal that occurs (and for its complement), and for every clause
// (u ∨ v) the two edges ¬u→v and ¬v→u.
type graph struct {
	byLabel map[int]*vertex
	verts   []*vertex
	edges   []*edge

	// Bounds on labels seen, used to drive the pass-1 iteration. Since
	// every literal is created together with its complement, min is
	// always the negation of max.
	max, min int
}

func newGraph(clauses [][2]int) *graph {
	g := &graph{byLabel: make(map[int]*vertex)}
	for _, cls := range clauses {
		u := g.get(cls[0])
		v := g.get(cls[1])
		notU := g.get(-cls[0])
		notV := g.get(-cls[1])
		g.link(notU, v)
		g.link(notV, u)
	}
	return g
}

// get returns the vertex labeled label, creating it if needed.
func (g *graph) get(label int) *vertex {
	if v, ok := g.byLabel[label]; ok {
		return v
	}
	v := &vertex{label: label}
	g.byLabel[label] = v
	g.verts = append(g.verts, v)
	if label > g.max {
		g.max = label
	}
	if label < g.min {
		g.min = label
	}
	return v
}

func (g *graph) link(from, to *vertex) {
	e := &edge{from: from, to: to}
	g.edges = append(g.edges, e)
	from.out = append(from.out, e)
	to.in = append(to.in, e)
}
