package network

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Edge is a directed edge in a graph being checked for acyclicity. It is
// deliberately independent of LinkSpec (which carries a weight neat/genetics
// doesn't always have handy, e.g. when checking disabled links) and of any
// neat/genetics type, to keep this package import-free of genetics.
type Edge struct {
	From int
	To   int
}

// VerifyAcyclic reports whether the directed graph formed by edges is
// acyclic, using gonum's topological sort as an independent check against
// the hand-rolled DFS neat/genetics performs on its hot path (proposing a
// new link). A topo.Sort failure (Unorderable) means a cycle exists.
func VerifyAcyclic(edges []Edge) bool {
	g := simple.NewDirectedGraph()
	for _, e := range edges {
		if !g.HasEdgeFromTo(int64(e.From), int64(e.To)) {
			g.SetEdge(g.NewEdge(simpleNode(e.From), simpleNode(e.To)))
		}
	}
	_, err := topo.Sort(g)
	return err == nil
}

func simpleNode(id int) simple.Node {
	return simple.Node(int64(id))
}
