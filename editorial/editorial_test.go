package editorial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "gopkg.in/check.v1"

	"github.com/canonical/schemaged/editorial"
	"github.com/canonical/schemaged/graph"
	"github.com/canonical/schemaged/mapping"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

func label(s string) *string { return &s }

func mustGraph(c *C, vs []graph.Vertex, es []graph.Edge) *graph.SchemaGraph {
	g, err := graph.NewSchemaGraph(vs, es)
	c.Assert(err, IsNil)
	return g
}

func (s *S) TestIdenticalGraphsZeroCost(c *C) {
	src := mustGraph(c, []graph.Vertex{{ID: "a", Type: "A"}, {ID: "b", Type: "B"}},
		[]graph.Edge{{From: 0, To: 1, Label: label("e")}})
	tgt := mustGraph(c, []graph.Vertex{{ID: "a", Type: "A"}, {ID: "b", Type: "B"}},
		[]graph.Edge{{From: 0, To: 1, Label: label("e")}})

	m := mapping.Empty().Extend(0, 0).Extend(1, 1)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	c.Assert(cost, Equals, 0)
	c.Assert(edits, HasLen, 0)
}

func (s *S) TestVertexRelabel(c *C) {
	src := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T", Properties: map[string]string{"p": "1"}}}, nil)
	tgt := mustGraph(c, []graph.Vertex{{ID: "a2", Type: "T", Properties: map[string]string{"p": "2"}}}, nil)

	m := mapping.Empty().Extend(0, 0)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	c.Assert(cost, Equals, 1)
	want := []editorial.EditOp{{Kind: editorial.VertexRelabel, SourceVertex: 0, TargetVertex: 0}}
	if diff := cmp.Diff(want, edits); diff != "" {
		c.Fatalf("edit list mismatch (-want +got):\n%s", diff)
	}
}

func (s *S) TestEdgeLabelChange(c *C) {
	src := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}},
		[]graph.Edge{{From: 0, To: 1, Label: label("x")}})
	tgt := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}},
		[]graph.Edge{{From: 0, To: 1, Label: label("y")}})

	m := mapping.Empty().Extend(0, 0).Extend(1, 1)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	c.Assert(cost, Equals, 1)
	c.Assert(edits, HasLen, 1)
	c.Assert(edits[0].Kind, Equals, editorial.EdgeRelabel)
}

func (s *S) TestPureInsertion(c *C) {
	src := mustGraph(c, []graph.Vertex{{ID: "iso", Type: graph.Isolated}}, nil)
	tgt := mustGraph(c, []graph.Vertex{{ID: "b", Type: "T"}}, nil)

	m := mapping.Empty().Extend(0, 0)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	c.Assert(cost, Equals, 1)
	c.Assert(edits[0].Kind, Equals, editorial.VertexInsert)
}

func (s *S) TestDirectionMatters(c *C) {
	// Source: a->b. Target: b->a (reversed). Under the identity mapping the
	// cost is 2: delete one edge, insert the other, because edge direction is
	// part of its identity.
	src := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}},
		[]graph.Edge{{From: 0, To: 1}})
	tgt := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}},
		[]graph.Edge{{From: 1, To: 0}})

	m := mapping.Empty().Extend(0, 0).Extend(1, 1)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	c.Assert(cost, Equals, 2)
}

func (s *S) TestVertexInsertionCarriesEdgeInsert(c *C) {
	// Source: {a} (padded with one Isolated). Target: a->b.
	src := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "iso", Type: graph.Isolated}}, nil)
	tgt := mustGraph(c, []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}},
		[]graph.Edge{{From: 0, To: 1, Label: label("e")}})

	m := mapping.Empty().Extend(0, 0).Extend(1, 1)
	var edits []editorial.EditOp
	cost := editorial.Cost(m, src, tgt, &edits)

	// 1 vertex insert (b) + 1 edge insert (a->b).
	c.Assert(cost, Equals, 2)
	kinds := map[editorial.Kind]int{}
	for _, e := range edits {
		kinds[e.Kind]++
	}
	c.Assert(kinds[editorial.VertexInsert], Equals, 1)
	c.Assert(kinds[editorial.EdgeInsert], Equals, 1)
}
