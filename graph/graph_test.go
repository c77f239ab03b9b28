package graph_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/canonical/schemaged/graph"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

func label(s string) *string { return &s }

func (s *S) TestSameLabelVertex(c *C) {
	a := graph.Vertex{Type: "T", Properties: map[string]string{"p": "1"}}
	b := graph.Vertex{Type: "T", Properties: map[string]string{"p": "1"}}
	d := graph.Vertex{Type: "T", Properties: map[string]string{"p": "2"}}
	c.Assert(a.SameLabel(b), Equals, true)
	c.Assert(a.SameLabel(d), Equals, false)
}

func (s *S) TestSameLabelEdge(c *C) {
	e1 := graph.Edge{Label: label("x")}
	e2 := graph.Edge{Label: label("x")}
	e3 := graph.Edge{Label: label("y")}
	e4 := graph.Edge{}
	e5 := graph.Edge{}
	c.Assert(e1.SameLabel(e2), Equals, true)
	c.Assert(e1.SameLabel(e3), Equals, false)
	c.Assert(e1.SameLabel(e4), Equals, false)
	c.Assert(e4.SameLabel(e5), Equals, true)
}

func (s *S) TestAdjacency(c *C) {
	vs := []graph.Vertex{{ID: "a", Type: "T"}, {ID: "b", Type: "T"}}
	es := []graph.Edge{{From: 0, To: 1, Label: label("e")}}
	g, err := graph.NewSchemaGraph(vs, es)
	c.Assert(err, IsNil)
	c.Assert(g.Size(), Equals, 2)
	c.Assert(g.Adjacent(0), HasLen, 1)
	c.Assert(g.Adjacent(1), HasLen, 0)
	c.Assert(g.AdjacentInverse(1), HasLen, 1)
	c.Assert(g.AdjacentInverse(0), HasLen, 0)
}

func (s *S) TestNewSchemaGraphRejectsEmptyID(c *C) {
	_, err := graph.NewSchemaGraph([]graph.Vertex{{ID: ""}}, nil)
	c.Assert(err, Equals, graph.ErrEmptyVertexID)
}

func (s *S) TestNewSchemaGraphRejectsBadEdge(c *C) {
	_, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "a"}}, []graph.Edge{{From: 0, To: 5}})
	c.Assert(err, Equals, graph.ErrVertexNotFound)
}

func (s *S) TestPadToEqualSize(c *C) {
	a, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "a", Type: "T"}}, nil)
	c.Assert(err, IsNil)
	b, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "x", Type: "T"}, {ID: "y", Type: "T"}}, nil)
	c.Assert(err, IsNil)

	pa, pb := graph.PadToEqualSize(a, b)
	c.Assert(pa.Size(), Equals, 2)
	c.Assert(pb.Size(), Equals, 2)
	c.Assert(pa.VertexAt(1).IsIsolated(), Equals, true)
	c.Assert(pb.VertexAt(1).IsIsolated(), Equals, false)
}

func (s *S) TestTypeCompatible(c *C) {
	src, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "a", Type: "A"}, {ID: "iso", Type: graph.Isolated}}, nil)
	c.Assert(err, IsNil)
	tgt, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "b", Type: "A"}, {ID: "c", Type: "B"}}, nil)
	c.Assert(err, IsNil)

	oracle := graph.TypeCompatible{Source: src, Target: tgt}
	c.Assert(oracle.MappingPossible(0, 0), Equals, true)
	c.Assert(oracle.MappingPossible(0, 1), Equals, false)
	c.Assert(oracle.MappingPossible(1, 1), Equals, true)
}

func (s *S) TestAllowAll(c *C) {
	c.Assert(graph.AllowAll{}.MappingPossible(0, 99), Equals, true)
}
