package graph_test

import (
	"github.com/canonical/schemaged/graph"

	. "gopkg.in/check.v1"
)

func (s *S) TestIDEditDistance(c *C) {
	c.Assert(graph.IDEditDistance("users", "users"), Equals, int64(0))
	c.Assert(graph.IDEditDistance("users", "user"), Equals, int64(1))
	c.Assert(graph.IDEditDistance("users", "customers"), Equals, int64(4))
}

func (s *S) TestSimilarIDsRequiresTypeMatch(c *C) {
	src, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "users", Type: "Table"}}, nil)
	c.Assert(err, IsNil)
	tgt, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "users", Type: "Column"}}, nil)
	c.Assert(err, IsNil)

	oracle := graph.SimilarIDs{Source: src, Target: tgt, Threshold: 5}
	c.Assert(oracle.MappingPossible(0, 0), Equals, false)
}

func (s *S) TestSimilarIDsWithinThreshold(c *C) {
	src, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "users", Type: "Table"}}, nil)
	c.Assert(err, IsNil)
	tgt, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "user", Type: "Table"}}, nil)
	c.Assert(err, IsNil)

	oracle := graph.SimilarIDs{Source: src, Target: tgt, Threshold: 1}
	c.Assert(oracle.MappingPossible(0, 0), Equals, true)
}

func (s *S) TestSimilarIDsBeyondThreshold(c *C) {
	src, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "users", Type: "Table"}}, nil)
	c.Assert(err, IsNil)
	tgt, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "orders", Type: "Table"}}, nil)
	c.Assert(err, IsNil)

	oracle := graph.SimilarIDs{Source: src, Target: tgt, Threshold: 1}
	c.Assert(oracle.MappingPossible(0, 0), Equals, false)
}

func (s *S) TestSimilarIDsAlwaysAllowsIsolated(c *C) {
	src, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "iso", Type: graph.Isolated}}, nil)
	c.Assert(err, IsNil)
	tgt, err := graph.NewSchemaGraph([]graph.Vertex{{ID: "orders", Type: "Table"}}, nil)
	c.Assert(err, IsNil)

	oracle := graph.SimilarIDs{Source: src, Target: tgt, Threshold: 0}
	c.Assert(oracle.MappingPossible(0, 0), Equals, true)
}
