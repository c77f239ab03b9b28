package mapping_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/canonical/schemaged/mapping"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

func (s *S) TestEmpty(c *C) {
	m := mapping.Empty()
	c.Assert(m.Size(), Equals, 0)
	c.Assert(m.ContainsSource(0), Equals, false)
	c.Assert(m.ContainsTarget(0), Equals, false)
}

func (s *S) TestExtendIsPersistent(c *C) {
	m0 := mapping.Empty()
	m1 := m0.Extend(0, 1)
	m2 := m1.Extend(1, 0)

	c.Assert(m0.Size(), Equals, 0)
	c.Assert(m1.Size(), Equals, 1)
	c.Assert(m2.Size(), Equals, 2)

	c.Assert(m1.ContainsSource(0), Equals, true)
	c.Assert(m1.ContainsSource(1), Equals, false)
	c.Assert(m2.ContainsSource(1), Equals, true)

	u, ok := m2.GetTarget(0)
	c.Assert(ok, Equals, true)
	c.Assert(u, Equals, 1)

	v, ok := m2.GetSource(0)
	c.Assert(ok, Equals, true)
	c.Assert(v, Equals, 1)
}

func (s *S) TestRemoveLastElement(c *C) {
	m0 := mapping.Empty()
	m1 := m0.Extend(0, 1)
	m2 := m1.Extend(1, 0)

	back := m2.RemoveLastElement()
	c.Assert(back.Size(), Equals, 1)
	c.Assert(back.ContainsSource(1), Equals, false)
	c.Assert(back.ContainsSource(0), Equals, true)

	c.Assert(m0.RemoveLastElement(), Equals, m0)
}

func (s *S) TestForEachTarget(c *C) {
	m := mapping.Empty().Extend(0, 5).Extend(1, 6)
	seen := map[int]bool{}
	m.ForEachTarget(func(u int) { seen[u] = true })
	c.Assert(seen, DeepEquals, map[int]bool{5: true, 6: true})
}

func (s *S) TestCopyIsIdentity(c *C) {
	m := mapping.Empty().Extend(0, 1)
	c.Assert(m.Copy(), Equals, m)
}
