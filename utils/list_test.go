package utils

import (
	. "gopkg.in/check.v1"
)

type ListSuite struct {
}

var _ = Suite(&ListSuite{})

func (s *ListSuite) TestStrMapSortedKeys(c *C) {
	c.Check(StrMapSortedKeys(map[string]string{}), DeepEquals, []string{})
	c.Check(StrMapSortedKeys(map[string]string{"x": "1", "a": "3", "y": "4"}), DeepEquals, []string{"a", "x", "y"})
}

func (s *ListSuite) TestStrSliceDeduplicate(c *C) {
	c.Check(StrSliceDeduplicate([]string{}), DeepEquals, []string{})
	c.Check(StrSliceDeduplicate([]string{"a", "a"}), DeepEquals, []string{"a"})
	c.Check(StrSliceDeduplicate([]string{"a", "b", "c", "a", "a", "b"}), DeepEquals, []string{"a", "b", "c"})
}

func (s *ListSuite) TestNormalizeTags(c *C) {
	c.Check(NormalizeTags(nil), DeepEquals, []string{})
	c.Check(NormalizeTags([]string{" Artist", "title", "", "ARTIST ", "~people"}), DeepEquals, []string{"artist", "title", "~people"})
}
