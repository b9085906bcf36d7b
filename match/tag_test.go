package match

import (
	"gopkg.in/check.v1"
)

type TagSuite struct {
	s1, s3 fakeRecord
}

var _ = check.Suite(&TagSuite{})

func (s *TagSuite) SetUpTest(c *check.C) {
	s.s1 = fakeRecord{
		tags: map[string]string{
			"album":     "I Hate: Tests",
			"artist":    "piman",
			"title":     "Quuxly",
			"version":   "cake mix",
			"~filename": "/dir1/foobar.ogg",
			"~dirname":  "/dir1",
			"~people":   "piman",
		},
	}
	s.s3 = fakeRecord{
		tags: map[string]string{
			"artist":      "piman\nmu",
			"~people":     "piman\nmu",
			"~filename":   "/test/öäü/foü.ogg",
			"~mountpoint": "/bla/öäü/foü",
		},
	}
}

func (s *TagSuite) TestAbbreviations(c *check.C) {
	tag := mustTag(c, mustRegex(c, "x", ""), "A", "b", "v", "t", "n", "d", "Genre")
	c.Check(tag.Names(), check.DeepEquals, []string{"artist", "album", "version", "title", "tracknumber", "date", "genre"})

	c.Check(mustTag(c, mustRegex(c, "i hate", ""), "b").Search(s.s1), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "pi*", ""), "a").Search(s.s1), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "x.y", ""), "t").Search(s.s1), check.Equals, true)
}

func (s *TagSuite) TestNumericRejected(c *check.C) {
	_, err := NewTag([]string{"artist", "~#mtime"}, mustRegex(c, "x", ""))
	c.Check(err, check.ErrorMatches, "numeric tags not supported")
	c.Check(IsParseError(err), check.Equals, true)
}

func (s *TagSuite) TestMultipleNames(c *check.C) {
	tag := mustTag(c, mustRegex(c, "cake", ""), "artist", "version")
	c.Check(tag.Search(s.s1), check.Equals, true)

	tag = mustTag(c, mustRegex(c, "cake", ""), "artist", "title")
	c.Check(tag.Search(s.s1), check.Equals, false)
}

func (s *TagSuite) TestMissingTag(c *check.C) {
	c.Check(mustTag(c, mustRegex(c, ".", ""), "foobar").Search(s.s1), check.Equals, false)
	c.Check(mustTag(c, NegateValue(mustRegex(c, ".", "")), "foobar").Search(s.s1), check.Equals, true)
}

func (s *TagSuite) TestFilesystemTags(c *check.C) {
	c.Check(mustTag(c, mustRegex(c, "foü.ogg", ""), "~filename").Search(s.s3), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "öä", ""), "~filename").Search(s.s3), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "dir1", ""), "~dirname").Search(s.s1), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "bla", ""), "~mountpoint").Search(s.s1), check.Equals, false)

	// plain names fall back to filesystem tags
	c.Check(mustTag(c, mustRegex(c, "foü.ogg", ""), "filename").Search(s.s3), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "öä", ""), "mountpoint").Search(s.s3), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "dir1", ""), "dirname").Search(s.s1), check.Equals, true)
}

func (s *TagSuite) TestInternalTagsPerValue(c *check.C) {
	// plain tag sees all the values at once
	c.Check(mustTag(c, NegateValue(mustRegex(c, "^mu$", "")), "artist").Search(s.s3), check.Equals, false)
	// internal tag is searched value by value
	c.Check(mustTag(c, NegateValue(mustRegex(c, "^mu$", "")), "~people").Search(s.s3), check.Equals, true)
	c.Check(mustTag(c, mustRegex(c, "^mu$", ""), "~people").Search(s.s3), check.Equals, true)

	c.Check(mustTag(c, mustRegex(c, "^$", ""), "~nothing").Search(s.s1), check.Equals, true)
}

func (s *TagSuite) TestString(c *check.C) {
	tag := mustTag(c, mustRegex(c, "x", "c"), "artist", "~people", "~filename")
	c.Check(tag.String(), check.Equals, "<Tag names=[artist ~people ~filename] value=<Regex pattern=x mods=c>>")
	c.Check(tag.Valid(), check.Equals, true)
}
