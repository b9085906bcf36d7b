package library

import (
	"os"
	"path/filepath"

	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/qlquery"

	. "gopkg.in/check.v1"
)

type LoadSuite struct {
	dir   string
	songs []*Song
}

var _ = Suite(&LoadSuite{})

func (s *LoadSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
	s.songs = []*Song{
		mustSong(map[string]interface{}{"artist": "piman", "title": "Quuxly", "~#length": 224}),
		mustSong(map[string]interface{}{"artist": "mu", "title": "Rockin' Out", "tracknumber": "12/15"}),
	}
}

func (s *LoadSuite) TestDetectFormat(c *C) {
	for name, expected := range map[string]Format{
		"a.json":         FormatJSON,
		"a.JSON":         FormatJSON,
		"a.yml":          FormatYAML,
		"a.yaml.gz":      FormatYAML,
		"a.msgpack.zst":  FormatMsgpack,
		"dir.d/songs.mp": FormatMsgpack,
	} {
		format, ok := DetectFormat(name)
		c.Check(ok, Equals, true, Commentf("name %s", name))
		c.Check(format, Equals, expected, Commentf("name %s", name))
	}

	_, ok := DetectFormat("a.txt")
	c.Check(ok, Equals, false)
	_, ok = DetectFormat("a.gz")
	c.Check(ok, Equals, false)
}

func (s *LoadSuite) TestSaveLoad(c *C) {
	for _, name := range []string{"songs.json", "songs.yaml", "songs.msgpack", "songs.json.gz", "songs.yml.zst", "songs.mp.lzma"} {
		path := filepath.Join(s.dir, name)
		c.Assert(SaveFile(path, s.songs), IsNil)

		songs, err := LoadFile(path)
		c.Assert(err, IsNil, Commentf("name %s", name))
		c.Assert(songs, HasLen, 2)

		c.Check(songs[0].Keys(), DeepEquals, []string{"artist", "title", "~#length"})
		num, ok := songs[0].Numeric("~#length")
		c.Check(ok, Equals, true)
		c.Check(num, Equals, 224.0)

		num, ok = songs[1].Numeric("~#track")
		c.Check(ok, Equals, true)
		c.Check(num, Equals, 12.0)
	}
}

func (s *LoadSuite) TestLoadErrors(c *C) {
	_, err := LoadFile(filepath.Join(s.dir, "missing.json"))
	c.Check(err, ErrorMatches, "unable to load .*missing.json: .*")

	path := filepath.Join(s.dir, "broken.json")
	c.Assert(os.WriteFile(path, []byte("[{\"title\": "), 0644), IsNil)
	_, err = LoadFile(path)
	c.Check(err, ErrorMatches, "unable to load .*broken.json: .*")

	path = filepath.Join(s.dir, "nulls.json")
	c.Assert(os.WriteFile(path, []byte("[{\"title\": \"a\"}, {\"title\": null}]"), 0644), IsNil)
	_, err = LoadFile(path)
	c.Check(err, ErrorMatches, "unable to load .*nulls.json: record #1: tag title: empty value")
}

func (s *LoadSuite) TestSaveUnsupported(c *C) {
	err := SaveFile(filepath.Join(s.dir, "songs.json.bz2"), s.songs)
	c.Check(err, ErrorMatches, "unable to save .*: compression .bz2 is not supported for writing")
}

func (s *LoadSuite) TestCollect(c *C) {
	c.Assert(os.MkdirAll(filepath.Join(s.dir, "a", "b"), 0755), IsNil)
	c.Assert(SaveFile(filepath.Join(s.dir, "a", "one.json"), s.songs[:1]), IsNil)
	c.Assert(SaveFile(filepath.Join(s.dir, "a", "b", "two.yaml.gz"), s.songs[1:]), IsNil)
	c.Assert(os.WriteFile(filepath.Join(s.dir, "a", "README"), []byte("x"), 0644), IsNil)
	c.Assert(os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("x"), 0644), IsNil)

	reporter := &qlquery.RecordingResultReporter{}
	dumpFiles, failedFiles := CollectDumpFiles([]string{
		filepath.Join(s.dir, "a"),
		filepath.Join(s.dir, "notes.txt"),
		filepath.Join(s.dir, "nowhere"),
	}, reporter)

	c.Check(dumpFiles, DeepEquals, []string{
		filepath.Join(s.dir, "a", "b", "two.yaml.gz"),
		filepath.Join(s.dir, "a", "one.json"),
	})
	c.Check(failedFiles, DeepEquals, []string{
		filepath.Join(s.dir, "notes.txt"),
		filepath.Join(s.dir, "nowhere"),
	})
	c.Check(reporter.Warnings, HasLen, 2)

	collection := NewCollection()
	c.Check(LoadDumpFiles(collection, dumpFiles, reporter), HasLen, 0)
	c.Check(collection.Len(), Equals, 2)
}

func (s *LoadSuite) TestCollection(c *C) {
	collection := NewCollection(s.songs[0])
	collection.Add(s.songs[1])
	c.Check(collection.Len(), Equals, 2)
	c.Check(collection.Songs(), DeepEquals, s.songs)

	c.Check(collection.Filter(match.Everything), HasLen, 2)
	c.Check(collection.Filter(match.Nothing), HasLen, 0)

	tag, err := match.NewTag([]string{"artist"}, mustRegex("^mu$"))
	c.Assert(err, IsNil)
	c.Check(collection.Filter(tag), DeepEquals, []*Song{s.songs[1]})

	var titles []string
	c.Check(collection.ForEach(func(song *Song) error {
		value, _ := song.Get("title")
		titles = append(titles, value)
		return nil
	}), IsNil)
	c.Check(titles, DeepEquals, []string{"Quuxly", "Rockin' Out"})
}

func mustRegex(pattern string) *match.Regex {
	regex, err := match.NewRegex(pattern, "")
	if err != nil {
		panic(err)
	}
	return regex
}
