package utils

import (
	"bytes"
	"io"

	. "gopkg.in/check.v1"
)

type CompressSuite struct{}

var _ = Suite(&CompressSuite{})

const testString = `[{"artist": "piman", "title": "Quick brown fox jumps over black dog and runs away... Really far away... who knows?"}]`

func (s *CompressSuite) roundTrip(c *C, name string) []byte {
	var buf bytes.Buffer

	w, err := CompressWriter(name, &buf)
	c.Assert(err, IsNil)
	_, err = io.WriteString(w, testString)
	c.Assert(err, IsNil)
	c.Assert(w.Close(), IsNil)

	compressed := buf.Bytes()

	r, err := UncompressReader(name, bytes.NewReader(compressed))
	c.Assert(err, IsNil)
	defer r.Close()

	result, err := io.ReadAll(r)
	c.Assert(err, IsNil)
	c.Check(string(result), Equals, testString)

	return compressed
}

func (s *CompressSuite) TestRoundTrip(c *C) {
	for _, name := range []string{"dump.json", "dump.json.gz", "dump.json.zst", "dump.json.lzma"} {
		s.roundTrip(c, name)
	}
}

func (s *CompressSuite) TestDetectByMagic(c *C) {
	for _, name := range []string{"dump.json.gz", "dump.json.zst"} {
		compressed := s.roundTrip(c, name)

		// extension is ignored if there are magic bytes
		r, err := UncompressReader("dump.json", bytes.NewReader(compressed))
		c.Assert(err, IsNil)
		result, err := io.ReadAll(r)
		c.Assert(err, IsNil)
		c.Check(string(result), Equals, testString)
	}
}

func (s *CompressSuite) TestPlain(c *C) {
	compressed := s.roundTrip(c, "dump.json")
	c.Check(string(compressed), Equals, testString)

	r, err := UncompressReader("", bytes.NewReader(nil))
	c.Assert(err, IsNil)
	result, err := io.ReadAll(r)
	c.Assert(err, IsNil)
	c.Check(result, HasLen, 0)
}

func (s *CompressSuite) TestBroken(c *C) {
	_, err := UncompressReader("dump.json.gz", bytes.NewReader([]byte("not gzipped at all")))
	c.Check(err, ErrorMatches, "unable to uncompress dump.json.gz \\(.gz\\): .*")
}

func (s *CompressSuite) TestWriteUnsupported(c *C) {
	_, err := CompressWriter("dump.json.bz2", &bytes.Buffer{})
	c.Check(err, ErrorMatches, "compression .bz2 is not supported for writing")

	_, err = CompressWriter("dump.json.xz", &bytes.Buffer{})
	c.Check(err, ErrorMatches, "compression .xz is not supported for writing")
}

func (s *CompressSuite) TestExtension(c *C) {
	c.Check(CompressionExtension("a.json.gz"), Equals, ".gz")
	c.Check(CompressionExtension("a.yaml.zst"), Equals, ".zst")
	c.Check(CompressionExtension("a.lzma"), Equals, ".lzma")
	c.Check(CompressionExtension("a.json"), Equals, "")
}
