package query

import (
	"github.com/qlquery/qlquery/match"

	. "gopkg.in/check.v1"
)

type LexerSuite struct {
}

var _ = Suite(&LexerSuite{})

func (s *LexerSuite) TestAccept(c *C) {
	l := newLexer("query", "  &( a")

	c.Check(l.accept("|"), Equals, false)
	c.Check(l.accept("&"), Equals, true)
	c.Check(l.accept("("), Equals, true)
	c.Check(l.rest(), Equals, " a")
	c.Check(l.eof(), Equals, false)

	tag, ok := l.acceptRE(reTag)
	c.Check(ok, Equals, true)
	c.Check(tag, Equals, "a")
	c.Check(l.eof(), Equals, true)
}

func (s *LexerSuite) TestIndex(c *C) {
	l := newLexer("query", "äöü = x")
	l.acceptRE(reTag)

	c.Check(l.pos, Equals, 7)
	c.Check(l.index(), Equals, 4)
}

func (s *LexerSuite) TestExpect(c *C) {
	l := newLexer("query", "ab = c")

	c.Check(func() { l.expect("=") }, PanicMatches, `'=' expected at index 0, but not found`)
	c.Check(func() { l.expectRE(reDigits) }, PanicMatches, `RE match expected at index 0, but not found`)

	l.expectRE(reWord)
	l.expect("=")
	c.Check(l.index(), Equals, 4)

	defer func() {
		perr, ok := recover().(*match.ParseError)
		c.Assert(ok, Equals, true)
		c.Check(perr.Pos, Equals, 6)
		c.Check(perr.Kind, Equals, match.KindSyntax)
	}()

	l.expectRE(reWord)
	l.expect(")")
}

func (s *LexerSuite) TestAcceptDate(c *C) {
	for input, expected := range map[string]string{
		"2010":         "2010",
		"2010-4)":      "2010-4",
		"2010-04-1 <":  "2010-04-1",
		"2010 - 4":     "2010",
		" 0000)":       "0000",
		"2010-123":     "2010-12",
		"2010-02-18rr": "2010-02-18",
	} {
		l := newLexer("query", input)
		date, ok := l.acceptDate()
		c.Check(ok, Equals, true, Commentf("input %q", input))
		c.Check(date, Equals, expected, Commentf("input %q", input))
	}

	for _, input := range []string{"00004", "44100", "5:00", "201", "t < 3", ""} {
		l := newLexer("query", input)
		_, ok := l.acceptDate()
		c.Check(ok, Equals, false, Commentf("input %q", input))
	}
}

func (s *LexerSuite) TestExtBody(c *C) {
	for input, expected := range map[string]string{
		" extension body)":                 " extension body",
		" body (with (nested) parens))":    " body (with (nested) parens)",
		` body \\ with \) escapes)`:        ` body \\ with \) escapes`,
		")":                                "",
		"no closing paren":                 "no closing paren",
		" mismatched ( parenthesis)":       " mismatched ( parenthesis)",
		"a(b)c) trailing":                  "a(b)c",
		` escaped \( paren) and the rest)`: ` escaped \( paren`,
	} {
		l := newLexer("query", input)
		c.Check(l.extBody(), Equals, expected, Commentf("input %q", input))
	}

	l := newLexer("query", " unbalanced ((paren)")
	c.Check(func() { l.extBody() }, PanicMatches, "Unexpected end of string while parsing extension body")
}

func (s *LexerSuite) TestUnescape(c *C) {
	for input, expected := range map[string]string{
		`plain`:         "plain",
		`a\"str`:        `a"str`,
		`it\'s`:         "it's",
		`back\\slash`:   `back\slash`,
		`new\nline`:     "new\nline",
		`\t\r\a\b\f\v`:  "\t\r\a\b\f\v",
		"cont\\\nline":  "contline",
		`\x41\x4a`:      "AJ",
		`\x4`:           `\x4`,
		`\xzz`:          `\xzz`,
		`\101\60\0`:     "A0\x00",
		`\q\d`:          `\q\d`,
		`trailing\`:     `trailing\`,
		`Ångstr\x6fm`:   "Ångstrom",
	} {
		c.Check(unescape(input), Equals, expected, Commentf("input %q", input))
	}
}
