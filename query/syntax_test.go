package query

import (
	"github.com/pkg/errors"
	"github.com/qlquery/qlquery/match"

	. "gopkg.in/check.v1"
)

type SyntaxSuite struct {
}

var _ = Suite(&SyntaxSuite{})

func (s *SyntaxSuite) TestParsing(c *C) {
	q, err := Parse("t = /an re/")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Tag names=[title] value=<Regex pattern=an re mods=>>")

	q, err = Parse("!a, ~people = x")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Neg <Tag names=[artist ~people] value=<Regex pattern=x mods=d>>>")

	q, err = Parse("album != !|(/a/c, 'b')")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Neg <Tag names=[album] value=<Neg <Union [<Regex pattern=a mods=c>, <Regex pattern=^b$ mods=>]>>>>")

	q, err = Parse("&(a = x, |(b = y, !/z/))")
	c.Assert(err, IsNil)
	inter, ok := q.(*match.Inter)
	c.Assert(ok, Equals, true)
	c.Assert(inter.Children, HasLen, 2)
	c.Check(inter.Children[1], FitsTypeOf, &match.Union{})
	c.Check(inter.Children[1].(*match.Union).Children[1], FitsTypeOf, &match.Neg{})

	q, err = Parse("")
	c.Assert(err, IsNil)
	c.Check(q, Equals, match.Everything)

	q, err = Parse("   ")
	c.Assert(err, IsNil)
	c.Check(q, Equals, match.Everything)
}

func (s *SyntaxSuite) TestQuotedStrings(c *C) {
	q, err := Parse(`t = "a\"str"`)
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, `<Tag names=[title] value=<Regex pattern=^a"str$ mods=>>`)

	q, err = Parse(`t = 'it\'s 1.5'c`)
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, `<Tag names=[title] value=<Regex pattern=^it's 1\.5$ mods=c>>`)

	q, err = Parse(`t = "a\nb"`)
	c.Assert(err, IsNil)
	c.Check(q.(*match.Tag).Value.MatchString("a\nb"), Equals, true)
}

func (s *SyntaxSuite) TestNumcmp(c *C) {
	q, err := Parse("#(t < 3)")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Inter [<Numcmp <NumexprTag tag=t> < <NumexprNumber value=3.00>>]>")

	q, err = Parse("#(2 < t:min <= 3, length > 3 minutes)")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Inter [<Inter [<Numcmp <NumexprNumber value=2.00> < <NumexprTag tag=t:min>>, "+
		"<Numcmp <NumexprTag tag=t:min> <= <NumexprNumber value=3.00>>]>, "+
		"<Numcmp <NumexprTag tag=length> > <NumexprNumber value=180.00 unit=seconds>>]>")

	q, err = Parse("#(added < now)")
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Inter [<Numcmp <NumexprTag tag=added> < <NumexprNow offset=0>>]>")
}

func (s *SyntaxSuite) TestPrecedence(c *C) {
	q, err := Parse("#(2+3*5 = 17)")
	c.Assert(err, IsNil)
	cmp := q.(*match.Inter).Children[0].(*match.Numcmp)
	c.Check(cmp.Left.String(), Equals, "<NumexprBinary op=+ left=<NumexprNumber value=2.00> "+
		"right=<NumexprBinary op=* left=<NumexprNumber value=3.00> right=<NumexprNumber value=5.00>>>")

	q, err = Parse("#(10 - 2 - 3 = 5)")
	c.Assert(err, IsNil)
	cmp = q.(*match.Inter).Children[0].(*match.Numcmp)
	c.Check(cmp.Left.String(), Equals, "<NumexprBinary op=- left=<NumexprBinary op=- left=<NumexprNumber value=10.00> "+
		"right=<NumexprNumber value=2.00>> right=<NumexprNumber value=3.00>>")

	q, err = Parse("#(-4 + 5 = 1)")
	c.Assert(err, IsNil)
	cmp = q.(*match.Inter).Children[0].(*match.Numcmp)
	c.Check(cmp.Left.String(), Equals, "<NumexprBinary op=+ left=<NumexprUnary op=- expr=<NumexprNumber value=4.00>> "+
		"right=<NumexprNumber value=5.00>>")

	q, err = Parse("#((1 + 2) * 3 = 9)")
	c.Assert(err, IsNil)
	cmp = q.(*match.Inter).Children[0].(*match.Numcmp)
	c.Check(cmp.Left, FitsTypeOf, &match.NumexprBinary{})
	c.Check(cmp.Left.(*match.NumexprBinary).Left, FitsTypeOf, &match.NumexprGroup{})
}

func (s *SyntaxSuite) TestDates(c *C) {
	q, err := Parse("#(date < 2010-4)")
	c.Assert(err, IsNil)
	right := q.(*match.Inter).Children[0].(*match.Numcmp).Right
	c.Check(right, FitsTypeOf, &match.NumexprNumberOrDate{})
	c.Check(right.(*match.NumexprNumberOrDate).Number, Equals, 2006.0)

	q, err = Parse("#(date > 0000)")
	c.Assert(err, IsNil)
	c.Check(q.(*match.Inter).Children[0].(*match.Numcmp).Right, FitsTypeOf, &match.NumexprNumber{})

	q, err = Parse("#(playcount = 00024)")
	c.Assert(err, IsNil)
	c.Check(q.(*match.Inter).Children[0].(*match.Numcmp).Right.String(), Equals, "<NumexprNumber value=24.00>")
}

func (s *SyntaxSuite) TestExtension(c *C) {
	plugins := pluginMap{"name": diePlugin{}}

	q, err := Parse("@(name: body (with (nested) parens))", WithPlugins(plugins))
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, `<Extension name=name valid=true body=" body (with (nested) parens)">`)

	q, err = Parse("@( name )", WithPlugins(plugins))
	c.Assert(err, IsNil)
	c.Check(q.String(), Equals, "<Extension name=name valid=true body=<nil>>")
}

func (s *SyntaxSuite) TestErrors(c *C) {
	for query, expected := range map[string]struct {
		kind    match.ErrorKind
		pos     int
		message string
	}{
		"t = /an re/)":     {match.KindSyntax, 11, "Query ended before end of input"},
		"a = /b/, c":       {match.KindSyntax, 7, "Query ended before end of input"},
		"#(3*4)":           {match.KindSyntax, 5, "No relational operator in numerical comparison"},
		"#(t < 3":          {match.KindSyntax, 7, "'\\)' expected at index 7, but not found"},
		"a string":         {match.KindSyntax, 0, "Free text not allowed at top level of query"},
		"/[/":              {match.KindRegex, 3, "The regular expression /\\[/ is invalid\\."},
		"#(t > 3 parsecs)": {match.KindNumeric, 15, "No such unit: \"parsecs\""},
		"@(nope)":          {match.KindPlugin, 7, "no query plugin \"nope\""},
		"äöü = /a":         {match.KindSyntax, 0, "Free text not allowed at top level of query"},
	} {
		_, err := Parse(query)
		c.Assert(err, NotNil, Commentf("query %q", query))
		c.Check(err, ErrorMatches, expected.message, Commentf("query %q", query))

		perr, ok := err.(*match.ParseError)
		c.Assert(ok, Equals, true)
		c.Check(perr.Kind, Equals, expected.kind, Commentf("query %q", query))
		c.Check(perr.Pos, Equals, expected.pos, Commentf("query %q", query))
	}
}

func (s *SyntaxSuite) TestNumericStar(c *C) {
	_, err := Parse(`"foo"`, WithStar([]string{"~#mtime"}))
	c.Check(err, ErrorMatches, "numeric tags not supported")

	_, err = Parse(`title, ~#rating = foo`)
	c.Check(err, NotNil)
}

func (s *SyntaxSuite) TestPluginRejectsBody(c *C) {
	_, err := Parse("@(name:   )", WithPlugins(pluginMap{"name": diePlugin{}}))
	c.Assert(err, NotNil)
	c.Check(match.IsParseError(err), Equals, true)

	var perr *match.PluginError
	c.Check(errors.As(err, &perr), Equals, true)
	c.Check(perr.Plugin, Equals, "name")
}
