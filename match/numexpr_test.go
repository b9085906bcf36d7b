package match

import (
	"math"
	"time"

	"gopkg.in/check.v1"
)

type NumexprSuite struct {
	rec   fakeRecord
	now   time.Time
	clock func() time.Time
}

var _ = check.Suite(&NumexprSuite{})

func (s *NumexprSuite) SetUpTest(c *check.C) {
	s.now = time.Date(2020, 6, 1, 12, 0, 0, 0, time.Local)
	s.clock = func() time.Time { return s.now }
	s.rec = fakeRecord{
		tags: map[string]string{"date": "2007-05-24"},
		numbers: map[string]float64{
			"~#length":    224,
			"~#playcount": 24,
			"~#skipcount": 13,
			"~#rating":    0.771,
			"~#added":     float64(s.now.Unix() - 3*day),
		},
	}
}

func (s *NumexprSuite) cmp(c *check.C, left Numexpr, op string, right Numexpr) bool {
	numcmp, err := NewNumcmp(left, op, right, s.clock)
	c.Assert(err, check.IsNil)
	return numcmp.Search(s.rec)
}

func num(v float64) *NumexprNumber {
	return &NumexprNumber{Value: v}
}

func (s *NumexprSuite) TestTag(c *check.C) {
	v, ok := NewNumexprTag("length").Evaluate(s.rec, 0, false)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 224.0)

	v, ok = NewNumexprTag("rating").Evaluate(s.rec, 0, false)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0.77)

	_, ok = NewNumexprTag("notatag").Evaluate(s.rec, 0, false)
	c.Check(ok, check.Equals, false)

	now := float64(s.now.Unix())
	v, ok = NewNumexprTag("added").Evaluate(s.rec, now, false)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, float64(3*day))

	tag := NewNumexprTag("added:max")
	c.Check(tag.base, check.Equals, "~#added")
	c.Check(tag.ftag, check.Equals, "~#added:max")

	date, err := ParseDate("2007-05-24")
	c.Assert(err, check.IsNil)
	v, ok = NewNumexprTag("date").Evaluate(s.rec, now, true)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, date)
	c.Check(NewNumexprTag("date").UseDate(), check.Equals, true)
	c.Check(NewNumexprTag("length").UseDate(), check.Equals, false)

	_, ok = NewNumexprTag("date").Evaluate(fakeRecord{tags: map[string]string{"date": "May 2007"}}, now, true)
	c.Check(ok, check.Equals, false)
}

func (s *NumexprSuite) TestSpecial(c *check.C) {
	_, ok := NumexprTagOrSpecial("now").(*NumexprNow)
	c.Check(ok, check.Equals, true)
	c.Check(NumexprTagOrSpecial("today").(*NumexprNow).Offset, check.Equals, float64(day))
	c.Check(NumexprTagOrSpecial("length").(*NumexprTag).Tag, check.Equals, "length")

	v, _ := NumexprTagOrSpecial("today").Evaluate(s.rec, 100000, false)
	c.Check(v, check.Equals, float64(100000-day))
}

func (s *NumexprSuite) TestBinary(c *check.C) {
	for _, t := range []struct {
		op       string
		a, b     float64
		expected float64
	}{
		{"+", 2, 3, 5},
		{"-", 2, 3, -1},
		{"*", 2, 3, 6},
		{"/", 7, 2, 3},
		{"/", -7, 2, -4},
		{"/", 224, 5, 44},
	} {
		expr, err := NewNumexprBinary(t.op, num(t.a), num(t.b))
		c.Assert(err, check.IsNil)
		v, ok := expr.Evaluate(s.rec, 0, false)
		c.Check(ok, check.Equals, true)
		c.Check(v, check.Equals, t.expected, check.Commentf("%g %s %g", t.a, t.op, t.b))
	}

	expr, _ := NewNumexprBinary("/", num(24), num(0))
	v, _ := expr.Evaluate(s.rec, 0, false)
	c.Check(math.IsInf(v, 1), check.Equals, true)

	expr, _ = NewNumexprBinary("/", num(0), num(0))
	v, _ = expr.Evaluate(s.rec, 0, false)
	c.Check(math.IsNaN(v), check.Equals, true)

	_, err := NewNumexprBinary("%", num(1), num(2))
	c.Check(err, check.NotNil)

	expr, _ = NewNumexprBinary("+", NewNumexprTag("notatag"), num(1))
	_, ok := expr.Evaluate(s.rec, 0, false)
	c.Check(ok, check.Equals, false)

	c.Check(BinaryPrecedence("*"), check.Equals, 2)
	c.Check(BinaryPrecedence("-"), check.Equals, 1)
	c.Check(BinaryPrecedence("<"), check.Equals, 0)
}

func (s *NumexprSuite) TestUnaryGroup(c *check.C) {
	neg, err := NewNumexprUnary("-", num(4))
	c.Assert(err, check.IsNil)
	v, _ := neg.Evaluate(s.rec, 0, false)
	c.Check(v, check.Equals, -4.0)

	_, err = NewNumexprUnary("+", num(4))
	c.Check(err, check.NotNil)

	group := &NumexprGroup{Expr: NewNumexprTag("date")}
	c.Check(group.UseDate(), check.Equals, true)
	neg, _ = NewNumexprUnary("-", group)
	c.Check(neg.UseDate(), check.Equals, true)
}

func (s *NumexprSuite) TestNumberOrDate(c *check.C) {
	expr, err := NewNumexprNumberOrDate("2005-07-19")
	c.Assert(err, check.IsNil)
	c.Check(expr.Number, check.Equals, float64(2005-7-19))

	date, _ := ParseDate("2005-07-19")
	v, _ := expr.Evaluate(s.rec, 0, true)
	c.Check(v, check.Equals, date)
	v, _ = expr.Evaluate(s.rec, 0, false)
	c.Check(v, check.Equals, 1979.0)

	expr, err = NewNumexprNumberOrDate("2010")
	c.Assert(err, check.IsNil)
	c.Check(expr.Number, check.Equals, 2010.0)

	_, err = NewNumexprNumberOrDate("0000")
	c.Check(err, check.NotNil)
	_, err = NewNumexprNumberOrDate("2010-13")
	c.Check(err, check.NotNil)
}

func (s *NumexprSuite) TestNumcmp(c *check.C) {
	c.Check(s.cmp(c, NewNumexprTag("length"), "=", num(224)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("length"), "==", num(224)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("length"), "!=", num(224)), check.Equals, false)
	c.Check(s.cmp(c, NewNumexprTag("length"), "<", num(240)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("length"), "<=", num(224)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("length"), ">", num(240)), check.Equals, false)
	c.Check(s.cmp(c, NewNumexprTag("length"), ">=", num(224)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("playcount"), ">", NewNumexprTag("skipcount")), check.Equals, true)

	// missing values never match
	c.Check(s.cmp(c, NewNumexprTag("notatag"), "=", num(0)), check.Equals, false)
	c.Check(s.cmp(c, NewNumexprTag("notatag"), "!=", num(0)), check.Equals, false)

	// either side switches to dates
	lit, _ := NewNumexprNumberOrDate("2005-07-19")
	c.Check(s.cmp(c, NewNumexprTag("date"), ">", lit), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("length"), "<", lit), check.Equals, true)

	// added three days ago
	c.Check(s.cmp(c, NewNumexprTag("added"), "<", num(7*day)), check.Equals, true)
	c.Check(s.cmp(c, NewNumexprTag("added"), "<", num(day)), check.Equals, false)

	nan, _ := NewNumexprBinary("/", num(0), num(0))
	c.Check(s.cmp(c, nan, "=", nan), check.Equals, false)

	_, err := NewNumcmp(num(1), "=>", num(2), nil)
	c.Check(err, check.NotNil)

	numcmp, _ := NewNumcmp(NewNumexprTag("length"), ">", num(1), nil)
	c.Check(numcmp.String(), check.Equals, "<Numcmp <NumexprTag tag=length> > <NumexprNumber value=1.00>>")
	c.Check(numcmp.Search(s.rec), check.Equals, true)
}

type UnitsSuite struct{}

var _ = check.Suite(&UnitsSuite{})

func (s *UnitsSuite) TestParseUnit(c *check.C) {
	for _, t := range []struct {
		value    float64
		unit     string
		expected float64
		kind     Unit
	}{
		{3, "seconds", 3, Seconds},
		{3, "minutes", 180, Seconds},
		{1, "minute ", 60, Seconds},
		{2, "hours", 7200, Seconds},
		{7, "days ago", 7 * 86400, Seconds},
		{1, "week", 7 * 86400, Seconds},
		{1, "month", 30 * 86400, Seconds},
		{1, "years", 365 * 86400, Seconds},
		{5, "M", 5 * 1024 * 1024, Bytes},
		{5, "mb", 5 * 1024 * 1024, Bytes},
		{3, "GB", 3 * 1024 * 1024 * 1024, Bytes},
		{2, "kB", 2048, Bytes},
		{100, "bytes", 100, Bytes},
		{4, "", 4, NoUnit},
	} {
		v, unit, err := ParseUnit(t.value, t.unit)
		c.Assert(err, check.IsNil)
		c.Check(v, check.Equals, t.expected, check.Commentf("%g %s", t.value, t.unit))
		c.Check(unit, check.Equals, t.kind)
	}

	_, _, err := ParseUnit(3, "parsecs")
	c.Check(err, check.ErrorMatches, "No such unit: \"parsecs\"")
	c.Check(err.(*ParseError).Kind, check.Equals, KindNumeric)
}

func (s *UnitsSuite) TestParseDate(c *check.C) {
	for _, t := range []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2007", 2007, 1, 1},
		{"2007-05", 2007, 5, 1},
		{"2007-05-24", 2007, 5, 24},
		{"2007-5-4", 2007, 5, 4},
		{"2012-02-29", 2012, 2, 29},
	} {
		v, err := ParseDate(t.input)
		c.Assert(err, check.IsNil)
		c.Check(v, check.Equals, float64(time.Date(t.year, t.month, t.day, 0, 0, 0, 0, time.Local).Unix()))
	}

	for _, input := range []string{"", "0000", "2007-", "2007-13", "2007-02-30", "2011-02-29", "2007-05-24-1", "May", "2007-05-24x", "+2007", "20071"} {
		_, err := ParseDate(input)
		c.Check(err, check.NotNil, check.Commentf("%q", input))
	}
}
