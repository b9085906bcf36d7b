package match

import (
	"strings"

	"gopkg.in/check.v1"
)

type diePlugin struct{}

func (diePlugin) ParseBody(body *string) (interface{}, error) {
	if body != nil && strings.TrimSpace(*body) == "" {
		return nil, NewPluginError("name", "empty body")
	}
	return body, nil
}

func (diePlugin) Search(_ Record, body interface{}) bool {
	b := body.(*string)
	return b != nil && !strings.Contains(strings.ToUpper(*b), "DIE")
}

type pluginMap map[string]Plugin

func (m pluginMap) Plugin(name string) (Plugin, bool) {
	p, ok := m[name]
	return p, ok
}

type ExtensionSuite struct {
	plugins pluginMap
}

var _ = check.Suite(&ExtensionSuite{})

func (s *ExtensionSuite) SetUpTest(c *check.C) {
	s.plugins = pluginMap{"name": diePlugin{}}
}

func (s *ExtensionSuite) TestSearch(c *check.C) {
	live, die := "LIVE", "DIE"
	rec := fakeRecord{}

	ext, err := NewExtension("name", &live, s.plugins)
	c.Assert(err, check.IsNil)
	c.Check(ext.Valid(), check.Equals, true)
	c.Check(ext.Search(rec), check.Equals, true)
	c.Check(ext.String(), check.Equals, "<Extension name=name valid=true body=\"LIVE\">")

	ext, err = NewExtension("name", &die, s.plugins)
	c.Assert(err, check.IsNil)
	c.Check(ext.Search(rec), check.Equals, false)

	ext, err = NewExtension("name", nil, s.plugins)
	c.Assert(err, check.IsNil)
	c.Check(ext.Search(rec), check.Equals, false)
	c.Check(ext.String(), check.Equals, "<Extension name=name valid=true body=<nil>>")
}

func (s *ExtensionSuite) TestInvalid(c *check.C) {
	empty := "  "

	ext, err := NewExtension("other", nil, s.plugins)
	c.Check(err, check.ErrorMatches, "no query plugin \"other\"")
	c.Check(ext.Valid(), check.Equals, false)
	c.Check(ext.Search(fakeRecord{}), check.Equals, false)

	ext, err = NewExtension("name", &empty, s.plugins)
	c.Check(err, check.ErrorMatches, "plugin \"name\" rejected body: name: empty body")
	c.Check(err.(*ParseError).Kind, check.Equals, KindPlugin)
	c.Check(ext.Valid(), check.Equals, false)

	_, err = NewExtension("name", nil, nil)
	c.Check(IsParseError(err), check.Equals, true)

	// invalid extension makes combinations invalid
	c.Check(NewInter(Everything, NewUnion(ext)).Valid(), check.Equals, false)
	c.Check(Not(ext).Valid(), check.Equals, false)
}

func (s *ExtensionSuite) TestCombination(c *check.C) {
	body := "x"
	ext, _ := NewExtension("name", &body, s.plugins)
	tag := &Tag{Value: &ValueUnion{}}

	_, ok := Or(ext, NewUnion(tag)).(*Union)
	c.Check(ok, check.Equals, true)
	_, ok = And(ext, NewInter(tag)).(*Inter)
	c.Check(ok, check.Equals, true)
	c.Check(And(ext, Everything), check.Equals, Node(ext))
	c.Check(Or(ext, Everything), check.Equals, Node(Everything))
}
