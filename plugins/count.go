package plugins

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qlquery/qlquery/match"
)

var reCount = regexp.MustCompile(`^([~\pL\pN_:]+)\s*(<=|>=|==|!=|<|>|=)\s*(\d+)$`)

// Count compares number of values of multi-valued tag:
//
//	@(count: artist > 1)
type Count struct{}

type countBody struct {
	tag   string
	op    string
	count int
}

// ParseBody parses "tag op number"
func (*Count) ParseBody(body *string) (interface{}, error) {
	text, err := bodyText("count", body)
	if err != nil {
		return nil, err
	}

	m := reCount.FindStringSubmatch(text)
	if m == nil {
		return nil, match.NewPluginError("count", "can't parse %q, expected <tag> <op> <number>", text)
	}

	count, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, match.NewPluginError("count", "bad number %q", m[3])
	}

	return &countBody{tag: strings.ToLower(m[1]), op: m[2], count: count}, nil
}

// Search counts values of the tag
func (*Count) Search(rec match.Record, body interface{}) bool {
	b := body.(*countBody)
	n := len(rec.List(b.tag))

	switch b.op {
	case "<":
		return n < b.count
	case "<=":
		return n <= b.count
	case ">":
		return n > b.count
	case ">=":
		return n >= b.count
	case "!=":
		return n != b.count
	}
	return n == b.count
}
