package plugins

import (
	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/query"
)

// Conditional picks one of two queries depending on the condition:
//
//	@(if: genre = jazz, #(length > 5 minutes), #(length > 3 minutes))
//
// Else branch is optional, records not matching condition don't
// match if it is missing.
type Conditional struct {
	opts []query.Option
}

type conditionalBody struct {
	cond, then, otherwise match.Node
}

// ParseBody splits body into two or three strict queries
func (p *Conditional) ParseBody(body *string) (interface{}, error) {
	text, err := bodyText("if", body)
	if err != nil {
		return nil, err
	}

	commas := topLevelCommas(text)

	for i := range commas {
		cond, err := query.Parse(text[:commas[i]], p.opts...)
		if err != nil {
			continue
		}

		// then, else
		for j := i + 1; j < len(commas); j++ {
			then, err := query.Parse(text[commas[i]+1:commas[j]], p.opts...)
			if err != nil {
				continue
			}
			otherwise, err := query.Parse(text[commas[j]+1:], p.opts...)
			if err != nil {
				continue
			}
			return &conditionalBody{cond: cond, then: then, otherwise: otherwise}, nil
		}

		// then only
		then, err := query.Parse(text[commas[i]+1:], p.opts...)
		if err == nil {
			return &conditionalBody{cond: cond, then: then, otherwise: match.Nothing}, nil
		}
	}

	return nil, match.NewPluginError("if", "can't split %q into condition, then and else queries", text)
}

// Search evaluates condition and then one of the branches
func (p *Conditional) Search(rec match.Record, body interface{}) bool {
	b := body.(*conditionalBody)
	if b.cond.Search(rec) {
		return b.then.Search(rec)
	}
	return b.otherwise.Search(rec)
}

// topLevelCommas returns positions of commas which are not nested
// in parentheses or quotes, candidates for splitting
func topLevelCommas(s string) []int {
	var (
		result []int
		depth  int
		quote  byte
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			result = append(result, i)
		}
	}

	return result
}
