package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/qlquery/qlquery/match"
)

type parser struct {
	name    string // used only for error reports.
	input   *lexer // the input lexer
	err     error  // error stored while parsing
	star    []string
	plugins match.PluginSource
	clock   func() time.Time
}

func parse(input *lexer, o *options) (match.Node, error) {
	p := &parser{
		name:    input.name,
		input:   input,
		star:    o.star,
		plugins: o.plugins,
		clock:   o.clock,
	}
	query := p.parse()
	if p.err != nil {
		return nil, p.err
	}
	return query, nil
}

// Entry into parser
func (p *parser) parse() match.Node {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*match.ParseError); ok {
				p.err = perr
				return
			}
			p.err = &match.ParseError{Kind: match.KindSyntax, Message: fmt.Sprintf("parsing failed: %s", r), Pos: -1}
		}
	}()

	q := p.Query(true)
	p.input.space()
	if !p.input.eof() {
		p.input.errorf("Query ended before end of input")
	}
	return q
}

// fail aborts parsing with err, which is attributed to current position
func (p *parser) fail(err error) {
	var perr *match.ParseError
	if !errors.As(err, &perr) {
		perr = &match.ParseError{Kind: match.KindSyntax, Message: err.Error(), Pos: -1, Err: err}
	}
	if perr.Pos < 0 {
		located := *perr
		located.Pos = p.input.index()
		perr = &located
	}
	panic(perr)
}

// try runs rule, returning parse error instead of aborting
func (p *parser) try(rule func() match.Node) (node match.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*match.ParseError)
			if !ok {
				panic(r)
			}
			err = perr
		}
	}()

	return rule(), nil
}

// list matches comma separated list of rules
func list[T any](p *parser, rule func() T) []T {
	result := []T{rule()}
	for p.input.accept(",") {
		result = append(result, rule())
	}
	return result
}

// Query := '' | '!' Query | '&(' Query {',' Query} ')' | '|(' Query {',' Query} ')'
//
//	| '#(' Numcmp {',' Numcmp} ')' | '@' Extension | Equals | NotEquals | Star
func (p *parser) Query(outer bool) match.Node {
	p.input.space()
	if p.input.eof() {
		return match.Everything
	}

	subquery := func() match.Node { return p.Query(false) }

	switch {
	case p.input.accept("!"):
		return match.Not(p.Query(false))
	case p.input.accept("&"):
		return match.NewInter(p.group(subquery)...)
	case p.input.accept("|"):
		return match.NewUnion(p.group(subquery)...)
	case p.input.accept("#"):
		return match.NewInter(p.group(p.Numcmp)...)
	case p.input.accept("@"):
		return p.Extension()
	}

	// Equals, NotEquals and Star start the same way
	start := p.input.pos
	if node, err := p.try(p.Equals); err == nil {
		return node
	}
	p.input.pos = start
	if node, err := p.try(p.NotEquals); err == nil {
		return node
	}
	p.input.pos = start
	return p.Star(outer)
}

// group := '(' rule {',' rule} ')'
func (p *parser) group(rule func() match.Node) []match.Node {
	p.input.expect("(")
	nodes := list(p, rule)
	p.input.expect(")")
	return nodes
}

// Numcmp := Numexpr RelOp Numexpr {RelOp Numexpr}
func (p *parser) Numcmp() match.Node {
	var cmps []match.Node

	expr2 := p.Numexpr(true)
	for {
		relop, ok := p.input.acceptRE(reRelational)
		if !ok {
			break
		}
		expr := expr2
		expr2 = p.Numexpr(true)

		cmp, err := match.NewNumcmp(expr, relop, expr2, p.clock)
		if err != nil {
			p.fail(err)
		}
		cmps = append(cmps, cmp)
	}

	if len(cmps) == 0 {
		p.input.errorf("No relational operator in numerical comparison")
	}
	if len(cmps) > 1 {
		return match.NewInter(cmps...)
	}
	return cmps[0]
}

// Numexpr := Operand {BinOp Operand}, grouped by operator precedence
func (p *parser) Numexpr(allowDate bool) match.Numexpr {
	return p.binary(p.Operand(allowDate), 1)
}

// peekBinary returns next binary operator without consuming it
func (p *parser) peekBinary() (string, int) {
	start := p.input.pos
	op, ok := p.input.acceptRE(reBinary)
	p.input.pos = start
	if !ok {
		return "", 0
	}
	return op, match.BinaryPrecedence(op)
}

// binary is precedence climbing over left-associative operators
func (p *parser) binary(left match.Numexpr, minPrec int) match.Numexpr {
	for {
		op, prec := p.peekBinary()
		if prec == 0 || prec < minPrec {
			return left
		}
		p.input.expectRE(reBinary)

		right := p.Operand(false)
		for {
			_, next := p.peekBinary()
			if next <= prec {
				break
			}
			right = p.binary(right, prec+1)
		}

		expr, err := match.NewNumexprBinary(op, left, right)
		if err != nil {
			p.fail(err)
		}
		left = expr
	}
}

// Operand := '(' Numexpr ')' | '-' Operand | Date | Number [':' Number] [Unit] | TagOrSpecial
func (p *parser) Operand(allowDate bool) match.Numexpr {
	if p.input.accept("(") {
		expr := &match.NumexprGroup{Expr: p.Numexpr(true)}
		p.input.expect(")")
		return expr
	}

	if op, ok := p.input.acceptRE(reUnary); ok {
		expr, err := match.NewNumexprUnary(op, p.Operand(false))
		if err != nil {
			p.fail(err)
		}
		return expr
	}

	if allowDate {
		if literal, ok := p.input.acceptDate(); ok {
			expr, err := match.NewNumexprNumberOrDate(literal)
			if err == nil {
				return expr
			}
			// not a valid date, so it is a number
			p.input.pos -= len(literal)
			return p.Operand(false)
		}
	}

	if digits, ok := p.input.acceptRE(reDigits); ok {
		number, _ := strconv.ParseFloat(digits, 64)

		if p.input.accept(":") {
			// time like 4:15
			seconds, _ := strconv.ParseFloat(p.input.expectRE(reDigits), 64)
			return &match.NumexprNumber{Value: 60*number + seconds, Unit: match.Seconds}
		}

		if word, ok := p.input.acceptRE(reWord); ok {
			value, unit, err := match.ParseUnit(number, word)
			if err != nil {
				p.fail(err)
			}
			return &match.NumexprNumber{Value: value, Unit: unit}
		}

		return &match.NumexprNumber{Value: number}
	}

	return match.NumexprTagOrSpecial(strings.TrimSpace(p.input.expectRE(reTag)))
}

// Extension := '(' Word [':' Body] ')'
func (p *parser) Extension() match.Node {
	p.input.expect("(")
	name := strings.TrimSpace(p.input.expectRE(reWord))

	var body *string
	if p.input.accept(":") {
		raw := p.input.extBody()
		body = &raw
	}
	p.input.expect(")")

	ext, err := match.NewExtension(name, body, p.plugins)
	if err != nil {
		p.fail(err)
	}
	return ext
}

func (p *parser) tags() []string {
	return list(p, func() string {
		return strings.TrimSpace(p.input.expectRE(reTag))
	})
}

func (p *parser) tag(names []string, value match.Value) match.Node {
	tag, err := match.NewTag(names, value)
	if err != nil {
		p.fail(err)
	}
	return tag
}

// Equals := Tag {',' Tag} '=' Value
func (p *parser) Equals() match.Node {
	names := p.tags()
	p.input.expect("=")
	return p.tag(names, p.Value(false))
}

// NotEquals := Tag {',' Tag} '!=' Value
func (p *parser) NotEquals() match.Node {
	names := p.tags()
	p.input.expect("!")
	p.input.expect("=")
	return match.Not(p.tag(names, p.Value(false)))
}

// Star := Value, matched against default tags
func (p *parser) Star(outer bool) match.Node {
	return p.tag(p.star, p.Value(outer))
}

// Value := '/' Regexp '/' Mods | '"' String '"' Mods | "'" String "'" Mods
//
//	| '!' Value | '|(' Value {',' Value} ')' | '&(' Value {',' Value} ')' | Text
func (p *parser) Value(outer bool) match.Value {
	subvalue := func() match.Value { return p.Value(false) }

	switch {
	case p.input.accept("/"):
		pattern := p.input.expectRE(reRegexp)
		p.input.expect("/")
		return p.regex(pattern)
	case p.input.accept(`"`):
		s := p.input.expectRE(reDouble)
		p.input.expect(`"`)
		return p.regex(exactRegex(s))
	case p.input.accept("'"):
		s := p.input.expectRE(reSingle)
		p.input.expect("'")
		return p.regex(exactRegex(s))
	case p.input.accept("!"):
		return match.NegateValue(p.Value(false))
	case p.input.accept("|"):
		p.input.expect("(")
		values := list(p, subvalue)
		p.input.expect(")")
		return &match.ValueUnion{Values: values}
	case p.input.accept("&"):
		p.input.expect("(")
		values := list(p, subvalue)
		p.input.expect(")")
		return &match.ValueInter{Values: values}
	}

	if outer {
		p.input.errorf("Free text not allowed at top level of query")
	}

	text := p.input.expectRE(reText)
	return p.compile(match.QuoteRegex(text), "d")
}

// regex compiles pattern with modifiers which follow it
func (p *parser) regex(pattern string) match.Value {
	return p.compile(pattern, p.input.expectRE(reModifiers))
}

func (p *parser) compile(pattern, mods string) match.Value {
	re, err := match.NewRegex(pattern, mods)
	if err != nil {
		p.fail(err)
	}
	return re
}

// exactRegex converts quoted string to anchored regular expression
func exactRegex(s string) string {
	return "^" + match.QuoteRegex(unescape(s)) + "$"
}
