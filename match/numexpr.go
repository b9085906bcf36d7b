package match

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numexpr is numeric expression inside numeric comparison
type Numexpr interface {
	// Evaluate calculates value of expression for the record at time now,
	// useDate selects date interpretation of ambiguous literals;
	// false is returned when value is not available
	Evaluate(rec Record, now float64, useDate bool) (float64, bool)
	// UseDate is true when comparison should be done with dates
	UseDate() bool
	// String interface
	String() string
}

// NumexprTag is value of numeric tag
type NumexprTag struct {
	Tag string

	ftag string
	base string
}

// NumexprNumber is number literal
type NumexprNumber struct {
	Value float64
	Unit  Unit
}

// NumexprNow is current time minus offset
type NumexprNow struct {
	Offset float64
}

// NumexprUnary is unary minus
type NumexprUnary struct {
	Op   string
	Expr Numexpr
}

// NumexprBinary is arithmetic operation
type NumexprBinary struct {
	Op          string
	Left, Right Numexpr
}

// NumexprGroup is expression in parentheses
type NumexprGroup struct {
	Expr Numexpr
}

// NumexprNumberOrDate is literal like 2015-09-25 which is either a date
// or a number (2015 - 9 - 25), depending on the other side of comparison
type NumexprNumberOrDate struct {
	Literal string
	Number  float64
	Date    float64
}

// NewNumexprTag creates reference to numeric tag, aggregate suffixes
// (like :min) are accepted
func NewNumexprTag(tag string) *NumexprTag {
	ftag := "~#" + tag
	return &NumexprTag{
		Tag:  tag,
		ftag: ftag,
		base: strings.SplitN(ftag, ":", 2)[0],
	}
}

// NumexprTagOrSpecial handles "now" and "today", all other names are tags
func NumexprTagOrSpecial(name string) Numexpr {
	switch name {
	case "now":
		return &NumexprNow{}
	case "today":
		return &NumexprNow{Offset: day}
	}
	return NewNumexprTag(name)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Evaluate looks up the tag, "date" is parsed as date
func (e *NumexprTag) Evaluate(rec Record, now float64, _ bool) (float64, bool) {
	var (
		num float64
		ok  bool
	)

	if e.Tag == "date" {
		var date string
		date, ok = rec.Get("date")
		if !ok || date == "" {
			return 0, false
		}
		var err error
		num, err = ParseDate(date)
		if err != nil {
			return 0, false
		}
	} else {
		num, ok = rec.Numeric(e.ftag)
		if !ok {
			return 0, false
		}
	}

	if IsTimeTag(e.base) {
		num = now - num
	}

	return round2(num), true
}

// UseDate is true for "date" tag
func (e *NumexprTag) UseDate() bool {
	return e.Tag == "date"
}

func (e *NumexprTag) String() string {
	return fmt.Sprintf("<NumexprTag tag=%s>", e.Tag)
}

// Evaluate returns the number
func (e *NumexprNumber) Evaluate(Record, float64, bool) (float64, bool) {
	return e.Value, true
}

// UseDate is false
func (e *NumexprNumber) UseDate() bool {
	return false
}

func (e *NumexprNumber) String() string {
	if e.Unit != NoUnit {
		return fmt.Sprintf("<NumexprNumber value=%.2f unit=%s>", e.Value, e.Unit)
	}
	return fmt.Sprintf("<NumexprNumber value=%.2f>", e.Value)
}

// Evaluate returns now shifted by offset
func (e *NumexprNow) Evaluate(_ Record, now float64, _ bool) (float64, bool) {
	return now - e.Offset, true
}

// UseDate is false
func (e *NumexprNow) UseDate() bool {
	return false
}

func (e *NumexprNow) String() string {
	return fmt.Sprintf("<NumexprNow offset=%g>", e.Offset)
}

// NewNumexprUnary creates unary operation, only "-" is supported
func NewNumexprUnary(op string, expr Numexpr) (*NumexprUnary, error) {
	if op != "-" {
		return nil, &ParseError{Kind: KindNumeric, Message: fmt.Sprintf("unknown unary operator %q", op), Pos: -1}
	}
	return &NumexprUnary{Op: op, Expr: expr}, nil
}

// Evaluate negates the value
func (e *NumexprUnary) Evaluate(rec Record, now float64, useDate bool) (float64, bool) {
	val, ok := e.Expr.Evaluate(rec, now, useDate)
	if !ok {
		return 0, false
	}
	return -val, true
}

// UseDate depends on the operand
func (e *NumexprUnary) UseDate() bool {
	return e.Expr.UseDate()
}

func (e *NumexprUnary) String() string {
	return fmt.Sprintf("<NumexprUnary op=%s expr=%s>", e.Op, e.Expr)
}

// BinaryPrecedence returns precedence of binary operator, 0 if op
// is not a binary operator
func BinaryPrecedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	}
	return 0
}

// NewNumexprBinary creates binary operation node, "/" is floor division
func NewNumexprBinary(op string, left, right Numexpr) (*NumexprBinary, error) {
	if BinaryPrecedence(op) == 0 {
		return nil, &ParseError{Kind: KindNumeric, Message: fmt.Sprintf("unknown binary operator %q", op), Pos: -1}
	}
	return &NumexprBinary{Op: op, Left: left, Right: right}, nil
}

// Evaluate applies the operation, division by zero gives infinity
func (e *NumexprBinary) Evaluate(rec Record, now float64, useDate bool) (float64, bool) {
	val, ok := e.Left.Evaluate(rec, now, useDate)
	if !ok {
		return 0, false
	}
	val2, ok := e.Right.Evaluate(rec, now, useDate)
	if !ok {
		return 0, false
	}

	switch e.Op {
	case "+":
		return val + val2, true
	case "-":
		return val - val2, true
	case "*":
		return val * val2, true
	case "/":
		if val2 == 0 {
			return val * math.Inf(1), true
		}
		return math.Floor(val / val2), true
	}
	panic("unknown operator " + e.Op)
}

// UseDate if any of the operands requires it
func (e *NumexprBinary) UseDate() bool {
	return e.Left.UseDate() || e.Right.UseDate()
}

func (e *NumexprBinary) String() string {
	return fmt.Sprintf("<NumexprBinary op=%s left=%s right=%s>", e.Op, e.Left, e.Right)
}

// Evaluate returns value of inner expression
func (e *NumexprGroup) Evaluate(rec Record, now float64, useDate bool) (float64, bool) {
	return e.Expr.Evaluate(rec, now, useDate)
}

// UseDate depends on inner expression
func (e *NumexprGroup) UseDate() bool {
	return e.Expr.UseDate()
}

func (e *NumexprGroup) String() string {
	return fmt.Sprintf("<NumexprGroup expr=%s>", e.Expr)
}

// NewNumexprNumberOrDate parses literal, which should be valid date
func NewNumexprNumberOrDate(literal string) (*NumexprNumberOrDate, error) {
	date, err := ParseDate(literal)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(literal, "-")
	number, _ := strconv.Atoi(parts[0])
	for _, part := range parts[1:] {
		n, _ := strconv.Atoi(part)
		number -= n
	}

	return &NumexprNumberOrDate{Literal: literal, Number: float64(number), Date: date}, nil
}

// Evaluate returns either date or number
func (e *NumexprNumberOrDate) Evaluate(_ Record, _ float64, useDate bool) (float64, bool) {
	if useDate {
		return e.Date, true
	}
	return e.Number, true
}

// UseDate is decided by the other side
func (e *NumexprNumberOrDate) UseDate() bool {
	return false
}

func (e *NumexprNumberOrDate) String() string {
	return fmt.Sprintf("<NumexprNumberOrDate number=%g date=%g>", e.Number, e.Date)
}
