package match

import (
	"fmt"
	"time"
)

var relations = map[string]func(a, b float64) bool{
	"<":  func(a, b float64) bool { return a < b },
	"<=": func(a, b float64) bool { return a <= b },
	">":  func(a, b float64) bool { return a > b },
	">=": func(a, b float64) bool { return a >= b },
	"=":  func(a, b float64) bool { return a == b },
	"==": func(a, b float64) bool { return a == b },
	"!=": func(a, b float64) bool { return a != b },
}

// Numcmp is numeric comparison of two expressions
type Numcmp struct {
	Left  Numexpr
	Op    string
	Right Numexpr

	relation func(a, b float64) bool
	clock    func() time.Time
}

// NewNumcmp creates comparison, clock provides current time (time.Now if nil)
func NewNumcmp(left Numexpr, op string, right Numexpr, clock func() time.Time) (*Numcmp, error) {
	relation, ok := relations[op]
	if !ok {
		return nil, &ParseError{Kind: KindNumeric, Message: fmt.Sprintf("unknown relational operator %q", op), Pos: -1}
	}

	if clock == nil {
		clock = time.Now
	}

	return &Numcmp{Left: left, Op: op, Right: right, relation: relation, clock: clock}, nil
}

// Search evaluates both sides, missing values never match
func (c *Numcmp) Search(rec Record) bool {
	now := float64(c.clock().UnixNano()) / float64(time.Second)
	useDate := c.Left.UseDate() || c.Right.UseDate()

	val, ok := c.Left.Evaluate(rec, now, useDate)
	if !ok {
		return false
	}
	val2, ok := c.Right.Evaluate(rec, now, useDate)
	if !ok {
		return false
	}

	return c.relation(val, val2)
}

// Valid is always true
func (c *Numcmp) Valid() bool {
	return true
}

func (c *Numcmp) String() string {
	return fmt.Sprintf("<Numcmp %s %s %s>", c.Left, c.Op, c.Right)
}
