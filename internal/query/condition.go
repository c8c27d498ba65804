// Package query describes single-attribute conditions, paged query parameters
// and result pages shared by every repository backend.
package query

import (
	"errors"
	"fmt"
)

// ErrInvalidCondition is returned when a condition is malformed.
var ErrInvalidCondition = errors.New("invalid query condition")

// Operator is a comparison applied to one indexed attribute.
type Operator string

const (
	OpEqual          Operator = "="
	OpLessThan       Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreaterThan    Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpBetween        Operator = "BETWEEN"
	OpBeginsWith     Operator = "BEGINS_WITH"
)

// Condition restricts a query to items whose attribute satisfies the operator.
type Condition struct {
	Attribute string
	Operator  Operator
	Values    []any
}

// Builder starts a condition on a named attribute.
type Builder struct {
	attribute string
}

// Attribute returns a builder for conditions on name.
func Attribute(name string) Builder {
	return Builder{attribute: name}
}

func (b Builder) EqualTo(v any) Condition {
	return b.build(OpEqual, v)
}

func (b Builder) LessThan(v any) Condition {
	return b.build(OpLessThan, v)
}

func (b Builder) LessOrEqual(v any) Condition {
	return b.build(OpLessOrEqual, v)
}

func (b Builder) GreaterThan(v any) Condition {
	return b.build(OpGreaterThan, v)
}

func (b Builder) GreaterOrEqual(v any) Condition {
	return b.build(OpGreaterOrEqual, v)
}

// Between matches values in the inclusive range [lo, hi].
func (b Builder) Between(lo, hi any) Condition {
	return b.build(OpBetween, lo, hi)
}

// BeginsWith matches string values with the given prefix.
func (b Builder) BeginsWith(prefix string) Condition {
	return b.build(OpBeginsWith, prefix)
}

func (b Builder) build(op Operator, values ...any) Condition {
	return Condition{Attribute: b.attribute, Operator: op, Values: values}
}

// Validate checks the attribute name and the operand count of the operator.
func (c Condition) Validate() error {
	if c.Attribute == "" {
		return fmt.Errorf("%w: empty attribute", ErrInvalidCondition)
	}

	want := 1
	switch c.Operator {
	case OpEqual, OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
	case OpBetween:
		want = 2
	case OpBeginsWith:
		if len(c.Values) == 1 {
			if _, ok := c.Values[0].(string); !ok {
				return fmt.Errorf("%w: %s prefix must be a string", ErrInvalidCondition, c.Attribute)
			}
		}
	default:
		return fmt.Errorf("%w: unknown operator %q", ErrInvalidCondition, c.Operator)
	}

	if len(c.Values) != want {
		return fmt.Errorf("%w: %s %s expects %d operand(s), got %d",
			ErrInvalidCondition, c.Attribute, c.Operator, want, len(c.Values))
	}
	for _, v := range c.Values {
		if v == nil {
			return fmt.Errorf("%w: nil operand for %s", ErrInvalidCondition, c.Attribute)
		}
	}

	return nil
}
