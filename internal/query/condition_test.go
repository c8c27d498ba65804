package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	tests := []struct {
		name string
		got  Condition
		want Condition
	}{
		{
			name: "equal",
			got:  Attribute("ownerId").EqualTo("a@b.c"),
			want: Condition{Attribute: "ownerId", Operator: OpEqual, Values: []any{"a@b.c"}},
		},
		{
			name: "between",
			got:  Attribute("lastUpdate").Between(1, 5),
			want: Condition{Attribute: "lastUpdate", Operator: OpBetween, Values: []any{1, 5}},
		},
		{
			name: "begins with",
			got:  Attribute("deviceId").BeginsWith("cam-"),
			want: Condition{Attribute: "deviceId", Operator: OpBeginsWith, Values: []any{"cam-"}},
		},
		{
			name: "greater or equal",
			got:  Attribute("deviceId").GreaterOrEqual("m"),
			want: Condition{Attribute: "deviceId", Operator: OpGreaterOrEqual, Values: []any{"m"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			assert.NoError(t, tt.got.Validate())
		})
	}
}

func TestCondition_Validate(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
	}{
		{name: "empty attribute", cond: Attribute("").EqualTo("x")},
		{name: "unknown operator", cond: Condition{Attribute: "a", Operator: "LIKE", Values: []any{"x"}}},
		{name: "between with one operand", cond: Condition{Attribute: "a", Operator: OpBetween, Values: []any{1}}},
		{name: "equal with two operands", cond: Condition{Attribute: "a", Operator: OpEqual, Values: []any{1, 2}}},
		{name: "nil operand", cond: Attribute("a").EqualTo(nil)},
		{name: "non string prefix", cond: Condition{Attribute: "a", Operator: OpBeginsWith, Values: []any{42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cond.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCondition)
		})
	}
}

func TestParams_PageSize(t *testing.T) {
	assert.Equal(t, 100, Params{}.PageSize())
	assert.Equal(t, 100, Params{Limit: -3}.PageSize())
	assert.Equal(t, 1, Params{Limit: 1}.PageSize())
	assert.Equal(t, 25, Params{Limit: 25}.PageSize())
	assert.Equal(t, 100, Params{Limit: 100}.PageSize())
	assert.Equal(t, 100, Params{Limit: 5000}.PageSize())
}
