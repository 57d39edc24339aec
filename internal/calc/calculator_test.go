package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(c *Calculator, keys ...string) State {
	var s State
	for _, k := range keys {
		s = c.Press(k)
	}
	return s
}

func TestAddition(t *testing.T) {
	c := New()
	s := press(c, "2", "+", "3", KeyEnter)

	assert.Equal(t, "5", s.Display)
	require.NotNil(t, s.LastResult)
	assert.Equal(t, 5.0, *s.LastResult)

	hist := c.History()
	require.Len(t, hist, 1)
	assert.Equal(t, Entry{Expression: "2 + 3", Result: 5}, hist[0])
	assert.Equal(t, "2 + 3 = 5", hist[0].String())
}

func TestSquareRootOfEnteredNumber(t *testing.T) {
	c := New()
	s := press(c, "9", "r")
	assert.Equal(t, "sqrt(9)", s.Expression)

	s = c.Press(KeyEnter)
	assert.Equal(t, "3", s.Display)
}

func TestFunctionPrefix(t *testing.T) {
	c := New()
	s := press(c, "s", "3", "0", ")")
	assert.Equal(t, "sin(30)", s.Expression)

	s = c.Press(KeyEnter)
	assert.Equal(t, "0.5", s.Display)
}

func TestFunctionAppliesToResult(t *testing.T) {
	c := New()
	press(c, "8", "*", "2", KeyEnter)
	s := c.Press("r")
	assert.Equal(t, "sqrt(16)", s.Expression)
	assert.Nil(t, s.LastResult)

	s = c.Press(KeyEnter)
	assert.Equal(t, "4", s.Display)
}

func TestPrecisionNoise(t *testing.T) {
	c := New()
	s := press(c, ".", "1", "+", ".", "2", KeyEnter)
	assert.Equal(t, "0.3", s.Display)

	s = press(c, "1", "/", "3", KeyEnter)
	assert.Equal(t, "0.3333333333", s.Display)
}

func TestUnbalancedParenthesisErrors(t *testing.T) {
	c := New()
	s := press(c, "(", "2", "+", "3", KeyEnter)

	assert.Equal(t, ErrorDisplay, s.Display)
	assert.True(t, s.Error)
	assert.Empty(t, s.Expression)
	assert.Empty(t, c.History())
}

func TestEvaluateReturnsError(t *testing.T) {
	c := New()
	press(c, "1", "/", "0")
	err := c.Evaluate()
	assert.ErrorIs(t, err, ErrNotFinite)
	assert.Equal(t, ErrorDisplay, c.State().Display)
}

func TestInputAfterErrorStartsFresh(t *testing.T) {
	c := New()
	press(c, ")", KeyEnter)

	s := c.Press("5")
	assert.Equal(t, "5", s.Display)
	assert.Equal(t, "5", s.Expression)
	assert.False(t, s.Error)

	press(c, ")", KeyEnter)
	s = c.Press(KeyBackspace)
	assert.Equal(t, "0", s.Display)
}

func TestHistoryIsBounded(t *testing.T) {
	c := New()
	for i := 1; i <= 21; i++ {
		press(c, KeyDelete)
		for _, r := range fmt.Sprint(i) {
			c.Press(string(r))
		}
		press(c, "+", "0", KeyEnter)
	}

	hist := c.History()
	require.Len(t, hist, DefaultHistoryLimit)
	assert.Equal(t, "21 + 0", hist[0].Expression)
	assert.Equal(t, "2 + 0", hist[len(hist)-1].Expression)
	for _, e := range hist {
		assert.NotEqual(t, "1 + 0", e.Expression)
	}
}

func TestChainingFromResult(t *testing.T) {
	c := New()
	press(c, "2", "+", "3", KeyEnter)
	s := press(c, "*", "2")
	assert.Equal(t, "5 * 2", s.Expression)

	s = c.Press(KeyEnter)
	assert.Equal(t, "10", s.Display)
	assert.Equal(t, "5 * 2", c.History()[0].Expression)
}

func TestDigitAfterResultStartsNewExpression(t *testing.T) {
	c := New()
	press(c, "2", "+", "3", KeyEnter)
	s := c.Press("7")
	assert.Equal(t, "7", s.Display)
	assert.Equal(t, "7", s.Expression)
	assert.Nil(t, s.LastResult)
}

func TestDecimalAfterResult(t *testing.T) {
	c := New()
	press(c, "2", "+", "3", KeyEnter)
	s := c.Press(".")
	assert.Equal(t, "0.", s.Display)
	assert.Equal(t, "0.", s.Expression)
}

func TestDecimalOncePerSegment(t *testing.T) {
	c := New()
	s := press(c, "1", ".", "5", ".")
	assert.Equal(t, "1.5", s.Display)
	assert.Equal(t, "1.5", s.Expression)

	s = press(c, "+", "2", ".", "5")
	assert.Equal(t, "2.5", s.Display)
	assert.Equal(t, "1.5 + 2.5", s.Expression)
}

// The decimal check follows the number segment in the expression, not the
// display, so deleting an operator does not allow a second point.
func TestDecimalCheckSurvivesOperatorBackspace(t *testing.T) {
	c := New()
	press(c, "1", ".", "5", "+", KeyBackspace)
	s := c.Press(".")
	assert.Equal(t, "1.5", s.Expression)

	s = press(c, "(", "2", ".")
	assert.Equal(t, "1.5(2.", s.Expression)
	assert.Equal(t, "2.", s.Display)
}

func TestBackspace(t *testing.T) {
	c := New()
	s := press(c, "1", "2", "+")
	assert.Equal(t, "12 + ", s.Expression)

	s = c.Press(KeyBackspace)
	assert.Equal(t, "12", s.Expression)
	assert.Equal(t, "0", s.Display)

	s = press(c, KeyBackspace, KeyBackspace, KeyBackspace)
	assert.Empty(t, s.Expression)
	assert.Equal(t, "0", s.Display)

	s = press(c, "p", KeyBackspace)
	assert.Empty(t, s.Expression)

	s = press(c, "4", "5", KeyBackspace)
	assert.Equal(t, "4", s.Display)
	assert.Equal(t, "4", s.Expression)
}

func TestBackspaceIgnoredAfterResult(t *testing.T) {
	c := New()
	press(c, "4", "2", "+", "0", KeyEnter)
	s := c.Press(KeyBackspace)
	assert.Equal(t, "42", s.Display)
	assert.Equal(t, "42", s.Expression)
}

func TestClear(t *testing.T) {
	c := New()
	press(c, "4", "+", "4", KeyEnter, "+", "1")
	s := c.Press(KeyDelete)
	assert.Equal(t, State{Display: "0"}, s)
	assert.Len(t, c.History(), 1)

	press(c, "3", KeyEscape)
	assert.Equal(t, "0", c.State().Display)

	c.ClearHistory()
	assert.Empty(t, c.History())
}

func TestEmptyEvaluateIsNoop(t *testing.T) {
	c := New()
	s := c.Press(KeyEnter)
	assert.Equal(t, "0", s.Display)
	assert.False(t, s.Error)
	assert.Empty(t, c.History())
}

func TestConstantsResolveOnEvaluate(t *testing.T) {
	c := New()
	s := press(c, "2", "*", "p")
	assert.Equal(t, "2 * π", s.Expression)
	assert.Equal(t, "2*π", s.Preview)

	s = c.Press(KeyEnter)
	assert.Equal(t, "6.2831853072", s.Display)
}

func TestUnknownKeyIgnored(t *testing.T) {
	c := New()
	before := press(c, "7")
	after := press(c, "x", "ArrowLeft", "")
	assert.Equal(t, before, after)
}

func TestWithOptions(t *testing.T) {
	c := New(WithPrecision(2), WithHistoryLimit(2))
	s := press(c, "1", "/", "3", KeyEnter)
	assert.Equal(t, "0.33", s.Display)

	press(c, "1", "+", "1", KeyEnter)
	press(c, "2", "+", "2", KeyEnter)
	assert.Len(t, c.History(), 2)
}

func TestPowerAndModulo(t *testing.T) {
	c := New()
	s := press(c, "2", "^", "1", "0", KeyEnter)
	assert.Equal(t, "1024", s.Display)

	s = press(c, "%", "1", "0", "0", "0", KeyEnter)
	assert.Equal(t, "24", s.Display)
}
