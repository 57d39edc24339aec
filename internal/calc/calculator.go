package calc

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultPrecision is the number of decimal places results are rounded to.
	DefaultPrecision = 10

	// ErrorDisplay replaces the display value after a failed evaluation.
	ErrorDisplay = "Error"

	resetDisplay = "0"
)

// State is a snapshot of what the calculator shows.
type State struct {
	Display    string   `json:"display"`
	Expression string   `json:"expression"`
	Preview    string   `json:"preview"`
	LastResult *float64 `json:"last_result,omitempty"`
	Error      bool     `json:"error"`
}

// Calculator accumulates an expression from key input and evaluates it. The
// display shows the number currently being entered; any non-number token
// resets it to "0". A Calculator is owned by a single caller and is not safe
// for concurrent use.
type Calculator struct {
	expression string
	display    string
	lastResult *float64
	errored    bool
	precision  int
	history    *History
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithHistoryLimit bounds the history to n entries.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) { c.history = NewHistory(n) }
}

// WithPrecision sets the number of decimal places results are rounded to.
func WithPrecision(places int) Option {
	return func(c *Calculator) {
		if places >= 0 {
			c.precision = places
		}
	}
}

// New creates a calculator in its cleared state.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		display:   resetDisplay,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = NewHistory(DefaultHistoryLimit)
	}
	return c
}

// Press dispatches a key through the key table and returns the new state.
// Unknown keys leave the state unchanged. An evaluation failure is reflected
// in the returned state rather than as an error.
func (c *Calculator) Press(key string) State {
	act, ok := KeyAction(key)
	if !ok {
		return c.State()
	}
	switch act.Kind {
	case ActionDigit:
		c.Digit(act.Token)
	case ActionDecimal:
		c.Decimal()
	case ActionOperator:
		c.Operator(act.Token)
	case ActionFunction:
		c.Function(act.Token)
	case ActionConstant:
		c.Constant(act.Token)
	case ActionParen:
		c.Paren(act.Token)
	case ActionEvaluate:
		_ = c.Evaluate()
	case ActionBackspace:
		c.Backspace()
	case ActionClear:
		c.Clear()
	}
	return c.State()
}

// Digit appends a digit. After a finalized result it starts a new expression.
func (c *Calculator) Digit(d string) {
	c.leaveTerminalState()
	if c.display == resetDisplay {
		c.display = d
	} else {
		c.display += d
	}
	c.expression += d
}

// Decimal appends a decimal point, at most once per number segment. After a
// finalized result it starts a new expression with "0.".
func (c *Calculator) Decimal() {
	if c.lastResult != nil || c.errored {
		c.lastResult = nil
		c.errored = false
		c.display = "0."
		c.expression = "0."
		return
	}
	if strings.Contains(trailingNumber(c.expression), ".") {
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
	c.expression += "."
}

// Operator appends a binary operator. After a finalized result the expression
// restarts from that result so calculations chain.
func (c *Calculator) Operator(op string) {
	if c.errored {
		c.errored = false
	}
	if c.lastResult != nil {
		c.expression = FormatNumber(*c.lastResult)
		c.lastResult = nil
	}
	c.expression += " " + op + " "
	c.display = resetDisplay
}

// Function applies a unary function. When the expression ends in a number
// (or a finalized result) that number becomes the argument, so "9 sqrt" reads
// as sqrt(9); otherwise an open prefix such as "sin(" is appended.
func (c *Calculator) Function(name string) {
	if c.lastResult != nil {
		c.expression = name + "(" + FormatNumber(*c.lastResult) + ")"
		c.lastResult = nil
		c.display = resetDisplay
		return
	}
	c.leaveTerminalState()
	if seg := trailingNumber(c.expression); seg != "" && seg != "." {
		c.expression = c.expression[:len(c.expression)-len(seg)] + name + "(" + seg + ")"
	} else {
		c.expression += name + "("
	}
	c.display = resetDisplay
}

// Constant appends a constant symbol, resolved at evaluation time.
func (c *Calculator) Constant(sym string) {
	c.leaveTerminalState()
	c.expression += sym
	c.display = resetDisplay
}

// Paren appends a parenthesis. Balance is checked only on evaluation.
func (c *Calculator) Paren(p string) {
	c.leaveTerminalState()
	c.expression += p
	c.display = resetDisplay
}

// Evaluate finalizes the expression. On success the display and expression
// hold the formatted result and a history entry is recorded. On failure the
// display shows ErrorDisplay, the expression is discarded and the error is
// returned. An empty expression is a no-op.
func (c *Calculator) Evaluate() error {
	if c.expression == "" {
		return nil
	}
	v, err := Evaluate(c.expression)
	if err != nil {
		c.display = ErrorDisplay
		c.expression = ""
		c.lastResult = nil
		c.errored = true
		return err
	}
	v = Round(v, c.precision)
	c.history.Add(Entry{Expression: c.expression, Result: v})

	text := FormatNumber(v)
	c.display = text
	c.expression = text
	c.lastResult = &v
	return nil
}

// Backspace removes the last token. A finalized result is left untouched.
func (c *Calculator) Backspace() {
	if c.lastResult != nil {
		return
	}
	if c.errored {
		c.errored = false
		c.display = resetDisplay
		return
	}
	if strings.HasSuffix(c.expression, " ") && len(c.expression) >= 3 {
		c.expression = c.expression[:len(c.expression)-3]
	} else {
		c.expression = dropLastRune(c.expression)
	}
	if utf8.RuneCountInString(c.display) > 1 {
		c.display = dropLastRune(c.display)
	} else {
		c.display = resetDisplay
	}
}

// Clear resets expression, display and the finalized result. History is kept.
func (c *Calculator) Clear() {
	c.expression = ""
	c.display = resetDisplay
	c.lastResult = nil
	c.errored = false
}

// ClearHistory drops all history entries.
func (c *Calculator) ClearHistory() { c.history.Clear() }

// History returns the entries most-recent-first.
func (c *Calculator) History() []Entry { return c.history.Entries() }

// Precision returns the number of decimal places results are rounded to.
func (c *Calculator) Precision() int { return c.precision }

// State returns a snapshot of the display state.
func (c *Calculator) State() State {
	s := State{
		Display:    c.display,
		Expression: c.expression,
		Preview:    Preview(c.expression),
		Error:      c.errored,
	}
	if c.lastResult != nil {
		v := *c.lastResult
		s.LastResult = &v
	}
	return s
}

// Preview is the compact form of an expression shown above the display.
func Preview(expr string) string {
	return strings.Join(strings.Fields(expr), "")
}

// leaveTerminalState starts a fresh expression when the previous input ended
// in a finalized result or an error.
func (c *Calculator) leaveTerminalState() {
	if c.lastResult != nil {
		c.lastResult = nil
		c.expression = ""
		c.display = resetDisplay
	}
	if c.errored {
		c.errored = false
		c.display = resetDisplay
	}
}

// trailingNumber returns the run of digits and decimal points at the end of
// expr, i.e. the number segment currently being typed.
func trailingNumber(expr string) string {
	i := len(expr)
	for i > 0 {
		ch := expr[i-1]
		if ch != '.' && (ch < '0' || ch > '9') {
			break
		}
		i--
	}
	return expr[i:]
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
