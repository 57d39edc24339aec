package calc

// ActionKind classifies a key press.
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimal
	ActionOperator
	ActionFunction
	ActionConstant
	ActionParen
	ActionEvaluate
	ActionBackspace
	ActionClear
)

// Action is the result of looking a key up in the key table. Token carries the
// digit, operator symbol, function name, constant symbol or parenthesis.
type Action struct {
	Kind  ActionKind
	Token string
}

// Key names shared with the keyboard and the on-screen keypad.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyEscape    = "Escape"
)

// FunctionKeys maps the mnemonic letters to function names.
var FunctionKeys = map[string]string{
	"s": "sin",
	"c": "cos",
	"t": "tan",
	"l": "log",
	"n": "ln",
	"r": "sqrt",
}

// ConstantKeys maps the mnemonic letters to constant symbols.
var ConstantKeys = map[string]string{
	"p": "π",
	"e": "e",
}

// KeyAction resolves a key to its action. Unknown keys report false and are
// ignored by the calculator.
func KeyAction(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Action{Kind: ActionDigit, Token: key}, true
	}
	switch key {
	case ".":
		return Action{Kind: ActionDecimal, Token: key}, true
	case "+", "-", "*", "/", "%", "^":
		return Action{Kind: ActionOperator, Token: key}, true
	case "(", ")":
		return Action{Kind: ActionParen, Token: key}, true
	case KeyEnter, "=":
		return Action{Kind: ActionEvaluate}, true
	case KeyBackspace:
		return Action{Kind: ActionBackspace}, true
	case KeyDelete, KeyEscape:
		return Action{Kind: ActionClear}, true
	}
	if fn, ok := FunctionKeys[key]; ok {
		return Action{Kind: ActionFunction, Token: fn}, true
	}
	if c, ok := ConstantKeys[key]; ok {
		return Action{Kind: ActionConstant, Token: c}, true
	}
	return Action{}, false
}
