package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownButton is returned by ParseButton for input that names no key.
var ErrUnknownButton = errors.New("unknown button")

// Button is one key of the on-screen keypad.
type Button string

const (
	Button0        Button = "0"
	Button1        Button = "1"
	Button2        Button = "2"
	Button3        Button = "3"
	Button4        Button = "4"
	Button5        Button = "5"
	Button6        Button = "6"
	Button7        Button = "7"
	Button8        Button = "8"
	Button9        Button = "9"
	ButtonDecimal  Button = "."
	ButtonClear    Button = "C"
	ButtonAdd      Button = "+"
	ButtonSubtract Button = "-"
	ButtonMultiply Button = "*"
	ButtonDivide   Button = "/"
	ButtonEquals   Button = "="
)

// Buttons lists every key in keypad order, digits first.
var Buttons = []Button{
	Button0, Button1, Button2, Button3, Button4,
	Button5, Button6, Button7, Button8, Button9,
	ButtonDecimal, ButtonClear,
	ButtonAdd, ButtonSubtract, ButtonMultiply, ButtonDivide, ButtonEquals,
}

var buttonAliases = map[string]Button{
	"clear":    ButtonClear,
	"c":        ButtonClear,
	"decimal":  ButtonDecimal,
	"point":    ButtonDecimal,
	"add":      ButtonAdd,
	"subtract": ButtonSubtract,
	"multiply": ButtonMultiply,
	"×":        ButtonMultiply,
	"divide":   ButtonDivide,
	"÷":        ButtonDivide,
	"equals":   ButtonEquals,
}

// ParseButton resolves a key symbol or its spelled-out alias.
func ParseButton(s string) (Button, error) {
	s = strings.TrimSpace(s)
	for _, b := range Buttons {
		if string(b) == s {
			return b, nil
		}
	}
	if b, ok := buttonAliases[strings.ToLower(s)]; ok {
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownButton, s)
}

// IsDigit reports whether b enters a digit.
func (b Button) IsDigit() bool {
	return len(b) == 1 && b[0] >= '0' && b[0] <= '9'
}

// Operation returns the operator an arithmetic key selects.
func (b Button) Operation() (Operation, bool) {
	switch b {
	case ButtonAdd:
		return OpAdd, true
	case ButtonSubtract:
		return OpSubtract, true
	case ButtonMultiply:
		return OpMultiply, true
	case ButtonDivide:
		return OpDivide, true
	}
	return OpNone, false
}

// Press dispatches a key to the operation it is bound to. "=" is bound to
// Calculate, not to PerformOperation(OpEquals). Unknown keys are ignored.
func (s State) Press(b Button) State {
	if b.IsDigit() {
		return s.InputDigit(Digit(b[0] - '0'))
	}
	if op, ok := b.Operation(); ok {
		return s.PerformOperation(op)
	}

	switch b {
	case ButtonDecimal:
		return s.InputDecimalPoint()
	case ButtonClear:
		return s.Clear()
	case ButtonEquals:
		return s.Calculate()
	}
	return s
}
