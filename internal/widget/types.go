package widget

import "critter-calc/internal/theme"

// Snapshot is what a widget shows after a press. The previous value is text
// because Infinity and NaN have no JSON number form.
type Snapshot struct {
	ID                string  `json:"id"`
	Theme             string  `json:"theme"`
	Display           string  `json:"display"`
	Operation         string  `json:"operation,omitempty"`
	PreviousValue     *string `json:"previous_value"`
	WaitingForOperand bool    `json:"waiting_for_operand"`
	Presses           int     `json:"presses"`
}

// MountRequest is the JSON body for POST /widgets. An empty body mounts the
// default theme.
type MountRequest struct {
	Theme string `json:"theme"`
}

// PressRequest is the JSON body for POST /widgets/{id}/press.
type PressRequest struct {
	Button string `json:"button"` // "7", ".", "C", "+", "-", "*", "/", "=" or an alias
}

// SequenceRequest is the JSON body for POST /widgets/{id}/sequence.
type SequenceRequest struct {
	Buttons []string `json:"buttons"`
}

// SequenceStep records the display after one press of a sequence.
type SequenceStep struct {
	Button  string `json:"button"`
	Display string `json:"display"`
}

// SequenceResponse is the JSON response for POST /widgets/{id}/sequence.
type SequenceResponse struct {
	Steps  []SequenceStep `json:"steps"`
	Widget Snapshot       `json:"widget"`
}

// ThemeResponse describes one theme and the keypad it dresses.
type ThemeResponse struct {
	theme.Theme
	Keypad theme.Keypad `json:"keypad"`
}
