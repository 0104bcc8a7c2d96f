package theme

import "critter-calc/internal/calculator"

// Key is one button on the keypad grid. Row and Col are the top-left cell.
type Key struct {
	Button  calculator.Button `json:"button"`
	Row     int               `json:"row"`
	Col     int               `json:"col"`
	ColSpan int               `json:"col_span"`
	RowSpan int               `json:"row_span"`
}

// Covers reports whether the key occupies cell (row, col).
func (k Key) Covers(row, col int) bool {
	return row >= k.Row && row < k.Row+k.RowSpan &&
		col >= k.Col && col < k.Col+k.ColSpan
}

// Keypad is the grid shared by every theme.
type Keypad struct {
	Rows int   `json:"rows"`
	Cols int   `json:"cols"`
	Keys []Key `json:"keys"`
}

var keypad = Keypad{
	Rows: 5,
	Cols: 4,
	Keys: []Key{
		{Button: calculator.ButtonClear, Row: 0, Col: 0, ColSpan: 2, RowSpan: 1},
		{Button: calculator.ButtonDivide, Row: 0, Col: 2, ColSpan: 1, RowSpan: 1},
		{Button: calculator.ButtonMultiply, Row: 0, Col: 3, ColSpan: 1, RowSpan: 1},

		{Button: calculator.Button7, Row: 1, Col: 0, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button8, Row: 1, Col: 1, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button9, Row: 1, Col: 2, ColSpan: 1, RowSpan: 1},
		{Button: calculator.ButtonSubtract, Row: 1, Col: 3, ColSpan: 1, RowSpan: 1},

		{Button: calculator.Button4, Row: 2, Col: 0, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button5, Row: 2, Col: 1, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button6, Row: 2, Col: 2, ColSpan: 1, RowSpan: 1},
		{Button: calculator.ButtonAdd, Row: 2, Col: 3, ColSpan: 1, RowSpan: 1},

		{Button: calculator.Button1, Row: 3, Col: 0, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button2, Row: 3, Col: 1, ColSpan: 1, RowSpan: 1},
		{Button: calculator.Button3, Row: 3, Col: 2, ColSpan: 1, RowSpan: 1},
		{Button: calculator.ButtonEquals, Row: 3, Col: 3, ColSpan: 1, RowSpan: 2},

		{Button: calculator.Button0, Row: 4, Col: 0, ColSpan: 2, RowSpan: 1},
		{Button: calculator.ButtonDecimal, Row: 4, Col: 2, ColSpan: 1, RowSpan: 1},
	},
}

// DefaultKeypad returns the shared layout. Callers get their own copy of
// the key slice.
func DefaultKeypad() Keypad {
	k := keypad
	k.Keys = append([]Key(nil), keypad.Keys...)
	return k
}

// At returns the index of the key covering (row, col), or -1 for a cell
// outside the grid.
func (p Keypad) At(row, col int) int {
	for i, k := range p.Keys {
		if k.Covers(row, col) {
			return i
		}
	}
	return -1
}

// Index returns the position of b in Keys, or -1.
func (p Keypad) Index(b calculator.Button) int {
	for i, k := range p.Keys {
		if k.Button == b {
			return i
		}
	}
	return -1
}

// Move returns the key reached from key i by stepping (dr, dc) cells. Steps
// leave a spanning key from its edge, so moving right from the wide "C"
// lands on "/". Moves off the grid stay on i.
func (p Keypad) Move(i, dr, dc int) int {
	if i < 0 || i >= len(p.Keys) {
		return 0
	}
	k := p.Keys[i]

	row, col := k.Row, k.Col
	switch {
	case dr > 0:
		row = k.Row + k.RowSpan - 1 + dr
	case dr < 0:
		row = k.Row + dr
	}
	switch {
	case dc > 0:
		col = k.Col + k.ColSpan - 1 + dc
	case dc < 0:
		col = k.Col + dc
	}

	if j := p.At(row, col); j >= 0 {
		return j
	}
	return i
}
