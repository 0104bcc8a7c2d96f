// Package theme holds the cosmetic constants of each calculator widget. The
// widgets share one engine and one keypad; only labels and colours differ.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"critter-calc/internal/calculator"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Palette is a set of hex colours.
type Palette struct {
	Background    string `json:"background"`
	Card          string `json:"card"`
	CardBorder    string `json:"card_border"`
	Title         string `json:"title"`
	Text          string `json:"text"`
	DisplayFg     string `json:"display_fg"`
	DisplayBg     string `json:"display_bg"`
	DisplayBorder string `json:"display_border"`
	Digit         string `json:"digit"`
	DigitBorder   string `json:"digit_border"`
	Operator      string `json:"operator"`
	OperatorText  string `json:"operator_text"`
	Clear         string `json:"clear"`
	Equals        string `json:"equals"`
	KeyText       string `json:"key_text"`
}

type Theme struct {
	Name     string                       `json:"name"`
	Title    string                       `json:"title"`
	Subtitle string                       `json:"subtitle"`
	Footer   string                       `json:"footer"`
	Labels   map[calculator.Button]string `json:"labels"`
	Palette  Palette                      `json:"palette"`
}

// Label returns the text printed on b, or the bare symbol when the theme
// does not decorate it.
func (t Theme) Label(b calculator.Button) string {
	if l, ok := t.Labels[b]; ok {
		return l
	}
	return string(b)
}

var sharedLabels = map[calculator.Button]string{
	calculator.Button0: "0️⃣",
	calculator.Button1: "1️⃣",
	calculator.Button2: "2️⃣",
	calculator.Button3: "3️⃣",
	calculator.Button4: "4️⃣",
	calculator.Button5: "5️⃣",
	calculator.Button6: "6️⃣",
	calculator.Button7: "7️⃣",
	calculator.Button8: "8️⃣",
	calculator.Button9: "9️⃣",

	calculator.ButtonDivide:   "÷",
	calculator.ButtonMultiply: "×",
	calculator.ButtonSubtract: "➖",
	calculator.ButtonAdd:      "➕",
}

func labels(clear, equals, decimal string) map[calculator.Button]string {
	m := make(map[calculator.Button]string, len(sharedLabels)+3)
	for b, l := range sharedLabels {
		m[b] = l
	}
	m[calculator.ButtonClear] = clear
	m[calculator.ButtonEquals] = equals
	m[calculator.ButtonDecimal] = decimal
	return m
}

const defaultName = "dinosaur"

var registry = map[string]Theme{
	"dinosaur": {
		Name:     "dinosaur",
		Title:    "🦕 Dino Calculator 🦖",
		Subtitle: "Prehistoric calculations made fun!",
		Footer:   "🌿 Powered by prehistoric mathematics! 🌿",
		Labels:   labels("🦴 Clear", "🦕 =", "🥚 ."),
		Palette: Palette{
			Background:    "#dcfce7", // green-100
			Card:          "#fffbeb", // amber-50
			CardBorder:    "#22c55e", // green-500
			Title:         "#166534", // green-800
			Text:          "#15803d", // green-700
			DisplayFg:     "#4ade80", // green-400
			DisplayBg:     "#000000",
			DisplayBorder: "#fbbf24", // amber-400
			Digit:         "#bbf7d0", // green-200
			DigitBorder:   "#4ade80", // green-400
			Operator:      "#fb923c", // orange-400
			OperatorText:  "#ffffff",
			Clear:         "#ef4444", // red-500
			Equals:        "#10b981", // emerald-500
			KeyText:       "#1f2937",
		},
	},
	"hedgehog": {
		Name:     "hedgehog",
		Title:    "🦔 Hedgehog Calculator 🦔",
		Subtitle: "Spiky calculations made cozy!",
		Footer:   "🍂 Powered by cozy woodland math! 🍂",
		Labels:   labels("🍄 Clear", "🦔 =", "🌰 ."),
		Palette: Palette{
			Background:    "#fef3c7", // amber-100
			Card:          "#fff7ed", // orange-50
			CardBorder:    "#d97706", // amber-600
			Title:         "#92400e", // amber-800
			Text:          "#b45309", // amber-700
			DisplayFg:     "#fdba74", // orange-300
			DisplayBg:     "#78350f", // amber-900
			DisplayBorder: "#fb923c", // orange-400
			Digit:         "#fde68a", // amber-200
			DigitBorder:   "#fbbf24", // amber-400
			Operator:      "#ea580c", // orange-600
			OperatorText:  "#ffffff",
			Clear:         "#ef4444", // red-500
			Equals:        "#b45309", // amber-700
			KeyText:       "#1f2937",
		},
	},
}

// Lookup finds a theme by name, ignoring case.
func Lookup(name string) (Theme, error) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Default is the theme used when none is requested.
func Default() Theme {
	return registry[defaultName]
}

// Names lists the registered themes alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every registered theme in Names order.
func All() []Theme {
	names := Names()
	out := make([]Theme, len(names))
	for i, n := range names {
		out[i] = registry[n]
	}
	return out
}
