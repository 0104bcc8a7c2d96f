package theme

import (
	"errors"
	"reflect"
	"testing"

	"critter-calc/internal/calculator"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"dinosaur", "Hedgehog", " DINOSAUR "} {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("lookup %q: unexpected error: %v", name, err)
		}
	}

	_, err := Lookup("axolotl")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestNamesAndDefault(t *testing.T) {
	want := []string{"dinosaur", "hedgehog"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := Default().Name; got != "dinosaur" {
		t.Fatalf("expected default %q, got %q", "dinosaur", got)
	}

	all := All()
	if len(all) != 2 || all[1].Name != "hedgehog" {
		t.Fatalf("unexpected themes %+v", all)
	}
}

func TestEveryThemeLabelsEveryButton(t *testing.T) {
	for _, th := range All() {
		for _, b := range calculator.Buttons {
			if _, ok := th.Labels[b]; !ok {
				t.Fatalf("theme %q has no label for %q", th.Name, b)
			}
		}
	}
}

func TestThemesDifferOnlyCosmetically(t *testing.T) {
	dino, _ := Lookup("dinosaur")
	hog, _ := Lookup("hedgehog")

	if dino.Label(calculator.ButtonClear) != "🦴 Clear" {
		t.Fatalf("unexpected dinosaur clear label %q", dino.Label(calculator.ButtonClear))
	}
	if hog.Label(calculator.ButtonClear) != "🍄 Clear" {
		t.Fatalf("unexpected hedgehog clear label %q", hog.Label(calculator.ButtonClear))
	}
	if dino.Label(calculator.Button7) != hog.Label(calculator.Button7) {
		t.Fatal("expected digit labels to be shared")
	}
}

func TestLabelFallsBackToSymbol(t *testing.T) {
	var bare Theme
	if got := bare.Label(calculator.ButtonAdd); got != "+" {
		t.Fatalf("expected %q, got %q", "+", got)
	}
}

func TestKeypadCoversEveryCellOnce(t *testing.T) {
	p := DefaultKeypad()
	seen := make(map[calculator.Button]bool)

	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			covering := 0
			for _, k := range p.Keys {
				if k.Covers(row, col) {
					covering++
				}
			}
			if covering != 1 {
				t.Fatalf("cell (%d,%d) covered by %d keys", row, col, covering)
			}
			seen[p.Keys[p.At(row, col)].Button] = true
		}
	}

	if len(seen) != len(calculator.Buttons) {
		t.Fatalf("expected %d buttons on the grid, got %d", len(calculator.Buttons), len(seen))
	}
}

func TestKeypadMove(t *testing.T) {
	p := DefaultKeypad()

	tests := []struct {
		name   string
		from   calculator.Button
		dr, dc int
		want   calculator.Button
	}{
		{name: "right off wide clear", from: calculator.ButtonClear, dc: 1, want: calculator.ButtonDivide},
		{name: "down from clear", from: calculator.ButtonClear, dr: 1, want: calculator.Button7},
		{name: "up into wide clear", from: calculator.Button8, dr: -1, want: calculator.ButtonClear},
		{name: "right off wide zero", from: calculator.Button0, dc: 1, want: calculator.ButtonDecimal},
		{name: "right into tall equals", from: calculator.ButtonDecimal, dc: 1, want: calculator.ButtonEquals},
		{name: "left off tall equals", from: calculator.ButtonEquals, dc: -1, want: calculator.Button3},
		{name: "down off grid stays", from: calculator.ButtonEquals, dr: 1, want: calculator.ButtonEquals},
		{name: "left off grid stays", from: calculator.Button4, dc: -1, want: calculator.Button4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Keys[p.Move(p.Index(tc.from), tc.dr, tc.dc)].Button
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDefaultKeypadReturnsCopy(t *testing.T) {
	p := DefaultKeypad()
	p.Keys[0].Button = calculator.Button9

	if DefaultKeypad().Keys[0].Button != calculator.ButtonClear {
		t.Fatal("expected shared layout to be unaffected")
	}
}
