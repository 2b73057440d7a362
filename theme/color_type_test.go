package theme

import "testing"

// sampleColorTypes covers every kind with a few values each
func sampleColorTypes() []ColorType {
	return []ColorType{
		InheritParent,
		Direct(TerminalDefault),
		Direct(Dark(Red)),
		Direct(Light(Blue)),
		Direct(RGB(10, 20, 30)),
		Direct(RGBLowRes(5, 2, 0)),
		FromPalette(Primary),
		FromPalette(View),
		FromPalette(HighlightText),
	}
}

func testPalette() Palette {
	return DefaultPalette().WithAll(map[PaletteColor]Color{
		Primary:       RGB(1, 2, 3),
		View:          Dark(Black),
		Highlight:     Dark(Blue),
		HighlightText: Dark(White),
	})
}

func TestColorTypeZeroValueInherits(t *testing.T) {
	var ct ColorType
	if ct != InheritParent {
		t.Errorf("Expected zero ColorType to equal InheritParent, got %v", ct)
	}
	if !ct.IsInherit() || ct.Kind() != KindInheritParent {
		t.Errorf("Expected zero ColorType kind inherit_parent, got %v", ct.Kind())
	}
}

func TestMergeColorTypeRightBias(t *testing.T) {
	for _, a := range sampleColorTypes() {
		if got := MergeColorType(a, InheritParent); got != a {
			t.Errorf("merge(%v, inherit): expected %v, got %v", a, a, got)
		}
		for _, b := range sampleColorTypes() {
			if b.IsInherit() {
				continue
			}
			if got := MergeColorType(a, b); got != b {
				t.Errorf("merge(%v, %v): expected %v, got %v", a, b, b, got)
			}
		}
	}
}

func TestMergeColorTypeAssociative(t *testing.T) {
	samples := sampleColorTypes()
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := MergeColorType(MergeColorType(a, b), c)
				right := MergeColorType(a, MergeColorType(b, c))
				if left != right {
					t.Fatalf("merge not associative for (%v, %v, %v): %v vs %v", a, b, c, left, right)
				}
			}
		}
	}
}

// TestMergeColorTypeRightmostNonInherit checks the fold equals "rightmost non-inherit operand"
func TestMergeColorTypeRightmostNonInherit(t *testing.T) {
	seqs := [][]ColorType{
		{},
		{InheritParent, InheritParent},
		{Direct(Dark(Red)), InheritParent},
		{Direct(Dark(Red)), FromPalette(View), InheritParent, InheritParent},
		{InheritParent, FromPalette(Primary), Direct(Light(Green))},
	}
	for _, seq := range seqs {
		got := InheritParent
		want := InheritParent
		for _, ct := range seq {
			got = MergeColorType(got, ct)
			if !ct.IsInherit() {
				want = ct
			}
		}
		if got != want {
			t.Errorf("fold of %v: expected %v, got %v", seq, want, got)
		}
	}
}

func TestColorTypeResolve(t *testing.T) {
	palette := testPalette()
	previous := Light(Magenta)

	tests := []struct {
		name string
		ct   ColorType
		want Color
	}{
		{"inherit returns previous", InheritParent, previous},
		{"direct ignores palette", Direct(Dark(Cyan)), Dark(Cyan)},
		{"direct terminal default", Direct(TerminalDefault), TerminalDefault},
		{"palette lookup", FromPalette(Primary), RGB(1, 2, 3)},
		{"palette lookup base color", FromPalette(View), Dark(Black)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ct.Resolve(palette, previous); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorTypeResolveIndependentOfInputs(t *testing.T) {
	palettes := []Palette{DefaultPalette(), DuskPalette(), MonoPalette()}
	previous := []Color{TerminalDefault, Dark(Red), RGB(9, 9, 9)}

	for _, p := range palettes {
		for _, prev := range previous {
			if got := InheritParent.Resolve(p, prev); got != prev {
				t.Errorf("inherit: expected %v, got %v", prev, got)
			}
			if got := Direct(Light(Green)).Resolve(p, prev); got != Light(Green) {
				t.Errorf("direct: expected light green, got %v", got)
			}
			for _, role := range PaletteColors {
				if got := FromPalette(role).Resolve(p, prev); got != p.Lookup(role) {
					t.Errorf("palette %v: expected %v, got %v", role, p.Lookup(role), got)
				}
			}
		}
	}
}

func TestColorSourceConversions(t *testing.T) {
	tests := []struct {
		name string
		src  ColorSource
		want ColorType
	}{
		{"color", Light(Red), Direct(Light(Red))},
		{"base color is dark", Red, Direct(Dark(Red))},
		{"palette color", Tertiary, FromPalette(Tertiary)},
		{"color type", InheritParent, InheritParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.AsColorType(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorTypeAccessors(t *testing.T) {
	d := Direct(RGB(1, 1, 1))
	if c, ok := d.Color(); !ok || c != RGB(1, 1, 1) {
		t.Errorf("Expected direct color #010101, got %v (ok=%v)", c, ok)
	}
	if _, ok := d.Role(); ok {
		t.Error("Expected Role to report false for a direct color")
	}

	p := FromPalette(Shadow)
	if r, ok := p.Role(); !ok || r != Shadow {
		t.Errorf("Expected role shadow, got %v (ok=%v)", r, ok)
	}
	if _, ok := p.Color(); ok {
		t.Error("Expected Color to report false for a palette role")
	}

	if got := p.String(); got != "palette(shadow)" {
		t.Errorf("Expected palette(shadow), got %q", got)
	}
	if got := Direct(Light(Red)).String(); got != "color(light red)" {
		t.Errorf("Expected color(light red), got %q", got)
	}
}
