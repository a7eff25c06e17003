package box

import (
	"testing"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func nums(t, r, b, l float64) attr.Box {
	return attr.Box{Top: attr.Num(t), Right: attr.Num(r), Bottom: attr.Num(b), Left: attr.Num(l)}
}

func TestFormatMinimization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.box")
	defer teardown()
	//
	cases := []struct {
		b    attr.Box
		want string
	}{
		{nums(10, 10, 10, 10), "10px"},
		{nums(10, 20, 10, 20), "10px 20px"},
		{nums(10, 20, 30, 20), "10px 20px 30px"},
		{nums(10, 20, 30, 40), "10px 20px 30px 40px"},
		{nums(10, 10, 30, 10), "10px 10px 30px"},
	}
	for _, c := range cases {
		if s := Format(c.b, "px"); s != c.want {
			t.Errorf("expected Format(%v) to be %q, is %q", c.b, c.want, s)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	b := nums(1, 2, 1, 2)
	b.Unit = "em"
	if s := Format(b, "px"); s != "1em 2em" {
		t.Errorf("expected box unit to win, is %q", s)
	}
	mixed := attr.Box{
		Top:    attr.Str("10px"),
		Right:  attr.Measure(10, "px"),
		Bottom: attr.Num(10),
		Left:   attr.Str("10px"),
	}
	if s := Format(mixed, "px"); s != "10px" {
		t.Errorf("expected sides to compare textually, is %q", s)
	}
	if s := Format(Normalize(attr.Null, attr.Str("0")), "px"); s != "" {
		t.Errorf("expected empty input to format to the empty string, is %q", s)
	}
}

func TestParse(t *testing.T) {
	cases := map[string][4]string{
		"1px":                 {"1px", "1px", "1px", "1px"},
		"1px 2px":             {"1px", "2px", "1px", "2px"},
		"1px 2px 3px":         {"1px", "2px", "3px", "2px"},
		"  1px 2px 3px 4px  ": {"1px", "2px", "3px", "4px"},
		"calc(1em + 2px) 0":   {"calc(1em + 2px)", "0", "calc(1em + 2px)", "0"},
		"":                    {"", "", "", ""},
		"1 2 3 4 5":           {"", "", "", ""},
	}
	for s, want := range cases {
		if got := SideTexts(Parse(s), ""); got != want {
			t.Errorf("expected Parse(%q) to be %v, is %v", s, want, got)
		}
	}
	if TryParse("1 2 3 4 5").IsOk() {
		t.Error("expected strict parsing of 5 tokens to fail")
	}
}

func TestParseInvertsFormat(t *testing.T) {
	inputs := []attr.Value{
		attr.Str("4px"),
		attr.Num(3),
		attr.BoxOf(nums(1, 2, 3, 4)),
		attr.BoxOf(nums(1, 2, 1, 2)),
		attr.BoxOf(attr.Box{Top: attr.Str("1px"), Left: attr.Str("2px")}),
		attr.ResponsiveOf(attr.Responsive{Base: maybe.Just(attr.BoxOf(nums(5, 6, 7, 6)))}),
	}
	for _, v := range inputs {
		norm := Normalize(v, attr.Str("0"))
		back := Parse(Format(norm, "px"))
		if SideTexts(back, "px") != SideTexts(norm, "px") {
			t.Errorf("expected Parse(Format(%s)) to equal Normalize, is %v", v, SideTexts(back, ""))
		}
	}
}

func TestNormalize(t *testing.T) {
	b := Normalize(attr.Str("5px"), attr.Str("0"))
	if !b.Linked || attr.Text(b.Left, "") != "5px" {
		t.Errorf("expected scalar to broadcast to linked box, is %v", b)
	}
	b = Normalize(attr.BoxOf(attr.Box{Top: attr.Str("1px")}), attr.Str("0"))
	if got := SideTexts(b, ""); got != [4]string{"1px", "0", "0", "0"} {
		t.Errorf("expected missing sides to take default, is %v", got)
	}
	b = Normalize(attr.ListOf(attr.Num(1)), attr.Str("0"))
	if got := SideTexts(b, ""); got != [4]string{"0", "0", "0", "0"} {
		t.Errorf("expected unrecognized shape to normalize to default, is %v", got)
	}
}

func TestIsLinked(t *testing.T) {
	linked := attr.BoxOf(attr.Box{
		Top: attr.Str("2px"), Right: attr.Num(2), Bottom: attr.Str("2px"), Left: attr.Str("2px"),
		Unit: "px",
	})
	if !IsLinked(linked) {
		t.Error("expected box with textually equal sides to be linked")
	}
	hint := attr.BoxOf(attr.Box{Top: attr.Str("1px"), Right: attr.Str("2px"), Linked: true})
	if IsLinked(hint) {
		t.Error("expected linked-hint to be ignored")
	}
	if !IsLinked(attr.Str("3px")) {
		t.Error("expected scalar to be linked")
	}
}

func TestSideMutators(t *testing.T) {
	b := nums(1, 2, 3, 4)
	c := UpdateSide(b, Bottom, attr.Num(9), false)
	if attr.Text(GetSide(c, Bottom), "") != "9" || attr.Text(GetSide(b, Bottom), "") != "3" {
		t.Errorf("expected UpdateSide to return a new box, have %v and %v", b, c)
	}
	c = UpdateSide(b, Left, attr.Num(7), true)
	if Format(c, "") != "7" || !c.Linked {
		t.Errorf("expected linked update to set all sides, is %q", Format(c, ""))
	}
	d := ToggleLinked(b)
	if Format(d, "px") != "1px" || !d.Linked {
		t.Errorf("expected linking to copy top side, is %q", Format(d, "px"))
	}
	if ToggleLinked(d).Linked {
		t.Error("expected toggling twice to unlink")
	}
}

func TestCorners(t *testing.T) {
	c := attr.Corners{
		TopLeft: attr.Num(4), TopRight: attr.Num(0), BottomRight: attr.Num(4), BottomLeft: attr.Num(0),
	}
	if s := FormatCorners(c, "px"); s != "4px 0px" {
		t.Errorf("expected corners to format to '4px 0px', is %q", s)
	}
	back := ParseCorners("4px 0px")
	if CornerTexts(back, "") != CornerTexts(c, "px") {
		t.Errorf("expected ParseCorners to invert FormatCorners, is %v", CornerTexts(back, ""))
	}
	if TryParseCorners("10px / 20px").IsOk() {
		t.Error("expected elliptical radii to be rejected")
	}
	u := UpdateCorner(c, BottomLeft, attr.Num(1), false)
	if attr.Text(GetCorner(u, BottomLeft), "") != "1" {
		t.Errorf("expected bottom-left corner to be updated, is %v", u)
	}
	if !IsLinked(attr.CornersOf(ToggleCornersLinked(c))) {
		t.Error("expected linked corners after toggling")
	}
	n := NormalizeCorners(attr.Str("3px"), attr.Str("0"))
	if FormatCorners(n, "") != "3px" {
		t.Errorf("expected scalar to broadcast to all corners, is %q", FormatCorners(n, ""))
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("1px solid rgba(0, 0, 0, .5)")
	if len(got) != 3 || got[2] != "rgba(0, 0, 0, .5)" {
		t.Errorf("expected 3 tokens keeping rgba(…) together, is %q", got)
	}
	if !IsSingleToken("10px") || IsSingleToken("1px 2px") || IsSingleToken("") || IsSingleToken(" 1px") {
		t.Error("IsSingleToken misclassifies input")
	}
	for _, s := range []string{"rgba(0", "calc(1px))", "a)b(", "var(--gap"} {
		if IsSingleToken(s) {
			t.Errorf("expected %q with unbalanced parentheses not to be a single token", s)
		}
	}
	if !IsSingleToken("rgba(0,0,0,.5)") || !IsSingleToken("calc((1px+2px)*2)") {
		t.Error("expected balanced parenthesized values to be single tokens")
	}
}
