package maybe_test

import (
	"testing"

	. "github.com/npillmayer/boxstyle/maybe"
)

func TestMaybeZeroValue(t *testing.T) {
	var x Maybe[string]
	if x.IsJust() {
		t.Error("expected zero value of Maybe to be Nothing, isn't")
	}
	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Errorf("expected zero value to match Nothing, matched Just(%q)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeSimple(t *testing.T) {
	x := Just(7)
	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) to match Just, didn't")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Get(); v != 14 {
		t.Errorf("expected Just(7).Map(double) to be 14, is %d", v)
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(Just(7), gt0).IsJust() {
		t.Error("expected Just(7) |> andThen(gt0) to be Just(true), isn't")
	}
	if AndThen(Just(-1), gt0).IsJust() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestLookupAndFirstOf(t *testing.T) {
	m := map[string]int{"a": 1}
	if !Lookup(m, "a").IsJust() || Lookup(m, "b").IsJust() {
		t.Error("expected lookup of a to succeed and of b to fail")
	}
	first := FirstOf(Nothing[int](), Just(2), Just(3))
	if v, ok := first.Get(); !ok || v != 2 {
		t.Errorf("expected FirstOf to pick 2, is %v/%v", v, ok)
	}
	if FirstOf[int]().IsJust() {
		t.Error("expected FirstOf() to be Nothing")
	}
	if v := Nothing[int]().Or(Just(5)).WithDefault(0); v != 5 {
		t.Errorf("expected Nothing.Or(Just 5) to be 5, is %d", v)
	}
}
