package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/boxstyle/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultNilError(t *testing.T) {
	r := Err[int](nil)
	if r.IsOk() {
		t.Fatal("expected Err(nil) to be a failed result")
	}
	if !errors.Is(r.Error(), ErrUnknown) {
		t.Errorf("expected ErrUnknown, is %v", r.Error())
	}
}

func TestResultMap(t *testing.T) {
	s := Map(Ok(42), strconv.Itoa)
	if v, err := s.Unpack(); err != nil || v != "42" {
		t.Errorf("expected Ok(\"42\"), is %q/%v", v, err)
	}
	f := Map(Err[int](errors.New("x")), strconv.Itoa)
	if f.WithDefault("none") != "none" {
		t.Error("expected failed result to map to a failed result")
	}
}
