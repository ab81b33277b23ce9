package contour

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(4, 6).Sub(Pt(1, 2)), Vec(3, 4))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointKey(t *testing.T) {
	if Pt(1.04, 2).key() != Pt(0.96, 2.01).key() {
		t.Error("points within the quantization step have different keys")
	}
	if Pt(1.04, 2).key() == Pt(1.16, 2).key() {
		t.Error("points a full step apart share a key")
	}
	if got, want := Pt(-0.3, 12.25).key(), (pointKey{-3, 123}); got != want {
		t.Errorf("got key %v, want %v", got, want)
	}
}
